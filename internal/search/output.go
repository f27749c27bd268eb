// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// wrapWidth is the column width used when wrapping long text columns.
const wrapWidth = 30

// FormatTable writes records as a human-readable table to w. Long cells
// are truncated; with wrap set they wrap onto continuation lines instead.
func FormatTable(res Result, w io.Writer, wrap bool) {
	if len(res.Records) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return
	}

	fmt.Fprintf(w, "%-18s  %-14s  %-30s  %-30s  %-16s  %s\n",
		"Stable ID", "Name", "Description", "Xref description", "Biotype", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	for _, r := range res.Records {
		if wrap {
			writeWrappedRow(w, r)
			continue
		}
		fmt.Fprintf(w, "%-18s  %-14s  %-30s  %-30s  %-16s  %s\n",
			r.StableID,
			truncate(orEmpty(r.DisplayName), 14),
			truncate(orEmpty(r.Description), 30),
			truncate(orEmpty(r.XrefDescription), 30),
			truncate(orEmpty(r.Biotype), 16),
			r.URL)
	}

	fmt.Fprintf(w, "\n%d records", res.Returned)
	if res.Truncated() {
		fmt.Fprintf(w, " (of %d found)", res.Found)
	}
	fmt.Fprintln(w)
}

// writeWrappedRow prints one record across as many lines as its wrapped
// description, cross-reference description, and URL columns need. The
// identifier columns appear on the first line only.
func writeWrappedRow(w io.Writer, r types.Record) {
	desc := wrapText(orEmpty(r.Description), wrapWidth)
	xref := wrapText(orEmpty(r.XrefDescription), wrapWidth)
	url := wrapText(r.URL, wrapWidth)

	lines := 1
	for _, col := range [][]string{desc, xref, url} {
		if len(col) > lines {
			lines = len(col)
		}
	}

	for i := 0; i < lines; i++ {
		id, name, biotype := "", "", ""
		if i == 0 {
			id = r.StableID
			name = truncate(orEmpty(r.DisplayName), 14)
			biotype = truncate(orEmpty(r.Biotype), 16)
		}
		fmt.Fprintf(w, "%-18s  %-14s  %-30s  %-30s  %-16s  %s\n",
			id, name, lineAt(desc, i), lineAt(xref, i), biotype, lineAt(url, i))
	}
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// wrapText breaks s into lines of at most width bytes, splitting on
// spaces where possible and hard-breaking words longer than one line.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range words {
		for len(word) > width {
			flush()
			lines = append(lines, word[:width])
			word = word[width:]
		}
		if word == "" {
			continue
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			flush()
			current = word
		}
	}
	flush()
	return lines
}

// FormatJSON writes records as indented JSON to w. NULL columns are
// preserved as JSON null.
func FormatJSON(res Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Records)
}

// csvHeader matches the serialized record field order.
var csvHeader = []string{"ensembl_id", "gene_name", "ensembl_description", "ext_ref_description", "biotype", "url"}

// FormatCSV writes records as CSV with a header row. NULL columns become
// empty cells.
func FormatCSV(res Result, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range res.Records {
		row := []string{
			r.StableID,
			orEmpty(r.DisplayName),
			orEmpty(r.Description),
			orEmpty(r.XrefDescription),
			orEmpty(r.Biotype),
			r.URL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// orEmpty renders a nullable column for display.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
