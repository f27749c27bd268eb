// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// Executor runs one parameterized query against a resolved core database
// and returns the matching records. Implemented by coredb.Client.
type Executor interface {
	Select(ctx context.Context, query string, args ...any) ([]types.Record, error)
}

// Aggregate executes the per-keyword queries strictly in order and folds
// the results into a single running set under the combine mode. In "and"
// mode the surviving rows always carry the first keyword's attribute
// values; later keywords only filter by stable identifier.
func Aggregate(ctx context.Context, exec Executor, crit Criteria) ([]types.Record, error) {
	var running []types.Record

	for i, keyword := range crit.Keywords {
		query, args := buildKeywordQuery(crit.Kind, keyword)
		records, err := exec.Select(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("searching for %q: %w", keyword, err)
		}

		sortRecords(records)

		if i == 0 {
			running = records
			continue
		}

		switch crit.Mode {
		case types.CombineOr:
			running = append(running, records...)
		case types.CombineAnd:
			running = intersectByID(running, records)
		}
	}

	return running, nil
}

// sortRecords orders a per-keyword result set by stable identifier. Ties
// fall back to the full tuple so that reruns produce identical output
// regardless of the row order the server happened to return.
func sortRecords(records []types.Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].StableID != records[j].StableID {
			return records[i].StableID < records[j].StableID
		}
		return recordKey(records[i]) < recordKey(records[j])
	})
}

// intersectByID keeps the rows of running whose stable identifier also
// appears in next.
func intersectByID(running, next []types.Record) []types.Record {
	ids := make(map[string]struct{}, len(next))
	for _, r := range next {
		ids[r.StableID] = struct{}{}
	}

	kept := make([]types.Record, 0, len(running))
	for _, r := range running {
		if _, ok := ids[r.StableID]; ok {
			kept = append(kept, r)
		}
	}
	return kept
}

// recordKey serializes the full tuple for duplicate detection and tie
// ordering. A NULL column and an empty string produce different keys. The
// URL is excluded: it is derived after consolidation.
func recordKey(r types.Record) string {
	var b strings.Builder
	b.WriteString(r.StableID)
	for _, f := range []*string{r.DisplayName, r.Description, r.XrefDescription, r.Biotype} {
		if f == nil {
			b.WriteString("\x00n")
		} else {
			b.WriteString("\x00v")
			b.WriteString(*f)
		}
	}
	return b.String()
}
