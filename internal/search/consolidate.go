// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// Result is the finalized record set plus its consolidation counts.
type Result struct {
	// Records is the deduplicated, limited, URL-annotated record set.
	Records []types.Record

	// Found counts distinct records before the limit was applied.
	Found int

	// Returned counts records actually present in Records.
	Returned int
}

// Truncated reports whether the limit dropped records.
func (r Result) Truncated() bool { return r.Returned < r.Found }

const (
	siteBase = "https://useast.ensembl.org/"
	genePath = "/Gene/Summary?g="
)

// Consolidate removes exact-duplicate rows, applies the limit, and
// attaches the gene-summary URL derived from the database identifier.
// First-occurrence order is preserved.
func Consolidate(records []types.Record, database string, limit int) Result {
	deduped := dedupe(records)
	found := len(deduped)

	if limit > 0 && len(deduped) > limit {
		deduped = deduped[:limit]
	}

	species := speciesPrefix(database)
	for i := range deduped {
		deduped[i].URL = siteBase + species + genePath + deduped[i].StableID
	}

	return Result{Records: deduped, Found: found, Returned: len(deduped)}
}

// dedupe drops rows whose full tuple already appeared. Rows that differ in
// any column, including NULL versus empty string, are both kept.
func dedupe(records []types.Record) []types.Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		key := recordKey(r)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// speciesPrefix returns the first two underscore-delimited tokens of a
// database identifier ("homo_sapiens_core_106_38" -> "homo_sapiens").
// Shorter identifiers are returned whole.
func speciesPrefix(database string) string {
	parts := strings.Split(database, "_")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "_")
}
