// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search runs keyword searches against a resolved Ensembl core
// database. Each keyword becomes one parameterized query; the per-keyword
// results are folded under an and/or combine mode and consolidated into a
// deduplicated, limited, URL-annotated record set.
package search

import (
	"context"
	"fmt"
	"io"
)

// Search runs the full pipeline for one criteria set: per-keyword queries
// in order, fold under the combine mode, then consolidation against the
// database identifier. Progress is written to w.
func Search(ctx context.Context, exec Executor, crit Criteria, database string, w io.Writer) (Result, error) {
	crit.Normalize()
	if err := crit.Validate(); err != nil {
		return Result{}, err
	}

	records, err := Aggregate(ctx, exec, crit)
	if err != nil {
		return Result{}, err
	}

	result := Consolidate(records, database, crit.Limit)

	if result.Truncated() {
		fmt.Fprintf(w, "Returning %d matches of %d total matches found.\n", result.Returned, result.Found)
	} else {
		fmt.Fprintf(w, "Total matches found: %d.\n", result.Found)
	}

	return result, nil
}
