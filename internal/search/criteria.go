// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"strings"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// Criteria holds the parameters for one search invocation.
type Criteria struct {
	// Kind selects the annotation table: gene or transcript.
	Kind types.EntityKind

	// Keywords are matched case-insensitively, in order.
	Keywords []string

	// Mode folds per-keyword results: "or" keeps any match, "and" keeps
	// only records matched by every keyword.
	Mode types.CombineMode

	// Limit caps the number of records returned (0 = unlimited).
	Limit int
}

// Normalize lower-cases the kind and mode so argument spelling is
// case-insensitive.
func (c *Criteria) Normalize() {
	c.Kind = types.EntityKind(strings.ToLower(string(c.Kind)))
	c.Mode = types.CombineMode(strings.ToLower(string(c.Mode)))
}

// Validate rejects unsupported kinds and modes, empty keyword lists, and
// negative limits. Callers run it before any remote call.
func (c Criteria) Validate() error {
	switch c.Kind {
	case types.KindGene, types.KindTranscript:
	default:
		return fmt.Errorf("unsupported kind %q: expected one of gene, transcript", c.Kind)
	}

	switch c.Mode {
	case types.CombineAnd, types.CombineOr:
	default:
		return fmt.Errorf("unsupported mode %q: expected one of and, or", c.Mode)
	}

	if len(c.Keywords) == 0 {
		return fmt.Errorf("no keywords: provide at least one search term")
	}
	for _, kw := range c.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("empty keyword: search terms must be non-empty")
		}
	}

	if c.Limit < 0 {
		return fmt.Errorf("limit %d is negative: expected a positive count, or 0 for unlimited", c.Limit)
	}
	return nil
}
