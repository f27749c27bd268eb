// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"github.com/pdiddy/genome-engine/pkg/types"
)

// The annotation queries join each table to its display cross-reference
// and match one keyword against the description and label columns. Core
// schema releases keep these columns stable across species.
const (
	geneQuery = `SELECT gene.stable_id, xref.display_label, gene.description, xref.description, gene.biotype
FROM gene
LEFT JOIN xref ON gene.display_xref_id = xref.xref_id
WHERE gene.description LIKE ? OR xref.description LIKE ? OR xref.display_label LIKE ?`

	transcriptQuery = `SELECT transcript.stable_id, xref.display_label, transcript.description, xref.description, transcript.biotype
FROM transcript
LEFT JOIN xref ON transcript.display_xref_id = xref.xref_id
WHERE transcript.description LIKE ? OR xref.description LIKE ? OR xref.display_label LIKE ?`
)

// buildKeywordQuery returns the annotation query for one keyword together
// with its bind arguments. The keyword is passed through placeholders,
// never interpolated, so query metacharacters in user input cannot alter
// the statement. LIKE wildcards inside the keyword are left as-is.
func buildKeywordQuery(kind types.EntityKind, keyword string) (string, []any) {
	query := geneQuery
	if kind == types.KindTranscript {
		query = transcriptQuery
	}

	pattern := "%" + keyword + "%"
	return query, []any{pattern, pattern, pattern}
}
