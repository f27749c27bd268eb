// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the genome-engine CLI.
package types

// EntityKind selects which annotation table a search targets.
type EntityKind string

const (
	KindGene       EntityKind = "gene"
	KindTranscript EntityKind = "transcript"
)

// CombineMode controls how per-keyword result sets are folded together.
type CombineMode string

const (
	CombineAnd CombineMode = "and"
	CombineOr  CombineMode = "or"
)

// Record is one gene or transcript row returned by a core-database search.
// Nullable columns map to nil pointers so that output serialization can
// distinguish "no value" from an empty string.
type Record struct {
	// StableID is the persistent Ensembl identifier (e.g. "ENSG00000139618").
	StableID string `json:"ensembl_id" yaml:"ensembl_id"`

	// DisplayName is the cross-reference display label, typically the
	// gene symbol (e.g. "BRCA2").
	DisplayName *string `json:"gene_name" yaml:"gene_name"`

	// Description is the primary description from the annotation table.
	Description *string `json:"ensembl_description" yaml:"ensembl_description"`

	// XrefDescription is the description attached to the cross-reference.
	XrefDescription *string `json:"ext_ref_description" yaml:"ext_ref_description"`

	// Biotype classifies the record (e.g. "protein_coding").
	Biotype *string `json:"biotype" yaml:"biotype"`

	// URL links to the species gene summary page. Attached during
	// consolidation; empty until then.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}
