// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// ResultFile is the on-disk representation of a search and its results.
// A search can be saved to a file and inspected later without re-querying
// the database service.
type ResultFile struct {
	Query    QueryParams    `yaml:"query"`
	Database string         `yaml:"database"`
	Results  []types.Record `yaml:"results"`
	Summary  ResultSummary  `yaml:"summary"`
}

// QueryParams stores the search criteria in a serializable form.
type QueryParams struct {
	Kind     string   `yaml:"kind"`
	Keywords []string `yaml:"keywords"`
	Mode     string   `yaml:"mode"`
	Limit    int      `yaml:"limit,omitempty"`
}

// ResultSummary stores result counts and a timestamp.
type ResultSummary struct {
	Found     int       `yaml:"found"`
	Returned  int       `yaml:"returned"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves the criteria, the resolved database, and the
// results to a YAML file.
func WriteResultFile(path string, crit Criteria, database string, res Result) error {
	rf := ResultFile{
		Query: QueryParams{
			Kind:     string(crit.Kind),
			Keywords: crit.Keywords,
			Mode:     string(crit.Mode),
			Limit:    crit.Limit,
		},
		Database: database,
		Results:  res.Records,
		Summary: ResultSummary{
			Found:     res.Found,
			Returned:  res.Returned,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}

// ToCriteria converts stored QueryParams back into Criteria.
func (p QueryParams) ToCriteria() Criteria {
	return Criteria{
		Kind:     types.EntityKind(p.Kind),
		Keywords: p.Keywords,
		Mode:     types.CombineMode(p.Mode),
		Limit:    p.Limit,
	}
}

// Save writes results to path in a format chosen by the file extension:
// .csv, .json, or .yaml/.yml.
func Save(path string, crit Criteria, database string, res Result) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		return FormatCSV(res, f)
	case ".json":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		return FormatJSON(res, f)
	case ".yaml", ".yml":
		return WriteResultFile(path, crit, database, res)
	default:
		return fmt.Errorf("unsupported save format %q: use .csv, .json, .yaml, or .yml", filepath.Ext(path))
	}
}
