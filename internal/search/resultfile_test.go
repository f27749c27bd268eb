package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/genome-engine/pkg/types"
)

func sampleResult() (Criteria, Result) {
	crit := Criteria{
		Kind:     types.KindGene,
		Keywords: []string{"gaba", "gamma"},
		Mode:     types.CombineAnd,
		Limit:    10,
	}
	withNull := gene("ENSG002", "b")
	withNull.XrefDescription = nil
	res := Consolidate([]types.Record{gene("ENSG001", "a"), withNull}, "homo_sapiens_core_106_38", 0)
	return crit, res
}

func TestWriteReadResultFile(t *testing.T) {
	crit, res := sampleResult()
	path := filepath.Join(t.TempDir(), "results.yaml")

	if err := WriteResultFile(path, crit, "homo_sapiens_core_106_38", res); err != nil {
		t.Fatalf("WriteResultFile: %v", err)
	}

	rf, err := ReadResultFile(path)
	if err != nil {
		t.Fatalf("ReadResultFile: %v", err)
	}
	if rf.Database != "homo_sapiens_core_106_38" {
		t.Errorf("Database = %q", rf.Database)
	}
	if rf.Query.Kind != "gene" || rf.Query.Mode != "and" || rf.Query.Limit != 10 {
		t.Errorf("Query = %+v", rf.Query)
	}
	if len(rf.Query.Keywords) != 2 {
		t.Errorf("len(Keywords) = %d, want 2", len(rf.Query.Keywords))
	}
	if rf.Summary.Found != 2 || rf.Summary.Returned != 2 {
		t.Errorf("Summary = %+v", rf.Summary)
	}
	if rf.Summary.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
	if len(rf.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(rf.Results))
	}
	if rf.Results[0].StableID != "ENSG001" {
		t.Errorf("Results[0].StableID = %q", rf.Results[0].StableID)
	}
	if rf.Results[1].XrefDescription != nil {
		t.Errorf("NULL column should survive the round trip, got %q", *rf.Results[1].XrefDescription)
	}
}

func TestReadResultFileMissing(t *testing.T) {
	_, err := ReadResultFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading result file") {
		t.Errorf("error = %v, want reading result file", err)
	}
}

func TestQueryParamsToCriteria(t *testing.T) {
	p := QueryParams{Kind: "transcript", Keywords: []string{"gaba"}, Mode: "or", Limit: 5}
	crit := p.ToCriteria()
	if crit.Kind != types.KindTranscript || crit.Mode != types.CombineOr || crit.Limit != 5 {
		t.Errorf("ToCriteria() = %+v", crit)
	}
}

func TestSaveByExtension(t *testing.T) {
	crit, res := sampleResult()
	dir := t.TempDir()

	tests := []struct {
		name   string
		file   string
		expect string
	}{
		{"csv", "out.csv", "ensembl_id,gene_name"},
		{"json", "out.json", `"ensembl_id": "ENSG001"`},
		{"yaml", "out.yaml", "database: homo_sapiens_core_106_38"},
		{"yml", "out.yml", "database: homo_sapiens_core_106_38"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := Save(path, crit, "homo_sapiens_core_106_38", res); err != nil {
				t.Fatalf("Save: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if !strings.Contains(string(data), tt.expect) {
				t.Errorf("%s should contain %q, got:\n%s", tt.file, tt.expect, data)
			}
		})
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	crit, res := sampleResult()
	err := Save(filepath.Join(t.TempDir(), "out.txt"), crit, "homo_sapiens_core_106_38", res)
	if err == nil || !strings.Contains(err.Error(), "unsupported save format") {
		t.Errorf("error = %v, want unsupported save format", err)
	}
}
