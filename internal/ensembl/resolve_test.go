package ensembl

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeSpecies(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"human", "homo_sapiens"},
		{"Human", "homo_sapiens"},
		{"mouse", "mus_musculus"},
		{"Homo_Sapiens", "homo_sapiens"},
		{"  danio_rerio  ", "danio_rerio"},
		{"homo_sapiens_core_106_38/", "homo_sapiens_core_106_38"},
		{"homo_sapiens_core_106_38/tables", "homo_sapiens_core_106_38"},
		{"arabidopsis_thaliana", "arabidopsis_thaliana"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeSpecies(tt.input); got != tt.want {
				t.Errorf("NormalizeSpecies(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSelectDatabaseSingleMatch(t *testing.T) {
	candidates := []string{
		"danio_rerio_core_106_11",
		"homo_sapiens_core_106_38",
		"gallus_gallus_core_106_6",
	}

	db, err := selectDatabase("homo_sapiens", candidates, 106, "http://example.org/pub/release-106/mysql/")
	if err != nil {
		t.Fatalf("selectDatabase: %v", err)
	}
	if db.Name != "homo_sapiens_core_106_38" {
		t.Errorf("Name = %q, want %q", db.Name, "homo_sapiens_core_106_38")
	}
	if db.Release != 106 {
		t.Errorf("Release = %d, want 106", db.Release)
	}
}

func TestSelectDatabaseExactIdentifier(t *testing.T) {
	// A full database identifier matches only itself.
	candidates := []string{
		"mus_musculus_core_106_39",
		"mus_musculus_dba2j_core_106_1",
	}

	db, err := selectDatabase("mus_musculus_dba2j_core_106_1", candidates, 106, "")
	if err != nil {
		t.Fatalf("selectDatabase: %v", err)
	}
	if db.Name != "mus_musculus_dba2j_core_106_1" {
		t.Errorf("Name = %q, want the exact identifier", db.Name)
	}
}

func TestSelectDatabaseMouseMultiMatch(t *testing.T) {
	candidates := []string{
		"mus_musculus_129s1svimj_core_106_1",
		"mus_musculus_core_106_39",
		"mus_musculus_dba2j_core_106_1",
		"mus_musculus_nzohlltj_core_106_1",
	}

	db, err := selectDatabase("mus_musculus", candidates, 106, "")
	if err != nil {
		t.Fatalf("selectDatabase: %v", err)
	}
	// Multi-match on mouse always constructs the canonical name rather
	// than picking from the scanned list.
	if db.Name != "mus_musculus_core_106_39" {
		t.Errorf("Name = %q, want canonical %q", db.Name, "mus_musculus_core_106_39")
	}
}

func TestSelectDatabaseMouseCanonicalTracksRelease(t *testing.T) {
	candidates := []string{
		"mus_musculus_core_105_39",
		"mus_musculus_dba2j_core_105_1",
	}

	db, err := selectDatabase("mus_musculus", candidates, 105, "")
	if err != nil {
		t.Fatalf("selectDatabase: %v", err)
	}
	if db.Name != "mus_musculus_core_105_39" {
		t.Errorf("Name = %q, want release 105 canonical", db.Name)
	}
}

func TestSelectDatabaseAmbiguous(t *testing.T) {
	candidates := []string{
		"ovis_aries_core_106_31",
		"ovis_aries_rambouillet_core_106_1",
	}

	_, err := selectDatabase("ovis_aries", candidates, 106, "http://example.org/pub/release-106/mysql/")
	if !errors.Is(err, ErrSpeciesAmbiguous) {
		t.Fatalf("err = %v, want ErrSpeciesAmbiguous", err)
	}
	if !strings.Contains(err.Error(), "106") {
		t.Errorf("error should name the release: %v", err)
	}
	if !strings.Contains(err.Error(), "http://example.org/pub/release-106/mysql/") {
		t.Errorf("error should point at the listing: %v", err)
	}
}

func TestSelectDatabaseNotFound(t *testing.T) {
	candidates := []string{
		"homo_sapiens_core_106_38",
	}

	_, err := selectDatabase("tyrannosaurus_rex", candidates, 106, "http://example.org/pub/release-106/mysql/")
	if !errors.Is(err, ErrSpeciesNotFound) {
		t.Fatalf("err = %v, want ErrSpeciesNotFound", err)
	}
	if !strings.Contains(err.Error(), "tyrannosaurus_rex") {
		t.Errorf("error should name the species: %v", err)
	}
	if !strings.Contains(err.Error(), "106") {
		t.Errorf("error should name the release: %v", err)
	}
}

func TestMouseCoreDatabase(t *testing.T) {
	if got := mouseCoreDatabase(106); got != "mus_musculus_core_106_39" {
		t.Errorf("mouseCoreDatabase(106) = %q", got)
	}
	if got := mouseCoreDatabase(99); got != "mus_musculus_core_99_39" {
		t.Errorf("mouseCoreDatabase(99) = %q", got)
	}
}
