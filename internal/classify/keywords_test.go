package classify

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadKeywordsPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "pharma_biotech:\n  - vaccines\n  - pharma\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ks, err := LoadKeywords(path)
	if err != nil {
		t.Fatalf("LoadKeywords: %v", err)
	}

	if len(ks.PharmaBiotech) != 2 || ks.PharmaBiotech[0] != "vaccines" {
		t.Errorf("PharmaBiotech = %v, want override", ks.PharmaBiotech)
	}
	// Untouched sections fall back to the defaults.
	def := Default()
	if len(ks.Academic) != len(def.Academic) {
		t.Errorf("Academic = %v, want defaults", ks.Academic)
	}
	if len(ks.CompanySuffixes) != len(def.CompanySuffixes) {
		t.Errorf("CompanySuffixes = %v, want defaults", ks.CompanySuffixes)
	}
}

func TestLoadKeywordsMissingFile(t *testing.T) {
	if _, err := LoadKeywords(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadKeywordsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("academic: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKeywords(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
