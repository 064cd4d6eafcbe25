// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Keywords holds the keyword sets and suffix tokens driving classification.
// Loaded once at startup and never mutated afterwards; matching is substring
// on the lowercased affiliation text, so entries must be lowercase. The
// company suffix list is ordered: earlier tokens win during name extraction
// and compare against the original-case string.
type Keywords struct {
	Academic        []string `yaml:"academic"`
	GovtNonprofit   []string `yaml:"govt_nonprofit"`
	PharmaBiotech   []string `yaml:"pharma_biotech"`
	CompanySuffixes []string `yaml:"company_suffixes"`
}

// Default returns the built-in keyword configuration.
func Default() Keywords {
	return Keywords{
		Academic: []string{
			"university", "college", "institute", "school", "academy",
			"faculty", "department", "laboratory", "hospital", "clinic",
			"medical center", "health system", "polytechnic", "academia",
		},
		GovtNonprofit: []string{
			"ministry", "department of", "national institute", "foundation",
			"association", "society", "center for", "organization", "trust",
			"council", "agency", "authority", "public health", "government",
			"federal", "state", "county", "committee", "administration",
		},
		PharmaBiotech: []string{
			"pharma", "biotech", "therapeutics", "bioscience",
			"laboratories", "labs", "biotechnology", "pharmaceutical",
			"biopharmaceutical", "genetics", "genomics", "life sciences",
			"biologics", "medicines", "drugs", " ltd", " llc", " inc", " corp",
			"diagnostics", " gmbh", " co", "biopharma",
		},
		CompanySuffixes: []string{
			"Inc.", "LLC", "Ltd.", "Limited", "Corp.", "Corporation",
			"GmbH", "Co.", "Company", "S.A.", "AG", "B.V.",
		},
	}
}

// LoadKeywords reads a YAML keyword file. Sections left empty in the file
// fall back to the built-in configuration, so a file may override just one
// keyword set.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keywords{}, fmt.Errorf("reading keywords file: %w", err)
	}

	var ks Keywords
	if err := yaml.Unmarshal(data, &ks); err != nil {
		return Keywords{}, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}

	def := Default()
	if len(ks.Academic) == 0 {
		ks.Academic = def.Academic
	}
	if len(ks.GovtNonprofit) == 0 {
		ks.GovtNonprofit = def.GovtNonprofit
	}
	if len(ks.PharmaBiotech) == 0 {
		ks.PharmaBiotech = def.PharmaBiotech
	}
	if len(ks.CompanySuffixes) == 0 {
		ks.CompanySuffixes = def.CompanySuffixes
	}
	return ks, nil
}
