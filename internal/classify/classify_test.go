package classify

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Shreyasr1/pharma-papers/pkg/types"
)

// --- Per-string classification ---

func TestClassifyString(t *testing.T) {
	ks := Default()
	tests := []struct {
		name        string
		affiliation string
		want        signal
	}{
		{"university is academic", "Department of Biology, Stanford University, CA", signalAcademic},
		{"hospital is academic", "St. Mary's Hospital, London", signalAcademic},
		{"ministry is neutral", "Ministry of Health, Oslo, Norway", signalNeutral},
		{"foundation is neutral", "Gates Foundation, Seattle", signalNeutral},
		{"pharma keyword is company", "Acme Pharma, Basel", signalCompany},
		{"corporate suffix is company", "Zylotech Inc, San Diego", signalCompany},
		{"academic shadows pharma", "University-affiliated Pharma Inc.", signalAcademic},
		{"govt shadows pharma", "Agency for Pharma Oversight", signalNeutral},
		{"case insensitive", "ACME BIOTECH", signalCompany},
		{"no keywords", "12 Main Street, Springfield", signalNone},
		{"blank string", "   ", signalNone},
		{"empty string", "", signalNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyString(tt.affiliation, ks); got != tt.want {
				t.Errorf("classifyString(%q) = %v, want %v", tt.affiliation, got, tt.want)
			}
		})
	}
}

// --- Company-name extraction ---

func TestExtractCompanyName(t *testing.T) {
	suffixes := Default().CompanySuffixes
	tests := []struct {
		name        string
		affiliation string
		want        string
	}{
		{"suffix after comma", "Acme Therapeutics, Inc.", "Acme Therapeutics Inc."},
		{"suffix without comma", "Acme Pharma Inc., Cambridge, MA", "Acme Pharma Inc."},
		{"gmbh mid string", "Research Unit, Novagen GmbH, Berlin, Germany", "Novagen GmbH"},
		{"suffix priority order", "Helix LLC, Vantor Inc.", "Vantor Inc."},
		{"fallback first segment", "Zyndexa Biotech, 12 Harbor Way, Boston", "Zyndexa Biotech"},
		{"fallback whole string", "Plain Biotech Group", "Plain Biotech Group"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCompanyName(tt.affiliation, suffixes); got != tt.want {
				t.Errorf("ExtractCompanyName(%q) = %q, want %q", tt.affiliation, got, tt.want)
			}
		})
	}
}

func TestExtractCompanyNameTruncation(t *testing.T) {
	long := strings.Repeat("x", 60) // no comma, no suffix
	got := ExtractCompanyName(long, Default().CompanySuffixes)
	want := strings.Repeat("x", 47) + "..."
	if got != want {
		t.Errorf("truncated = %q (len %d), want %q", got, len(got), want)
	}
	if len(got) != 50 {
		t.Errorf("len = %d, want 50", len(got))
	}
}

func TestExtractCompanyNameTruncationMultibyte(t *testing.T) {
	// 60 two-byte runes: a byte-indexed cut at 47 would land mid-rune.
	long := strings.Repeat("é", 60)
	got := ExtractCompanyName(long, Default().CompanySuffixes)
	want := strings.Repeat("é", 47) + "..."
	if got != want {
		t.Errorf("truncated = %q, want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncated result is not valid UTF-8: %q", got)
	}
}

// --- Paper-level classification ---

func paper(id string, authors ...types.Author) types.PaperRecord {
	return types.PaperRecord{
		PubmedID:        id,
		Title:           "T",
		PublicationDate: "2020",
		Authors:         authors,
	}
}

func TestClassifyMixedAffiliationAuthor(t *testing.T) {
	p := paper("1", types.Author{
		Name: "Jane Smith",
		Affiliations: []string{
			"Dept. of Medicine, University Hospital",
			"Acme Pharma Inc.",
		},
	})

	out := Classify([]types.PaperRecord{p}, Default())
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1 (mixed author must be flagged)", len(out))
	}
	if !reflect.DeepEqual(out[0].NonAcademicAuthors, []string{"Jane Smith"}) {
		t.Errorf("NonAcademicAuthors = %v", out[0].NonAcademicAuthors)
	}
	// Only the company string contributes a name.
	if !reflect.DeepEqual(out[0].CompanyAffiliations, []string{"Acme Pharma Inc."}) {
		t.Errorf("CompanyAffiliations = %v", out[0].CompanyAffiliations)
	}
}

func TestClassifyDropsAllAcademicPapers(t *testing.T) {
	papers := []types.PaperRecord{
		paper("1", types.Author{Name: "A", Affiliations: []string{"Harvard University"}}),
		paper("2", types.Author{Name: "B", Affiliations: []string{"Vantor Therapeutics Inc."}}),
		paper("3", types.Author{Name: "C"}), // no affiliations at all
	}

	out := Classify(papers, Default())
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].PubmedID != "2" {
		t.Errorf("retained paper = %q, want 2", out[0].PubmedID)
	}
}

func TestClassifyNoAffiliationNeverFlagged(t *testing.T) {
	p := paper("1", types.Author{Name: "Ghost"})
	if out := Classify([]types.PaperRecord{p}, Default()); len(out) != 0 {
		t.Errorf("author without affiliations was flagged: %v", out)
	}
}

func TestClassifyAuthorOrderAndCompanyDedup(t *testing.T) {
	p := paper("1",
		types.Author{Name: "First Author", Affiliations: []string{"Acme Pharma Inc., Boston"}},
		types.Author{Name: "Second Author", Affiliations: []string{"MIT"}}, // no signal
		types.Author{Name: "Third Author", Affiliations: []string{"Acme Pharma Inc., Boston"}},
	)

	out := Classify([]types.PaperRecord{p}, Default())
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if !reflect.DeepEqual(out[0].NonAcademicAuthors, []string{"First Author", "Third Author"}) {
		t.Errorf("NonAcademicAuthors = %v (author order must hold)", out[0].NonAcademicAuthors)
	}
	if len(out[0].CompanyAffiliations) != 1 {
		t.Errorf("CompanyAffiliations = %v, want deduplicated single entry", out[0].CompanyAffiliations)
	}
}

func TestClassifyBlankAffiliationSkipped(t *testing.T) {
	p := paper("1", types.Author{Name: "A", Affiliations: []string{"   ", ""}})
	if out := Classify([]types.PaperRecord{p}, Default()); len(out) != 0 {
		t.Errorf("blank affiliations produced a signal: %v", out)
	}
}

func TestClassifyIsPure(t *testing.T) {
	papers := []types.PaperRecord{
		paper("1", types.Author{Name: "A", Affiliations: []string{"Acme Biotech Ltd., Oxford"}}),
		paper("2", types.Author{Name: "B", Affiliations: []string{"Yale University"}}),
	}

	first := Classify(papers, Default())
	second := Classify(papers, Default())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-classification differs:\n%v\n%v", first, second)
	}
}
