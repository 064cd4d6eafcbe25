// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify identifies papers with pharma/biotech company authors.
// Implements: prd003-classification (R1-R4);
//
//	docs/ARCHITECTURE § Classification.
package classify

import (
	"sort"
	"strings"

	"github.com/Shreyasr1/pharma-papers/pkg/types"
)

// signal is the per-affiliation-string classification outcome.
type signal int

const (
	signalNone signal = iota
	signalAcademic
	signalNeutral
	signalCompany
)

// Classify filters papers down to those with at least one author affiliated
// with a pharma/biotech company. It is a pure function of its inputs: the
// same papers and keywords always produce the same output, and the input
// slice is never modified.
func Classify(papers []types.PaperRecord, ks Keywords) []types.ClassifiedPaper {
	var out []types.ClassifiedPaper
	for _, p := range papers {
		var flagged []string
		companies := make(map[string]struct{})

		for _, author := range p.Authors {
			nonAcademic, names := checkAuthor(author, ks)
			if !nonAcademic {
				continue
			}
			flagged = append(flagged, author.Name)
			for _, n := range names {
				companies[n] = struct{}{}
			}
		}

		// Papers with no flagged author never appear downstream.
		if len(flagged) == 0 {
			continue
		}

		out = append(out, types.ClassifiedPaper{
			PubmedID:            p.PubmedID,
			Title:               p.Title,
			PublicationDate:     p.PublicationDate,
			NonAcademicAuthors:  flagged,
			CompanyAffiliations: sortedSet(companies),
			CorrespondingEmail:  p.CorrespondingEmail,
		})
	}
	return out
}

// checkAuthor evaluates every affiliation string of one author independently.
// The author is non-academic iff at least one string carries a company
// signal, even when other strings are academic (mixed authors stay flagged).
func checkAuthor(author types.Author, ks Keywords) (bool, []string) {
	var companies []string
	nonAcademic := false

	for _, affiliation := range author.Affiliations {
		if classifyString(affiliation, ks) != signalCompany {
			continue
		}
		nonAcademic = true
		if name := ExtractCompanyName(affiliation, ks.CompanySuffixes); name != "" {
			companies = append(companies, name)
		}
	}
	return nonAcademic, companies
}

// classifyString applies the ordered keyword decision to one affiliation
// string: academic wins over govt/non-profit wins over pharma/biotech, and
// matching stops at the first category that hits. Blank strings carry no
// signal at all.
func classifyString(affiliation string, ks Keywords) signal {
	lower := strings.ToLower(affiliation)
	if strings.TrimSpace(lower) == "" {
		return signalNone
	}

	if containsAny(lower, ks.Academic) {
		return signalAcademic
	}
	if containsAny(lower, ks.GovtNonprofit) {
		return signalNeutral
	}
	if containsAny(lower, ks.PharmaBiotech) {
		return signalCompany
	}
	return signalNone
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ExtractCompanyName pulls a clean company name out of an affiliation string,
// original casing preserved. The first suffix token found as a substring wins:
// the text before it is split on commas and the last non-empty segment becomes
// the name, rejoined with the suffix. When no suffix matches, the text before
// the first comma stands in, truncated past 50 characters.
func ExtractCompanyName(affiliation string, suffixes []string) string {
	for _, suffix := range suffixes {
		idx := strings.Index(affiliation, suffix)
		if idx < 0 {
			continue
		}

		prefix := affiliation[:idx]
		segments := strings.Split(prefix, ",")
		for i := len(segments) - 1; i >= 0; i-- {
			if seg := strings.TrimSpace(segments[i]); seg != "" {
				return seg + " " + suffix
			}
		}
		break
	}

	first := strings.TrimSpace(strings.Split(affiliation, ",")[0])
	// Truncation counts characters, not bytes, so a multi-byte rune
	// never gets cut in half.
	if runes := []rune(first); len(runes) > 50 {
		first = string(runes[:47]) + "..."
	}
	return first
}

// sortedSet flattens a string set. The set is semantically unordered; sorting
// just keeps output stable for rendering and tests.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
