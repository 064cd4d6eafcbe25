// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract parses raw PubMed batch documents into normalized paper
// records. Implements: prd002-extraction (R1-R4);
//
//	docs/ARCHITECTURE § Extraction.
package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Shreyasr1/pharma-papers/internal/pubmed"
	"github.com/Shreyasr1/pharma-papers/pkg/types"
)

// Diagnostic records one article (or batch) that could not be extracted.
// Failures never abort the batch: siblings of a bad article still extract,
// and the caller decides how to report the diagnostics.
type Diagnostic struct {
	// PMID identifies the affected article when it could be determined;
	// empty for batch-level failures.
	PMID string

	// Err wraps types.ErrStructuralParse or types.ErrRecordExtraction.
	Err error
}

// emailRe matches the first email-looking token in free text.
var emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

// monthNames normalizes three-letter month abbreviations to two-digit
// numeric form. Already-numeric months pass through unchanged.
var monthNames = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// ExtractBatch parses one raw efetch document into paper records. Articles
// are decoded one element at a time so a malformed article is skipped while
// its siblings proceed; a document that is not well-formed XML yields an
// empty record list and a single batch-level diagnostic. Batch boundaries
// carry no semantic meaning: callers concatenate results across batches.
func ExtractBatch(raw []byte) ([]types.PaperRecord, []Diagnostic) {
	var (
		records []types.PaperRecord
		diags   []Diagnostic
	)

	dec := xml.NewDecoder(bytes.NewReader(raw))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// The document itself is not well-formed. Partial results from
			// a broken document are untrustworthy, so the batch yields nothing.
			return nil, []Diagnostic{{
				Err: fmt.Errorf("%w: %v", types.ErrStructuralParse, err),
			}}
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "PubmedArticle" {
			continue
		}

		var art pubmed.Article
		if err := dec.DecodeElement(&art, &se); err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil, []Diagnostic{{
					Err: fmt.Errorf("%w: %v", types.ErrStructuralParse, err),
				}}
			}
			diags = append(diags, Diagnostic{
				Err: fmt.Errorf("%w: %v", types.ErrRecordExtraction, err),
			})
			continue
		}

		rec, err := articleToRecord(art)
		if err != nil {
			diags = append(diags, Diagnostic{
				PMID: strings.TrimSpace(art.MedlineCitation.PMID.Value),
				Err:  err,
			})
			continue
		}
		records = append(records, rec)
	}
	return records, diags
}

// errMissingPMID marks articles skipped for lacking an identifier. A filtered
// skip, not a failure of the run.
var errMissingPMID = fmt.Errorf("%w: article has no PMID", types.ErrRecordExtraction)

// articleToRecord applies the field extraction rules to one article element.
func articleToRecord(art pubmed.Article) (types.PaperRecord, error) {
	pmid := strings.TrimSpace(art.MedlineCitation.PMID.Value)
	if pmid == "" {
		return types.PaperRecord{}, errMissingPMID
	}

	info := art.MedlineCitation.Article

	title := strings.TrimSpace(info.ArticleTitle)
	if title == "" {
		title = types.UnknownTitle
	}

	return types.PaperRecord{
		PubmedID:           pmid,
		Title:              title,
		PublicationDate:    publicationDate(info.Journal.JournalIssue.PubDate),
		Authors:            extractAuthors(info.AuthorList),
		CorrespondingEmail: correspondingEmail(art),
	}, nil
}

// publicationDate composes "YYYY", "YYYY-MM" or "YYYY-MM-DD" from whatever
// granularity the record carries. A missing year means the date is unknown.
func publicationDate(pd pubmed.PubDate) string {
	year := strings.TrimSpace(pd.Year)
	if year == "" {
		return types.UnknownDate
	}

	month := strings.TrimSpace(pd.Month)
	if m, ok := monthNames[month]; ok {
		month = m
	}
	day := strings.TrimSpace(pd.Day)

	switch {
	case month != "" && day != "":
		return year + "-" + month + "-" + day
	case month != "":
		return year + "-" + month
	default:
		return year
	}
}

// extractAuthors walks the author list in document order. Authors without a
// surname are dropped. Affiliation text is collected from the repeatable
// AffiliationInfo wrappers first, then the direct Affiliation element, so an
// author may end up with duplicate strings when a record uses both shapes.
func extractAuthors(list *pubmed.AuthorList) []types.Author {
	if list == nil {
		return nil
	}

	var authors []types.Author
	for _, a := range list.Authors {
		if strings.TrimSpace(a.LastName) == "" {
			continue
		}

		name := strings.TrimSpace(a.ForeName + " " + a.LastName)

		var affiliations []string
		for _, ai := range a.AffiliationInfo {
			if ai.Affiliation != "" {
				affiliations = append(affiliations, ai.Affiliation)
			}
		}
		if a.Affiliation != "" {
			affiliations = append(affiliations, a.Affiliation)
		}

		authors = append(authors, types.Author{Name: name, Affiliations: affiliations})
	}
	return authors
}

// correspondingEmail resolves the corresponding author email. Locations are
// tried in fixed priority order; the first non-empty match wins and a record
// with no email anywhere resolves to "".
func correspondingEmail(art pubmed.Article) string {
	// 1. Explicit article identifier tagged as an email.
	for _, id := range art.PubmedData.ArticleIdList.ArticleIds {
		if id.IdType == "email" && strings.TrimSpace(id.Value) != "" {
			return strings.TrimSpace(id.Value)
		}
	}

	// 2. First email-looking token across all affiliation strings, in
	// document order.
	if list := art.MedlineCitation.Article.AuthorList; list != nil {
		for _, a := range list.Authors {
			for _, ai := range a.AffiliationInfo {
				if m := emailRe.FindString(ai.Affiliation); m != "" {
					return m
				}
			}
			if m := emailRe.FindString(a.Affiliation); m != "" {
				return m
			}
		}
	}

	// 3. Electronic location identifier tagged as an email.
	for _, eloc := range art.MedlineCitation.Article.ELocationID {
		if eloc.EIdType == "email" && strings.TrimSpace(eloc.Value) != "" {
			return strings.TrimSpace(eloc.Value)
		}
	}

	// 4. Footnotes mentioning correspondence details.
	if fl := art.MedlineCitation.FootnoteList; fl != nil {
		for _, fn := range fl.Footnotes {
			lower := strings.ToLower(fn)
			if !strings.Contains(lower, "correspondence") && !strings.Contains(lower, "email") {
				continue
			}
			if m := emailRe.FindString(fn); m != "" {
				return m
			}
		}
	}

	return ""
}
