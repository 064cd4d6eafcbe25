// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed provides a client for the NCBI PubMed E-utilities API and
// the XML document structures it returns.
//
// The E-utilities API documentation is available at:
// https://www.ncbi.nlm.nih.gov/books/NBK25499/
//
// Implements: prd001-retrieval (R1-R5); docs/ARCHITECTURE § Retrieval.
package pubmed

import "encoding/xml"

// ArticleSet is the root of an efetch.fcgi response: one raw batch document
// holding the article entries for up to a batch worth of PMIDs.
type ArticleSet struct {
	XMLName  xml.Name  `xml:"PubmedArticleSet"`
	Articles []Article `xml:"PubmedArticle"`
}

// Article is a single article entry in the batch document.
type Article struct {
	MedlineCitation MedlineCitation `xml:"MedlineCitation"`
	PubmedData      PubmedData      `xml:"PubmedData"`
}

// MedlineCitation contains the core bibliographic information.
type MedlineCitation struct {
	PMID         PMID          `xml:"PMID"`
	Article      ArticleInfo   `xml:"Article"`
	FootnoteList *FootnoteList `xml:"FootnoteList,omitempty"`
}

// PMID is the PubMed identifier with optional version attribute.
type PMID struct {
	Version int    `xml:"Version,attr,omitempty"`
	Value   string `xml:",chardata"`
}

// ArticleInfo contains the article metadata.
type ArticleInfo struct {
	Journal      Journal       `xml:"Journal"`
	ArticleTitle string        `xml:"ArticleTitle"`
	ELocationID  []ELocationID `xml:"ELocationID,omitempty"`
	AuthorList   *AuthorList   `xml:"AuthorList,omitempty"`
}

// Journal carries the journal issue, which holds the publication date.
type Journal struct {
	Title        string       `xml:"Title,omitempty"`
	JournalIssue JournalIssue `xml:"JournalIssue"`
}

// JournalIssue contains the volume, issue, and publication date.
type JournalIssue struct {
	Volume  string  `xml:"Volume,omitempty"`
	Issue   string  `xml:"Issue,omitempty"`
	PubDate PubDate `xml:"PubDate"`
}

// PubDate is the publication date at whatever granularity the record has.
// Month may be numeric or a three-letter name ("Jan".."Dec").
type PubDate struct {
	Year  string `xml:"Year,omitempty"`
	Month string `xml:"Month,omitempty"`
	Day   string `xml:"Day,omitempty"`
}

// ELocationID is an electronic location identifier (DOI, PII, or email).
type ELocationID struct {
	EIdType string `xml:"EIdType,attr"`
	Value   string `xml:",chardata"`
}

// AuthorList contains the list of authors.
type AuthorList struct {
	Authors []Author `xml:"Author"`
}

// Author is a single author. Affiliation text appears in two shapes across
// record vintages: repeatable AffiliationInfo wrappers and/or a single direct
// Affiliation element.
type Author struct {
	LastName        string            `xml:"LastName,omitempty"`
	ForeName        string            `xml:"ForeName,omitempty"`
	Initials        string            `xml:"Initials,omitempty"`
	AffiliationInfo []AffiliationInfo `xml:"AffiliationInfo,omitempty"`
	Affiliation     string            `xml:"Affiliation,omitempty"`
}

// AffiliationInfo wraps one affiliation string (newer record format).
type AffiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}

// FootnoteList carries free-text footnotes, sometimes holding correspondence
// details.
type FootnoteList struct {
	Footnotes []string `xml:"Footnote"`
}

// PubmedData contains additional PubMed-specific data.
type PubmedData struct {
	ArticleIdList ArticleIdList `xml:"ArticleIdList"`
}

// ArticleIdList contains the article's external identifiers.
type ArticleIdList struct {
	ArticleIds []ArticleId `xml:"ArticleId"`
}

// ArticleId is one identifier (pubmed, doi, pmc, or occasionally email).
type ArticleId struct {
	IdType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}
