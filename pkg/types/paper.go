// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharma-papers pipeline.
// Implements: prd001-retrieval (PaperRecord, Author);
//
//	prd003-classification (ClassifiedPaper);
//	docs/ARCHITECTURE § Data Structures.
package types

// Sentinel values used when a bibliographic field cannot be determined.
const (
	UnknownTitle = "Unknown Title"
	UnknownDate  = "Unknown Date"
)

// Author is one author of a paper together with the raw affiliation text
// attached to them in the source record.
type Author struct {
	// Name is the display name, forename followed by surname. Surname-only
	// when the record carries no forename.
	Name string `json:"name" yaml:"name"`

	// Affiliations lists the raw affiliation strings in source order. A single
	// author may carry several, possibly overlapping in category. An author
	// with no affiliation text is never flagged non-academic.
	Affiliations []string `json:"affiliations" yaml:"affiliations"`
}

// PaperRecord is the normalized extraction output for one PubMed article.
// Created once per article element and immutable thereafter.
type PaperRecord struct {
	// PubmedID is the stable PMID. Articles without one are dropped during
	// extraction, so a PaperRecord always has it.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or UnknownTitle when the record has none.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is "YYYY", "YYYY-MM" or "YYYY-MM-DD" depending on the
	// granularity present in the record, or UnknownDate when the year is missing.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists the article authors in document order.
	Authors []Author `json:"authors" yaml:"authors"`

	// CorrespondingEmail is the best-effort corresponding author email,
	// possibly empty.
	CorrespondingEmail string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}

// ClassifiedPaper is one row of the final report: a paper with at least one
// author affiliated with a pharma/biotech company.
type ClassifiedPaper struct {
	// PubmedID, Title and PublicationDate are carried over unchanged from
	// the PaperRecord.
	PubmedID        string `json:"pubmed_id" yaml:"pubmed_id"`
	Title           string `json:"title" yaml:"title"`
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists the display names of flagged authors in author
	// order. Duplicate names are kept as-is.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations is the deduplicated set of extracted company names
	// across all flagged authors. Order is not meaningful.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is carried over from the PaperRecord.
	CorrespondingEmail string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}
