// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders classified papers as CSV, spreadsheet, or console
// output. Implements: prd004-reporting (R1-R3);
//
//	docs/ARCHITECTURE § Reporting.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shreyasr1/pharma-papers/pkg/types"
)

// columns is the fixed report column order. Header labels never change and
// missing values render as empty strings, never omitted columns.
var columns = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// row flattens one classified paper into the fixed column order. Multi-valued
// fields are comma-joined.
func row(p types.ClassifiedPaper) []string {
	return []string{
		p.PubmedID,
		p.Title,
		p.PublicationDate,
		strings.Join(p.NonAcademicAuthors, ", "),
		strings.Join(p.CompanyAffiliations, ", "),
		p.CorrespondingEmail,
	}
}

// WriteCSV writes the report as CSV to w, header first.
func WriteCSV(w io.Writer, papers []types.ClassifiedPaper) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range papers {
		if err := cw.Write(row(p)); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", p.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderCSV returns the report as a CSV string. An empty report renders to
// the empty string rather than a lone header.
func RenderCSV(papers []types.ClassifiedPaper) (string, error) {
	if len(papers) == 0 {
		return "", nil
	}
	var b strings.Builder
	if err := WriteCSV(&b, papers); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Save writes the report to path, choosing the format by extension: ".xlsx"
// produces a spreadsheet, anything else CSV. The file is written to a
// temporary sibling and renamed into place, so a failed write leaves no
// partial output behind.
func Save(path string, papers []types.ClassifiedPaper) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return saveXLSX(path, papers)
	}
	return saveCSV(path, papers)
}

func saveCSV(path string, papers []types.ClassifiedPaper) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	writeErr := WriteCSV(tmp, papers)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// PrintResults writes a labeled human-readable block per paper to w, with a
// summary count line first. An empty report prints a single line only.
func PrintResults(w io.Writer, papers []types.ClassifiedPaper) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No matching papers found.")
		return
	}

	fmt.Fprintf(w, "\nFound %d papers with pharma/biotech company affiliations:\n\n", len(papers))

	for i, p := range papers {
		fmt.Fprintf(w, "--- Paper %d ---\n", i+1)
		fmt.Fprintf(w, "PubMed ID: %s\n", orNA(p.PubmedID))
		fmt.Fprintf(w, "Title: %s\n", orNA(p.Title))
		fmt.Fprintf(w, "Publication Date: %s\n", orNA(p.PublicationDate))
		fmt.Fprintf(w, "Non-academic Author(s): %s\n", orNA(strings.Join(p.NonAcademicAuthors, ", ")))
		fmt.Fprintf(w, "Company Affiliation(s): %s\n", orNA(strings.Join(p.CompanyAffiliations, ", ")))
		fmt.Fprintf(w, "Corresponding Author Email: %s\n", orNA(p.CorrespondingEmail))
		fmt.Fprintln(w)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
