// Package report generates the per-run summary manifest. It gives a reader
// (or a follow-up script) an overview of what a run extracted without
// opening the CSVs.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/peterhpo/Parse-Pro-Systemer-PDF/models"
)

// Build assembles a Summary from a parse result. stems must be parallel to
// sections (the sanitized file stems); outputs are the committed file paths.
func Build(document string, startPage, endPage int, sections []*models.Section, stems []string, warnings []models.RowAlignmentWarning, outputs []string) Summary {
	s := Summary{
		GeneratedAt:  time.Now().Format(time.RFC3339),
		Document:     document,
		StartPage:    startPage,
		EndPage:      endPage,
		SectionCount: len(sections),
		Outputs:      outputs,
	}

	for i, sec := range sections {
		rows := len(sec.Rows())
		s.RowCount += rows
		summary := SectionSummary{
			Title:      sec.Title,
			RowCount:   rows,
			StartDate:  sec.StartDate,
			ReturnDate: sec.ReturnDate,
			UserDays:   sec.UserDays,
			Totals:     sec.Totals,
		}
		if i < len(stems) && rows > 0 {
			summary.File = stems[i] + "_data.csv"
		}
		s.Sections = append(s.Sections, summary)
	}

	for _, w := range warnings {
		s.Warnings = append(s.Warnings, w.String())
	}
	return s
}

// Write marshals the summary as indented JSON to path.
func Write(path string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &models.FilesystemWriteError{Path: path, Err: err}
	}
	return nil
}
