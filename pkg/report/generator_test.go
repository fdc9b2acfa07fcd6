package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/peterhpo/Parse-Pro-Systemer-PDF/models"
)

func TestBuild(t *testing.T) {
	sections := []*models.Section{
		{
			Title:      "Scene A",
			StartDate:  "12.03.2024",
			ReturnDate: "15.03.2024",
			Totals:     map[string]string{"Total utstyr": "12 400,00"},
			Tables: []*models.Table{
				{Columns: []string{"Pos"}, Rows: []models.Row{{"1"}, {"2"}}},
			},
		},
		{Title: "Tomt telt"},
	}
	warnings := []models.RowAlignmentWarning{
		{Section: "Scene A", Page: 2, Line: "3 4", Fields: 2, Expected: 3},
	}

	s := Build("ordre.pdf", 1, 9, sections, []string{"Scene_A", "Tomt_telt"}, warnings, []string{"out/Scene_A_data.csv"})

	if s.SectionCount != 2 {
		t.Errorf("SectionCount = %d, want 2", s.SectionCount)
	}
	if s.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", s.RowCount)
	}
	if s.Sections[0].File != "Scene_A_data.csv" {
		t.Errorf("section file = %q, want %q", s.Sections[0].File, "Scene_A_data.csv")
	}
	if s.Sections[1].File != "" {
		t.Errorf("empty section got file %q, want none", s.Sections[1].File)
	}
	if len(s.Warnings) != 1 {
		t.Fatalf("Warnings = %d, want 1", len(s.Warnings))
	}
}

func TestWrite_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction_summary.json")
	if err := Write(path, Summary{Document: "ordre.pdf", StartPage: 1, EndPage: 9}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}
	if got.Document != "ordre.pdf" {
		t.Errorf("Document = %q, want %q", got.Document, "ordre.pdf")
	}
}
