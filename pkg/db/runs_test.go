package db

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenAt(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenAt() error = %v", err)
	}
	return db
}

func testRun() Run {
	return Run{
		Document:     "ordre.pdf",
		StartPage:    1,
		EndPage:      9,
		SectionCount: 2,
		RowCount:     6,
		WarningCount: 1,
		Status:       StatusOK,
		OutputDir:    "out",
	}
}

func TestInsertRun_AndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sections := []RunSection{
		{Position: 0, Title: "Scene A", Filename: "Scene_A_data.csv", RowCount: 4},
		{Position: 1, Title: "Scene B", Filename: "Scene_B_data.csv", RowCount: 2},
	}

	runID, err := db.InsertRun(testRun(), sections)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("InsertRun() returned 0 run ID")
	}

	run, err := db.GetRun(runID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if run.Document != "ordre.pdf" {
		t.Errorf("run.Document = %q, want %q", run.Document, "ordre.pdf")
	}
	if run.SectionCount != 2 || run.RowCount != 6 {
		t.Errorf("run counts = %d/%d, want 2/6", run.SectionCount, run.RowCount)
	}
	if run.Status != StatusOK {
		t.Errorf("run.Status = %q, want %q", run.Status, StatusOK)
	}

	got, err := db.GetRunSections(runID)
	if err != nil {
		t.Fatalf("GetRunSections() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetRunSections() returned %d sections, want 2", len(got))
	}
	if got[0].Title != "Scene A" || got[1].Title != "Scene B" {
		t.Errorf("section order = %q, %q, want document order", got[0].Title, got[1].Title)
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := testRun()
	second := testRun()
	second.Document = "ordre-v2.pdf"

	if _, err := db.InsertRun(first, nil); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if _, err := db.InsertRun(second, nil); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(runs))
	}
	if runs[0].Document != "ordre-v2.pdf" {
		t.Errorf("first listed run = %q, want the newest", runs[0].Document)
	}
}

func TestLatestRunID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.LatestRunID(); err == nil {
		t.Error("LatestRunID() on empty history returned nil error")
	}

	id1, _ := db.InsertRun(testRun(), nil)
	id2, _ := db.InsertRun(testRun(), nil)
	if id2 <= id1 {
		t.Fatalf("run IDs not increasing: %d then %d", id1, id2)
	}

	latest, err := db.LatestRunID()
	if err != nil {
		t.Fatalf("LatestRunID() error = %v", err)
	}
	if latest != id2 {
		t.Errorf("LatestRunID() = %d, want %d", latest, id2)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRun(42); err == nil {
		t.Error("GetRun(42) on empty history returned nil error")
	}
}
