package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run statuses recorded in the history.
const (
	StatusOK         = "ok"
	StatusNoSections = "no-sections"
	StatusFailed     = "failed"
)

// Run is one recorded extraction run.
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	Document     string
	StartPage    int
	EndPage      int
	SectionCount int
	RowCount     int
	WarningCount int
	Status       string
	OutputDir    string
}

// RunSection is one section extracted by a run.
type RunSection struct {
	Position int
	Title    string
	Filename string
	RowCount int
}

// InsertRun records a run and its sections in one transaction.
func (db *DB) InsertRun(run Run, sections []RunSection) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO runs (document, start_page, end_page, section_count, row_count, warning_count, status, output_dir)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Document, run.StartPage, run.EndPage, run.SectionCount, run.RowCount, run.WarningCount, run.Status, run.OutputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	for _, s := range sections {
		_, err := tx.Exec(`
			INSERT INTO run_sections (run_id, position, title, filename, row_count)
			VALUES (?, ?, ?, ?, ?)`,
			runID, s.Position, s.Title, s.Filename, s.RowCount)
		if err != nil {
			return 0, fmt.Errorf("failed to insert section %q: %w", s.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT run_id, created_at, document, start_page, end_page,
		       section_count, row_count, warning_count, status, COALESCE(output_dir, '')
		FROM runs ORDER BY run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.Document, &r.StartPage, &r.EndPage,
			&r.SectionCount, &r.RowCount, &r.WarningCount, &r.Status, &r.OutputDir); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns one run by ID.
func (db *DB) GetRun(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, created_at, document, start_page, end_page,
		       section_count, row_count, warning_count, status, COALESCE(output_dir, '')
		FROM runs WHERE run_id = ?`, runID).
		Scan(&r.RunID, &r.CreatedAt, &r.Document, &r.StartPage, &r.EndPage,
			&r.SectionCount, &r.RowCount, &r.WarningCount, &r.Status, &r.OutputDir)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// LatestRunID returns the ID of the newest run.
func (db *DB) LatestRunID() (int64, error) {
	var id int64
	err := db.QueryRow(`SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return id, nil
}

// GetRunSections returns a run's sections in document order.
func (db *DB) GetRunSections(runID int64) ([]RunSection, error) {
	rows, err := db.Query(`
		SELECT position, title, COALESCE(filename, ''), row_count
		FROM run_sections WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run sections: %w", err)
	}
	defer rows.Close()

	var sections []RunSection
	for rows.Next() {
		var s RunSection
		if err := rows.Scan(&s.Position, &s.Title, &s.Filename, &s.RowCount); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}
