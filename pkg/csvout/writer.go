// Package csvout writes the extracted record sets as CSV files. All files of
// a run are staged in a temporary directory and renamed into place at the
// end, so a failed run never leaves a half-written table behind.
package csvout

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/peterhpo/Parse-Pro-Systemer-PDF/models"
)

// Excel does not assume UTF-8 without a BOM, and the equipment names are
// full of æ/ø/å.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// File is one CSV record set: a file name, a header row, and data rows.
type File struct {
	Name    string
	Columns []string
	Rows    []models.Row
}

// WriteAll writes every file into outDir, or none of them. On success it
// returns the final paths in input order. On failure during the commit phase
// the returned slice names the files that were already committed, so the
// caller can report them.
func WriteAll(outDir string, files []File) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return nil, &models.FilesystemWriteError{Path: outDir, Err: err}
	}

	staging, err := os.MkdirTemp(outDir, ".staging-")
	if err != nil {
		return nil, &models.FilesystemWriteError{Path: outDir, Err: err}
	}
	defer os.RemoveAll(staging)

	for _, f := range files {
		if err := writeOne(filepath.Join(staging, f.Name), f); err != nil {
			return nil, err
		}
	}

	committed := make([]string, 0, len(files))
	for _, f := range files {
		final := filepath.Join(outDir, f.Name)
		if err := os.Rename(filepath.Join(staging, f.Name), final); err != nil {
			return committed, &models.FilesystemWriteError{Path: final, Err: err}
		}
		committed = append(committed, final)
	}
	return committed, nil
}

func writeOne(path string, f File) error {
	out, err := os.Create(path)
	if err != nil {
		return &models.FilesystemWriteError{Path: path, Err: err}
	}

	if _, err := out.Write(utf8BOM); err != nil {
		out.Close()
		return &models.FilesystemWriteError{Path: path, Err: err}
	}

	w := csv.NewWriter(out)
	if err := w.Write(f.Columns); err != nil {
		out.Close()
		return &models.FilesystemWriteError{Path: path, Err: err}
	}
	for _, row := range f.Rows {
		if err := w.Write(row); err != nil {
			out.Close()
			return &models.FilesystemWriteError{Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		out.Close()
		return &models.FilesystemWriteError{Path: path, Err: err}
	}
	if err := out.Close(); err != nil {
		return &models.FilesystemWriteError{Path: path, Err: err}
	}
	return nil
}
