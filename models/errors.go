package models

import "fmt"

// DocumentOpenError reports a document that is missing, unreadable, or not a
// valid PDF. Fatal for the run.
type DocumentOpenError struct {
	Path string
	Err  error
}

func (e *DocumentOpenError) Error() string {
	return fmt.Sprintf("cannot open document %s: %v", e.Path, e.Err)
}

func (e *DocumentOpenError) Unwrap() error { return e.Err }

// PageRangeError reports a resolved page range that is empty or out of
// bounds. Fatal for the run.
type PageRangeError struct {
	Start     int
	End       int
	PageCount int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("no pages to process: resolved range %d-%d of a %d-page document", e.Start, e.End, e.PageCount)
}

// FilesystemWriteError reports an output file that could not be created or
// written. Fatal; the run reports which outputs were committed before it.
type FilesystemWriteError struct {
	Path string
	Err  error
}

func (e *FilesystemWriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *FilesystemWriteError) Unwrap() error { return e.Err }

// RowAlignmentWarning records a line that matched as a table row but whose
// field count disagreed with the section's column schema. The row is dropped
// and processing continues; warnings surface in the log and the run summary.
type RowAlignmentWarning struct {
	Section  string
	Page     int
	Line     string
	Fields   int
	Expected int
}

func (w RowAlignmentWarning) String() string {
	return fmt.Sprintf("section %q page %d: row %q has %d fields, expected %d",
		w.Section, w.Page, w.Line, w.Fields, w.Expected)
}
