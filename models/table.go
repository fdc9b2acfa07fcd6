package models

import "fmt"

// Row is one tuple of field values aligned to a table's column schema.
type Row []string

// Table is a rectangular structure: a fixed column schema plus data rows.
// Rows are validated against the schema on append, never silently misaligned.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column schema.
func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Append adds a row to the table. Rows whose field count disagrees with the
// schema are rejected.
func (t *Table) Append(row Row) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("row has %d fields, table has %d columns", len(row), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Section is a logical grouping of the source document, headed by a
// recognized title line. A section may carry several tables (the vendor
// restarts the column header after sub-totals); consumers usually want
// their concatenation via Rows.
type Section struct {
	Title      string
	StartDate  string
	ReturnDate string
	UserDays   string
	Totals     map[string]string
	Tables     []*Table
}

// Columns returns the column schema of the section's first table, or nil if
// the section has no tables.
func (s *Section) Columns() []string {
	if len(s.Tables) == 0 {
		return nil
	}
	return s.Tables[0].Columns
}

// Rows returns all data rows of the section, concatenated across its tables.
func (s *Section) Rows() []Row {
	var rows []Row
	for _, t := range s.Tables {
		rows = append(rows, t.Rows...)
	}
	return rows
}

// SectionColumn is the provenance column prepended to the combined table.
const SectionColumn = "Section"

// Combine concatenates all section tables into one table whose first column
// identifies the originating section and whose remaining columns are the
// first-seen union of the per-section schemas. Fields a section's schema does
// not carry are left empty.
func Combine(sections []*Section) *Table {
	var union []string
	index := make(map[string]int)
	for _, s := range sections {
		for _, c := range s.Columns() {
			if _, ok := index[c]; !ok {
				index[c] = len(union)
				union = append(union, c)
			}
		}
	}

	combined := NewTable(append([]string{SectionColumn}, union...))
	for _, s := range sections {
		cols := s.Columns()
		for _, row := range s.Rows() {
			out := make(Row, 1+len(union))
			out[0] = s.Title
			for i, c := range cols {
				if i < len(row) {
					out[1+index[c]] = row[i]
				}
			}
			// Schema-checked by construction, Append cannot fail here.
			_ = combined.Append(out)
		}
	}
	return combined
}
