package models

import (
	"reflect"
	"testing"
)

func TestTable_AppendRejectsMisalignedRow(t *testing.T) {
	table := NewTable([]string{"Item", "Qty", "Price"})

	if err := table.Append(Row{"a", "1", "2,00"}); err != nil {
		t.Fatalf("Append(aligned) error = %v", err)
	}
	if err := table.Append(Row{"a", "1"}); err == nil {
		t.Error("Append(short row) error = nil, want error")
	}
	if err := table.Append(Row{"a", "1", "2,00", "extra"}); err == nil {
		t.Error("Append(long row) error = nil, want error")
	}
	if len(table.Rows) != 1 {
		t.Errorf("table has %d rows, want 1 (rejected rows not stored)", len(table.Rows))
	}
}

func TestSection_RowsConcatenatesTables(t *testing.T) {
	t1 := NewTable([]string{"Pos", "Antall", "Navn"})
	_ = t1.Append(Row{"1", "2", "Kabel"})
	t2 := NewTable([]string{"Pos", "Antall", "Navn"})
	_ = t2.Append(Row{"1", "1", "Stativ"})

	s := &Section{Title: "Rigg", Tables: []*Table{t1, t2}}
	if got := len(s.Rows()); got != 2 {
		t.Errorf("Rows() = %d rows, want 2", got)
	}
	if cols := s.Columns(); !reflect.DeepEqual(cols, []string{"Pos", "Antall", "Navn"}) {
		t.Errorf("Columns() = %v", cols)
	}
}

func TestCombine_TagsRowsWithSectionTitle(t *testing.T) {
	a := NewTable([]string{"Pos", "Antall", "Navn"})
	_ = a.Append(Row{"1", "2", "Kabel"})
	b := NewTable([]string{"Pos", "Antall", "Navn"})
	_ = b.Append(Row{"1", "1", "Stativ"})

	combined := Combine([]*Section{
		{Title: "Scene A", Tables: []*Table{a}},
		{Title: "Scene B", Tables: []*Table{b}},
	})

	wantCols := []string{"Section", "Pos", "Antall", "Navn"}
	if !reflect.DeepEqual(combined.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", combined.Columns, wantCols)
	}
	wantRows := []Row{
		{"Scene A", "1", "2", "Kabel"},
		{"Scene B", "1", "1", "Stativ"},
	}
	if !reflect.DeepEqual(combined.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", combined.Rows, wantRows)
	}
}

func TestCombine_UnionOfDifferingSchemas(t *testing.T) {
	a := NewTable([]string{"Pos", "Navn"})
	_ = a.Append(Row{"1", "Kabel"})
	b := NewTable([]string{"Pos", "Pris"})
	_ = b.Append(Row{"1", "450,00"})

	combined := Combine([]*Section{
		{Title: "A", Tables: []*Table{a}},
		{Title: "B", Tables: []*Table{b}},
	})

	wantCols := []string{"Section", "Pos", "Navn", "Pris"}
	if !reflect.DeepEqual(combined.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", combined.Columns, wantCols)
	}
	wantRows := []Row{
		{"A", "1", "Kabel", ""},
		{"B", "1", "", "450,00"},
	}
	if !reflect.DeepEqual(combined.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", combined.Rows, wantRows)
	}
}

func TestCombine_NoSections(t *testing.T) {
	combined := Combine(nil)
	if len(combined.Rows) != 0 {
		t.Errorf("Combine(nil) has %d rows, want 0", len(combined.Rows))
	}
	if !reflect.DeepEqual(combined.Columns, []string{"Section"}) {
		t.Errorf("Combine(nil) columns = %v, want just the provenance column", combined.Columns)
	}
}
