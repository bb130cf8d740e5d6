package sheet

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path      string
		expected  Format
		shouldErr bool
	}{
		{"a.xlsx", FormatXLSX, false},
		{"A.XLSM", FormatXLSX, false},
		{"legacy.Xls", FormatXLS, false},
		{"notes.csv", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		format, err := Detect(tt.path)
		if tt.shouldErr {
			if err == nil {
				t.Errorf("Detect(%s) expected error", tt.path)
			}
			continue
		}
		if err != nil || format != tt.expected {
			t.Errorf("Detect(%s) = %s, %v; expected %s", tt.path, format, err, tt.expected)
		}
	}
}

func TestNewTablePadsRows(t *testing.T) {
	table := NewTable("S", [][]string{
		{"a", "b"},
		{},
		{"", "", "c"},
	})

	if table.Width != 3 {
		t.Fatalf("Width = %d, expected 3", table.Width)
	}

	expected := [][]string{
		{"a", "b", ""},
		{"", "", ""},
		{"", "", "c"},
	}
	if !reflect.DeepEqual(table.Rows, expected) {
		t.Errorf("Rows = %q, expected %q", table.Rows, expected)
	}
	if !reflect.DeepEqual(table.Header(), expected[0]) {
		t.Errorf("Header = %q", table.Header())
	}
	if len(table.Body()) != 2 {
		t.Errorf("Body has %d rows, expected 2", len(table.Body()))
	}
}

func TestEmptyTable(t *testing.T) {
	table := NewTable("Empty", nil)
	if table.Width != 0 || table.Header() != nil || table.Body() != nil {
		t.Errorf("Expected empty table, got %+v", table)
	}
}

func TestOpenXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")

	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Qty")
	f.SetCellValue("Sheet1", "A2", "apple")
	f.SetCellValue("Sheet1", "B2", 3)
	f.NewSheet("Second")
	f.SetCellValue("Second", "C3", true)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	f.Close()

	wb, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if !reflect.DeepEqual(names, []string{"Sheet1", "Second"}) {
		t.Fatalf("SheetNames = %v", names)
	}

	first, err := ReadTable(wb, "Sheet1")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if !reflect.DeepEqual(first.Rows, [][]string{{"Name", "Qty"}, {"apple", "3"}}) {
		t.Errorf("Sheet1 rows = %q", first.Rows)
	}

	second, err := ReadTable(wb, "Second")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if second.Width != 3 || len(second.Rows) != 3 {
		t.Fatalf("Second = %+v", second)
	}
	if second.Rows[2][2] != "TRUE" {
		t.Errorf("Boolean cell rendered as %q", second.Rows[2][2])
	}

	if _, err := ReadTable(wb, "Missing"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestOpenXLS(t *testing.T) {
	wb, err := Open(filepath.Join("testdata", "legacy.xls"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if !reflect.DeepEqual(names, []string{"Test sheet 1", "Test sheet 2", "Sheet3"}) {
		t.Fatalf("SheetNames = %q", names)
	}

	first, err := ReadTable(wb, "Test sheet 1")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	// Row 3 only holds formulas, whose values the reader does not expose.
	if first.Width != 3 || len(first.Rows) != 3 {
		t.Fatalf("Test sheet 1 = %+v", first)
	}
	if !reflect.DeepEqual(first.Header(), []string{"Test1", "Lorem", "Ipsum"}) {
		t.Errorf("Header = %q", first.Header())
	}
	if first.Rows[1][0] != "Avocado" {
		t.Errorf("Rows[1][0] = %q, expected Avocado", first.Rows[1][0])
	}
	// Row 2 has no cell in column A and numbers in B and C.
	if first.Rows[2][0] != "" || first.Rows[2][1] == "" || first.Rows[2][2] == "" {
		t.Errorf("Rows[2] = %q", first.Rows[2])
	}

	second, err := ReadTable(wb, "Test sheet 2")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if !reflect.DeepEqual(second.Rows, [][]string{{"Test2"}}) {
		t.Errorf("Test sheet 2 rows = %q", second.Rows)
	}

	empty, err := ReadTable(wb, "Sheet3")
	if err != nil {
		t.Fatalf("Empty sheet should not fail: %v", err)
	}
	if empty.Width != 0 || len(empty.Rows) != 0 {
		t.Errorf("Sheet3 = %+v, expected empty table", empty)
	}
}

func TestOpenCorrupt(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"broken.xlsx", "broken.xls"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("this is not a workbook"), 0644); err != nil {
			t.Fatal(err)
		}
		if wb, err := Open(path); err == nil {
			wb.Close()
			t.Errorf("Open(%s) expected error", name)
		}
	}

	if _, err := Open(filepath.Join(dir, "missing.xlsx")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := Open(filepath.Join(dir, "data.csv")); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}

func TestTrimTrailingEmpty(t *testing.T) {
	rows := [][]string{{"a"}, nil, {"b"}, nil, {}}
	got := trimTrailingEmpty(rows)
	if len(got) != 3 {
		t.Errorf("trimTrailingEmpty kept %d rows, expected 3", len(got))
	}
}
