// Package sheet opens workbooks and exposes each sheet as a rectangular grid of
// cell text, hiding whether excelize or the legacy .xls reader is underneath.
package sheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the reader used for a workbook
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// Workbook is an opened spreadsheet file
type Workbook interface {
	// SheetNames returns sheet names in workbook order
	SheetNames() []string
	// Rows returns the raw rows of a sheet; rows may be ragged
	Rows(name string) ([][]string, error)
	Close() error
}

// Table is one sheet normalised to a fixed width
type Table struct {
	Name  string
	Width int
	Rows  [][]string
}

// Header returns row 1, or nil for an empty sheet
func (t *Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Body returns every row after the header
func (t *Table) Body() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// Detect returns the reader format for path based on its extension
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	default:
		return "", fmt.Errorf("unsupported spreadsheet format: %q", filepath.Ext(path))
	}
}

// Open opens the workbook at path with the reader matching its extension
func Open(path string) (wb Workbook, err error) {
	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			wb = nil
			err = fmt.Errorf("reader panic on %s: %v", filepath.Base(path), r)
		}
	}()

	if format == FormatXLS {
		book, err := openXLS(path)
		if err != nil {
			return nil, err
		}
		return book, nil
	}

	book, err := openXLSX(path)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// ReadTable loads a sheet and pads every row to the widest row of the sheet
func ReadTable(wb Workbook, name string) (table *Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			table = nil
			err = fmt.Errorf("reader panic on sheet %q: %v", name, r)
		}
	}()

	rows, err := wb.Rows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	return NewTable(name, rows), nil
}

// NewTable builds a Table from ragged rows
func NewTable(name string, rows [][]string) *Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		padded[i] = cells
	}

	return &Table{Name: name, Width: width, Rows: padded}
}
