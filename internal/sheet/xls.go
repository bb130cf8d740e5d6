package sheet

import (
	"bytes"
	"fmt"
	"os"

	"github.com/extrame/xls"
)

// xlsWorkbook reads legacy BIFF .xls files
type xlsWorkbook struct {
	wb *xls.WorkBook
}

func openXLS(path string) (*xlsWorkbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &xlsWorkbook{wb: wb}, nil
}

func (w *xlsWorkbook) SheetNames() []string {
	names := make([]string, 0, w.wb.NumSheets())
	for i := 0; i < w.wb.NumSheets(); i++ {
		if ws := w.wb.GetSheet(i); ws != nil {
			names = append(names, ws.Name)
		}
	}
	return names
}

// BIFF8 sheets end at column IV.
const xlsMaxCols = 256

// xlsFormulaText is what extrame/xls returns for every formula cell; the cached
// result is not exposed.
const xlsFormulaText = "FormulaCol"

func (w *xlsWorkbook) Rows(name string) ([][]string, error) {
	ws := w.find(name)
	if ws == nil {
		return nil, fmt.Errorf("sheet %q not found", name)
	}

	var rows [][]string
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := xlsRow(ws, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, xlsCells(row))
	}

	return trimTrailingEmpty(rows), nil
}

// xlsRow returns row i or nil when the sheet has no record for it.
// WorkSheet.Row dereferences the missing row instead of returning nil.
func xlsRow(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}

// xlsCells reads a row up to its last non-empty cell. Rows built from cell
// records alone report LastCol 0, so the width comes from the cells themselves.
func xlsCells(row *xls.Row) []string {
	var cells []string
	for col := 0; col < xlsMaxCols; col++ {
		value := row.Col(col)
		if value == xlsFormulaText {
			value = ""
		}
		if value == "" {
			continue
		}
		for len(cells) < col {
			cells = append(cells, "")
		}
		cells = append(cells, value)
	}
	return cells
}

func (w *xlsWorkbook) find(name string) *xls.WorkSheet {
	for i := 0; i < w.wb.NumSheets(); i++ {
		if ws := w.wb.GetSheet(i); ws != nil && ws.Name == name {
			return ws
		}
	}
	return nil
}

// Close is a no-op: the workbook was read fully into memory
func (w *xlsWorkbook) Close() error {
	return nil
}

// trimTrailingEmpty drops nil rows past the last populated one, matching excelize
func trimTrailingEmpty(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && len(rows[end-1]) == 0 {
		end--
	}
	return rows[:end]
}
