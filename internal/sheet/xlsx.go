package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// xlsxWorkbook reads .xlsx and .xlsm files through excelize
type xlsxWorkbook struct {
	f *excelize.File
}

func openXLSX(path string) (*xlsxWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &xlsxWorkbook{f: f}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Rows returns formatted cell values; excelize drops trailing empty cells and
// trailing empty rows, NewTable restores the width.
func (w *xlsxWorkbook) Rows(name string) ([][]string, error) {
	return w.f.GetRows(name)
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}
