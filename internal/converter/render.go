package converter

import (
	"path/filepath"
	"strings"

	"sheetmark/internal/sheet"
)

// RenderTable renders a sheet as a Markdown pipe table.
// Row 1 becomes the header followed by a "---" separator; later rows whose
// cells are all empty are skipped. Cell text is written verbatim.
func RenderTable(table *sheet.Table) string {
	var sb strings.Builder

	header := table.Header()
	if len(header) > 0 {
		writeRow(&sb, header)
		separator := make([]string, len(header))
		for i := range separator {
			separator[i] = "---"
		}
		writeRow(&sb, separator)
	}

	for _, row := range table.Body() {
		if isBlankRow(row) {
			continue
		}
		writeRow(&sb, row)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| ")
	sb.WriteString(strings.Join(cells, " | "))
	sb.WriteString(" |\n")
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// OutputPath maps a workbook and sheet to its Markdown file.
// "<in>/sub/book.xlsx" + "Sheet1" becomes "<out>/sub/book_Sheet1.md".
func OutputPath(inputRoot, outputRoot, workbookPath, sheetName string) (string, error) {
	rel, err := filepath.Rel(inputRoot, workbookPath)
	if err != nil {
		return "", err
	}

	base := filepath.Base(rel)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := stem + "_" + sheetName + ".md"

	return filepath.Join(outputRoot, filepath.Dir(rel), name), nil
}
