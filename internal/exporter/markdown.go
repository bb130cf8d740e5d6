package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"sheetmark/internal/outline"
)

// MarkdownExporter writes the outline under the input's own file name
type MarkdownExporter struct{}

func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

func (e *MarkdownExporter) Name() string {
	return "markdown"
}

// Export writes "<stem>\n\n<outline>" to <outDir>/<stem>.md
func (e *MarkdownExporter) Export(doc *outline.Document, outDir string) error {
	outFile := filepath.Join(outDir, doc.Stem+".md")
	if err := os.WriteFile(outFile, []byte(doc.Markdown()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	return nil
}
