package word

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sheetmark/internal/outline"

	"github.com/nguyenthenguyen/docx"
)

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Name() string {
	return "word"
}

// Export writes <outDir>/<stem>.docx with the stem as title and one line per
// outline entry.
func (e *WordExporter) Export(doc *outline.Document, outDir string) error {
	templateBytes, err := buildTemplate()
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp("", "sheetmark-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer r.Close()

	editable := r.Editable()
	if err := editable.Replace(titlePlaceholder, doc.Stem, -1); err != nil {
		return fmt.Errorf("failed to set title: %w", err)
	}
	if err := editable.Replace(contentPlaceholder, wordContent(doc.Body), -1); err != nil {
		return fmt.Errorf("failed to set content: %w", err)
	}

	outFile := filepath.Join(outDir, doc.Stem+".docx")
	if err := editable.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}
	return nil
}

// wordContent joins outline lines with CRLF, which the docx library turns into
// line breaks; a bare LF would collapse into a space.
func wordContent(body string) string {
	if body == "" {
		return ""
	}
	return strings.Join(strings.Split(body, "\n"), "\r\n")
}
