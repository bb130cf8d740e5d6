package outline

import (
	"fmt"
	"path/filepath"

	"sheetmark/internal/config"
	"sheetmark/internal/logger"
	"sheetmark/internal/scanner"
	"sheetmark/internal/ui"
)

// Document is one reformatted input file
type Document struct {
	Source string
	Stem   string
	Body   string
	Err    error // read failure; Body is empty when set
}

// Markdown returns the file content: the stem, a blank line, then the outline
func (d *Document) Markdown() string {
	return d.Stem + "\n\n" + d.Body
}

// Exporter writes a Document into outDir in some format
type Exporter interface {
	Name() string
	Export(doc *Document, outDir string) error
}

// BatchOptions configures a reformatting run
type BatchOptions struct {
	InputDir  string
	OutputDir string
	Encoding  []string
}

// Report summarises a reformatting run
type Report struct {
	Processed   int
	Written     []string
	ReadErrors  []string
	ExportFails int
}

// Batch reformats every .md file directly inside opts.InputDir.
// Unreadable inputs are logged and still exported with an empty body.
// Listing the input directory or creating the output directory is fatal.
func Batch(opts BatchOptions, exporters []Exporter, pipeline *ui.Pipeline) (*Report, error) {
	if len(exporters) == 0 {
		return nil, fmt.Errorf("no exporters configured")
	}
	if pipeline == nil {
		pipeline = ui.NewPipeline([]ui.Phase{ui.PhaseFormatting})
		pipeline.Disable()
	}

	if err := config.EnsureDir(opts.OutputDir); err != nil {
		return nil, err
	}

	files, err := scanner.ScanMarkdown(opts.InputDir)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	bar := pipeline.NextPhase(len(files))

	for _, path := range files {
		bar.Describe(filepath.Base(path))
		logger.Info("Processing: %s", path)

		doc := Load(path, opts.Encoding)
		if doc.Err != nil {
			logger.LogFileError(path, doc.Err, "read")
			report.ReadErrors = append(report.ReadErrors, path)
		}

		for _, exp := range exporters {
			if err := exp.Export(doc, opts.OutputDir); err != nil {
				logger.LogFileError(path, err, "export "+exp.Name())
				report.ExportFails++
				continue
			}
			logger.Info("Saved: %s (%s)", filepath.Join(opts.OutputDir, doc.Stem), exp.Name())
		}

		report.Processed++
		report.Written = append(report.Written, doc.Stem)
		bar.Increment()
	}
	pipeline.Finish()

	logger.Info("All Markdown files have been processed (%d file(s)).", report.Processed)
	return report, nil
}

// Load formats the file at path into a Document
func Load(path string, hints []string) *Document {
	body, err := FormatFile(path, hints...)
	return &Document{
		Source: path,
		Stem:   scanner.Stem(path),
		Body:   body,
		Err:    err,
	}
}
