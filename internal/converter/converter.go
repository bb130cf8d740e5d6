// Package converter turns every workbook under a directory into one Markdown
// table file per sheet.
package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"sheetmark/internal/logger"
	"sheetmark/internal/scanner"
	"sheetmark/internal/sheet"
	"sheetmark/internal/ui"
)

// Options configures a conversion run
type Options struct {
	InputDir   string
	OutputDir  string
	Extensions []string
}

// Failure records a workbook that could not be converted
type Failure struct {
	Path string
	Err  error
}

// Report summarises a conversion run
type Report struct {
	Found    int
	Written  []string
	Failures []Failure
}

// Converter runs the spreadsheet-to-markdown batch
type Converter struct {
	opts     Options
	pipeline *ui.Pipeline
}

// New creates a Converter. pipeline may be nil to run without progress bars.
func New(opts Options, pipeline *ui.Pipeline) *Converter {
	if pipeline == nil {
		pipeline = ui.NewPipeline([]ui.Phase{ui.PhaseScanning, ui.PhaseConverting})
		pipeline.Disable()
	}
	return &Converter{opts: opts, pipeline: pipeline}
}

// Run converts every matching workbook. Only a failure to walk the input tree
// is returned as an error; per-workbook failures land in the report.
func (c *Converter) Run() (*Report, error) {
	logger.Info("Searching for spreadsheets in '%s'...", c.opts.InputDir)

	scanBar := c.pipeline.NextPhase(1)
	files, err := scanner.ScanSpreadsheets(c.opts.InputDir, c.opts.Extensions)
	if err != nil {
		return nil, err
	}
	scanBar.Increment()

	report := &Report{Found: len(files)}
	if len(files) == 0 {
		c.pipeline.Finish()
		logger.Info("No spreadsheet files to convert were found.")
		return report, nil
	}

	convBar := c.pipeline.NextPhase(len(files))
	for _, path := range files {
		convBar.Describe(filepath.Base(path))
		logger.Info("Converting: %s", path)

		written, err := c.ConvertFile(path)
		report.Written = append(report.Written, written...)
		if err != nil {
			logger.LogFileError(path, err, "convert")
			report.Failures = append(report.Failures, Failure{Path: path, Err: err})
		}
		convBar.Increment()
	}
	c.pipeline.Finish()

	logger.Info("Converted %d of %d spreadsheet(s), %d sheet file(s) written.",
		report.Found-len(report.Failures), report.Found, len(report.Written))

	return report, nil
}

// ConvertFile writes one Markdown file per sheet of the workbook at path and
// returns the files written before any error.
func (c *Converter) ConvertFile(path string) ([]string, error) {
	wb, err := sheet.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	var written []string
	for _, name := range wb.SheetNames() {
		table, err := sheet.ReadTable(wb, name)
		if err != nil {
			return written, err
		}

		outPath, err := OutputPath(c.opts.InputDir, c.opts.OutputDir, path, name)
		if err != nil {
			return written, fmt.Errorf("failed to resolve output path: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return written, fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outPath, []byte(RenderTable(table)), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		written = append(written, outPath)
		logger.Info("Saved: %s", outPath)
	}

	return written, nil
}
