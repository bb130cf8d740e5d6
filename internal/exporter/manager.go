package exporter

import (
	"strings"

	"sheetmark/internal/exporter/html"
	"sheetmark/internal/exporter/word"
	"sheetmark/internal/outline"
)

// Get returns the exporters for the requested format names.
// Names are case-insensitive and deduplicated; unknown names are skipped and
// returned separately so the caller can warn about them.
func Get(formats []string) (exporters []outline.Exporter, unknown []string) {
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if fmtStr == "" {
			continue
		}

		var exp outline.Exporter
		switch fmtStr {
		case "md", "markdown":
			exp = NewMarkdownExporter()
		case "html":
			exp = html.NewHTMLExporter()
		case "word", "docx":
			exp = word.NewWordExporter()
		default:
			unknown = append(unknown, fmtStr)
			continue
		}

		if seen[exp.Name()] {
			continue
		}
		seen[exp.Name()] = true
		exporters = append(exporters, exp)
	}

	return exporters, unknown
}
