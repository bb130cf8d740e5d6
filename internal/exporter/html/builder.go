package html

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"sheetmark/internal/outline"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownPunct is every character CommonMark allows a backslash escape for
const markdownPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var headingNumber = regexp.MustCompile(`^(?:\p{Nd}+\.)+`)

// HTMLExporter renders the outline Markdown to a standalone HTML page
type HTMLExporter struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// PageData feeds OutlineTemplate
type PageData struct {
	Title  string
	Source string
	Empty  bool
	Body   template.HTML
}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
		tmpl: template.Must(template.New("outline").Parse(OutlineTemplate)),
	}
}

func (e *HTMLExporter) Name() string {
	return "html"
}

// Export writes <outDir>/<stem>.html
func (e *HTMLExporter) Export(doc *outline.Document, outDir string) error {
	body, err := e.Render(doc)
	if err != nil {
		return err
	}

	data := PageData{
		Title:  doc.Stem,
		Source: filepath.Base(doc.Source),
		Empty:  doc.Body == "",
		Body:   template.HTML(body),
	}

	var page bytes.Buffer
	if err := e.tmpl.Execute(&page, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	outFile := filepath.Join(outDir, doc.Stem+".html")
	if err := os.WriteFile(outFile, page.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	return nil
}

// Render converts the outline body to an HTML fragment. Numbered lines become
// headings and bullets become nested lists; cell text is shown literally.
func (e *HTMLExporter) Render(doc *outline.Document) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(outlineMarkdown(doc.Body)), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

// outlineMarkdown rewrites an outline body as CommonMark with the same
// structure. A heading "1.2. x" becomes an h3 (one level per number group,
// from h2). A bullet nests under the nearest bullet above it with a smaller
// indent, so column jumps of any width become one list level.
func outlineMarkdown(body string) string {
	var sb strings.Builder
	var open []int // indents of the enclosing bullets

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}

		if text, ok := strings.CutPrefix(trimmed, "- "); ok {
			indent := len(line) - len(trimmed)
			for len(open) > 0 && open[len(open)-1] >= indent {
				open = open[:len(open)-1]
			}
			sb.WriteString(strings.Repeat("  ", len(open)))
			sb.WriteString("- ")
			sb.WriteString(escapeMarkdown(text))
			sb.WriteString("\n")
			open = append(open, indent)
			continue
		}

		open = open[:0]
		level := min(6, 1+strings.Count(headingNumber.FindString(trimmed), "."))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("#", level))
		sb.WriteString(" ")
		sb.WriteString(escapeMarkdown(trimmed))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// escapeMarkdown backslash-escapes ASCII punctuation so goldmark treats cell
// text as plain text: no list markers, emphasis, links or raw HTML.
func escapeMarkdown(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if strings.ContainsRune(markdownPunct, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
