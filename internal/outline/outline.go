// Package outline rewrites Markdown pipe tables as an indented bullet outline.
//
// Each table row is reduced to its first non-empty cell. Rows whose content
// starts with a dotted number ("1.", "2.3.") become bare heading lines; every
// other row becomes a "- " bullet indented from the column the content sits in:
//
//	| 1.1. Scope |  |         |      |  ->  "1.1. Scope"
//	|            |  | Details |      |  ->  "- Details"
//	|            |  |         | Note |  ->  "  - Note"
//
// Body text directly under a heading is never indented.
package outline

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"sheetmark/internal/scanner"
)

// ErrRead marks a formatting call that failed because its input could not be read
var ErrRead = errors.New("outline: cannot read input")

// space matches any Unicode white space, including the ideographic space
// common in Japanese headings ("1.　概要").
const space = `[\s\x0b\x1c-\x1f\x{85}\p{Z}]`

// isSpace is the rune form of space, used for trimming lines and cells
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.In(r, unicode.Z) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

var (
	separatorPattern = regexp.MustCompile(`^\|` + space + `*-+` + space + `*\|(?:` + space + `*-+` + space + `*\|)*` + space + `*$`)
	headingPattern   = regexp.MustCompile(`^(\p{Nd}+\.)+` + space + `.*$`)
)

// Kind classifies a table row with content
type Kind int

const (
	BodyText Kind = iota
	Heading
)

func (k Kind) String() string {
	if k == Heading {
		return "heading"
	}
	return "body"
}

// Row is one pipe-table line split into trimmed cells
type Row struct {
	Cells   []string
	Content string
	Column  int // index of Content in Cells, -1 without content
}

// HasContent reports whether any cell is non-empty
func (r Row) HasContent() bool {
	return r.Column >= 0
}

// Kind classifies the row by its content
func (r Row) Kind() Kind {
	if headingPattern.MatchString(r.Content) {
		return Heading
	}
	return BodyText
}

// ParseRow splits a trimmed table line. ok is false for lines that are not
// table rows and for separator rows.
func ParseRow(line string) (row Row, ok bool) {
	if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
		return Row{}, false
	}
	if separatorPattern.MatchString(line) {
		return Row{}, false
	}

	// The leading and trailing pipes leave an empty piece at each end.
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts)-2)
	for _, part := range parts[1 : len(parts)-1] {
		cells = append(cells, trimSpace(part))
	}

	row = Row{Cells: cells, Column: -1}
	for i, cell := range cells {
		if cell != "" {
			row.Content = cell
			row.Column = i
			break
		}
	}
	return row, true
}

// Indent returns the number of spaces for body text at column.
// Columns 0-2 sit flush; each further column adds two spaces.
func Indent(column int) int {
	return max(0, column-2) * 2
}

// Formatter carries the heading state across the lines of one document.
// The zero value is ready to use; use a fresh Formatter per document.
type Formatter struct {
	afterHeading bool
}

// Line formats a single raw input line. ok is false when the line produces no
// output, in which case the formatter state is unchanged.
func (f *Formatter) Line(raw string) (out string, ok bool) {
	row, isRow := ParseRow(trimSpace(raw))
	if !isRow || !row.HasContent() {
		return "", false
	}

	if row.Kind() == Heading {
		f.afterHeading = true
		return row.Content, true
	}

	indent := 0
	if !f.afterHeading {
		indent = Indent(row.Column)
	}
	f.afterHeading = false
	return strings.Repeat(" ", indent) + "- " + row.Content, true
}

// FormatLines formats a document given as lines
func FormatLines(lines []string) []string {
	var f Formatter
	var out []string
	for _, line := range lines {
		if formatted, ok := f.Line(line); ok {
			out = append(out, formatted)
		}
	}
	return out
}

// FormatString formats a whole document held in memory
func FormatString(text string) string {
	return strings.Join(FormatLines(scanner.SplitLines(text)), "\n")
}

// Format reads a UTF-8 document from r and formats it
func Format(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	text, err := scanner.Decode(data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return FormatString(text), nil
}

// FormatFile reads and formats the file at path. Inputs that are not UTF-8 are
// decoded with the first matching encoding hint. A read failure returns an
// error wrapping ErrRead so it is not mistaken for a document without tables.
func FormatFile(path string, hints ...string) (string, error) {
	text, err := scanner.ReadText(path, hints)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	return FormatString(text), nil
}
