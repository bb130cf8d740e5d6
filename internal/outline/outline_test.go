package outline

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestIndent(t *testing.T) {
	tests := []struct {
		column   int
		expected int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 2},
		{4, 4},
		{5, 6},
		{9, 14},
	}

	for _, tt := range tests {
		if got := Indent(tt.column); got != tt.expected {
			t.Errorf("Indent(%d) = %d, expected %d", tt.column, got, tt.expected)
		}
	}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		ok      bool
		content string
		column  int
		cells   int
	}{
		{"content at index 2", "| | | Overview | |", true, "Overview", 2, 4},
		{"first column", "| 1.1. Scope | | | |", true, "1.1. Scope", 0, 4},
		{"first non-empty wins", "| | a | b |", true, "a", 1, 3},
		{"cells trimmed", "|   |  spaced out  |", true, "spaced out", 1, 2},
		{"empty row", "| | | |", true, "", -1, 3},
		{"lone pipe", "|", true, "", -1, 0},
		{"separator", "|---|---|---|", false, "", 0, 0},
		{"padded separator", "| --- | --- | --- |", false, "", 0, 0},
		{"single separator cell", "| - |", false, "", 0, 0},
		{"no leading pipe", "a | b |", false, "", 0, 0},
		{"no trailing pipe", "| a | b", false, "", 0, 0},
		{"plain text", "Just a paragraph", false, "", 0, 0},
		{"blank", "", false, "", 0, 0},
		{"alignment colons are content", "| :--- | ---: |", true, ":---", 0, 2},
		{"separator characters are blank", "| \x1c | \x1f\x1d | b |", true, "b", 2, 3},
		{"ideographic space is blank", "|\u3000| 概要 |", true, "概要", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := ParseRow(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseRow(%q) ok = %v, expected %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if row.Content != tt.content || row.Column != tt.column || len(row.Cells) != tt.cells {
				t.Errorf("ParseRow(%q) = %+v, expected content %q column %d cells %d",
					tt.line, row, tt.content, tt.column, tt.cells)
			}
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		content  string
		expected Kind
	}{
		{"1. Introduction", Heading},
		{"1.1. Scope", Heading},
		{"1.1.1. Details", Heading},
		{"10.20. Wide numbers", Heading},
		{"1.\tTabbed", Heading},
		{"1.　概要", Heading},
		{"１．概要", BodyText},
		{"１. 全角数字", Heading},
		{"1.1 Missing final dot", BodyText},
		{"1.Overview", BodyText},
		{"1. ", Heading},
		{"1.", BodyText},
		{"Overview", BodyText},
		{"a.1. Letter", BodyText},
		{"- 1. dash", BodyText},
	}

	for _, tt := range tests {
		row := Row{Content: tt.content}
		if got := row.Kind(); got != tt.expected {
			t.Errorf("Kind(%q) = %s, expected %s", tt.content, got, tt.expected)
		}
	}
}

func TestFormatterScenarios(t *testing.T) {
	t.Run("body without heading", func(t *testing.T) {
		got := FormatLines([]string{"| | | Overview | |"})
		expected := []string{"- Overview"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %q, expected %q", got, expected)
		}
	})

	t.Run("heading then body", func(t *testing.T) {
		got := FormatLines([]string{
			"| 1.1. Scope | | | |",
			"| | | Details here | |",
		})
		expected := []string{"1.1. Scope", "- Details here"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %q, expected %q", got, expected)
		}
	})

	t.Run("deep body after heading is flush", func(t *testing.T) {
		got := FormatLines([]string{
			"| 2. Design | | | | | |",
			"| | | | | | Deep |",
			"| | | | | | Deeper still |",
		})
		expected := []string{"2. Design", "- Deep", "      - Deeper still"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %q, expected %q", got, expected)
		}
	})

	t.Run("separator does not reset heading state", func(t *testing.T) {
		got := FormatLines([]string{
			"| 1. Title | | | |",
			"|---|---|---|---|",
			"| | | | Body |",
		})
		expected := []string{"1. Title", "- Body"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %q, expected %q", got, expected)
		}
	})

	t.Run("empty and non-table lines do not reset heading state", func(t *testing.T) {
		got := FormatLines([]string{
			"| 1. Title | | | |",
			"| | | | |",
			"Some paragraph",
			"",
			"| | | | Body |",
		})
		expected := []string{"1. Title", "- Body"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %q, expected %q", got, expected)
		}
	})

	t.Run("indent by column", func(t *testing.T) {
		got := FormatLines([]string{
			"| a | | | | | |",
			"| | b | | | | |",
			"| | | c | | | |",
			"| | | | d | | |",
			"| | | | | e | |",
			"| | | | | | f |",
		})
		expected := []string{"- a", "- b", "- c", "  - d", "    - e", "      - f"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %q, expected %q", got, expected)
		}
	})

	t.Run("line trimmed with the same white space as cells", func(t *testing.T) {
		got := FormatLines([]string{"\x1c\u3000| | | | \x1e Indented |\x1f"})
		expected := []string{"  - Indented"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %q, expected %q", got, expected)
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		got := FormatLines([]string{"   | | | | Indented |   \t"})
		expected := []string{"  - Indented"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %q, expected %q", got, expected)
		}
	})
}

func TestFormatStringNeverEmitsSeparators(t *testing.T) {
	input := strings.Join([]string{
		"| No | Item | Detail |",
		"| --- | --- | --- |",
		"|---|---|---|",
		"| 1. Overview | | |",
		"| | | text |",
		"|  -  |  --  |",
	}, "\n")

	got := FormatString(input)
	for _, line := range strings.Split(got, "\n") {
		if separatorPattern.MatchString(line) || strings.Contains(line, "---") {
			t.Errorf("Separator leaked into output: %q", line)
		}
	}

	expected := "- No\n1. Overview\n- text"
	if got != expected {
		t.Errorf("FormatString() = %q, expected %q", got, expected)
	}
}

func TestFormatStringFreshStatePerCall(t *testing.T) {
	first := FormatString("| 1. Heading | | | |")
	if first != "1. Heading" {
		t.Fatalf("unexpected first result %q", first)
	}

	second := FormatString("| | | | Body |")
	if second != "  - Body" {
		t.Errorf("State leaked between calls: %q", second)
	}
}

func TestFormatStringLineEndings(t *testing.T) {
	got := FormatString("| 1. A | |\r\n| | b |\r| | | c |\n")
	expected := "1. A\n- b\n- c"
	if got != expected {
		t.Errorf("FormatString() = %q, expected %q", got, expected)
	}
}

func TestFormatStringNoTables(t *testing.T) {
	if got := FormatString("# Title\n\nJust text.\n"); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

func TestFormatReader(t *testing.T) {
	got, err := Format(strings.NewReader("\ufeff| | | Overview | |\n"))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "- Overview" {
		t.Errorf("Format() = %q", got)
	}

	if _, err := Format(strings.NewReader("\xff\xfe| x |")); !errors.Is(err, ErrRead) {
		t.Errorf("Expected ErrRead for undecodable input, got %v", err)
	}
}

func TestFormatFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.md")
	content := "| 1. Purpose | | | |\n| --- | --- | --- | --- |\n| | | Convert sheets | |\n| | | | Per sheet |\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FormatFile(path)
	if err != nil {
		t.Fatalf("FormatFile failed: %v", err)
	}
	expected := "1. Purpose\n- Convert sheets\n  - Per sheet"
	if got != expected {
		t.Errorf("FormatFile() = %q, expected %q", got, expected)
	}
}

func TestFormatFileMissing(t *testing.T) {
	got, err := FormatFile(filepath.Join(t.TempDir(), "missing.md"))
	if got != "" {
		t.Errorf("Expected empty result, got %q", got)
	}
	if !errors.Is(err, ErrRead) {
		t.Errorf("Expected ErrRead, got %v", err)
	}
}
