package scanner

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// encodings maps config hint names onto decoders. "utf-8" is handled up front.
var encodings = map[string]encoding.Encoding{
	"shift_jis":    japanese.ShiftJIS,
	"sjis":         japanese.ShiftJIS,
	"cp932":        japanese.ShiftJIS,
	"euc-jp":       japanese.EUCJP,
	"iso-2022-jp":  japanese.ISO2022JP,
	"euc-kr":       korean.EUCKR,
	"ms949":        korean.EUCKR,
	"windows-1252": charmap.Windows1252,
	"latin1":       charmap.ISO8859_1,
}

// ReadText reads a text file and returns it as UTF-8.
// Valid UTF-8 is returned as is (minus a leading BOM); otherwise the first
// known hint, in order, decodes it. "utf-8" and unknown names are skipped.
func ReadText(path string, hints []string) (string, error) {
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(rawBytes, hints)
}

// Decode converts raw bytes to a UTF-8 string using the encoding hints.
//
// The x/text decoders substitute U+FFFD for bytes they cannot map instead of
// failing, and most legacy Japanese byte sequences are valid in more than one
// encoding. Every known hint is therefore tried: decodes containing U+FFFD are
// rejected and the one with the fewest implausible runes wins, earlier hints
// first on a tie. Single-byte charsets accept any input, so list them last.
func Decode(data []byte, hints []string) (string, error) {
	if utf8.Valid(data) {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}

	best, bestScore := "", -1
	for _, hint := range hints {
		enc, ok := encodings[strings.ToLower(strings.TrimSpace(hint))]
		if !ok {
			continue
		}
		decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
		if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
			continue
		}
		if score := implausibleRunes(decoded); bestScore < 0 || score < bestScore {
			best, bestScore = string(decoded), score
		}
	}

	if bestScore < 0 {
		return "", fmt.Errorf("content is not UTF-8 and no encoding hint in %v could decode it", hints)
	}
	return best, nil
}

// implausibleRunes counts runes a wrong multi-byte guess tends to produce:
// half-width katakana and control characters other than tab and newlines.
func implausibleRunes(text []byte) int {
	n := 0
	for _, r := range string(text) {
		switch {
		case r >= 0xFF61 && r <= 0xFF9F:
			n++
		case r < 0x20 && r != '\t' && r != '\n' && r != '\r':
			n++
		case r >= 0x7F && r <= 0x9F:
			n++
		}
	}
	return n
}

// SplitLines splits text on \r\n, \r and \n
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
