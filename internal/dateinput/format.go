package dateinput

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultFormat is used until SetFormat is called.
const DefaultFormat = "yyyy-MM-dd"

// tokens maps picker format tokens to Go reference-time fragments. Longer
// tokens come first so that "yyyy" wins over "yy".
var tokens = []struct {
	token, layout string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"A", "PM"},
}

// FormatError reports a format string that cannot be turned into a layout.
type FormatError struct {
	Format string
	Pos    int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported date format %q at offset %d (tokens: yyyy yy MM M dd d HH hh mm A)", e.Format, e.Pos)
}

// Layout converts a picker format to a time layout. Characters other than
// tokens must be separators; letters and digits would be ambiguous in a Go
// layout.
func Layout(format string) (string, error) {
	if strings.TrimSpace(format) == "" {
		return "", &FormatError{Format: format}
	}
	var b strings.Builder
	for i := 0; i < len(format); {
		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		r := rune(format[i])
		if r >= unicode.MaxASCII || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return "", &FormatError{Format: format, Pos: i}
		}
		b.WriteByte(format[i])
		i++
	}
	return b.String(), nil
}
