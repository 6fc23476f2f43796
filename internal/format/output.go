package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gosuri/uitable"
)

// Tabular is implemented by command results that can print as a table.
type Tabular interface {
	Header() []string
	Rows() [][]string
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - table (values implementing Tabular; anything else falls back to json)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "table":
		t, ok := v.(Tabular)
		if !ok {
			return WriteJSON(w, v, true)
		}
		return WriteTable(w, t)
	default:
		return fmt.Errorf("unknown format: %s (expected json|table)", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteTable writes t as aligned columns. Rows shorter than the header are
// padded with blanks.
func WriteTable(w io.Writer, t Tabular) error {
	header := t.Header()
	tbl := uitable.New()
	tbl.Separator = "  "
	if len(header) > 0 {
		tbl.AddRow(cells(header, len(header))...)
	}
	for _, r := range t.Rows() {
		n := len(header)
		if len(r) > n {
			n = len(r)
		}
		tbl.AddRow(cells(r, n)...)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func cells(row []string, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = ""
		if i < len(row) {
			out[i] = row[i]
		}
	}
	return out
}
