package format

import (
	"bytes"
	"strings"
	"testing"
)

type rows struct{}

func (rows) Header() []string { return []string{"NAME", "RANGES"} }
func (rows) Rows() [][]string {
	return [][]string{{"work", "2"}, {"home"}}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"a": 1}, "", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "{\"a\":1}\n" {
		t.Fatalf("unexpected json %q", got)
	}
	buf.Reset()
	if err := Write(&buf, map[string]int{"a": 1}, "json", true); err != nil {
		t.Fatalf("write pretty: %v", err)
	}
	if got := buf.String(); got != "{\n  \"a\": 1\n}\n" {
		t.Fatalf("unexpected pretty json %q", got)
	}
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, rows{}, "table", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "RANGES") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	// uitable pads every column, the last one included.
	if row := strings.TrimRight(lines[1], " "); !strings.HasPrefix(row, "work") || !strings.HasSuffix(row, "2") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestWrite_TableFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []int{1}, "table", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "1") || !strings.HasPrefix(buf.String(), "[") {
		t.Fatalf("expected json fallback, got %q", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "edn", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
