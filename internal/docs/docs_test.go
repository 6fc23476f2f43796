package docs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopics(t *testing.T) {
	want := []string{"config", "keys", "overview", "ranges"}
	if diff := cmp.Diff(want, Topics()); diff != "" {
		t.Fatalf("topics mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" Ranges ")
	if !ok || !strings.HasPrefix(body, "# Ranges") {
		t.Fatalf("unexpected ranges topic: %v %q", ok, body)
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("unknown topic should not be found")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("blank topic should not be found")
	}
	if !strings.Contains(Keys(), "backspace") {
		t.Fatalf("keys topic should list the drill-up key")
	}
}

func TestIndexTitles(t *testing.T) {
	want := []Topic{
		{Name: "config", Title: "Configuration"},
		{Name: "keys", Title: "Keys"},
		{Name: "overview", Title: "datepick"},
		{Name: "ranges", Title: "Ranges"},
	}
	if diff := cmp.Diff(want, Index()); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ranges", "ranges", true},
		{"RAN", "ranges", true},
		{"k", "keys", true},
		{"o", "overview", true},
		{"x", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Resolve(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Resolve(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
	if body, ok := Get("conf"); !ok || !strings.HasPrefix(body, "# Configuration") {
		t.Fatalf("prefix lookup failed: %v", ok)
	}
}
