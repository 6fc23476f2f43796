package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func noEnv(string) string { return "" }

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	s, err := load(viper.New(), "", func(k string) string {
		if k == EnvConfigDir {
			return dir
		}
		return ""
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Language != "en" || s.Type != "date" || s.Format != "yyyy-MM-dd" || !s.AutoClose || s.ShowAlways || s.Theme != "auto" {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.Ranges != nil {
		t.Fatalf("no ranges should mean unrestricted, got %v", s.Ranges)
	}
	if filepath.Base(s.DB) != "datepick.db" || s.DB[0] == '~' {
		t.Fatalf("db path should be expanded, got %q", s.DB)
	}
}

func TestLoad_FileFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	yaml := `language: ko
type: month
auto_close: false
timepicker: true
ranges:
  - ["2015-01-01", "2015-01-31"]
  - [1420070400000, 1420156800000]
`
	if err := os.WriteFile(filepath.Join(dir, "datepick.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := load(viper.New(), "", func(k string) string {
		if k == EnvConfigDir {
			return dir
		}
		return ""
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Language != "ko" || s.Type != "month" || s.AutoClose || !s.TimePicker {
		t.Fatalf("file values not applied: %+v", s)
	}
	if s.File != filepath.Join(dir, "datepick.yaml") {
		t.Fatalf("unexpected config file %q", s.File)
	}
	if len(s.Ranges) != 2 {
		t.Fatalf("expected two ranges, got %v", s.Ranges)
	}
	start, ok, err := s.Ranges[1][0].Resolve(time.UTC)
	if err != nil || !ok || start.Year() != 2015 {
		t.Fatalf("millisecond endpoint not parsed: %v %v %v", start, ok, err)
	}
	opts := s.PickerOptions(time.UTC)
	if opts.Type != "month" || opts.AutoClose || len(opts.SelectableRanges) != 2 {
		t.Fatalf("unexpected picker options %+v", opts)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("language: ko\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("DATEPICK_LANGUAGE", "en")
	t.Setenv("DATEPICK_RANGES", "2015-01-01..2015-01-31,2016-01-01..2016-01-02")
	s, err := load(viper.New(), path, noEnv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Language != "en" {
		t.Fatalf("env should override file, got %q", s.Language)
	}
	if len(s.Ranges) != 2 {
		t.Fatalf("env ranges not parsed: %v", s.Ranges)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"), noEnv); err == nil {
		t.Fatalf("expected error for a missing explicit config file")
	}
}

func TestLoad_BadRanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datepick.yaml")
	if err := os.WriteFile(path, []byte("ranges:\n  - [\"2015-01-01\"]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := load(viper.New(), path, noEnv)
	var re *RangeError
	if !errors.As(err, &re) || re.Index != 0 {
		t.Fatalf("expected RangeError for index 0, got %v", err)
	}
}

func TestParseRange(t *testing.T) {
	a, b, err := ParseRange(" 2015-01-01..2015-01-31 ", time.UTC)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if a.String() != "2015-01-01" || b.String() != "2015-01-31" {
		t.Fatalf("unexpected ends %v %v", a, b)
	}
	for _, bad := range []string{"2015-01-01", "..2015-01-31", "x..y"} {
		if _, _, err := ParseRange(bad, time.UTC); err == nil {
			t.Fatalf("ParseRange(%q) should fail", bad)
		}
	}
	if _, err := ParseRanges([]string{"2015-01-01..2015-01-02", "oops"}, time.UTC); err == nil {
		t.Fatalf("expected error from a bad item")
	}
}
