package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("DATEPICK_CONFIG_DIR", dir)
	p := filepath.Join(dir, "datepick.yaml")
	if err := os.WriteFile(p, []byte("language: en\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestRunDocsRaw(t *testing.T) {
	cfg := testConfig(t)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--config", cfg, "docs", "overview", "--raw"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "# datepick") {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}
}

func TestRunUnknownCommandFails(t *testing.T) {
	cfg := testConfig(t)
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"--config", cfg, "wat"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Fatalf("unexpected stderr:\n%s", stderr.String())
	}
}
