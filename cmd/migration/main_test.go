package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePositive(t *testing.T) {
	if n, err := parsePositive(nil, 1); err != nil || n != 1 {
		t.Fatalf("expected fallback 1, got %d (%v)", n, err)
	}
	if n, err := parsePositive([]string{" 3 "}, 1); err != nil || n != 3 {
		t.Fatalf("expected 3, got %d (%v)", n, err)
	}
	for _, raw := range []string{"0", "-2", "x"} {
		if _, err := parsePositive([]string{raw}, 1); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionArg(t *testing.T) {
	if _, err := parseVersionArg(nil); err == nil {
		t.Fatalf("expected error without argument")
	}
	if _, err := parseVersionArg([]string{"-1"}); err == nil {
		t.Fatalf("expected error for negative version")
	}
	v, err := parseVersionArg([]string{" 1772323200 "})
	if err != nil || v != 1772323200 {
		t.Fatalf("expected 1772323200, got %d (%v)", v, err)
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir.sql")
	if err := os.WriteFile(file, []byte("SELECT 1;"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := resolveMigrationsDir("", file, dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}

	if _, err := resolveMigrationsDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestWithPreparedBinaryDisabled(t *testing.T) {
	got := withPreparedBinaryDisabled("postgres://u:p@localhost:5432/championships")
	if got != "postgres://u:p@localhost:5432/championships?disable_prepared_binary_result=yes" {
		t.Fatalf("unexpected url: %q", got)
	}
}
