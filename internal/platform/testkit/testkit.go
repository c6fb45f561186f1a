// Package testkit holds small assertion helpers shared by package tests.
package testkit

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic asserts fn panics.
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic asserts fn returns normally.
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts needle occurs in haystack. On failure the haystack is
// dumped to a temp file so long payloads stay out of the test log.
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	path := filepath.Join(t.TempDir(), "haystack.txt")
	if err := os.WriteFile(path, []byte(haystack), 0o600); err != nil {
		t.Fatalf("missing %q (and could not dump haystack: %v)", needle, err)
	}
	t.Fatalf("missing %q, haystack written to %s", needle, path)
}

// InDelta asserts got is within tol of want. NaN never matches.
func InDelta(t *testing.T, want, got, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Fatalf("want %v +/- %v, got %v", want, tol, got)
	}
}

// MustErrContain asserts err is non-nil and its message contains needle.
func MustErrContain(t *testing.T, err error, needle string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", needle)
	}
	if !strings.Contains(err.Error(), needle) {
		t.Fatalf("error %q does not contain %q", err.Error(), needle)
	}
}
