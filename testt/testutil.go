// Package testt (for test tools), provides a couple of useful helpers
// for common test patterns. To be used as a optional companion of the
// assert/check library.
package testt

import (
	"os"
	"path/filepath"
	"testing"
)

// File writes the content to a file with the given name in a
// temporary directory owned by the test, and returns its path. The
// directory is removed when the test and its subtests complete.
func File(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// Path returns a path in a temporary directory owned by the test,
// without creating the file.
func Path(t testing.TB, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// Log calls t.Log with the given arguments *if* the test has failed.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Log(args...)
	}
}

// Logf calls t.Log with the given arguments *if* the test has failed.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Logf(format, args...)
	}
}
