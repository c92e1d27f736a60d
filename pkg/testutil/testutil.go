// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"testing"
)

// Cleanuper wraps the Cleanup method of testing.T and testing.B.
type Cleanuper interface {
	Cleanup(func())
}

// InTempDir creates a new temporary directory, changes into it, and
// arranges to change back and remove the directory when the test finishes.
func InTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "smython.test")
	if err != nil {
		t.Fatalf("make temp dir: %v", err)
	}
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(oldWd)
		os.RemoveAll(dir)
	})
	return dir
}

// Setenv sets an environment variable and arranges to restore it when the
// test finishes.
func Setenv(t *testing.T, name, value string) {
	t.Helper()
	old, had := os.LookupEnv(name)
	os.Setenv(name, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(name, old)
		} else {
			os.Unsetenv(name)
		}
	})
}

// MustWriteFile writes a file with the given content, failing the test on
// error.
func MustWriteFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
