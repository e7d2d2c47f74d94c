// Package fsutil provides small filesystem helpers shared across the studio:
// atomic file replacement, directory creation, and writability probing.
package fsutil

import (
	"fmt"
	"os"
)

// WriteFileAtomic writes data to path using a temporary file and rename so
// readers never observe a partially written file. The parent directory must
// already exist.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		// Clean up temp file on failure
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// probeWritable reports whether a throwaway file can be created in dir.
// Used on platforms without a cheap access(2) check.
func probeWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".writecheck-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
