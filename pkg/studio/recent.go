package studio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/webweaver/studio/internal/fsutil"
	"github.com/webweaver/studio/internal/paths"
)

// maxRecent caps the recently opened solutions list.
const maxRecent = 10

// recentDocument is the on-disk shape of the recent solutions file.
type recentDocument struct {
	Version         int      `json:"version"`
	RecentSolutions []string `json:"recentSolutions"`
}

// RecentSolutions is the most-recently-used list of solution file paths,
// newest first, persisted under the user config directory.
type RecentSolutions struct {
	path  string
	items []string
}

// LoadRecent reads the recent solutions list from its default location.
func LoadRecent() (*RecentSolutions, error) {
	return LoadRecentFrom(paths.RecentSolutionsPath())
}

// LoadRecentFrom reads the recent solutions list stored at path. A missing
// file yields an empty list.
func LoadRecentFrom(path string) (*RecentSolutions, error) {
	r := &RecentSolutions{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("failed to read recent solutions: %w", err)
	}

	var doc recentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("recent solutions file malformed: %w", err)
	}
	if doc.Version != 0 && doc.Version != 1 {
		return nil, fmt.Errorf("unsupported recent solutions version: %d", doc.Version)
	}

	r.items = doc.RecentSolutions
	if len(r.items) > maxRecent {
		r.items = r.items[:maxRecent]
	}
	return r, nil
}

// Paths returns the list, newest first. The returned slice is a copy.
func (r *RecentSolutions) Paths() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

// Add moves path to the front of the list, dropping any older entry for
// the same path and anything beyond the cap, then saves immediately.
func (r *RecentSolutions) Add(path string) error {
	path = filepath.Clean(path)

	items := make([]string, 0, len(r.items)+1)
	items = append(items, path)
	for _, p := range r.items {
		if p != path {
			items = append(items, p)
		}
	}
	if len(items) > maxRecent {
		items = items[:maxRecent]
	}
	r.items = items

	return r.Save()
}

// Save writes the list to its backing file, creating the config directory
// as needed.
func (r *RecentSolutions) Save() error {
	items := r.items
	if items == nil {
		items = []string{}
	}
	doc := recentDocument{Version: 1, RecentSolutions: items}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode recent solutions: %w", err)
	}
	data = append(data, '\n')

	if err := fsutil.EnsureDir(filepath.Dir(r.path)); err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recent solutions: %w", err)
	}
	return nil
}
