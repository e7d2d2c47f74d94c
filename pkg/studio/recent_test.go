package studio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRecentLoadMissingFile(t *testing.T) {
	r, err := LoadRecentFrom(filepath.Join(t.TempDir(), "recent_solutions.json"))
	if err != nil {
		t.Fatalf("LoadRecentFrom: %v", err)
	}
	if got := r.Paths(); len(got) != 0 {
		t.Errorf("Paths = %v, want empty", got)
	}
}

func TestRecentAddOrderAndDedupe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent_solutions.json")
	r, err := LoadRecentFrom(path)
	if err != nil {
		t.Fatalf("LoadRecentFrom: %v", err)
	}

	for _, p := range []string{"/w/a.wws", "/w/b.wws", "/w/c.wws"} {
		if err := r.Add(p); err != nil {
			t.Fatalf("Add(%q): %v", p, err)
		}
	}
	want := []string{"/w/c.wws", "/w/b.wws", "/w/a.wws"}
	if got := r.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}

	// Re-adding an existing entry moves it to the front.
	if err := r.Add("/w/a.wws"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	want = []string{"/w/a.wws", "/w/c.wws", "/w/b.wws"}
	if got := r.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths after re-add = %v, want %v", got, want)
	}

	// Every Add persists; a fresh load sees the same list.
	reloaded, err := LoadRecentFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded Paths = %v, want %v", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	var doc struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing file: %v", err)
	}
	if doc.Version != 1 {
		t.Errorf("version = %d, want 1", doc.Version)
	}
}

func TestRecentCap(t *testing.T) {
	r, err := LoadRecentFrom(filepath.Join(t.TempDir(), "recent_solutions.json"))
	if err != nil {
		t.Fatalf("LoadRecentFrom: %v", err)
	}
	for i := 1; i <= 12; i++ {
		if err := r.Add(fmt.Sprintf("/w/s%02d.wws", i)); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	got := r.Paths()
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0] != "/w/s12.wws" || got[9] != "/w/s03.wws" {
		t.Errorf("kept range %s .. %s, want /w/s12.wws .. /w/s03.wws", got[0], got[9])
	}
}

func TestRecentLoadTruncatesOversizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent_solutions.json")
	items := make([]string, 13)
	for i := range items {
		items[i] = fmt.Sprintf("/w/s%02d.wws", i)
	}
	data, err := json.Marshal(map[string]any{"version": 1, "recentSolutions": items})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadRecentFrom(path)
	if err != nil {
		t.Fatalf("LoadRecentFrom: %v", err)
	}
	if got := len(r.Paths()); got != 10 {
		t.Errorf("len = %d, want 10", got)
	}
}

func TestRecentMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent_solutions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRecentFrom(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestRecentUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent_solutions.json")
	if err := os.WriteFile(path, []byte(`{"version": 2, "recentSolutions": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRecentFrom(path); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestRecentSaveCreatesDirAndEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config", "recent_solutions.json")
	r, err := LoadRecentFrom(path)
	if err != nil {
		t.Fatalf("LoadRecentFrom: %v", err)
	}
	if err := r.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.Contains(string(data), `"recentSolutions": []`) {
		t.Errorf("empty list not written as []:\n%s", data)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("file does not end with a newline")
	}
}
