package testing

import (
	"testing"

	"github.com/webweaver/studio/pkg/solution"
)

// SolutionFixture is a test helper for building solutions on disk.
// It provides a fluent API for seeding recording files into the
// solution's recordings directory.
type SolutionFixture struct {
	t   testing.TB
	sol *solution.Solution
}

// New creates a solution named "testsite" in a test temporary directory.
// The directory is removed automatically when the test completes.
func New(t testing.TB) *SolutionFixture {
	t.Helper()
	return NewNamed(t, "testsite")
}

// NewNamed creates a solution with the given name in a test temporary
// directory, with the standard layout created and the .wws file written.
func NewNamed(t testing.TB, name string) *SolutionFixture {
	t.Helper()

	sol := &solution.Solution{
		Name:          name,
		Dir:           t.TempDir(),
		BaseURL:       "https://" + name + ".example.com",
		Browser:       "chromium",
		LaunchOptions: solution.DefaultLaunchOptions(),
	}
	if err := sol.EnsureLayout(); err != nil {
		t.Fatalf("failed to create solution layout: %v", err)
	}
	if err := sol.Save(); err != nil {
		t.Fatalf("failed to write solution file: %v", err)
	}
	return &SolutionFixture{t: t, sol: sol}
}

// Solution returns the fixture's in-memory solution.
func (f *SolutionFixture) Solution() *solution.Solution {
	return f.sol
}

// Path returns the location of the solution's .wws file.
func (f *SolutionFixture) Path() string {
	return f.sol.FilePath()
}

// RecordingsDir returns the solution's recordings directory.
func (f *SolutionFixture) RecordingsDir() string {
	return f.sol.RecordingsDir()
}
