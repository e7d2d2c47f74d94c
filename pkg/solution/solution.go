package solution

import (
	"path/filepath"

	"github.com/webweaver/studio/internal/fsutil"
	"github.com/webweaver/studio/pkg/recording"
)

// FileExt is the extension solution files are stored under.
const FileExt = ".wws"

// Subdirectory names inside a solution directory.
const (
	pagesDirName      = "pages"
	scriptsDirName    = "scripts"
	recordingsDirName = "recordings"
)

// Solution describes a loaded .wws solution.
type Solution struct {
	// Name is the solution's display and file name.
	Name string

	// Dir is the directory recorded in the solution file.
	Dir string

	// CreateDirForSolution indicates the solution lives in its own
	// subdirectory of Dir rather than in Dir itself.
	CreateDirForSolution bool

	// BaseURL is the site recordings are made against.
	BaseURL string

	// Browser identifies the browser used for capture.
	Browser string

	// LaunchOptions configures how that browser is launched.
	LaunchOptions LaunchOptions
}

// SolutionDir returns the directory the solution's files live in. With
// CreateDirForSolution set, that is a subdirectory of Dir named after the
// solution; otherwise Dir itself.
func (s *Solution) SolutionDir() string {
	if s.CreateDirForSolution {
		return filepath.Join(s.Dir, s.Name)
	}
	return s.Dir
}

// FilePath returns the location of the solution's .wws file.
func (s *Solution) FilePath() string {
	return filepath.Join(s.SolutionDir(), s.Name+FileExt)
}

// PagesDir returns the directory holding page object definitions.
func (s *Solution) PagesDir() string {
	return filepath.Join(s.SolutionDir(), pagesDirName)
}

// ScriptsDir returns the directory holding capture scripts.
func (s *Solution) ScriptsDir() string {
	return filepath.Join(s.SolutionDir(), scriptsDirName)
}

// RecordingsDir returns the directory recordings are written into.
func (s *Solution) RecordingsDir() string {
	return filepath.Join(s.SolutionDir(), recordingsDirName)
}

// EnsureLayout creates the solution directory and its pages, scripts and
// recordings subdirectories. The returned error names the directory that
// could not be created.
func (s *Solution) EnsureLayout() error {
	dirs := []string{s.SolutionDir(), s.PagesDir(), s.ScriptsDir(), s.RecordingsDir()}
	for _, dir := range dirs {
		if err := fsutil.EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// SessionConfig copies the fields a recording session needs out of the
// solution. The session keeps the copies, so closing or reloading the
// solution cannot pull state out from under an active capture.
func (s *Solution) SessionConfig() recording.SessionConfig {
	return recording.SessionConfig{
		RecordingsDir: s.RecordingsDir(),
		Browser:       s.Browser,
		BaseURL:       s.BaseURL,
	}
}
