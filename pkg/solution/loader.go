package solution

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/webweaver/studio/internal/fsutil"
)

// Common errors for solution loading/saving.
var (
	ErrNotFound           = errors.New("solution file not found")
	ErrMalformed          = errors.New("solution file malformed")
	ErrMissingVersion     = errors.New("solution version missing")
	ErrUnsupportedVersion = errors.New("unsupported solution version")
	ErrMissingSolution    = errors.New("solution object missing")
	ErrMissingField       = errors.New("required solution field missing")
)

// formatVersion is the current .wws format version.
const formatVersion = 1

// wwsDocument is the on-disk .wws structure.
type wwsDocument struct {
	Version  *int         `json:"version"`
	Solution *wwsSolution `json:"solution"`
}

type wwsSolution struct {
	SolutionName             string         `json:"solutionName"`
	SolutionDirectory        string         `json:"solutionDirectory"`
	SolutionDirectoryCreated bool           `json:"solutionDirectoryCreated"`
	BaseURL                  string         `json:"baseUrl"`
	Browser                  string         `json:"browser"`
	LaunchOptions            *LaunchOptions `json:"launchOptions,omitempty"`
}

// Load reads a .wws file.
//
// Unlike recording files, a solution file must carry an explicit version.
// The required fields are solutionName, solutionDirectory, baseUrl and
// browser; launchOptions is optional and defaults per DefaultLaunchOptions.
// Unknown fields are ignored.
func Load(path string) (*Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read solution file: %w", err)
	}

	var doc wwsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	if doc.Version == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingVersion, path)
	}
	if *doc.Version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, *doc.Version)
	}
	if doc.Solution == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSolution, path)
	}

	required := map[string]string{
		"solutionName":      doc.Solution.SolutionName,
		"solutionDirectory": doc.Solution.SolutionDirectory,
		"baseUrl":           doc.Solution.BaseURL,
		"browser":           doc.Solution.Browser,
	}
	for _, field := range []string{"solutionName", "solutionDirectory", "baseUrl", "browser"} {
		if required[field] == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	opts := DefaultLaunchOptions()
	if doc.Solution.LaunchOptions != nil {
		opts = *doc.Solution.LaunchOptions
	}

	return &Solution{
		Name:                 doc.Solution.SolutionName,
		Dir:                  doc.Solution.SolutionDirectory,
		CreateDirForSolution: doc.Solution.SolutionDirectoryCreated,
		BaseURL:              doc.Solution.BaseURL,
		Browser:              doc.Solution.Browser,
		LaunchOptions:        opts,
	}, nil
}

// Save writes the solution to its FilePath as pretty-printed JSON using an
// atomic replace. The solution directory must exist; EnsureLayout creates it.
func (s *Solution) Save() error {
	version := formatVersion
	opts := s.LaunchOptions
	doc := wwsDocument{
		Version: &version,
		Solution: &wwsSolution{
			SolutionName:             s.Name,
			SolutionDirectory:        s.Dir,
			SolutionDirectoryCreated: s.CreateDirForSolution,
			BaseURL:                  s.BaseURL,
			Browser:                  s.Browser,
			LaunchOptions:            &opts,
		},
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}
	data = append(data, '\n')

	if err := fsutil.WriteFileAtomic(s.FilePath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write solution file: %w", err)
	}
	return nil
}
