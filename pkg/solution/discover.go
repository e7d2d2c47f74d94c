package solution

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/webweaver/studio/pkg/logging"
	"github.com/webweaver/studio/pkg/recording"
)

// DiscoverRecordings lists the recordings stored in the solution's
// recordings directory, newest first.
//
// Files that cannot be parsed are skipped with a warning rather than
// failing the scan; a missing recordings directory yields an empty list.
func (s *Solution) DiscoverRecordings(log *slog.Logger) ([]recording.Metadata, error) {
	return s.DiscoverRecordingsMatching(log, "")
}

// DiscoverRecordingsMatching is DiscoverRecordings restricted to recordings
// whose name matches the given glob pattern ("checkout*", "*flow*"). An
// empty pattern matches everything.
func (s *Solution) DiscoverRecordingsMatching(log *slog.Logger, pattern string) ([]recording.Metadata, error) {
	if log == nil {
		log = logging.Nop()
	}
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid recording name pattern %q", pattern)
	}

	dir := s.RecordingsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read recordings directory: %w", err)
	}

	var metas []recording.Metadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recording.FileExt) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		meta, err := recording.LoadMetadata(path)
		if err != nil {
			log.Warn("skipping recording file", "path", path, "error", err)
			continue
		}

		if pattern != "" {
			// Pattern validity was checked above.
			if ok, _ := doublestar.Match(pattern, meta.Name); !ok {
				continue
			}
		}
		metas = append(metas, *meta)
	}

	// Newest first; file name breaks ties so the order is stable.
	sort.Slice(metas, func(i, j int) bool {
		if !metas[i].CreatedAt.Equal(metas[j].CreatedAt) {
			return metas[i].CreatedAt.After(metas[j].CreatedAt)
		}
		return metas[i].FilePath < metas[j].FilePath
	})
	return metas, nil
}
