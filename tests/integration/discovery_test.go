package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webweaver/studio/pkg/recording"
	studiotest "github.com/webweaver/studio/pkg/testing"
)

// legacyRecording stores its events under the "steps" key, the layout
// old studio builds wrote.
const legacyRecording = `{
    "version": 1,
    "recording": {
        "id": "b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e",
        "name": "legacy",
        "createdAt": "2025-11-02T10:00:00Z",
        "browser": "chromium",
        "baseUrl": "https://testsite.example.com",
        "steps": [
            {"index": 0, "timestamp": 0, "type": "nav.goto", "payload": {"url": "/"}},
            {"index": 1, "timestamp": 420, "type": "dom.click", "payload": {"selector": "#go"}}
        ]
    }
}
`

func TestDiscoveryAcrossFixtures(t *testing.T) {
	fixture := studiotest.New(t)
	base := time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC)

	fixture.Recording("alpha").WithCreatedAt(base).
		WithEvent(recording.EventNavGoto, map[string]string{"url": "/a"}).Create()
	fixture.Recording("beta").WithCreatedAt(base.Add(time.Minute)).Create()
	fixture.Recording("checkout").WithCreatedAt(base.Add(2 * time.Minute)).Create()

	// A stray non-recording file is ignored.
	require.NoError(t, os.WriteFile(filepath.Join(fixture.RecordingsDir(), "notes.txt"), []byte("x"), 0644))

	// A torn file is skipped, not fatal.
	require.NoError(t, os.WriteFile(filepath.Join(fixture.RecordingsDir(), "torn.wwrec"), []byte("{"), 0644))

	metas, err := fixture.Solution().DiscoverRecordings(nil)
	require.NoError(t, err)
	require.Len(t, metas, 3)
	assert.Equal(t, "checkout", metas[0].Name)
	assert.Equal(t, "beta", metas[1].Name)
	assert.Equal(t, "alpha", metas[2].Name)

	matched, err := fixture.Solution().DiscoverRecordingsMatching(nil, "check*")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "checkout", matched[0].Name)

	_, err = fixture.Solution().DiscoverRecordingsMatching(nil, "[broken")
	assert.Error(t, err)
}

// TestLegacyStepsDocument checks the read path for old "steps" files:
// discovery and the codec accept them, re-encoding normalizes them, and
// strict validation reports the stale layout.
func TestLegacyStepsDocument(t *testing.T) {
	fixture := studiotest.New(t)

	legacyPath := filepath.Join(fixture.RecordingsDir(), "legacy.wwrec")
	require.NoError(t, os.WriteFile(legacyPath, []byte(legacyRecording), 0644))

	// Discovery reads the header fields fine.
	metas, err := fixture.Solution().DiscoverRecordings(nil)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "legacy", metas[0].Name)

	// The codec migrates steps to events on load.
	doc, err := recording.LoadDocument(legacyPath)
	require.NoError(t, err)
	studiotest.AssertEventTypes(t, doc, recording.EventNavGoto, recording.EventDomClick)
	studiotest.AssertSequential(t, doc)

	// Re-encoding writes the canonical key.
	data, err := doc.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"events"`)
	assert.NotContains(t, string(data), `"steps"`)

	// Strict validation flags the old layout.
	violations, err := recording.ValidateFile(legacyPath)
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}
