package performance

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/webweaver/studio/pkg/recording"
	studiotest "github.com/webweaver/studio/pkg/testing"
)

// =============================================================================
// Performance Benchmarks for Recording Capture and the .wwrec Codec
// =============================================================================

// newBenchSession creates a started session writing into a temp directory.
func newBenchSession(b *testing.B) *recording.Session {
	b.Helper()

	cfg := recording.SessionConfig{
		RecordingsDir: b.TempDir(),
		Browser:       "chromium",
		BaseURL:       "https://bench.example.com",
	}
	sess := recording.New(cfg, nil)
	if err := sess.Start("bench"); err != nil {
		b.Fatalf("failed to start session: %v", err)
	}
	return sess
}

// benchDocument builds an in-memory document with n events.
func benchDocument(n int) *recording.Document {
	doc := &recording.Document{
		Version: recording.FormatVersion,
		Recording: recording.RecordingData{
			ID:        "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d",
			Name:      "bench",
			CreatedAt: "2026-03-01T09:00:00Z",
			Browser:   "chromium",
			BaseURL:   "https://bench.example.com",
		},
	}
	for i := 0; i < n; i++ {
		doc.Recording.Events = append(doc.Recording.Events, recording.Event{
			Index:     i,
			Timestamp: int64(i * 100),
			Type:      recording.EventDomClick,
			Payload:   json.RawMessage(`{"selector": "#item-42", "button": "left"}`),
		})
	}
	return doc
}

// BenchmarkSessionAppend measures capture cost including the disk flush.
// Every append rewrites the whole file, so per-op cost grows with the
// event count; the numbers reflect a growing recording, not a fixed one.
func BenchmarkSessionAppend(b *testing.B) {
	sess := newBenchSession(b)
	payload := json.RawMessage(`{"selector": "#item-42", "button": "left"}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := sess.AppendEvent(recording.EventDomClick, payload); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()

	if err := sess.Stop(); err != nil {
		b.Fatal(err)
	}
}

func BenchmarkCodecEncode(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%devents", n), func(b *testing.B) {
			doc := benchDocument(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := doc.Encode(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCodecLoadDocument(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%devents", n), func(b *testing.B) {
			path := writeBenchRecording(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := recording.LoadDocument(path); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCodecLoadMetadata measures the cheap header-only read used by
// discovery, on a large file where skipping the events matters.
func BenchmarkCodecLoadMetadata(b *testing.B) {
	path := writeBenchRecording(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := recording.LoadMetadata(path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidateDocument(b *testing.B) {
	data, err := benchDocument(100).Encode()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		violations, err := recording.ValidateDocument(data)
		if err != nil {
			b.Fatal(err)
		}
		if len(violations) != 0 {
			b.Fatalf("unexpected violations: %v", violations)
		}
	}
}

func BenchmarkDiscoverRecordings(b *testing.B) {
	fixture := studiotest.New(b)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		fixture.Recording(fmt.Sprintf("run-%02d", i)).
			WithCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			WithEvent(recording.EventNavGoto, map[string]string{"url": "/"}).
			Create()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		metas, err := fixture.Solution().DiscoverRecordings(nil)
		if err != nil {
			b.Fatal(err)
		}
		if len(metas) != 50 {
			b.Fatalf("expected 50 recordings, got %d", len(metas))
		}
	}
}

// writeBenchRecording stores an n-event recording and returns its path.
func writeBenchRecording(b *testing.B, n int) string {
	b.Helper()

	fixture := studiotest.New(b)
	builder := fixture.Recording("bench")
	for i := 0; i < n; i++ {
		builder.WithEvent(recording.EventDomClick, json.RawMessage(`{"selector": "#item-42"}`))
	}
	return builder.Create()
}
