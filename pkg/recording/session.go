package recording

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/webweaver/studio/internal/fsutil"
	"github.com/webweaver/studio/internal/id"
	"github.com/webweaver/studio/pkg/logging"
)

// filenameStamp is the timestamp layout used in recording file names.
// Compact ISO 8601 keeps the name free of characters Windows rejects.
const filenameStamp = "20060102T150405Z"

// SessionConfig carries the solution fields a session needs. The values
// are copied at construction so the session never reaches back into a
// solution that may have been closed or reloaded.
type SessionConfig struct {
	// RecordingsDir is the directory recordings are written into.
	RecordingsDir string

	// Browser is the browser identifier stamped into each recording.
	Browser string

	// BaseURL is the solution's base URL stamped into each recording.
	BaseURL string
}

// Session captures interaction events into a durable .wwrec file.
//
// At most one capture is active per session at a time. The full document
// is rewritten to disk on every mutation, so the file on disk is always
// complete and parseable. Sessions are driven from a single goroutine.
type Session struct {
	cfg SessionConfig
	log *slog.Logger

	active    bool
	doc       *Document
	filePath  string
	nextIndex int
	startedAt time.Time
}

// New creates a session for the given solution-derived configuration.
// A nil logger disables logging.
func New(cfg SessionConfig, log *slog.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{cfg: cfg, log: log}
}

// Start begins a new capture named name.
//
// It creates the recordings directory if needed, writes an initial document
// with a fresh id and an empty event list, and marks the session active.
// Starting while a capture is already active returns ErrSessionActive and
// changes nothing. If the initial write fails the session stays inactive.
func (s *Session) Start(name string) error {
	if s.active {
		return ErrSessionActive
	}

	if err := fsutil.EnsureDir(s.cfg.RecordingsDir); err != nil {
		return fmt.Errorf("failed to create recordings directory: %w", err)
	}

	now := time.Now()
	doc := &Document{
		Version: FormatVersion,
		Recording: RecordingData{
			ID:        id.UUID(),
			Name:      name,
			CreatedAt: now.UTC().Format(time.RFC3339),
			Browser:   s.cfg.Browser,
			BaseURL:   s.cfg.BaseURL,
			Events:    []Event{},
		},
	}

	path := filepath.Join(s.cfg.RecordingsDir, name+"_"+now.UTC().Format(filenameStamp)+FileExt)
	if err := writeDocument(path, doc); err != nil {
		return err
	}

	s.active = true
	s.doc = doc
	s.filePath = path
	s.nextIndex = 0
	s.startedAt = now

	s.log.Info("recording started", "name", name, "id", doc.Recording.ID, "path", path)
	return nil
}

// AppendEvent records one interaction event.
//
// The event receives the next sequential index and a timestamp of
// milliseconds elapsed since Start, then the whole document is rewritten
// to disk. When no capture is active the call is a no-op. A nil or empty
// payload is stored as an empty object.
//
// If the disk write fails the event remains in the in-memory document and
// its index is not reused; the error reports the failed persist.
func (s *Session) AppendEvent(t EventType, payload json.RawMessage) error {
	if !s.active {
		return nil
	}

	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	ev := Event{
		Index:     s.nextIndex,
		Timestamp: time.Since(s.startedAt).Milliseconds(),
		Type:      t,
		Payload:   payload,
	}
	s.nextIndex++
	s.doc.Recording.Events = append(s.doc.Recording.Events, ev)

	if err := writeDocument(s.filePath, s.doc); err != nil {
		return fmt.Errorf("failed to persist event %d: %w", ev.Index, err)
	}
	return nil
}

// Stop ends the active capture, flushing the document a final time.
//
// The recording file is always kept. The session deactivates even when
// the final flush fails; the error reports the failed write. Stopping an
// inactive session is a no-op.
func (s *Session) Stop() error {
	if !s.active {
		return nil
	}

	err := writeDocument(s.filePath, s.doc)
	s.active = false

	if err != nil {
		return fmt.Errorf("failed to finalize recording: %w", err)
	}
	s.log.Info("recording stopped", "path", s.filePath, "events", len(s.doc.Recording.Events))
	return nil
}

// IsRecording reports whether a capture is active.
func (s *Session) IsRecording() bool {
	return s.active
}

// FilePath returns the path of the current (or most recent) recording
// file, or empty if no capture has started.
func (s *Session) FilePath() string {
	return s.filePath
}

// EventCount returns the number of events captured so far in the current
// (or most recent) recording.
func (s *Session) EventCount() int {
	if s.doc == nil {
		return 0
	}
	return len(s.doc.Recording.Events)
}
