package testing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/webweaver/studio/pkg/recording"
)

// RecordingBuilder builds stored .wwrec files using a fluent API.
type RecordingBuilder struct {
	fixture   *SolutionFixture
	name      string
	id        string
	createdAt time.Time
	events    []recording.Event
	err       error // First error encountered during building
}

// Recording starts a builder for a recording with the given name. The
// recording gets a fresh ID and the current time; override both with
// WithID and WithCreatedAt when a test needs deterministic values.
func (f *SolutionFixture) Recording(name string) *RecordingBuilder {
	return &RecordingBuilder{
		fixture:   f,
		name:      name,
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
	}
}

// setError records the first error encountered during building.
// Subsequent errors are ignored (first error wins pattern).
func (b *RecordingBuilder) setError(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns any error encountered during building.
func (b *RecordingBuilder) Err() error {
	return b.err
}

// WithID overrides the generated recording ID.
func (b *RecordingBuilder) WithID(id string) *RecordingBuilder {
	b.id = id
	return b
}

// WithCreatedAt overrides the recording's creation time. Discovery sorts
// newest first, so tests seeding several recordings set distinct times to
// pin the order.
func (b *RecordingBuilder) WithCreatedAt(ts time.Time) *RecordingBuilder {
	b.createdAt = ts.UTC()
	return b
}

// WithEvent appends an event of the given type, advancing the timestamp
// 100ms past the previous event. The payload can be a string, []byte,
// json.RawMessage, or any value that JSON encodes; nil stores an empty
// object.
func (b *RecordingBuilder) WithEvent(t recording.EventType, payload any) *RecordingBuilder {
	var ts int64
	if n := len(b.events); n > 0 {
		ts = b.events[n-1].Timestamp + 100
	}
	return b.WithEventAt(ts, t, payload)
}

// WithEventAt appends an event with an explicit timestamp in milliseconds
// since the start of the recording.
func (b *RecordingBuilder) WithEventAt(timestampMs int64, t recording.EventType, payload any) *RecordingBuilder {
	raw, err := encodePayload(payload)
	if err != nil {
		b.setError(fmt.Errorf("WithEventAt: %w", err))
		return b
	}
	b.events = append(b.events, recording.Event{
		Index:     len(b.events),
		Timestamp: timestampMs,
		Type:      t,
		Payload:   raw,
	})
	return b
}

// Create writes the recording into the solution's recordings directory
// and returns the file path. Any error collected while building fails
// the test.
func (b *RecordingBuilder) Create() string {
	b.fixture.t.Helper()

	if b.err != nil {
		b.fixture.t.Fatalf("invalid recording fixture %q: %v", b.name, b.err)
	}

	doc := &recording.Document{
		Version: recording.FormatVersion,
		Recording: recording.RecordingData{
			ID:        b.id,
			Name:      b.name,
			CreatedAt: b.createdAt.Format(time.RFC3339),
			Browser:   b.fixture.sol.Browser,
			BaseURL:   b.fixture.sol.BaseURL,
			Events:    b.events,
		},
	}
	data, err := doc.Encode()
	if err != nil {
		b.fixture.t.Fatalf("failed to encode recording fixture %q: %v", b.name, err)
	}

	path := filepath.Join(b.fixture.sol.RecordingsDir(), b.name+recording.FileExt)
	if err := os.WriteFile(path, data, 0644); err != nil {
		b.fixture.t.Fatalf("failed to write recording fixture %q: %v", b.name, err)
	}
	return path
}

// encodePayload normalizes the payload forms WithEvent accepts into raw
// JSON. String forms are trusted to already hold JSON.
func encodePayload(payload any) (json.RawMessage, error) {
	switch v := payload.(type) {
	case nil:
		return json.RawMessage("{}"), nil
	case json.RawMessage:
		return v, nil
	case []byte:
		return json.RawMessage(v), nil
	case string:
		return json.RawMessage(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		return data, nil
	}
}
