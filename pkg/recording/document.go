package recording

import (
	"encoding/json"
	"fmt"

	"github.com/webweaver/studio/internal/fsutil"
)

// Event is a single captured interaction.
type Event struct {
	// Index is the event's position in the recording, sequential from 0.
	Index int `json:"index"`

	// Timestamp is milliseconds since session start (monotonic clock).
	Timestamp int64 `json:"timestamp"`

	// Type classifies the interaction.
	Type EventType `json:"type"`

	// Payload carries the event's type-specific fields as raw JSON.
	Payload json.RawMessage `json:"payload"`
}

// Document is the full on-disk .wwrec structure.
type Document struct {
	Version   int           `json:"version"`
	Recording RecordingData `json:"recording"`
}

// RecordingData is the recording object inside a Document.
type RecordingData struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"createdAt"`
	Browser   string  `json:"browser"`
	BaseURL   string  `json:"baseUrl"`
	Events    []Event `json:"events"`
}

// UnmarshalJSON accepts documents written by old studio builds, which
// stored the event array under "steps" instead of "events". Re-encoding
// always writes "events".
func (r *RecordingData) UnmarshalJSON(data []byte) error {
	type alias RecordingData
	aux := struct {
		alias
		Steps []Event `json:"steps"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = RecordingData(aux.alias)
	if r.Events == nil && aux.Steps != nil {
		r.Events = aux.Steps
	}
	return nil
}

// Encode serializes the document as pretty-printed JSON with a trailing
// newline, the exact layout recording files are stored in.
func (d *Document) Encode() ([]byte, error) {
	if d.Recording.Events == nil {
		d.Recording.Events = []Event{}
	}
	data, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recording: %w", err)
	}
	return append(data, '\n'), nil
}

// writeDocument persists a document with an atomic replace so a reader
// never sees a torn file.
func writeDocument(path string, doc *Document) error {
	data, err := doc.Encode()
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write recording file: %w", err)
	}
	return nil
}
