package recording

import (
	"encoding/json"
	"errors"
)

// Errors for recording files and sessions.
var (
	ErrSessionActive      = errors.New("recording session already active")
	ErrNotFound           = errors.New("recording file not found")
	ErrMalformed          = errors.New("recording file malformed")
	ErrMissingRecording   = errors.New("recording object missing")
	ErrMissingField       = errors.New("required recording field missing")
	ErrUnsupportedVersion = errors.New("unsupported recording format version")
)

// FormatVersion is the current .wwrec format version.
const FormatVersion = 1

// FileExt is the extension recording files are stored under.
const FileExt = ".wwrec"

// EventType identifies the kind of captured interaction.
type EventType string

const (
	EventNavGoto  EventType = "nav.goto"
	EventDomClick EventType = "dom.click"
	EventWait     EventType = "wait"
	EventUnknown  EventType = "unknown"
)

// IsValid checks if the event type is one of the known kinds.
func (t EventType) IsValid() bool {
	switch t {
	case EventNavGoto, EventDomClick, EventWait, EventUnknown:
		return true
	default:
		return false
	}
}

// String returns the wire token for the event type. Any value outside the
// known set collapses to "unknown", so serialization is total.
func (t EventType) String() string {
	if t.IsValid() {
		return string(t)
	}
	return string(EventUnknown)
}

// EventTypeFromString maps a wire token to an EventType. Unrecognized
// tokens map to EventUnknown; parsing never fails.
func EventTypeFromString(s string) EventType {
	switch s {
	case string(EventNavGoto):
		return EventNavGoto
	case string(EventDomClick):
		return EventDomClick
	case string(EventWait):
		return EventWait
	default:
		return EventUnknown
	}
}

// MarshalJSON writes the wire token, collapsing unknown values.
func (t EventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON reads a wire token, mapping unrecognized ones to EventUnknown.
func (t *EventType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = EventTypeFromString(s)
	return nil
}
