package testing

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/webweaver/studio/pkg/recording"
)

// AssertEventTypes asserts that the document holds exactly the given
// event types, in order.
func AssertEventTypes(t testing.TB, doc *recording.Document, want ...recording.EventType) {
	t.Helper()

	events := doc.Recording.Events
	if len(events) != len(want) {
		t.Errorf("expected %d events, got %d", len(want), len(events))
		return
	}
	for i, w := range want {
		if events[i].Type != w {
			t.Errorf("event %d: expected type %s, got %s", i, w, events[i].Type)
		}
	}
}

// AssertPayload asserts that the event's payload matches the expected JSON.
// The expected value can be a string, []byte, or any struct/map that will be
// JSON encoded. Comparison is structural, so key order does not matter.
func AssertPayload(t testing.TB, ev recording.Event, expected any) {
	t.Helper()

	var expectedJSON any
	var actualJSON any

	// Parse expected
	switch v := expected.(type) {
	case string:
		if err := json.Unmarshal([]byte(v), &expectedJSON); err != nil {
			t.Errorf("failed to parse expected JSON: %v", err)
			return
		}
	case []byte:
		if err := json.Unmarshal(v, &expectedJSON); err != nil {
			t.Errorf("failed to parse expected JSON: %v", err)
			return
		}
	default:
		// Marshal and unmarshal to normalize
		data, err := json.Marshal(v)
		if err != nil {
			t.Errorf("failed to marshal expected value: %v", err)
			return
		}
		if err := json.Unmarshal(data, &expectedJSON); err != nil {
			t.Errorf("failed to parse expected JSON: %v", err)
			return
		}
	}

	// Parse actual
	if err := json.Unmarshal(ev.Payload, &actualJSON); err != nil {
		t.Errorf("failed to parse event %d payload as JSON: %v", ev.Index, err)
		return
	}

	if !reflect.DeepEqual(expectedJSON, actualJSON) {
		t.Errorf("event %d payload mismatch:\nexpected: %v\nactual:   %v", ev.Index, expectedJSON, actualJSON)
	}
}

// AssertSequential asserts that event indexes count up from zero and
// timestamps never decrease.
func AssertSequential(t testing.TB, doc *recording.Document) {
	t.Helper()

	var last int64
	for i, ev := range doc.Recording.Events {
		if ev.Index != i {
			t.Errorf("event %d: expected index %d, got %d", i, i, ev.Index)
		}
		if ev.Timestamp < last {
			t.Errorf("event %d: timestamp %dms is earlier than the previous event's %dms", i, ev.Timestamp, last)
		} else {
			last = ev.Timestamp
		}
	}
}
