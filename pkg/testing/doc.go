// Package testing provides a testing SDK for building WebWeaver solutions
// and recordings in Go tests.
//
// This package makes it easy to create a throwaway solution on disk and
// seed it with recording files using a fluent builder API.
//
// # Basic Usage
//
// Create a solution fixture, seed a recording, and load it back:
//
//	func TestMyFeature(t *testing.T) {
//	    fixture := testing.New(t)
//
//	    path := fixture.Recording("checkout").
//	        WithEvent(recording.EventNavGoto, map[string]string{"url": "/cart"}).
//	        WithEvent(recording.EventDomClick, map[string]string{"selector": "#pay"}).
//	        Create()
//
//	    doc, err := recording.LoadDocument(path)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    testing.AssertEventTypes(t, doc, recording.EventNavGoto, recording.EventDomClick)
//	}
//
// # Fluent Builder API
//
// The RecordingBuilder provides a fluent interface for shaping stored
// recordings, including the header fields discovery and validation read:
//
//	fixture.Recording("smoke").
//	    WithID("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d").
//	    WithCreatedAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)).
//	    WithEventAt(0, recording.EventNavGoto, map[string]string{"url": "/"}).
//	    WithEventAt(1500, recording.EventWait, nil).
//	    Create()
//
// Builders collect the first error they hit; Create fails the test when
// one occurred. Use Err to inspect the error without failing.
//
// # Assertions
//
// Assertion helpers inspect loaded documents:
//
//	testing.AssertEventTypes(t, doc, recording.EventNavGoto, recording.EventWait)
//	testing.AssertPayload(t, doc.Recording.Events[0], `{"url": "/"}`)
//	testing.AssertSequential(t, doc)
//
// The solution fixture lives in a test temporary directory, so everything
// is removed when the test completes.
package testing
