// Package recording implements capture sessions and the .wwrec file format.
//
// A recording is a named sequence of browser interaction events (navigation,
// clicks, waits) captured while the user exercises a site. Recordings are
// durable: the session rewrites the whole document to disk after every
// appended event, so a crash loses at most the event being written.
//
// # File format
//
// A .wwrec file is pretty-printed JSON:
//
//	{
//	    "version": 1,
//	    "recording": {
//	        "id": "2f1d9c4a-8b3e-4f7a-9c1d-5e6f7a8b9c0d",
//	        "name": "checkout-flow",
//	        "createdAt": "2026-01-12T09:30:00Z",
//	        "browser": "chromium",
//	        "baseUrl": "https://shop.example",
//	        "events": [
//	            {"index": 0, "timestamp": 0, "type": "nav.goto", "payload": {"url": "/"}}
//	        ]
//	    }
//	}
//
// Event timestamps are milliseconds since session start, measured on the
// monotonic clock. Indices are sequential from zero.
//
// Sessions are single-threaded by contract: the studio drives them from one
// goroutine, so Session does no internal locking.
package recording
