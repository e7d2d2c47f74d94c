package recording

import (
	"strings"
	"testing"
)

func TestDocumentEncode(t *testing.T) {
	doc := &Document{
		Version: FormatVersion,
		Recording: RecordingData{
			ID:        "2f1d9c4a-8b3e-4f7a-9c1d-5e6f7a8b9c0d",
			Name:      "smoke",
			CreatedAt: "2026-01-12T09:30:00Z",
			Browser:   "chromium",
			BaseURL:   "https://x",
		},
	}

	data, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := string(data)

	if !strings.HasSuffix(out, "\n") {
		t.Error("encoded document missing trailing newline")
	}
	if !strings.Contains(out, "\n    \"recording\"") {
		t.Errorf("expected 4-space indentation:\n%s", out)
	}
	if !strings.Contains(out, `"events": []`) {
		t.Errorf("nil events must encode as an empty array:\n%s", out)
	}
	if strings.Contains(out, "null") {
		t.Errorf("encoded document contains null:\n%s", out)
	}
}
