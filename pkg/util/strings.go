// Package util provides shared utility functions for studio.
package util

// MaxPayloadDisplay is the default maximum payload size for display (120 bytes).
const MaxPayloadDisplay = 120

// TruncatePayload truncates a string to maxSize bytes, appending "...(truncated)" if truncated.
// If maxSize <= 0, uses MaxPayloadDisplay.
func TruncatePayload(data string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxPayloadDisplay
	}
	if len(data) > maxSize {
		return data[:maxSize] + "...(truncated)"
	}
	return data
}
