// Package platform identifies the host operating system using the token set
// that solution files and support tooling expect.
package platform

import "runtime"

// Platform is the host operating system as the studio names it.
type Platform string

const (
	Win64   Platform = "WIN64"
	Linux   Platform = "Linux"
	MacOS   Platform = "MacOS"
	Unknown Platform = "Unknown"
)

// Current returns the platform the process is running on.
func Current() Platform {
	switch runtime.GOOS {
	case "windows":
		return Win64
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	default:
		return Unknown
	}
}

// String returns the platform token.
func (p Platform) String() string {
	switch p {
	case Win64, Linux, MacOS:
		return string(p)
	default:
		return string(Unknown)
	}
}

// FromString parses a platform token. Unrecognized input maps to Unknown.
func FromString(s string) Platform {
	switch s {
	case string(Win64):
		return Win64
	case string(Linux):
		return Linux
	case string(MacOS):
		return MacOS
	default:
		return Unknown
	}
}
