package platform

import (
	"runtime"
	"testing"
)

func TestCurrent(t *testing.T) {
	got := Current()
	switch runtime.GOOS {
	case "windows":
		if got != Win64 {
			t.Errorf("Current() = %v, want Win64", got)
		}
	case "linux":
		if got != Linux {
			t.Errorf("Current() = %v, want Linux", got)
		}
	case "darwin":
		if got != MacOS {
			t.Errorf("Current() = %v, want MacOS", got)
		}
	default:
		if got != Unknown {
			t.Errorf("Current() = %v, want Unknown", got)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		p    Platform
		want string
	}{
		{Win64, "WIN64"},
		{Linux, "Linux"},
		{MacOS, "MacOS"},
		{Unknown, "Unknown"},
		{Platform("freebsd"), "Unknown"},
		{Platform(""), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Platform(%q).String() = %q, want %q", string(tt.p), got, tt.want)
		}
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
	}{
		{"WIN64", Win64},
		{"Linux", Linux},
		{"MacOS", MacOS},
		{"Unknown", Unknown},
		{"win64", Unknown},
		{"macos", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		if got := FromString(tt.in); got != tt.want {
			t.Errorf("FromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, p := range []Platform{Win64, Linux, MacOS, Unknown} {
		if got := FromString(p.String()); got != p {
			t.Errorf("FromString(String(%v)) = %v", p, got)
		}
	}
}
