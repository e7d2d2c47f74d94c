package solution

import "encoding/json"

// WindowSize is an explicit browser window size in pixels.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LaunchOptions configures how the solution's browser is launched for a
// capture. Absent fields take the defaults from DefaultLaunchOptions.
type LaunchOptions struct {
	PrivateMode             bool `json:"privateMode"`
	DisableExtensions       bool `json:"disableExtensions"`
	DisableNotifications    bool `json:"disableNotifications"`
	IgnoreCertificateErrors bool `json:"ignoreCertificateErrors"`
	Maximised               bool `json:"maximised"`

	// UserAgent overrides the browser's user agent when non-empty.
	UserAgent string `json:"userAgent,omitempty"`

	// WindowSize sets an explicit window size; nil leaves the browser's
	// own default. Ignored when Maximised is set.
	WindowSize *WindowSize `json:"windowSize,omitempty"`
}

// DefaultLaunchOptions returns the launch options used when a solution
// does not specify any: a clean private profile with extensions and
// notifications off.
func DefaultLaunchOptions() LaunchOptions {
	return LaunchOptions{
		PrivateMode:          true,
		DisableExtensions:    true,
		DisableNotifications: true,
	}
}

// UnmarshalJSON decodes launch options on top of the defaults, so a file
// that names only some fields keeps the default for the rest. A window
// size missing either dimension is dropped.
func (o *LaunchOptions) UnmarshalJSON(data []byte) error {
	type alias LaunchOptions
	aux := alias(DefaultLaunchOptions())
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.WindowSize != nil && (aux.WindowSize.Width <= 0 || aux.WindowSize.Height <= 0) {
		aux.WindowSize = nil
	}
	*o = LaunchOptions(aux)
	return nil
}
