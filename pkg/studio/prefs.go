package studio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/webweaver/studio/internal/paths"
)

// Preferences holds user-level defaults applied when a command does not
// say otherwise.
type Preferences struct {
	// DefaultBrowser is used by solution creation when no browser is given.
	DefaultBrowser string `yaml:"defaultBrowser"`

	// LogLevel and LogFormat seed the logging flags.
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// DefaultPreferences returns the values used when no preferences file
// exists.
func DefaultPreferences() Preferences {
	return Preferences{
		DefaultBrowser: "chromium",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// LoadPreferences reads the preferences file from its default location.
func LoadPreferences() (Preferences, error) {
	return LoadPreferencesFrom(paths.PreferencesPath())
}

// LoadPreferencesFrom reads the preferences stored at path. A missing file
// yields the defaults; keys absent from the file keep their default value.
func LoadPreferencesFrom(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("failed to read preferences: %w", err)
	}

	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return DefaultPreferences(), fmt.Errorf("preferences file malformed: %w", err)
	}
	return prefs, nil
}
