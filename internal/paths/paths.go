// Package paths resolves the per-user directories where the studio keeps
// its own state (preferences, recent solutions).
package paths

import (
	"os"
	"path/filepath"
)

// EnvConfigDir overrides the studio config directory when set. Used by
// tests and by users who want fully portable installs.
const EnvConfigDir = "WEBWEAVER_CONFIG_DIR"

// ConfigDir returns the directory for studio-level configuration files,
// typically <os user config dir>/webweaver. The directory is not created.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".webweaver")
	}
	return filepath.Join(configDir, "webweaver")
}

// RecentSolutionsPath returns the location of the recent-solutions list.
func RecentSolutionsPath() string {
	return filepath.Join(ConfigDir(), "recent_solutions.json")
}

// PreferencesPath returns the location of the user preferences file.
func PreferencesPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
