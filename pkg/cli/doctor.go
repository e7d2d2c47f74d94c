package cli

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/webweaver/studio/internal/fsutil"
	"github.com/webweaver/studio/internal/paths"
	"github.com/webweaver/studio/internal/platform"
	"github.com/webweaver/studio/pkg/studio"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose common setup issues",
	Long: `Diagnose common setup issues: host platform, config directory
writability, preferences, the recent solutions list, and solution files
in the current directory.`,
	RunE: runDoctor,
}

// doctorCheck holds the result of a single doctor check.
type doctorCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // "ok", "fail", "info"
	Detail string `json:"detail"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	allPassed := true
	var checks []doctorCheck
	add := func(name, status, detail string) {
		checks = append(checks, doctorCheck{Name: name, Status: status, Detail: detail})
		if status == "fail" {
			allPassed = false
		}
	}

	// Check 1: Host platform
	add("platform", "info", platform.Current().String())

	// Check 2: Config directory existence and writability
	configDir := paths.ConfigDir()
	if info, err := os.Stat(configDir); err == nil && info.IsDir() {
		if fsutil.IsDirWritable(configDir) {
			add("config_directory", "ok", configDir)
		} else {
			add("config_directory", "fail", fmt.Sprintf("%s is not writable", configDir))
		}
	} else {
		add("config_directory", "info", fmt.Sprintf("not found (will be created at %s)", configDir))
	}

	// Check 3: Preferences file
	prefsPath := paths.PreferencesPath()
	if _, err := os.Stat(prefsPath); err == nil {
		if _, err := studio.LoadPreferencesFrom(prefsPath); err != nil {
			add("preferences", "fail", err.Error())
		} else {
			add("preferences", "ok", prefsPath)
		}
	} else {
		add("preferences", "info", "not found, defaults in use")
	}

	// Check 4: Recent solutions list
	if recent, err := studio.LoadRecent(); err != nil {
		add("recent_solutions", "fail", err.Error())
	} else {
		add("recent_solutions", "info", fmt.Sprintf("%d entries", len(recent.Paths())))
	}

	// Check 5: Solution files in or directly under the current directory
	if matches, err := doublestar.FilepathGlob("{*.wws,*/*.wws}"); err == nil {
		if len(matches) > 0 {
			add("solutions_here", "ok", fmt.Sprintf("found %d solution file(s)", len(matches)))
		} else {
			add("solutions_here", "info", "no .wws files in or directly under the current directory")
		}
	}

	printResult(map[string]any{"checks": checks, "allPassed": allPassed}, func() {
		fmt.Println("wwstudio doctor")
		fmt.Println("===============")
		fmt.Println()
		for _, c := range checks {
			switch c.Status {
			case "ok":
				fmt.Printf("  ✓ %s: %s\n", c.Name, c.Detail)
			case "fail":
				fmt.Printf("  ✗ %s: %s\n", c.Name, c.Detail)
			default:
				fmt.Printf("  • %s: %s\n", c.Name, c.Detail)
			}
		}
		fmt.Println()
		if allPassed {
			fmt.Println("All checks passed!")
		} else {
			fmt.Println("Some checks failed. See above for details.")
		}
	})

	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
