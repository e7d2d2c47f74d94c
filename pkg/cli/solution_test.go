package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/webweaver/studio/internal/paths"
	"github.com/webweaver/studio/pkg/solution"
	"github.com/webweaver/studio/pkg/studio"
)

func TestParseWindowSize(t *testing.T) {
	size, err := parseWindowSize("1280x800")
	if err != nil {
		t.Fatalf("parseWindowSize: %v", err)
	}
	if size.Width != 1280 || size.Height != 800 {
		t.Errorf("size = %+v", size)
	}

	for _, bad := range []string{"1280", "axb", "0x800", "1280x-1", ""} {
		if _, err := parseWindowSize(bad); err == nil {
			t.Errorf("parseWindowSize(%q) succeeded, want error", bad)
		}
	}
}

func TestLaunchSummary(t *testing.T) {
	if got := launchSummary(solution.LaunchOptions{}); got != "defaults" {
		t.Errorf("empty options = %q, want defaults", got)
	}

	opts := solution.DefaultLaunchOptions()
	got := launchSummary(opts)
	want := "private, no-extensions, no-notifications"
	if got != want {
		t.Errorf("default options = %q, want %q", got, want)
	}

	opts.WindowSize = &solution.WindowSize{Width: 1280, Height: 800}
	if got := launchSummary(opts); got != want+", 1280x800" {
		t.Errorf("with window = %q", got)
	}
}

// setFlag sets a cobra flag so Changed() reports true, mirroring a real
// command line.
func setFlag(t *testing.T, cmd *cobra.Command, name, value string) {
	t.Helper()
	if err := cmd.Flags().Set(name, value); err != nil {
		t.Fatalf("setting flag %s: %v", name, err)
	}
}

func TestRunSolutionNewJSON(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	dir := t.TempDir()

	setFlag(t, solutionNewCmd, "name", "webshop")
	setFlag(t, solutionNewCmd, "dir", dir)
	setFlag(t, solutionNewCmd, "base-url", "https://shop.example.com")
	setFlag(t, solutionNewCmd, "browser", "chromium")
	setFlag(t, solutionNewCmd, "no-subdir", "false")
	setFlag(t, solutionNewCmd, "window", "1280x800")

	jsonOutput = true
	defer func() { jsonOutput = false }()

	out := captureStdout(t, func() error {
		return runSolutionNew(solutionNewCmd, nil)
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if result["name"] != "webshop" {
		t.Errorf("name = %v", result["name"])
	}

	wwsPath := filepath.Join(dir, "webshop", "webshop.wws")
	if result["file"] != wwsPath {
		t.Errorf("file = %v, want %v", result["file"], wwsPath)
	}

	sol, err := solution.Load(wwsPath)
	if err != nil {
		t.Fatalf("created solution does not load: %v", err)
	}
	if sol.BaseURL != "https://shop.example.com" || sol.Browser != "chromium" {
		t.Errorf("round-tripped solution = %+v", sol)
	}
	if sol.LaunchOptions.WindowSize == nil || sol.LaunchOptions.WindowSize.Width != 1280 {
		t.Errorf("window size lost: %+v", sol.LaunchOptions.WindowSize)
	}

	// The recent solutions list in the overridden config dir picked it up.
	recent, err := studio.LoadRecent()
	if err != nil {
		t.Fatalf("loading recent list: %v", err)
	}
	if got := recent.Paths(); len(got) != 1 || got[0] != wwsPath {
		t.Errorf("recent = %v, want [%s]", got, wwsPath)
	}
}

func TestRunSolutionInfoJSON(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	dir := t.TempDir()

	sol := &solution.Solution{
		Name:    "webshop",
		Dir:     dir,
		BaseURL: "https://shop.example.com",
		Browser: "chromium",
	}
	if err := sol.EnsureLayout(); err != nil {
		t.Fatal(err)
	}
	if err := sol.Save(); err != nil {
		t.Fatal(err)
	}

	jsonOutput = true
	defer func() { jsonOutput = false }()

	out := captureStdout(t, func() error {
		return runSolutionInfo(solutionInfoCmd, []string{sol.FilePath()})
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if result["baseUrl"] != "https://shop.example.com" {
		t.Errorf("baseUrl = %v", result["baseUrl"])
	}
	if result["recordings"] != float64(0) {
		t.Errorf("recordings = %v, want 0", result["recordings"])
	}
}
