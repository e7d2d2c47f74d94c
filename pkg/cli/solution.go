package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/webweaver/studio/pkg/solution"
	"github.com/webweaver/studio/pkg/studio"
)

var (
	newName                 string
	newDir                  string
	newBaseURL              string
	newBrowser              string
	newNoSubdir             bool
	newPrivate              bool
	newDisableExtensions    bool
	newDisableNotifications bool
	newIgnoreCertErrors     bool
	newMaximised            bool
	newUserAgent            string
	newWindow               string
)

var solutionCmd = &cobra.Command{
	Use:   "solution",
	Short: "Create and inspect WebWeaver solutions",
}

var solutionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new solution",
	Long: `Create a new solution: its directory layout (pages, scripts, recordings)
and its .wws file. Without --name, an interactive wizard asks for the
details.`,
	RunE: runSolutionNew,
}

var solutionInfoCmd = &cobra.Command{
	Use:   "info <file.wws>",
	Short: "Show a solution's settings and recordings",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolutionInfo,
}

func runSolutionNew(cmd *cobra.Command, args []string) error {
	// Flags omitted entirely means interactive mode.
	if !cmd.Flags().Changed("name") {
		if err := solutionWizard(); err != nil {
			return err
		}
	}
	if newName == "" {
		return errors.New("solution name is required")
	}
	if newBaseURL == "" {
		return errors.New("base URL is required")
	}

	dir, err := filepath.Abs(newDir)
	if err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}

	opts := solution.DefaultLaunchOptions()
	opts.PrivateMode = newPrivate
	opts.DisableExtensions = newDisableExtensions
	opts.DisableNotifications = newDisableNotifications
	opts.IgnoreCertificateErrors = newIgnoreCertErrors
	opts.Maximised = newMaximised
	opts.UserAgent = newUserAgent
	if newWindow != "" {
		size, err := parseWindowSize(newWindow)
		if err != nil {
			return err
		}
		opts.WindowSize = size
	}

	sol := &solution.Solution{
		Name:                 newName,
		Dir:                  dir,
		CreateDirForSolution: !newNoSubdir,
		BaseURL:              newBaseURL,
		Browser:              newBrowser,
		LaunchOptions:        opts,
	}

	if err := sol.EnsureLayout(); err != nil {
		return err
	}
	if err := sol.Save(); err != nil {
		return err
	}
	logger().Info("solution created", "name", sol.Name, "file", sol.FilePath())

	rememberSolution(sol.FilePath())

	printResult(solutionOutput(sol), func() {
		fmt.Printf("Created solution %q\n", sol.Name)
		fmt.Printf("  file:        %s\n", sol.FilePath())
		fmt.Printf("  base URL:    %s\n", sol.BaseURL)
		fmt.Printf("  browser:     %s\n", sol.Browser)
		fmt.Printf("  recordings:  %s\n", sol.RecordingsDir())
	})
	return nil
}

func runSolutionInfo(cmd *cobra.Command, args []string) error {
	sol, err := solution.Load(args[0])
	if err != nil {
		return err
	}

	recs, err := sol.DiscoverRecordings(logger())
	if err != nil {
		return err
	}

	out := solutionOutput(sol)
	out["recordings"] = len(recs)

	printResult(out, func() {
		fmt.Printf("Solution %q\n", sol.Name)
		fmt.Printf("  file:        %s\n", sol.FilePath())
		fmt.Printf("  directory:   %s\n", sol.SolutionDir())
		fmt.Printf("  base URL:    %s\n", sol.BaseURL)
		fmt.Printf("  browser:     %s\n", sol.Browser)
		fmt.Printf("  launch:      %s\n", launchSummary(sol.LaunchOptions))
		fmt.Printf("  recordings:  %d\n", len(recs))
	})
	return nil
}

// solutionWizard collects the solution details interactively into the
// command's flag variables.
func solutionWizard() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Solution name").
				Placeholder("webshop").
				Value(&newName).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Directory to create it in").
				Value(&newDir),
			huh.NewInput().
				Title("Base URL of the site under test").
				Placeholder("https://shop.example.com").
				Value(&newBaseURL).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("base URL is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Browser").
				Options(
					huh.NewOption("Chromium", "chromium"),
					huh.NewOption("Firefox", "firefox"),
					huh.NewOption("Edge", "edge"),
				).
				Value(&newBrowser),
			huh.NewConfirm().
				Title("Create a subdirectory named after the solution?").
				Value(&wizardSubdir),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	newNoSubdir = !wizardSubdir
	return nil
}

// wizardSubdir backs the wizard's subdirectory confirm; the flag itself is
// expressed in the negative.
var wizardSubdir = true

// parseWindowSize parses "WIDTHxHEIGHT", e.g. "1280x800".
func parseWindowSize(s string) (*solution.WindowSize, error) {
	var w, h int
	if n, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || n != 2 {
		return nil, fmt.Errorf("invalid --window %q (want WIDTHxHEIGHT, e.g. 1280x800)", s)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid --window %q: dimensions must be positive", s)
	}
	return &solution.WindowSize{Width: w, Height: h}, nil
}

// launchSummary renders launch options as a short flag list.
func launchSummary(o solution.LaunchOptions) string {
	s := ""
	add := func(cond bool, token string) {
		if !cond {
			return
		}
		if s != "" {
			s += ", "
		}
		s += token
	}
	add(o.PrivateMode, "private")
	add(o.DisableExtensions, "no-extensions")
	add(o.DisableNotifications, "no-notifications")
	add(o.IgnoreCertificateErrors, "ignore-cert-errors")
	add(o.Maximised, "maximised")
	if o.WindowSize != nil {
		add(true, fmt.Sprintf("%dx%d", o.WindowSize.Width, o.WindowSize.Height))
	}
	if o.UserAgent != "" {
		add(true, "custom-user-agent")
	}
	if s == "" {
		return "defaults"
	}
	return s
}

// solutionOutput is the JSON shape shared by solution new and info.
func solutionOutput(sol *solution.Solution) map[string]any {
	return map[string]any{
		"name":          sol.Name,
		"file":          sol.FilePath(),
		"directory":     sol.SolutionDir(),
		"baseUrl":       sol.BaseURL,
		"browser":       sol.Browser,
		"launchOptions": sol.LaunchOptions,
	}
}

// rememberSolution adds path to the recent solutions list. Failures only
// warn; the solution operation itself already succeeded.
func rememberSolution(path string) {
	recent, err := studio.LoadRecent()
	if err != nil {
		warnf("recent solutions list unavailable: %v", err)
		return
	}
	if err := recent.Add(path); err != nil {
		warnf("could not update recent solutions list: %v", err)
	}
}

func init() {
	rootCmd.AddCommand(solutionCmd)
	solutionCmd.AddCommand(solutionNewCmd)
	solutionCmd.AddCommand(solutionInfoCmd)

	prefs, err := studio.LoadPreferences()
	if err != nil {
		prefs = studio.DefaultPreferences()
	}

	solutionNewCmd.Flags().StringVar(&newName, "name", "", "Solution name (omit to run the wizard)")
	solutionNewCmd.Flags().StringVar(&newDir, "dir", ".", "Directory to create the solution in")
	solutionNewCmd.Flags().StringVar(&newBaseURL, "base-url", "", "Base URL of the site under test")
	solutionNewCmd.Flags().StringVar(&newBrowser, "browser", prefs.DefaultBrowser, "Browser used for capture")
	solutionNewCmd.Flags().BoolVar(&newNoSubdir, "no-subdir", false, "Use --dir itself instead of a subdirectory named after the solution")
	solutionNewCmd.Flags().BoolVar(&newPrivate, "private", true, "Launch the browser in private mode")
	solutionNewCmd.Flags().BoolVar(&newDisableExtensions, "disable-extensions", true, "Launch the browser without extensions")
	solutionNewCmd.Flags().BoolVar(&newDisableNotifications, "disable-notifications", true, "Suppress browser notifications")
	solutionNewCmd.Flags().BoolVar(&newIgnoreCertErrors, "ignore-cert-errors", false, "Ignore TLS certificate errors")
	solutionNewCmd.Flags().BoolVar(&newMaximised, "maximised", false, "Launch the browser maximised")
	solutionNewCmd.Flags().StringVar(&newUserAgent, "user-agent", "", "Override the browser user agent")
	solutionNewCmd.Flags().StringVar(&newWindow, "window", "", "Browser window size as WIDTHxHEIGHT, e.g. 1280x800")
}
