package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/webweaver/studio/pkg/logging"
	"github.com/webweaver/studio/pkg/studio"
)

var (
	// Persistent flags available to all subcommands
	logLevel   string
	logFormat  string
	logFile    string
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"

	// log is configured by the root command before any subcommand runs.
	log = logging.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wwstudio",
	Short: "wwstudio manages WebWeaver Studio solutions and browser recordings",
	Long: `wwstudio creates WebWeaver Studio solutions, replays capture scripts into
durable .wwrec recordings, and inspects or validates existing recordings.

Logging defaults come from the preferences file in the user config
directory (override its location with WEBWEAVER_CONFIG_DIR); the
--log-level and --log-format flags take precedence when set.`,
	// No Run function here means 'wwstudio' with no args will print help text by default.
	SilenceUsage:      true,
	SilenceErrors:     true, // We handle errors in Execute()
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging builds the shared logger from preferences and flags. Flags
// win over preferences; a broken preferences file downgrades to defaults
// with a warning rather than blocking every command.
func setupLogging(cmd *cobra.Command, args []string) error {
	prefs, err := studio.LoadPreferences()
	if err != nil {
		warnf("%v", err)
	}

	level := prefs.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	format := prefs.LogFormat
	if logFormat != "" {
		format = logFormat
	}

	cfg := logging.Config{
		Level:  logging.ParseLevel(level),
		Format: logging.ParseFormat(format),
		Output: os.Stderr,
	}

	if logFile == "" {
		log = logging.New(cfg)
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	// The file stays open for the process lifetime; commands are one-shot.
	log = logging.NewTee(cfg, f)
	return nil
}

// logger returns the configured command logger.
func logger() *slog.Logger {
	return log
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default from preferences)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default from preferences)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Mirror the log into this file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}
