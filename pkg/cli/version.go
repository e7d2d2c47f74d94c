package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show wwstudio version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, commit, date := Version, Commit, BuildDate

		// Fill gaps from the embedded build info when ldflags were not set.
		if info, ok := debug.ReadBuildInfo(); ok {
			if version == "dev" {
				version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if commit == "none" {
						commit = setting.Value
					}
				case "vcs.time":
					if date == "unknown" {
						date = setting.Value
					}
				case "vcs.modified":
					if setting.Value == "true" {
						commit += "-dirty"
					}
				}
			}
		}

		out := struct {
			Version string `json:"version"`
			Commit  string `json:"commit"`
			Date    string `json:"date"`
			Go      string `json:"go"`
			OS      string `json:"os"`
			Arch    string `json:"arch"`
		}{version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH}

		printResult(out, func() {
			fmt.Printf("wwstudio %s (%s, %s)\n", out.Version, out.Commit, out.Date)
			fmt.Printf("%s %s/%s\n", out.Go, out.OS, out.Arch)
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
