package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webweaver/studio/pkg/script"
	"github.com/webweaver/studio/pkg/studio"
)

var (
	recordSolution string
	recordScript   string
	recordName     string
	recordNoDelays bool
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Replay a capture script into a new recording",
	Long: `Replay a capture script into a new .wwrec recording of the given
solution. The script's steps are appended as events, honoring each
step's delay unless --no-delays is set. The recording file is durable:
it is written on start and after every event, so an interrupted run
still leaves a readable recording.`,
	RunE: runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
	scr, err := script.Load(recordScript)
	if err != nil {
		return err
	}
	if err := scr.Validate(); err != nil {
		return fmt.Errorf("script %s: %w", recordScript, err)
	}

	st := studio.New(logger())
	st.Controller().SetListener(func(tr studio.Transition) {
		logger().Info("studio state changed", "from", tr.From.String(), "to", tr.To.String())
	})
	st.Controller().SetUIReady(true)

	sol, err := st.OpenSolution(recordSolution)
	if err != nil {
		return err
	}
	rememberSolution(recordSolution)

	name := recordingName(recordName, scr.Name, recordScript)

	if err := st.StartRecording(name); err != nil {
		return err
	}
	sess := st.Session()

	runErr := scr.Run(cmd.Context(), sess, script.RunOptions{SkipDelays: recordNoDelays})
	count := sess.EventCount()

	path, stopErr := st.StopRecording()
	if runErr != nil {
		if count > 0 {
			warnf("%d events captured before the failure are kept in %s", count, path)
		}
		return runErr
	}
	if stopErr != nil {
		return stopErr
	}

	out := struct {
		Solution string `json:"solution"`
		Name     string `json:"name"`
		File     string `json:"file"`
		Events   int    `json:"events"`
	}{sol.Name, name, path, count}

	printResult(out, func() {
		fmt.Printf("Recorded %d events to %s\n", out.Events, out.File)
	})
	return nil
}

// recordingName picks the recording name: the explicit flag, then the
// script's own name, then the script file's base name.
func recordingName(flagName, scriptName, scriptPath string) string {
	if flagName != "" {
		return flagName
	}
	if scriptName != "" {
		return scriptName
	}
	return strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
}

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringVar(&recordSolution, "solution", "", "Solution .wws file to record against")
	recordCmd.Flags().StringVar(&recordScript, "script", "", "Capture script (.yaml, .yml or .json)")
	recordCmd.Flags().StringVar(&recordName, "name", "", "Recording name (default: the script's name, then its file name)")
	recordCmd.Flags().BoolVar(&recordNoDelays, "no-delays", false, "Ignore the script's step delays")
	_ = recordCmd.MarkFlagRequired("solution")
	_ = recordCmd.MarkFlagRequired("script")
}
