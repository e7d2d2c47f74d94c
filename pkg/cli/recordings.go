package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/webweaver/studio/pkg/recording"
	"github.com/webweaver/studio/pkg/solution"
	"github.com/webweaver/studio/pkg/util"
)

var (
	listSolution string
	listMatch    string

	eventsWhere string
)

var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "Inspect and validate .wwrec recordings",
}

var recordingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a solution's recordings, newest first",
	RunE:  runRecordingsList,
}

var recordingsEventsCmd = &cobra.Command{
	Use:   "events <file.wwrec>",
	Short: "Print a recording's events",
	Long: `Print a recording's events. With --where, only events matching the
filter expression are printed. The expression sees each event as
index (int), timestamp (ms int), type (string) and payload (map), e.g.:

  --where 'type == "dom.click"'
  --where 'timestamp > 1500 && payload.selector == "#buy"'`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordingsEvents,
}

var recordingsValidateCmd = &cobra.Command{
	Use:   "validate <file.wwrec>...",
	Short: "Check recording files against the format schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecordingsValidate,
}

func runRecordingsList(cmd *cobra.Command, args []string) error {
	sol, err := solution.Load(listSolution)
	if err != nil {
		return err
	}

	var metas []recording.Metadata
	if listMatch != "" {
		metas, err = sol.DiscoverRecordingsMatching(logger(), listMatch)
	} else {
		metas, err = sol.DiscoverRecordings(logger())
	}
	if err != nil {
		return err
	}

	printResult(metas, func() {
		if len(metas) == 0 {
			fmt.Println("No recordings found.")
			return
		}
		w := table()
		fmt.Fprintln(w, "NAME\tCREATED\tID\tFILE")
		for _, m := range metas {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				m.Name, m.CreatedAt.Format(time.RFC3339), m.ID, m.FilePath)
		}
		w.Flush()
	})
	return nil
}

func runRecordingsEvents(cmd *cobra.Command, args []string) error {
	doc, err := recording.LoadDocument(args[0])
	if err != nil {
		return err
	}

	events := doc.Recording.Events
	if eventsWhere != "" {
		events, err = filterEvents(events, eventsWhere)
		if err != nil {
			return err
		}
	}

	printResult(events, func() {
		if len(events) == 0 {
			fmt.Println("No matching events.")
			return
		}
		w := table()
		fmt.Fprintln(w, "INDEX\tTIMESTAMP\tTYPE\tPAYLOAD")
		for _, e := range events {
			fmt.Fprintf(w, "%d\t%dms\t%s\t%s\n", e.Index, e.Timestamp, e.Type, util.TruncatePayload(compactJSON(e.Payload), 0))
		}
		w.Flush()
	})
	return nil
}

func runRecordingsValidate(cmd *cobra.Command, args []string) error {
	type fileResult struct {
		File       string   `json:"file"`
		Valid      bool     `json:"valid"`
		Violations []string `json:"violations,omitempty"`
		Warnings   []string `json:"warnings,omitempty"`
	}

	results := make([]fileResult, 0, len(args))
	invalid := 0

	for _, path := range args {
		res := fileResult{File: path, Valid: true}

		violations, err := recording.ValidateFile(path)
		switch {
		case err != nil:
			res.Valid = false
			res.Violations = append(res.Violations, err.Error())
		case len(violations) > 0:
			res.Valid = false
			for _, v := range violations {
				res.Violations = append(res.Violations, v.String())
			}
		default:
			res.Warnings = idWarnings(path)
		}

		if !res.Valid {
			invalid++
		}
		results = append(results, res)
	}

	printResult(map[string]any{"results": results, "allValid": invalid == 0}, func() {
		for _, res := range results {
			if res.Valid {
				fmt.Printf("  ✓ %s\n", res.File)
			} else {
				fmt.Printf("  ✗ %s\n", res.File)
				for _, v := range res.Violations {
					fmt.Printf("      %s\n", v)
				}
			}
			for _, warn := range res.Warnings {
				fmt.Printf("      warning: %s\n", warn)
			}
		}
	})

	if invalid > 0 {
		return fmt.Errorf("%d of %d recording files invalid", invalid, len(args))
	}
	return nil
}

// idWarnings reports recording IDs that pass the schema's shape check but
// are not proper version 4 UUIDs.
func idWarnings(path string) []string {
	meta, err := recording.LoadMetadata(path)
	if err != nil {
		return nil
	}
	id, err := uuid.Parse(meta.ID)
	if err != nil {
		return []string{fmt.Sprintf("id %q is not a valid UUID: %v", meta.ID, err)}
	}
	if id.Version() != 4 {
		return []string{fmt.Sprintf("id %q is a version %d UUID, expected version 4", meta.ID, id.Version())}
	}
	return nil
}

// filterEvents keeps the events for which the expression evaluates true.
func filterEvents(events []recording.Event, expression string) ([]recording.Event, error) {
	program, err := expr.Compile(expression, expr.Env(eventEnv(recording.Event{})))
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	out := make([]recording.Event, 0, len(events))
	for _, e := range events {
		result, err := expr.Run(program, eventEnv(e))
		if err != nil {
			return nil, fmt.Errorf("filter failed on event %d: %w", e.Index, err)
		}
		keep, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("filter expression must evaluate to a boolean, got %T", result)
		}
		if keep {
			out = append(out, e)
		}
	}
	return out, nil
}

// eventEnv is the expression environment for one event. The payload is
// exposed as a map so fields can be addressed directly.
func eventEnv(e recording.Event) map[string]any {
	payload := map[string]any{}
	if len(e.Payload) > 0 {
		_ = json.Unmarshal(e.Payload, &payload)
	}
	return map[string]any{
		"index":     e.Index,
		"timestamp": e.Timestamp,
		"type":      e.Type.String(),
		"payload":   payload,
	}
}

// compactJSON renders raw JSON on one line for table output.
func compactJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf []byte
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		if buf, err = json.Marshal(v); err == nil {
			return string(buf)
		}
	}
	return string(raw)
}

func init() {
	rootCmd.AddCommand(recordingsCmd)
	recordingsCmd.AddCommand(recordingsListCmd)
	recordingsCmd.AddCommand(recordingsEventsCmd)
	recordingsCmd.AddCommand(recordingsValidateCmd)

	recordingsListCmd.Flags().StringVar(&listSolution, "solution", "", "Solution .wws file to list recordings for")
	recordingsListCmd.Flags().StringVar(&listMatch, "match", "", "Only recordings whose name matches this glob")
	_ = recordingsListCmd.MarkFlagRequired("solution")

	recordingsEventsCmd.Flags().StringVar(&eventsWhere, "where", "", "Filter expression over index, timestamp, type and payload")
}
