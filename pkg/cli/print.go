package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table creates an aligned table writer for stdout. Callers flush it.
func table() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// warnf prints a warning to stderr.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// printResult outputs a single operation result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is
// written to stdout; prose goes to stderr or nowhere. textFn is called
// only in text mode.
func printResult(data any, textFn func()) {
	if jsonOutput {
		_ = printJSON(data)
		return
	}
	textFn()
}
