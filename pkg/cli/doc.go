// Package cli provides the command-line interface for wwstudio.
//
// The cli package implements the commands for working with WebWeaver
// Studio solutions and recordings:
//   - solution new: Create a solution directory layout and its .wws file
//   - solution info: Show a solution's settings and recordings
//   - recordings list: List a solution's .wwrec recordings, newest first
//   - recordings events: Print a recording's events, optionally filtered
//   - recordings validate: Check .wwrec files against the format schema
//   - record: Replay a capture script into a new recording
//   - doctor: Diagnose common setup issues
//   - version: Show wwstudio version
//
// Every command honors the persistent --log-level, --log-format and
// --log-file flags; --log-file mirrors the stderr log into a file.
// Commands that produce results also honor --json, which replaces the
// human-readable output with a JSON document on stdout.
//
// Usage:
//
//	wwstudio solution new --name webshop --dir ~/solutions --base-url https://shop.example.com
//	wwstudio solution info webshop/webshop.wws
//	wwstudio recordings list --solution webshop/webshop.wws --match "checkout*"
//	wwstudio recordings events checkout_20260214T101500Z.wwrec --where 'type == "dom.click"'
//	wwstudio recordings validate recordings/*.wwrec
//	wwstudio record --solution webshop/webshop.wws --script checkout.yaml
//	wwstudio doctor
package cli
