// Package util provides shared helpers for payload truncation used
// across studio packages.
//
//   - TruncatePayload: cap event payloads for table and log display
package util
