// Package id provides unique identifier generation utilities.
//
// This is the canonical source for ID generation across the studio codebase.
// Recording and solution identifiers are UUID v4 strings produced from a
// fast pseudo-random generator that the runtime seeds with system entropy.
// The identifiers label files on a single user's disk; they need to be
// unique in practice, not cryptographically unpredictable.
package id
