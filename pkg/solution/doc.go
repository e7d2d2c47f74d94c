// Package solution implements the .wws solution file and its on-disk layout.
//
// A solution is the unit the studio opens: a name, a directory, the base
// URL and browser recordings are made against, and optional browser launch
// options. On disk a solution owns three subdirectories (pages, scripts,
// recordings) next to its .wws file.
//
// The package also discovers the recordings belonging to a solution by
// scanning its recordings directory, skipping files that fail to parse so
// one corrupted capture never hides the rest.
package solution
