//go:build !unix

package fsutil

// IsDirWritable reports whether the current process can create files in dir.
// Windows ACLs make a static permission check unreliable, so this probes by
// creating and removing a throwaway file.
func IsDirWritable(dir string) bool {
	return probeWritable(dir)
}
