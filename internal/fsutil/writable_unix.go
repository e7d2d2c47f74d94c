//go:build unix

package fsutil

import "golang.org/x/sys/unix"

// IsDirWritable reports whether the current process can create files in dir.
// A missing directory is not writable.
func IsDirWritable(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}
