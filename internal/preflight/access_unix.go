//go:build !windows

package preflight

import "golang.org/x/sys/unix"

// accessReadWrite reports whether the current user can read, write, and
// traverse the directory.
func accessReadWrite(path string) error {
	return unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK)
}
