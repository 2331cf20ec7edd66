//go:build linux || freebsd

package store

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file contents to stable storage.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
