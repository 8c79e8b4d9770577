//go:build linux

package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

// KEEP_SIZE reserves blocks without changing the visible length, so a failed
// transform never leaves a destination padded with zeros.
//
//nolint:gosec // G115: fd values are small non-negative integers
func preallocate(fd *os.File, size int64) {
	//nolint:errcheck // fallocate is advisory; not supported on all filesystems
	unix.Fallocate(int(fd.Fd()), unix.FALLOC_FL_KEEP_SIZE, 0, size)
}
