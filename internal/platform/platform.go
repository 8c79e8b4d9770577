// Package platform holds the OS-specific pieces of the file processor.
package platform

import "os"

// Preallocate reserves size bytes for fd so a full disk is reported before
// the transform starts writing. It is advisory: filesystems without support
// are silently ignored.
func Preallocate(fd *os.File, size int64) {
	if size <= 0 {
		return
	}
	preallocate(fd, size)
}
