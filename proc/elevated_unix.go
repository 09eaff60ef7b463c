//go:build !windows

package proc

import "os"

// IsElevated reports whether the monitor runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}
