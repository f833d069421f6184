//go:build darwin || freebsd

package tty_bsd

import (
	"fmt"
	"path/filepath"

	"cttydev/tty"

	"golang.org/x/sys/unix"
)

// findDevicePath returns the first character device matching one of patterns
// whose device number equals dev. Nodes that vanish or cannot be stat'ed are
// skipped.
func findDevicePath(dev tty.DeviceID, patterns []string) (string, error) {
	if !dev.Valid() {
		return "", tty.ErrNoControllingTTY
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", fmt.Errorf("glob %s: %w", pattern, err)
		}

		for _, path := range matches {
			var st unix.Stat_t
			if err := unix.Stat(path, &st); err != nil {
				continue
			}
			if uint32(st.Mode)&unix.S_IFMT != unix.S_IFCHR {
				continue
			}
			if rdev(&st) == dev {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %d", tty.ErrDeviceNotFound, uint64(dev))
}
