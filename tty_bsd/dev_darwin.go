//go:build darwin

package tty_bsd

import (
	"cttydev/tty"

	"golang.org/x/sys/unix"
)

// dev_t is a signed 32-bit value on darwin; NODEV is -1
const noDev int32 = -1

var devicePatterns = []string{
	"/dev/ttys*",
	"/dev/tty*",
	"/dev/console",
}

func devFromKernel(d int32) tty.DeviceID {
	if d == noDev {
		return tty.NoDevice
	}
	return tty.DeviceID(uint32(d))
}

func rdev(st *unix.Stat_t) tty.DeviceID {
	return devFromKernel(st.Rdev)
}
