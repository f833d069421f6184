//go:build freebsd

package tty_bsd

import (
	"cttydev/tty"

	"golang.org/x/sys/unix"
)

// NODEV is ((dev_t)-1); dev_t has been 64 bits wide since FreeBSD 12
const (
	noDev   uint64 = ^uint64(0)
	noDev32 uint32 = ^uint32(0)
)

var devicePatterns = []string{
	"/dev/pts/*",
	"/dev/tty*",
	"/dev/console",
}

func devFromKernel(d uint64) tty.DeviceID {
	if d == noDev {
		return tty.NoDevice
	}
	return tty.DeviceID(d)
}

func rdev(st *unix.Stat_t) tty.DeviceID {
	return devFromKernel(st.Rdev)
}
