//go:build freebsd && (amd64 || arm64 || riscv64 || ppc64 || ppc64le)

package tty_bsd

import (
	"fmt"

	"cttydev/tty"

	"golang.org/x/sys/unix"
)

// freebsdExtractor reads ki_tdev from struct kinfo_proc
type freebsdExtractor struct{}

func newExtractor() tty.ControllingTTYExtractor {
	return freebsdExtractor{}
}

func (freebsdExtractor) Platform() string {
	return "freebsd"
}

func (freebsdExtractor) ControllingDevice(pid int) (tty.DeviceID, error) {
	buf, err := unix.SysctlRaw("kern.proc.pid", pid)
	if err != nil {
		return tty.NoDevice, fmt.Errorf("sysctl kern.proc.pid.%d: %w", pid, err)
	}
	if len(buf) == 0 {
		return tty.NoDevice, fmt.Errorf("sysctl kern.proc.pid.%d: %w", pid, unix.ESRCH)
	}

	dev, err := decodeKinfoProc(buf, pid)
	if err != nil {
		return tty.NoDevice, fmt.Errorf("sysctl kern.proc.pid.%d: %w", pid, err)
	}
	return dev, nil
}
