//go:build darwin

package tty_bsd

import (
	"fmt"

	"cttydev/tty"

	"golang.org/x/sys/unix"
)

// darwinExtractor reads kp_eproc.e_tdev from struct kinfo_proc
type darwinExtractor struct{}

func newExtractor() tty.ControllingTTYExtractor {
	return darwinExtractor{}
}

func (darwinExtractor) Platform() string {
	return "darwin"
}

func (darwinExtractor) ControllingDevice(pid int) (tty.DeviceID, error) {
	kp, err := unix.SysctlKinfoProc("kern.proc.pid", pid)
	if err != nil {
		return tty.NoDevice, fmt.Errorf("sysctl kern.proc.pid.%d: %w", pid, err)
	}

	// A pid that does not exist comes back as a zeroed record
	if int(kp.Proc.P_pid) != pid {
		return tty.NoDevice, fmt.Errorf("sysctl kern.proc.pid.%d: %w", pid, unix.ESRCH)
	}

	return devFromKernel(kp.Eproc.Tdev), nil
}
