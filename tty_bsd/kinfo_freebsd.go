//go:build freebsd && (amd64 || arm64 || riscv64 || ppc64 || ppc64le)

package tty_bsd

import (
	"encoding/binary"
	"fmt"

	"cttydev/tty"
)

// Byte offsets into struct kinfo_proc (sys/user.h) on LP64 ABIs
const (
	kinfoProcSize = 1088

	offStructSize    = 0   // int ki_structsize
	offPID           = 72  // pid_t ki_pid
	offTdevFreeBSD11 = 100 // uint32_t ki_tdev_freebsd11
	offTdev          = 560 // uint64_t ki_tdev, carved out of ki_spareints in FreeBSD 12
)

// decodeKinfoProc pulls the controlling terminal device out of a raw
// kinfo_proc record. Kernels older than 12 leave ki_tdev zero and only fill
// the 32-bit field.
func decodeKinfoProc(buf []byte, pid int) (tty.DeviceID, error) {
	if len(buf) < kinfoProcSize {
		return tty.NoDevice, fmt.Errorf("%w: %d bytes, want %d", tty.ErrUnexpectedRecord, len(buf), kinfoProcSize)
	}

	size := int32(binary.NativeEndian.Uint32(buf[offStructSize:]))
	if size != kinfoProcSize {
		return tty.NoDevice, fmt.Errorf("%w: ki_structsize %d, want %d", tty.ErrUnexpectedRecord, size, kinfoProcSize)
	}

	if got := int32(binary.NativeEndian.Uint32(buf[offPID:])); int(got) != pid {
		return tty.NoDevice, fmt.Errorf("%w: ki_pid %d, want %d", tty.ErrUnexpectedRecord, got, pid)
	}

	tdev := binary.NativeEndian.Uint64(buf[offTdev:])
	if tdev == 0 {
		old := binary.NativeEndian.Uint32(buf[offTdevFreeBSD11:])
		if old == noDev32 {
			return tty.NoDevice, nil
		}
		return tty.DeviceID(old), nil
	}

	return devFromKernel(tdev), nil
}
