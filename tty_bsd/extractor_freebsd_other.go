//go:build freebsd && !(amd64 || arm64 || riscv64 || ppc64 || ppc64le)

package tty_bsd

import "cttydev/tty"

// unsupportedExtractor is used on FreeBSD ABIs whose kinfo_proc layout is not decoded
type unsupportedExtractor struct{}

func newExtractor() tty.ControllingTTYExtractor {
	return unsupportedExtractor{}
}

func (unsupportedExtractor) Platform() string {
	return "freebsd"
}

func (unsupportedExtractor) ControllingDevice(pid int) (tty.DeviceID, error) {
	return tty.NoDevice, tty.ErrUnsupported
}
