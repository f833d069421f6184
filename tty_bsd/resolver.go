//go:build darwin || freebsd

package tty_bsd

import (
	"errors"
	"fmt"
	"os"

	"cttydev/tty"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/unix"
)

// Resolver implements the tty.Resolver interface on top of the kernel
// process-table query. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	ext tty.ControllingTTYExtractor
	log *logger.Logger
}

var defaultResolver = New()

// New creates a Resolver using the extractor compiled in for this kernel
func New() *Resolver {
	return NewWithExtractor(newExtractor())
}

// NewWithExtractor creates a Resolver that reads records through ext
func NewWithExtractor(ext tty.ControllingTTYExtractor) *Resolver {
	return &Resolver{
		ext: ext,
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "ctty-"+ext.Platform())),
	}
}

// ControllingDevice returns the controlling terminal device of the calling
// process. 0 means there is none or the kernel query failed; use Lookup to
// tell the two apart.
func ControllingDevice() uint64 {
	return uint64(defaultResolver.Device())
}

// Lookup returns the controlling terminal device of the calling process
func Lookup() (tty.DeviceID, error) {
	return defaultResolver.Lookup()
}

// PathForDevice returns the /dev path of dev
func PathForDevice(dev tty.DeviceID) (string, error) {
	return defaultResolver.PathForDevice(dev)
}

func (r *Resolver) Device() tty.DeviceID {
	dev, err := r.Lookup()
	if err != nil {
		if !errors.Is(err, tty.ErrNoControllingTTY) {
			r.log.Debugln("controlling terminal query failed:", err)
		}
		return tty.NoDevice
	}
	return dev
}

func (r *Resolver) Lookup() (tty.DeviceID, error) {
	return r.LookupPID(os.Getpid())
}

func (r *Resolver) LookupPID(pid int) (tty.DeviceID, error) {
	if pid <= 0 {
		return tty.NoDevice, fmt.Errorf("invalid pid %d", pid)
	}

	dev, err := r.ext.ControllingDevice(pid)
	if err != nil {
		return tty.NoDevice, err
	}
	if !dev.Valid() {
		return tty.NoDevice, tty.ErrNoControllingTTY
	}
	return dev, nil
}

func (r *Resolver) PathForDevice(dev tty.DeviceID) (string, error) {
	return findDevicePath(dev, devicePatterns)
}

// Describe collects device number, major/minor and /dev path for pid. A
// missing /dev node is not an error; Path is left empty.
func (r *Resolver) Describe(pid int) (tty.Info, error) {
	info := tty.Info{PID: pid}

	dev, err := r.LookupPID(pid)
	if err != nil {
		return info, err
	}

	info.Device = dev
	info.Major = unix.Major(uint64(dev))
	info.Minor = unix.Minor(uint64(dev))

	path, err := r.PathForDevice(dev)
	switch {
	case err == nil:
		info.Path = path
	case errors.Is(err, tty.ErrDeviceNotFound):
		r.log.Debugln("no /dev node for device", dev)
	default:
		r.log.Warn("device path lookup failed: ", err)
	}

	return info, nil
}

// compile-time check
var _ tty.Resolver = (*Resolver)(nil)
