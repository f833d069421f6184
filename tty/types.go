package tty

import "fmt"

// DeviceID is a kernel device number naming a character device.
// The encoding of major/minor inside the value is OS specific.
type DeviceID uint64

// NoDevice is returned when there is no controlling terminal or the lookup failed.
const NoDevice DeviceID = 0

// Valid reports whether d names a device
func (d DeviceID) Valid() bool {
	return d != NoDevice
}

func (d DeviceID) String() string {
	return fmt.Sprintf("%#x", uint64(d))
}

// Info describes the controlling terminal of a process
type Info struct {
	PID    int      `json:"pid"`
	Device DeviceID `json:"device"`
	Major  uint32   `json:"major"`
	Minor  uint32   `json:"minor"`
	Path   string   `json:"path,omitempty"` // empty when no /dev node matched
}

func (i Info) String() string {
	if !i.Device.Valid() {
		return fmt.Sprintf("pid %d: no controlling terminal", i.PID)
	}
	path := i.Path
	if path == "" {
		path = "?"
	}
	return fmt.Sprintf("pid %d: %s (device %d, major %d, minor %d)", i.PID, path, uint64(i.Device), i.Major, i.Minor)
}
