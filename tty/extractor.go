package tty

// ControllingTTYExtractor reads the controlling terminal field out of the
// kernel process-table record. There is one implementation per kernel ABI,
// picked at build time.
type ControllingTTYExtractor interface {
	// ControllingDevice queries the process-table entry of pid and returns
	// the controlling terminal device, or ErrNoControllingTTY.
	ControllingDevice(pid int) (DeviceID, error)

	// Platform names the kernel ABI this extractor decodes (e.g. "darwin")
	Platform() string
}

// Resolver looks up controlling terminals
type Resolver interface {
	// Device returns the controlling terminal of the calling process, or
	// NoDevice when there is none or the query failed.
	Device() DeviceID

	// Lookup is Device with the failure reason kept
	Lookup() (DeviceID, error)

	// LookupPID runs the same query for another process
	LookupPID(pid int) (DeviceID, error)

	// PathForDevice maps a device number back to its node under /dev
	PathForDevice(dev DeviceID) (string, error)

	// Describe gathers everything known about the controlling terminal of pid
	Describe(pid int) (Info, error)
}
