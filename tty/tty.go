// Package tty provides the platform neutral types for controlling terminal lookups
package tty

import "errors"

var (
	// ErrNoControllingTTY is returned when the kernel query succeeded but the
	// process has no controlling terminal.
	ErrNoControllingTTY = errors.New("no controlling terminal")

	// ErrDeviceNotFound is returned when no node under /dev carries the requested device number.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrUnexpectedRecord is returned when the kernel hands back a process record
	// whose size or layout does not match what this build was compiled for.
	ErrUnexpectedRecord = errors.New("unexpected kinfo_proc record")

	ErrUnsupported = errors.New("controlling terminal lookup not supported on this platform")
)
