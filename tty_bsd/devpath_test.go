//go:build darwin || freebsd

package tty_bsd

import (
	"os"
	"path/filepath"
	"testing"

	"cttydev/tty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDevicePathRejectsNoDevice(t *testing.T) {
	_, err := findDevicePath(tty.NoDevice, devicePatterns)
	require.ErrorIs(t, err, tty.ErrNoControllingTTY)
}

func TestFindDevicePathSkipsRegularFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ttys000", "ttys001"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	_, err := findDevicePath(1, []string{filepath.Join(dir, "ttys*")})
	require.ErrorIs(t, err, tty.ErrDeviceNotFound)
}

func TestFindDevicePathBadPattern(t *testing.T) {
	_, err := findDevicePath(1, []string{"[-"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, tty.ErrDeviceNotFound)
}

func TestPathForDeviceUnknown(t *testing.T) {
	// major 0xfff is not handed out to terminals on either kernel
	_, err := PathForDevice(tty.DeviceID(0xfff<<24 | 0xabcd))
	require.ErrorIs(t, err, tty.ErrDeviceNotFound)
}

func TestDescribeSelf(t *testing.T) {
	info, err := New().Describe(os.Getpid())
	if err != nil {
		require.ErrorIs(t, err, tty.ErrNoControllingTTY)
		t.Skip("no controlling terminal")
	}

	assert.Equal(t, os.Getpid(), info.PID)
	assert.True(t, info.Device.Valid())
	if info.Path != "" {
		assert.FileExists(t, info.Path)
	}
}
