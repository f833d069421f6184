//go:build darwin

package tty_bsd

import (
	"testing"

	"cttydev/tty"

	"github.com/stretchr/testify/assert"
)

func TestDevFromKernel(t *testing.T) {
	assert.Equal(t, tty.NoDevice, devFromKernel(-1))
	assert.Equal(t, tty.NoDevice, devFromKernel(0))
	assert.Equal(t, tty.DeviceID(0x10000003), devFromKernel(0x10000003))
	// the top bit is part of the major number, not a sign
	assert.Equal(t, tty.DeviceID(0x80000001), devFromKernel(-0x7fffffff))
}
