package tables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinUintWidth(t *testing.T) {
	tests := []struct {
		nBits int
		width int
	}{
		{0, 8},
		{1, 8},
		{8, 8},
		{9, 16},
		{16, 16},
		{17, 32},
		{32, 32},
		{33, 64},
		{64, 64},
		{65, 128},
		{128, 128},
	}

	for _, tt := range tests {
		width, err := MinUintWidth(tt.nBits)
		require.NoError(t, err)
		require.Equal(t, tt.width, width, "nBits=%d", tt.nBits)
	}

	_, err := MinUintWidth(129)
	require.ErrorIs(t, err, ErrTypeOverflow)
}

func TestMinUintWidthFor(t *testing.T) {
	tests := []struct {
		max   uint64
		width int
	}{
		{0, 8},
		{255, 8},
		{256, 16},
		{65535, 16},
		{65536, 32},
		{1 << 32, 64},
		{^uint64(0), 64},
	}

	for _, tt := range tests {
		width, err := MinUintWidthFor(tt.max)
		require.NoError(t, err)
		require.Equal(t, tt.width, width, "max=%d", tt.max)
	}
}

func TestGoType(t *testing.T) {
	for width, want := range map[int]string{8: "uint8", 16: "uint16", 32: "uint32", 64: "uint64"} {
		goType, err := GoType(width)
		require.NoError(t, err)
		require.Equal(t, want, goType)
	}

	// Go has no 128-bit unsigned type.
	_, err := GoType(128)
	require.ErrorIs(t, err, ErrTypeOverflow)
}
