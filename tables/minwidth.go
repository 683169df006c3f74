package tables

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrTypeOverflow indicates no fixed-width unsigned class in the ladder
// {8, 16, 32, 64, 128} can hold a required value or length. This is a fatal
// configuration error, not a runtime condition.
var ErrTypeOverflow = errors.New("no fixed-width type can hold value")

// widthLadder is the fixed ladder of storage class widths, in bits.
var widthLadder = []int{8, 16, 32, 64, 128}

// MinUintWidth returns the smallest class from the fixed ladder able to hold
// a value of nBits bits. Fails with ErrTypeOverflow when even the 128-bit
// class is insufficient.
func MinUintWidth(nBits int) (int, error) {
	for _, w := range widthLadder {
		if nBits <= w {
			return w, nil
		}
	}

	return 0, fmt.Errorf("%w: %d bits required", ErrTypeOverflow, nBits)
}

// MinUintWidthFor returns the smallest ladder class able to hold max.
func MinUintWidthFor(max uint64) (int, error) {
	return MinUintWidth(bits.Len64(max))
}

// GoType maps a ladder class width to the Go unsigned type the source emitter
// uses for table elements. Go has no 128-bit integer, so that class is only
// reachable through explicit widening by the caller.
func GoType(width int) (string, error) {
	switch width {
	case 8:
		return "uint8", nil
	case 16:
		return "uint16", nil
	case 32:
		return "uint32", nil
	case 64:
		return "uint64", nil
	default:
		return "", fmt.Errorf("%w: no Go type of width %d", ErrTypeOverflow, width)
	}
}
