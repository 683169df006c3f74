package codes

import (
	"fmt"

	"github.com/arloliu/bitcodec/format"
)

// Window is a finite, fixed-width slice of a bitstream, at most 64 bits wide.
//
// The window is held as an unsigned integer whose binary representation,
// left-padded with zeros to Width bits, is the bit pattern of the window.
// Under MSB-first order fields are consumed from the leading (high) end,
// under LSB-first order from the trailing (low) end.
type Window struct {
	Bits  uint64
	Width int
}

// NewWindow creates a Window of the given width holding the low width bits of
// bits. Width must be in [0, 64].
func NewWindow(bits uint64, width int) Window {
	return Window{Bits: bits & widthMask(width), Width: width}
}

// Consumed returns how many bits were consumed to get from w to rest.
func (w Window) Consumed(rest Window) int {
	return w.Width - rest.Width
}

// String renders the window as a binary string, MSB on the left, padded to
// Width characters.
func (w Window) String() string {
	if w.Width == 0 {
		return ""
	}

	return fmt.Sprintf("%0*b", w.Width, w.Bits)
}

// ReadFixed extracts an unsigned field of width bits from one end of w: the
// leading end under MSB-first order, the trailing end under LSB-first order.
// It returns the field and the remaining window.
//
// Fails with ErrInsufficientWindow when w has fewer than width bits.
func ReadFixed(w Window, width int, order format.BitOrder) (uint64, Window, error) {
	if width > w.Width {
		return 0, w, ErrInsufficientWindow
	}
	if width == 0 {
		return 0, w, nil
	}

	rest := w.Width - width
	if order == format.MSBFirst {
		field := (w.Bits >> rest) & widthMask(width)

		return field, Window{Bits: w.Bits & widthMask(rest), Width: rest}, nil
	}

	field := w.Bits & widthMask(width)

	return field, Window{Bits: w.Bits >> width, Width: rest}, nil
}

// Codeword is a standalone bit pattern with an explicit bit length.
//
// The pattern is stored as an unsigned integer whose binary representation,
// left-padded with zeros to Len bits, is the codeword bit-for-bit. This
// integer form is identical for both packing orders; the order only decides
// where successive fields land inside the pattern while it is being built.
type Codeword struct {
	Bits uint64
	Len  int
}

// Append inserts value as a width-bit field at the writing end of the
// codeword: after the existing bits under MSB-first order, before them under
// LSB-first order. The value is left-padded with zeros to exactly width bits.
//
// The caller must ensure the total length stays within 64 bits; Encode
// implementations validate this via Length before appending.
func (c *Codeword) Append(value uint64, width int, order format.BitOrder) {
	value &= widthMask(width)
	if order == format.MSBFirst {
		c.Bits = c.Bits<<width | value
	} else {
		c.Bits |= value << c.Len
	}
	c.Len += width
}

// appendUnary appends the unary codeword for v: v zero bits then a one bit
// under MSB-first order, the mirrored layout under LSB-first order.
func (c *Codeword) appendUnary(v uint64, order format.BitOrder) {
	if order == format.MSBFirst {
		c.Append(1, int(v)+1, order)
	} else {
		c.Append(1<<v, int(v)+1, order)
	}
}

// Window converts the codeword into a window of exactly its own length,
// ready to be decoded back.
func (c Codeword) Window() Window {
	return Window{Bits: c.Bits, Width: c.Len}
}

// String renders the codeword as a binary string, MSB on the left, padded to
// Len characters.
func (c Codeword) String() string {
	if c.Len == 0 {
		return ""
	}

	return fmt.Sprintf("%0*b", c.Len, c.Bits)
}

// widthMask returns a mask with the low width bits set.
func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return 1<<width - 1
}
