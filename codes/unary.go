package codes

import (
	"math/bits"

	"github.com/arloliu/bitcodec/format"
)

// Unary implements the unary code: v is encoded as v zero bits followed by a
// single one bit (MSB-first order), or the mirrored layout (LSB-first order),
// so that reading proceeds symmetrically from either end.
//
// The unary code is the base case of the family: gamma and zeta both use it
// for their length prefixes. Codeword length grows linearly with the value,
// so it only pays off for very small values.
type Unary struct{}

var _ Code = Unary{}

func (Unary) Family() format.CodeFamily { return format.FamilyUnary }

// Length returns v + 1, the exact unary codeword length.
func (Unary) Length(v uint64) int {
	return int(v) + 1
}

// Decode scans from the reading end of w for the first one bit. The count of
// zero bits scanned is the decoded value. Fails with ErrEndOfWindow when no
// terminator appears within the window.
func (Unary) Decode(w Window, order format.BitOrder) (uint64, Window, error) {
	if w.Bits == 0 {
		// All zeros (or an empty window): no terminator in sight.
		return 0, w, ErrEndOfWindow
	}

	if order == format.MSBFirst {
		// Leading zeros within the window, then the terminator.
		rest := bits.Len64(w.Bits) - 1
		v := uint64(w.Width - 1 - rest)

		return v, Window{Bits: w.Bits & widthMask(rest), Width: rest}, nil
	}

	// Trailing zeros, then the terminator.
	v := uint64(bits.TrailingZeros64(w.Bits))

	return v, Window{Bits: w.Bits >> (v + 1), Width: w.Width - int(v) - 1}, nil
}

// Encode returns the unary codeword for v. Fails with ErrCodewordTooLong for
// v > 63, since v + 1 bits must fit a 64-bit pattern.
func (Unary) Encode(v uint64, order format.BitOrder) (Codeword, error) {
	if v > 63 {
		return Codeword{}, ErrCodewordTooLong
	}

	var cw Codeword
	cw.appendUnary(v, order)

	return cw, nil
}
