package codes

import (
	"math/bits"

	"github.com/arloliu/bitcodec/format"
)

// Gamma implements the Elias gamma code: the bit length l of v+1 is
// unary-encoded, followed by the l low-order bits of v+1 (its offset above
// 2^l). Optimal for distributions with Zipf exponent 2.
//
// v = 0 encodes as the single bit "1" in both packing orders.
type Gamma struct{}

var _ Code = Gamma{}

func (Gamma) Family() format.CodeFamily { return format.FamilyGamma }

// Length returns 2*floor(log2(v+1)) + 1, the exact gamma codeword length.
func (Gamma) Length(v uint64) int {
	return 2*log2FloorPlus1(v) + 1
}

// Decode reads a unary length prefix l, then an l-bit offset, and returns
// offset + 2^l - 1.
func (Gamma) Decode(w Window, order format.BitOrder) (uint64, Window, error) {
	l, rest, err := Unary{}.Decode(w, order)
	if err != nil {
		return 0, w, err
	}
	if l == 0 {
		return 0, rest, nil
	}

	offset, rest, err := ReadFixed(rest, int(l), order)
	if err != nil {
		return 0, w, err
	}

	return offset + 1<<l - 1, rest, nil
}

// Encode returns the gamma codeword for v. Fails with ErrCodewordTooLong when
// the codeword exceeds 64 bits (v >= 2^32 - 1).
func (Gamma) Encode(v uint64, order format.BitOrder) (Codeword, error) {
	var cw Codeword
	if err := appendGamma(&cw, v, order); err != nil {
		return Codeword{}, err
	}

	return cw, nil
}

// appendGamma appends the gamma codeword for v to cw, shared with the delta
// encoder for its length prefix.
func appendGamma(cw *Codeword, v uint64, order format.BitOrder) error {
	l := log2FloorPlus1(v)
	if cw.Len+2*l+1 > 64 {
		return ErrCodewordTooLong
	}

	cw.appendUnary(uint64(l), order)
	if l != 0 {
		cw.Append(v+1-1<<l, l, order)
	}

	return nil
}

// log2Floor returns floor(log2(v)) for v > 0.
func log2Floor(v uint64) int {
	return bits.Len64(v) - 1
}

// log2FloorPlus1 returns floor(log2(v+1)) without overflowing at v = 2^64-1.
func log2FloorPlus1(v uint64) int {
	if v == ^uint64(0) {
		return 64
	}

	return log2Floor(v + 1)
}
