package codes

import (
	"github.com/arloliu/bitcodec/format"
)

// Delta implements the Elias delta code. Structurally identical to gamma, but
// the length prefix l is itself gamma-encoded rather than unary-encoded. This
// trades slightly longer codes for small values against asymptotically
// shorter codes for large ones; delta overtakes gamma for sufficiently large
// values.
type Delta struct{}

var _ Code = Delta{}

func (Delta) Family() format.CodeFamily { return format.FamilyDelta }

// Length returns l + gammaLength(l) where l = floor(log2(v+1)).
func (Delta) Length(v uint64) int {
	l := log2FloorPlus1(v)

	return l + Gamma{}.Length(uint64(l))
}

// Decode reads a gamma-encoded length prefix l, then an l-bit offset, and
// returns offset + 2^l - 1.
func (Delta) Decode(w Window, order format.BitOrder) (uint64, Window, error) {
	l, rest, err := Gamma{}.Decode(w, order)
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

// Encode returns the delta codeword for v. Fails with ErrCodewordTooLong when
// the codeword exceeds 64 bits.
func (d Delta) Encode(v uint64, order format.BitOrder) (Codeword, error) {
	if d.Length(v) > 64 {
		return Codeword{}, ErrCodewordTooLong
	}

	l := log2FloorPlus1(v)

	var cw Codeword
	if err := appendGamma(&cw, uint64(l), order); err != nil {
		return Codeword{}, err
	}
	if l != 0 {
		cw.Append(v+1-1<<l, l, order)
	}

	return cw, nil
}
