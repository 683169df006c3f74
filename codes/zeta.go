package codes

import (
	"fmt"

	"github.com/arloliu/bitcodec/format"
)

// Zeta implements the Elias zeta code with shrinking parameter k. The value
// v+1 is split into a unary-encoded block count h = floor(log2(v+1))/k and a
// minimal-binary (truncated binary) remainder over the interval
// [2^(hk), 2^((h+1)k)). Optimal for power laws with exponents close to
// 1 + 1/k; zeta with k = 1 is bit-identical to gamma.
type Zeta struct {
	K uint
}

var _ Code = Zeta{}

// NewZeta creates a zeta code with shrinking parameter k. k must be at least
// 1 and small enough that a single block fits a codeword (k <= 32).
func NewZeta(k uint) (Zeta, error) {
	if k < 1 || k > 32 {
		return Zeta{}, fmt.Errorf("invalid zeta parameter k=%d: must be in [1, 32]", k)
	}

	return Zeta{K: k}, nil
}

func (Zeta) Family() format.CodeFamily { return format.FamilyZeta }

// Length returns h + 1 + minimalBinaryLength(v + 1 - 2^(hk)) where
// h = floor(log2(v+1)) / k.
func (z Zeta) Length(v uint64) int {
	h := uint(log2FloorPlus1(v)) / z.K
	if (h+1)*z.K > 64 {
		// The block interval no longer fits 64-bit arithmetic, so neither
		// does the codeword. Saturate past the pattern cap.
		return 65
	}

	lo, span := z.interval(h)

	return int(h) + 1 + minBinLen(v+1-lo, span)
}

// Decode reads a unary block count h, then a minimal-binary remainder over
// the h-th interval, and returns 2^(hk) + remainder - 1.
func (z Zeta) Decode(w Window, order format.BitOrder) (uint64, Window, error) {
	h, rest, err := Unary{}.Decode(w, order)
	if err != nil {
		return 0, w, err
	}
	if uint(h)*z.K >= 64 {
		// The block count alone points past the representable range; within
		// an enumerated window this can only be a truncated codeword.
		return 0, w, ErrInsufficientWindow
	}

	lo, span := z.interval(uint(h))
	r, rest, err := readMinBin(rest, span, order)
	if err != nil {
		return 0, w, err
	}

	return lo + r - 1, rest, nil
}

// Encode returns the zeta codeword for v. Fails with ErrCodewordTooLong when
// the codeword exceeds 64 bits.
func (z Zeta) Encode(v uint64, order format.BitOrder) (Codeword, error) {
	if z.Length(v) > 64 {
		return Codeword{}, ErrCodewordTooLong
	}

	h := uint(log2FloorPlus1(v)) / z.K
	lo, span := z.interval(h)

	var cw Codeword
	cw.appendUnary(uint64(h), order)
	appendMinBin(&cw, v+1-lo, span, order)

	return cw, nil
}

// interval returns the lower bound 2^(hk) and width 2^((h+1)k) - 2^(hk) of
// the h-th zeta block.
func (z Zeta) interval(h uint) (lo, span uint64) {
	lo = 1 << (h * z.K)
	span = lo<<z.K - lo

	return lo, span
}

// minBinLen returns the minimal binary codeword length for v over an alphabet
// of size max: l = floor(log2(max)) bits for the first 2^(l+1) - max symbols,
// l + 1 bits for the rest.
func minBinLen(v, max uint64) int {
	l := log2Floor(max)
	if v < 2<<l-max {
		return l
	}

	return l + 1
}

// appendMinBin appends the minimal binary codeword for v over an alphabet of
// size max. Symbols below the limit 2^(l+1) - max take l bits; the remaining
// symbols are shifted up by the limit and take l + 1 bits.
func appendMinBin(cw *Codeword, v, max uint64, order format.BitOrder) {
	l := log2Floor(max)
	limit := 2<<l - max

	if v < limit {
		cw.Append(v, l, order)
		return
	}

	v += limit
	cw.Append(v>>1, l, order)
	cw.Append(v&1, 1, order)
}

// readMinBin reads a minimal binary codeword over an alphabet of size max:
// an l-bit field, extended by one bit when it falls at or above the limit.
func readMinBin(w Window, max uint64, order format.BitOrder) (uint64, Window, error) {
	l := log2Floor(max)
	limit := 2<<l - max

	v, rest, err := ReadFixed(w, l, order)
	if err != nil {
		return 0, w, err
	}
	if v < limit {
		return v, rest, nil
	}

	b, rest, err := ReadFixed(rest, 1, order)
	if err != nil {
		return 0, w, err
	}

	return (v<<1 | b) - limit, rest, nil
}
