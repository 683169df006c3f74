// Package bitcodec provides universal integer codes (unary, Elias gamma,
// delta, and zeta) over bit windows in two packing orders, together with the
// table builder that derives fixed-width lookup tables for O(1) decoding,
// encoding, and skipping of small codewords.
//
// # Core Concepts
//
//   - codes: the bit-by-bit reference algorithms. Each family exposes exact
//     length, decode-from-window, and encode-to-codeword operations under
//     MSB-first and LSB-first bit orders.
//   - tables: a generic builder that drives any code family over every
//     fixed-width window and every value up to a maximum, producing read,
//     write, and length tables plus a sentinel for windows too short to hold
//     a complete codeword.
//   - artifacts: built tables can be emitted as generated Go source or as a
//     checksummed, optionally compressed binary blob.
//
// # Basic Usage
//
// Building tables and decoding through them:
//
//	tbl, _ := bitcodec.BuildTables(format.FamilyGamma, 0, 8, 256)
//
//	// Consumer side: peek 8 bits from the stream, one lookup.
//	entry := tbl.ReadMSB[window]
//	if entry.Bits != tbl.MissingValueLen {
//	    // fast path: entry.Value decoded, consume entry.Bits bits
//	} else {
//	    // slow path: fall back to the bit-by-bit algorithm
//	}
//
// Encoding a value directly:
//
//	cw, _ := bitcodec.NewCode(format.FamilyGamma, 0)
//	pattern, _ := cw.Encode(4, format.MSBFirst) // 00101
//
// The cmd/gentables CLI wraps the same operations for build-time artifact
// generation.
package bitcodec

import (
	"fmt"
	"strconv"

	"github.com/arloliu/bitcodec/codes"
	"github.com/arloliu/bitcodec/format"
	"github.com/arloliu/bitcodec/tables"
)

// NewCode returns the bit-by-bit Code implementation for the given family.
// zetaK is the zeta shrinking parameter and is ignored by other families.
func NewCode(family format.CodeFamily, zetaK uint) (codes.Code, error) {
	return codes.New(family, zetaK)
}

// BuildTables builds the full lookup table set for one code family: read
// tables indexed by readBits-wide windows, and write/length tables covering
// values up to maxValue.
func BuildTables(family format.CodeFamily, zetaK uint, readBits int, maxValue uint64) (*tables.Tables, error) {
	return tables.Build(tables.Config{
		Family:   family,
		ZetaK:    zetaK,
		ReadBits: readBits,
		MaxValue: maxValue,
	})
}

// EncodeBitString encodes v and renders the codeword as a binary string, MSB
// on the left. Intended for debugging and tests; the string form matches the
// codeword's integer pattern rendered to its exact bit length.
func EncodeBitString(code codes.Code, v uint64, order format.BitOrder) (string, error) {
	cw, err := code.Encode(v, order)
	if err != nil {
		return "", err
	}

	return cw.String(), nil
}

// DecodeBitString decodes one codeword from the front of a binary string
// window, returning the value and the number of bits consumed.
func DecodeBitString(code codes.Code, window string, order format.BitOrder) (uint64, int, error) {
	if len(window) > 64 {
		return 0, 0, fmt.Errorf("window %q wider than 64 bits", window)
	}

	bits := uint64(0)
	if window != "" {
		var err error
		bits, err = strconv.ParseUint(window, 2, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid bit string %q: %w", window, err)
		}
	}

	w := codes.NewWindow(bits, len(window))
	v, rest, err := code.Decode(w, order)
	if err != nil {
		return 0, 0, err
	}

	return v, w.Consumed(rest), nil
}
