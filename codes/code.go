package codes

import (
	"errors"

	"github.com/arloliu/bitcodec/format"
)

var (
	// ErrEndOfWindow indicates a codeword's terminator bit does not appear
	// within the supplied window.
	ErrEndOfWindow = errors.New("end of window before terminator")

	// ErrInsufficientWindow indicates the window holds fewer bits than a
	// required fixed-width field.
	ErrInsufficientWindow = errors.New("window shorter than fixed field")

	// ErrCodewordTooLong indicates an encoded value does not fit the 64-bit
	// codeword pattern. This is a configuration error: the caller asked for a
	// value whose codeword exceeds what a standalone pattern can hold.
	ErrCodewordTooLong = errors.New("codeword exceeds 64 bits")
)

// Code is the capability set shared by all code families: exact bit-length
// computation, bit-by-bit decoding from a window, and encoding into a
// standalone codeword. Implementations are stateless values and safe for
// concurrent use.
//
// The table builder drives these three operations generically over enumerated
// inputs; it never depends on the internals of any one family.
type Code interface {
	// Family identifies the code family implemented by this Code.
	Family() format.CodeFamily

	// Length returns the exact codeword bit length for v.
	Length(v uint64) int

	// Decode reads one codeword from the appropriate end of w and returns the
	// decoded value together with the remaining window. It fails with
	// ErrEndOfWindow or ErrInsufficientWindow when the codeword does not
	// complete within w.
	Decode(w Window, order format.BitOrder) (uint64, Window, error)

	// Encode returns the standalone codeword for v. It fails with
	// ErrCodewordTooLong when Length(v) exceeds 64 bits.
	Encode(v uint64, order format.BitOrder) (Codeword, error)
}

// New returns the Code implementation for the given family. The zetaK
// parameter is the shrinking parameter of the zeta family and is ignored by
// the other families.
func New(family format.CodeFamily, zetaK uint) (Code, error) {
	switch family {
	case format.FamilyUnary:
		return Unary{}, nil
	case format.FamilyGamma:
		return Gamma{}, nil
	case format.FamilyDelta:
		return Delta{}, nil
	case format.FamilyZeta:
		return NewZeta(zetaK)
	default:
		return nil, errors.New("unknown code family")
	}
}
