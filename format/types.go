package format

import "fmt"

type (
	BitOrder        uint8
	CodeFamily      uint8
	CompressionType uint8
)

const (
	// MSBFirst packs successive fields starting from the most significant end
	// of a shared bit window.
	MSBFirst BitOrder = 0x1
	// LSBFirst packs successive fields starting from the least significant end.
	LSBFirst BitOrder = 0x2

	FamilyUnary CodeFamily = 0x1 // FamilyUnary represents the unary code.
	FamilyGamma CodeFamily = 0x2 // FamilyGamma represents the Elias gamma code.
	FamilyDelta CodeFamily = 0x3 // FamilyDelta represents the Elias delta code.
	FamilyZeta  CodeFamily = 0x4 // FamilyZeta represents the Elias zeta code.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (o BitOrder) String() string {
	switch o {
	case MSBFirst:
		return "MSBFirst"
	case LSBFirst:
		return "LSBFirst"
	default:
		return "Unknown"
	}
}

// Valid reports whether o is one of the two defined packing orders.
func (o BitOrder) Valid() bool {
	return o == MSBFirst || o == LSBFirst
}

func (f CodeFamily) String() string {
	switch f {
	case FamilyUnary:
		return "Unary"
	case FamilyGamma:
		return "Gamma"
	case FamilyDelta:
		return "Delta"
	case FamilyZeta:
		return "Zeta"
	default:
		return "Unknown"
	}
}

// ParseCodeFamily converts a lowercase family name ("unary", "gamma", "delta",
// "zeta") into its CodeFamily value.
func ParseCodeFamily(name string) (CodeFamily, error) {
	switch name {
	case "unary":
		return FamilyUnary, nil
	case "gamma":
		return FamilyGamma, nil
	case "delta":
		return FamilyDelta, nil
	case "zeta":
		return FamilyZeta, nil
	default:
		return 0, fmt.Errorf("unknown code family: %q", name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType converts a lowercase compression name into its
// CompressionType value.
func ParseCompressionType(name string) (CompressionType, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type: %q", name)
	}
}
