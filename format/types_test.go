package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitOrder(t *testing.T) {
	require.Equal(t, "MSBFirst", MSBFirst.String())
	require.Equal(t, "LSBFirst", LSBFirst.String())
	require.Equal(t, "Unknown", BitOrder(0xFF).String())

	require.True(t, MSBFirst.Valid())
	require.True(t, LSBFirst.Valid())
	require.False(t, BitOrder(0).Valid())
}

func TestCodeFamily_ParseRoundTrip(t *testing.T) {
	for _, family := range []CodeFamily{FamilyUnary, FamilyGamma, FamilyDelta, FamilyZeta} {
		parsed, err := ParseCodeFamily(strings.ToLower(family.String()))
		require.NoError(t, err)
		require.Equal(t, family, parsed)
	}

	_, err := ParseCodeFamily("golomb")
	require.ErrorContains(t, err, "unknown code family")
}

func TestCompressionType_ParseRoundTrip(t *testing.T) {
	for _, compression := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		parsed, err := ParseCompressionType(strings.ToLower(compression.String()))
		require.NoError(t, err)
		require.Equal(t, compression, parsed)
	}

	_, err := ParseCompressionType("brotli")
	require.ErrorContains(t, err, "unknown compression type")
}
