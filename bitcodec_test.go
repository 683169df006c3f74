package bitcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitcodec/format"
)

func TestNewCode(t *testing.T) {
	for _, family := range []format.CodeFamily{
		format.FamilyUnary, format.FamilyGamma, format.FamilyDelta, format.FamilyZeta,
	} {
		code, err := NewCode(family, 3)
		require.NoError(t, err)
		require.Equal(t, family, code.Family())
	}

	_, err := NewCode(format.CodeFamily(0xFF), 0)
	require.Error(t, err)

	// Zeta validates its shrinking parameter.
	_, err = NewCode(format.FamilyZeta, 0)
	require.Error(t, err)
}

func TestEncodeBitString_Scenarios(t *testing.T) {
	tests := []struct {
		family format.CodeFamily
		v      uint64
		order  format.BitOrder
		want   string
	}{
		{format.FamilyUnary, 0, format.MSBFirst, "1"},
		{format.FamilyUnary, 1, format.MSBFirst, "01"},
		{format.FamilyUnary, 1, format.LSBFirst, "10"},
		{format.FamilyGamma, 4, format.MSBFirst, "00101"},
		{format.FamilyGamma, 4, format.LSBFirst, "01100"},
		{format.FamilyDelta, 4, format.MSBFirst, "01101"},
		{format.FamilyDelta, 4, format.LSBFirst, "01110"},
	}

	for _, tt := range tests {
		code, err := NewCode(tt.family, 0)
		require.NoError(t, err)

		got, err := EncodeBitString(code, tt.v, tt.order)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "%s encode(%d) %s", tt.family, tt.v, tt.order)
	}
}

func TestDecodeBitString(t *testing.T) {
	gamma, err := NewCode(format.FamilyGamma, 0)
	require.NoError(t, err)

	// Codeword plus trailing junk: only the codeword is consumed.
	v, consumed, err := DecodeBitString(gamma, "0010111", format.MSBFirst)
	require.NoError(t, err)
	require.Equal(t, uint64(4), v)
	require.Equal(t, 5, consumed)

	v, consumed, err = DecodeBitString(gamma, "1", format.MSBFirst)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
	require.Equal(t, 1, consumed)

	_, _, err = DecodeBitString(gamma, "00", format.MSBFirst)
	require.Error(t, err)

	_, _, err = DecodeBitString(gamma, "0a1", format.MSBFirst)
	require.ErrorContains(t, err, "invalid bit string")
}

func TestBuildTables_Wrapper(t *testing.T) {
	tbl, err := BuildTables(format.FamilyGamma, 0, 8, 256)
	require.NoError(t, err)
	require.Len(t, tbl.ReadMSB, 256)
	require.Len(t, tbl.WriteMSB, 257)
	require.Len(t, tbl.Len, 257)
	require.Equal(t, uint16(255), tbl.MissingValueLen)

	_, err = BuildTables(format.FamilyGamma, 0, 0, 256)
	require.Error(t, err)
}
