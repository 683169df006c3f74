package tables

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitcodec/format"
)

func TestWriteGoSource(t *testing.T) {
	tbl, err := Build(Config{Family: format.FamilyGamma, ReadBits: 4, MaxValue: 16})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteGoSource(&sb, tbl, "gammatables"))
	src := sb.String()

	require.True(t, strings.HasPrefix(src, "// Code generated by gentables. DO NOT EDIT.\n"))
	require.Contains(t, src, "package gammatables\n")
	require.Contains(t, src, "const ReadBits = 4\n")
	require.Contains(t, src, "const MissingValueLen = 255\n")

	// 2^4 read entries per order, 17 write/len entries, all small enough
	// for uint8 storage.
	require.Contains(t, src, "var ReadMSBValues = [16]uint8{")
	require.Contains(t, src, "var ReadMSBBits = [16]uint8{")
	require.Contains(t, src, "var ReadLSBValues = [16]uint8{")
	require.Contains(t, src, "var ReadLSBBits = [16]uint8{")
	require.Contains(t, src, "var WriteMSBPatterns = [17]uint8{")
	require.Contains(t, src, "var WriteMSBBits = [17]uint8{")
	require.Contains(t, src, "var WriteLSBPatterns = [17]uint8{")
	require.Contains(t, src, "var WriteLSBBits = [17]uint8{")
	require.Contains(t, src, "var Len = [17]uint8{")
}

func TestWriteGoSource_WidensElementTypes(t *testing.T) {
	// Gamma patterns for values up to 2^16 exceed uint16 storage.
	tbl, err := Build(Config{Family: format.FamilyGamma, ReadBits: 4, MaxValue: 1 << 16})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteGoSource(&sb, tbl, "gammatables"))
	src := sb.String()

	require.Contains(t, src, "var WriteMSBPatterns = [65537]uint32{")
	require.Contains(t, src, "var WriteLSBPatterns = [65537]uint32{")
	require.Contains(t, src, "var Len = [65537]uint8{")
}
