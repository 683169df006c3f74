package tables

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitcodec/codes"
	"github.com/arloliu/bitcodec/format"
)

func testConfigs() []Config {
	return []Config{
		{Family: format.FamilyUnary, ReadBits: 8, MaxValue: 63},
		{Family: format.FamilyGamma, ReadBits: 8, MaxValue: 256},
		{Family: format.FamilyDelta, ReadBits: 8, MaxValue: 256},
		{Family: format.FamilyZeta, ZetaK: 3, ReadBits: 8, MaxValue: 256},
	}
}

func TestConfig_Validate(t *testing.T) {
	require.Error(t, Config{Family: format.FamilyGamma, ReadBits: 0}.Validate())
	require.Error(t, Config{Family: format.FamilyGamma, ReadBits: -1}.Validate())
	require.Error(t, Config{Family: format.FamilyGamma, ReadBits: 33}.Validate())
	require.Error(t, Config{Family: format.FamilyZeta, ZetaK: 0, ReadBits: 8}.Validate())
	require.NoError(t, Config{Family: format.FamilyGamma, ReadBits: 8}.Validate())
}

// Every read-table entry must agree with the bit-by-bit algorithm: same value
// and consumed count where decode succeeds within the window, the sentinel
// where it does not.
func TestBuild_ReadTableMatchesAlgorithm(t *testing.T) {
	for _, cfg := range testConfigs() {
		tbl, err := Build(cfg)
		require.NoError(t, err)

		code, err := codes.New(cfg.Family, cfg.ZetaK)
		require.NoError(t, err)

		orders := []struct {
			order   format.BitOrder
			entries []ReadEntry
		}{
			{format.MSBFirst, tbl.ReadMSB},
			{format.LSBFirst, tbl.ReadLSB},
		}

		for _, o := range orders {
			require.Len(t, o.entries, 1<<cfg.ReadBits)

			for p, entry := range o.entries {
				w := codes.NewWindow(uint64(p), cfg.ReadBits)
				v, rest, decodeErr := code.Decode(w, o.order)

				if decodeErr != nil {
					require.Equal(t, ReadEntry{Value: 0, Bits: tbl.MissingValueLen}, entry,
						"%s %s window %s must carry the sentinel", cfg.Family, o.order, w)
					continue
				}

				require.Equal(t, v, entry.Value, "%s %s window %s", cfg.Family, o.order, w)
				require.Equal(t, w.Consumed(rest), int(entry.Bits), "%s %s window %s", cfg.Family, o.order, w)
			}
		}
	}
}

func TestBuild_WriteTableMatchesAlgorithm(t *testing.T) {
	for _, cfg := range testConfigs() {
		tbl, err := Build(cfg)
		require.NoError(t, err)

		code, err := codes.New(cfg.Family, cfg.ZetaK)
		require.NoError(t, err)

		for v := uint64(0); v <= cfg.MaxValue; v++ {
			for _, order := range []format.BitOrder{format.MSBFirst, format.LSBFirst} {
				entries := tbl.WriteMSB
				if order == format.LSBFirst {
					entries = tbl.WriteLSB
				}

				cw, err := code.Encode(v, order)
				require.NoError(t, err)
				require.Equal(t, WriteEntry{Pattern: cw.Bits, Bits: uint8(cw.Len)}, entries[v],
					"%s %s write entry for %d", cfg.Family, order, v)
			}

			require.Equal(t, code.Length(v), int(tbl.Len[v]), "%s len entry for %d", cfg.Family, v)
		}
	}
}

func TestBuild_UnaryReadScenarios(t *testing.T) {
	tbl, err := Build(Config{Family: format.FamilyUnary, ReadBits: 8, MaxValue: 63})
	require.NoError(t, err)
	require.Equal(t, uint16(255), tbl.MissingValueLen)

	// 00000001: seven zeros then the terminator.
	require.Equal(t, ReadEntry{Value: 7, Bits: 8}, tbl.ReadMSB[0b00000001])

	// 00000000: no terminator within 8 bits.
	require.Equal(t, ReadEntry{Value: 0, Bits: 255}, tbl.ReadMSB[0b00000000])

	// 01000000: one leading zero, terminator, five junk bits left.
	require.Equal(t, ReadEntry{Value: 1, Bits: 2}, tbl.ReadMSB[0b01000000])

	// LSB-first reads from the trailing end.
	require.Equal(t, ReadEntry{Value: 7, Bits: 8}, tbl.ReadLSB[0b10000000])
	require.Equal(t, ReadEntry{Value: 0, Bits: 255}, tbl.ReadLSB[0b00000000])
}

func TestBuild_GammaWriteScenario(t *testing.T) {
	tbl, err := Build(Config{Family: format.FamilyGamma, ReadBits: 8, MaxValue: 256})
	require.NoError(t, err)

	// 2*floor(log2(257)) + 1 = 17 bits for the largest covered value.
	require.Equal(t, uint8(17), tbl.WriteMSB[256].Bits)
	require.Equal(t, uint8(17), tbl.WriteLSB[256].Bits)
	require.Equal(t, uint8(17), tbl.Len[256])

	// Spec scenario: gamma encode(4) is 00101 MSB-first, 01100 LSB-first.
	require.Equal(t, WriteEntry{Pattern: 0b00101, Bits: 5}, tbl.WriteMSB[4])
	require.Equal(t, WriteEntry{Pattern: 0b01100, Bits: 5}, tbl.WriteLSB[4])
}

func TestBuild_SentinelExceedsRealLengths(t *testing.T) {
	for _, cfg := range testConfigs() {
		tbl, err := Build(cfg)
		require.NoError(t, err)

		for _, entry := range append(append([]ReadEntry{}, tbl.ReadMSB...), tbl.ReadLSB...) {
			if entry.Bits != tbl.MissingValueLen {
				require.Less(t, int(entry.Bits), int(tbl.MissingValueLen))
				require.LessOrEqual(t, int(entry.Bits), cfg.ReadBits)
			}
		}
	}
}

func TestBuild_TypeOverflow(t *testing.T) {
	// A unary codeword for 64 needs 65 bits and cannot be stored as a
	// 64-bit write pattern.
	_, err := Build(Config{Family: format.FamilyUnary, ReadBits: 8, MaxValue: 64})
	require.ErrorIs(t, err, ErrTypeOverflow)

	_, err = Build(Config{Family: format.FamilyGamma, ReadBits: 8, MaxValue: 1 << 33})
	require.ErrorIs(t, err, ErrTypeOverflow)
}

func TestBuildAll(t *testing.T) {
	cfgs := testConfigs()
	built, err := BuildAll(cfgs)
	require.NoError(t, err)
	require.Len(t, built, len(cfgs))

	for i, tbl := range built {
		require.Equal(t, cfgs[i], tbl.Config)

		// Concurrent builds must match their sequential counterparts.
		sequential, err := Build(cfgs[i])
		require.NoError(t, err)
		require.Equal(t, sequential, tbl)
	}
}

func TestBuildAll_PropagatesError(t *testing.T) {
	_, err := BuildAll([]Config{
		{Family: format.FamilyGamma, ReadBits: 8, MaxValue: 256},
		{Family: format.FamilyUnary, ReadBits: 8, MaxValue: 1000},
	})
	require.ErrorIs(t, err, ErrTypeOverflow)
}
