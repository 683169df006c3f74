package tables

import (
	"fmt"
	"sync"

	"github.com/arloliu/bitcodec/codes"
	"github.com/arloliu/bitcodec/format"
)

// Config describes one table build: a code family (with the zeta shrinking
// parameter where applicable), the read-table window width in bits, and the
// largest value covered by the write and length tables.
//
// ReadBits is capped at 32 because the read tables hold 2^ReadBits entries;
// widths of 24 and above are legal but cost memory and build time linear in
// 2^ReadBits.
type Config struct {
	Family   format.CodeFamily
	ZetaK    uint // shrinking parameter, zeta family only
	ReadBits int
	MaxValue uint64
}

// Validate rejects invalid configurations before enumeration begins.
func (c Config) Validate() error {
	if c.ReadBits < 1 || c.ReadBits > 32 {
		return fmt.Errorf("invalid readBits %d: must be in [1, 32]", c.ReadBits)
	}
	if c.Family == format.FamilyZeta && c.ZetaK < 1 {
		return fmt.Errorf("zeta family requires k >= 1, got %d", c.ZetaK)
	}

	return nil
}

// code constructs the Code implementation this configuration drives.
func (c Config) code() (codes.Code, error) {
	return codes.New(c.Family, c.ZetaK)
}

// ReadEntry is the decode result precomputed for one window pattern: the
// decoded value and the number of bits its codeword consumed. Entries whose
// codeword does not complete within the window carry the sentinel length
// instead (Tables.MissingValueLen) and a zero value.
type ReadEntry struct {
	Value uint64
	Bits  uint16
}

// WriteEntry is the precomputed codeword for one value: the exact bit layout
// of encode(v) under the table's order, as a pattern integer, plus its
// length.
type WriteEntry struct {
	Pattern uint64
	Bits    uint8
}

// Tables holds every derived artifact for one configuration: read tables per
// packing order, write tables per order, and the plain length table. Once
// built, a Tables value is immutable and safe for concurrent use.
type Tables struct {
	Config Config

	// MissingValueLen is the sentinel stored in read entries whose window
	// cannot hold a complete codeword. It is strictly greater than any real
	// consumed-bit count the read table can contain.
	MissingValueLen uint16

	ReadMSB  []ReadEntry
	ReadLSB  []ReadEntry
	WriteMSB []WriteEntry
	WriteLSB []WriteEntry
	Len      []uint8
}

// Build derives the full table set for cfg. The computation is pure and
// single-threaded: it terminates after 2*2^ReadBits window decodes plus
// 3*(MaxValue+1) encode/length evaluations.
//
// Fails with ErrTypeOverflow when a codeword for a value up to MaxValue does
// not fit a 64-bit pattern, and with a validation error for out-of-range
// configuration; sentinel read entries are an expected outcome, never an
// error.
func Build(cfg Config) (*Tables, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	code, err := cfg.code()
	if err != nil {
		return nil, err
	}

	// The write and len tables store codewords as uint64 patterns with uint8
	// lengths; every family's length is monotone, so checking the largest
	// value suffices.
	maxLen := code.Length(cfg.MaxValue)
	if maxLen < 1 || maxLen > 64 {
		return nil, fmt.Errorf("%w: %s codeword for max value %d needs %d bits",
			ErrTypeOverflow, cfg.Family, cfg.MaxValue, maxLen)
	}

	sentinel, err := missingValueLen(cfg.ReadBits)
	if err != nil {
		return nil, err
	}

	t := &Tables{
		Config:          cfg,
		MissingValueLen: sentinel,
		ReadMSB:         buildRead(code, cfg.ReadBits, format.MSBFirst, sentinel),
		ReadLSB:         buildRead(code, cfg.ReadBits, format.LSBFirst, sentinel),
		Len:             buildLen(code, cfg.MaxValue),
	}

	if t.WriteMSB, err = buildWrite(code, cfg.MaxValue, format.MSBFirst); err != nil {
		return nil, err
	}
	if t.WriteLSB, err = buildWrite(code, cfg.MaxValue, format.LSBFirst); err != nil {
		return nil, err
	}

	return t, nil
}

// BuildAll builds one table set per configuration, each on its own goroutine.
// Every build enumerates a disjoint input domain with no shared mutable
// state, so the only coordination needed is the per-slot result.
func BuildAll(cfgs []Config) ([]*Tables, error) {
	results := make([]*Tables, len(cfgs))
	errs := make([]error, len(cfgs))

	var wg sync.WaitGroup
	for i, cfg := range cfgs {
		i, cfg := i, cfg
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Build(cfg)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("building %s tables: %w", cfgs[i].Family, err)
		}
	}

	return results, nil
}

// buildRead enumerates every width-bit window, decodes it bit by bit, and
// records either (value, consumed) or the sentinel. This exhaustive pass is
// the authoritative cross-check against the bit-by-bit algorithm.
func buildRead(code codes.Code, width int, order format.BitOrder, sentinel uint16) []ReadEntry {
	entries := make([]ReadEntry, 1<<width)
	for p := range entries {
		w := codes.NewWindow(uint64(p), width)
		v, rest, err := code.Decode(w, order)
		if err != nil {
			// Codeword longer than the window: expected, mark for fallback.
			entries[p] = ReadEntry{Value: 0, Bits: sentinel}
			continue
		}

		entries[p] = ReadEntry{Value: v, Bits: uint16(w.Consumed(rest))} //nolint:gosec
	}

	return entries
}

func buildWrite(code codes.Code, maxValue uint64, order format.BitOrder) ([]WriteEntry, error) {
	entries := make([]WriteEntry, maxValue+1)
	for v := uint64(0); v <= maxValue; v++ {
		cw, err := code.Encode(v, order)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding %d", ErrTypeOverflow, v)
		}

		entries[v] = WriteEntry{Pattern: cw.Bits, Bits: uint8(cw.Len)} //nolint:gosec
	}

	return entries, nil
}

func buildLen(code codes.Code, maxValue uint64) []uint8 {
	lens := make([]uint8, maxValue+1)
	for v := uint64(0); v <= maxValue; v++ {
		lens[v] = uint8(code.Length(v)) //nolint:gosec
	}

	return lens
}

// missingValueLen picks the sentinel for a read-table length column: the
// all-ones value of the smallest ladder class holding readBits. Any real
// consumed count is at most readBits, so the all-ones value of a class that
// holds readBits is always strictly greater (255 for every readBits <= 32,
// matching the historical choice).
func missingValueLen(readBits int) (uint16, error) {
	width, err := MinUintWidthFor(uint64(readBits)) //nolint:gosec
	if err != nil {
		return 0, err
	}
	if width > 16 {
		return 0, fmt.Errorf("%w: sentinel for readBits %d exceeds uint16 storage", ErrTypeOverflow, readBits)
	}

	sentinel := uint16(uint32(1)<<width - 1) //nolint:gosec
	if int(sentinel) <= readBits {
		return 0, fmt.Errorf("sentinel %d not distinguishable from real length %d", sentinel, readBits)
	}

	return sentinel, nil
}
