package tables

import (
	"fmt"

	"github.com/arloliu/bitcodec/compress"
	"github.com/arloliu/bitcodec/endian"
	"github.com/arloliu/bitcodec/format"
	"github.com/arloliu/bitcodec/internal/hash"
	"github.com/arloliu/bitcodec/internal/pool"
)

// Binary artifact layout, all integers little-endian:
//
//	offset  size  field
//	0       4     magic "BTB1"
//	4       1     code family
//	5       1     zeta k (0 outside the zeta family)
//	6       1     readBits
//	7       1     payload compression type
//	8       8     maxValue
//	16      2     missingValueLen
//	18      8     payload length (compressed)
//	26      8     xxHash64 checksum of the compressed payload
//	34      -     payload
//
// The payload concatenates ReadMSB, ReadLSB (value uint64 + bits uint16 per
// entry), WriteMSB, WriteLSB (pattern uint64 + bits uint8 per entry), and the
// Len table (uint8 per entry); all section lengths derive from the header.
const (
	artifactMagic      = "BTB1"
	artifactHeaderSize = 34
)

// Marshal serializes t into a standalone binary artifact, optionally
// compressing the table payload. The artifact carries an xxHash64 checksum
// verified by Unmarshal before any table data is trusted.
func Marshal(t *Tables, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.CreateCodec(compression)
	if err != nil {
		return nil, err
	}
	if t.Config.ZetaK > 255 {
		return nil, fmt.Errorf("zeta k %d does not fit artifact header", t.Config.ZetaK)
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	engine := endian.GetLittleEndianEngine()
	b := buf.Bytes()
	for _, e := range t.ReadMSB {
		b = engine.AppendUint64(b, e.Value)
		b = engine.AppendUint16(b, e.Bits)
	}
	for _, e := range t.ReadLSB {
		b = engine.AppendUint64(b, e.Value)
		b = engine.AppendUint16(b, e.Bits)
	}
	for _, e := range t.WriteMSB {
		b = engine.AppendUint64(b, e.Pattern)
		b = append(b, e.Bits)
	}
	for _, e := range t.WriteLSB {
		b = engine.AppendUint64(b, e.Pattern)
		b = append(b, e.Bits)
	}
	b = append(b, t.Len...)
	buf.B = b // keep the grown backing array with the pooled buffer

	payload, err := codec.Compress(b)
	if err != nil {
		return nil, fmt.Errorf("compressing table payload: %w", err)
	}

	out := make([]byte, 0, artifactHeaderSize+len(payload))
	out = append(out, artifactMagic...)
	out = append(out, byte(t.Config.Family), byte(t.Config.ZetaK), byte(t.Config.ReadBits), byte(compression))
	out = engine.AppendUint64(out, t.Config.MaxValue)
	out = engine.AppendUint16(out, t.MissingValueLen)
	out = engine.AppendUint64(out, uint64(len(payload)))
	out = engine.AppendUint64(out, hash.Checksum(payload))
	out = append(out, payload...)

	return out, nil
}

// Unmarshal parses a binary artifact produced by Marshal, verifying the
// checksum and section lengths before reconstructing the tables.
func Unmarshal(data []byte) (*Tables, error) {
	if len(data) < artifactHeaderSize || string(data[:4]) != artifactMagic {
		return nil, fmt.Errorf("invalid table artifact header")
	}

	engine := endian.GetLittleEndianEngine()
	cfg := Config{
		Family:   format.CodeFamily(data[4]),
		ZetaK:    uint(data[5]),
		ReadBits: int(data[6]),
		MaxValue: engine.Uint64(data[8:16]),
	}
	compression := format.CompressionType(data[7])
	sentinel := engine.Uint16(data[16:18])
	payloadLen := engine.Uint64(data[18:26])
	checksum := engine.Uint64(data[26:34])

	if uint64(len(data)-artifactHeaderSize) != payloadLen {
		return nil, fmt.Errorf("table artifact truncated: want %d payload bytes, have %d",
			payloadLen, len(data)-artifactHeaderSize)
	}

	payload := data[artifactHeaderSize:]
	if hash.Checksum(payload) != checksum {
		return nil, fmt.Errorf("table artifact checksum mismatch")
	}

	codec, err := compress.CreateCodec(compression)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompressing table payload: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("table artifact config: %w", err)
	}
	if cfg.MaxValue >= 1<<32 {
		return nil, fmt.Errorf("table artifact maxValue %d out of range", cfg.MaxValue)
	}

	readN := 1 << cfg.ReadBits
	writeN := int(cfg.MaxValue + 1)
	want := 2*readN*10 + 2*writeN*9 + writeN
	if len(raw) != want {
		return nil, fmt.Errorf("table payload size mismatch: want %d bytes, have %d", want, len(raw))
	}

	t := &Tables{Config: cfg, MissingValueLen: sentinel}

	off := 0
	readSection := func() []ReadEntry {
		entries := make([]ReadEntry, readN)
		for i := range entries {
			entries[i] = ReadEntry{
				Value: engine.Uint64(raw[off : off+8]),
				Bits:  engine.Uint16(raw[off+8 : off+10]),
			}
			off += 10
		}

		return entries
	}
	writeSection := func() []WriteEntry {
		entries := make([]WriteEntry, writeN)
		for i := range entries {
			entries[i] = WriteEntry{
				Pattern: engine.Uint64(raw[off : off+8]),
				Bits:    raw[off+8],
			}
			off += 9
		}

		return entries
	}

	t.ReadMSB = readSection()
	t.ReadLSB = readSection()
	t.WriteMSB = writeSection()
	t.WriteLSB = writeSection()
	t.Len = append([]uint8(nil), raw[off:off+writeN]...)

	return t, nil
}
