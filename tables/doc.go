// Package tables derives fixed-width lookup tables from the bit-by-bit code
// algorithms in the codes package, letting a runtime decode, encode, or skip
// small codewords in O(1) instead of bit by bit.
//
// For a configuration (family, readBits, maxValue) the builder enumerates:
//
//   - every readBits-wide window, decoded bit by bit into a read table per
//     packing order, with a sentinel length marking windows too short to hold
//     a complete codeword (the consumer's cue to fall back to the slow path);
//   - every value up to maxValue, encoded into a write table per order and a
//     plain length table for skip-without-decode.
//
// The enumeration doubles as an exhaustive cross-check of the algorithms: any
// disagreement between a table entry and the reference decode is a bug, and
// the package tests assert exactly that.
//
// Built tables are immutable, pure functions of their configuration. They can
// be emitted as a generated Go source file (WriteGoSource) or as a binary
// artifact with optional compression and an xxHash64 integrity checksum
// (Marshal/Unmarshal).
package tables
