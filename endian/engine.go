// Package endian provides byte order utilities for table artifact
// serialization.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, satisfied by
// binary.LittleEndian and binary.BigEndian. Artifacts produced by the tables
// package are fixed little-endian; the engine exists so the serializers can
// take the byte order as a value instead of hard-coding package-level calls.
//
// Note that the artifact byte order is unrelated to the codec bit orders
// (format.MSBFirst / format.LSBFirst): the former governs multi-byte integer
// layout on disk, the latter which end of a bit window codewords occupy.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for read, write, and append operations. Instances
// are immutable and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of
// binary table artifacts.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
