// Package compress provides the payload codecs used by binary table
// artifacts.
//
// Lookup tables are highly repetitive (long runs of sentinel entries, small
// monotone lengths), so even fast codecs shrink them considerably. Four
// codecs are available, selected through format.CompressionType: Zstd (best
// ratio), S2 and LZ4 (fastest), and NoOp (pass-through for debugging or
// already-compressed storage).
//
// Zstd has two implementations chosen at build time: valyala/gozstd when cgo
// is available, klauspost/compress/zstd otherwise. Both produce standard
// Zstandard frames and interoperate freely.
package compress
