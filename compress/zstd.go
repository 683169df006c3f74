package compress

// ZstdCompressor compresses payloads with Zstandard, the best-ratio option
// for artifacts built once and shipped or archived.
//
// The implementation behind it depends on the build: see zstd_cgo.go and
// zstd_pure.go.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
