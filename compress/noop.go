package compress

// NoOpCompressor passes payloads through unchanged. Useful for debugging
// artifacts with a hex dump and for storage layers that compress on their
// own.
//
// Both directions return the input slice as-is, without copying; callers
// must not modify the input while the result is in use.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
