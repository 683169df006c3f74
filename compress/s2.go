package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses payloads with S2, a Snappy-compatible format tuned
// for speed. A good default when artifacts are regenerated often.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
