//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses the payload with libzstd at the default level.
func (ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores a Zstandard frame with libzstd.
func (ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
