package compress

import (
	"fmt"

	"github.com/arloliu/bitcodec/format"
)

// Compressor compresses a table artifact payload.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result; the
	// input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a table artifact payload.
type Decompressor interface {
	// Decompress decompresses data previously produced by the matching
	// Compressor, returning an error for corrupted or mismatched input.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Implementations are stateless values and
// safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// CreateCodec returns the built-in Codec for the given compression type.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
