package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 digest of data, used to verify table
// artifact payloads on load.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
