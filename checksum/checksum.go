// Package checksum wires github.com/cespare/xxhash/v2 into the codec
// core as an optional per-chunk integrity check: a ColumnWriter exposes
// the checksum of its last Close'd output, and a reader-side caller can
// recompute it over the bytes it received before constructing a reader.
package checksum

import "github.com/cespare/xxhash/v2"

// Sum64 hashes a column chunk's encoded bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
