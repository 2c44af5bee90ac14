//go:build nobuild

package compress

import "github.com/valyala/gozstd"

// Compress compresses data using the cgo gozstd binding, faster than
// the pure-Go path in zstd_pure.go at the cost of a cgo dependency.
// Gated behind the nobuild tag so a standard `go build` never needs a
// C toolchain.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses gozstd-compressed data.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
