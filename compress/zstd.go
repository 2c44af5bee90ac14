package compress

// ZstdCodec wraps Zstandard for format.CompressionZstd: the best
// compression ratio of the four kinds, favored for cold, rarely-reread
// chunks where ratio matters more than CPU cost. Its Compress/Decompress
// methods live in zstd_pure.go (pure Go, cgo-free) or zstd_cgo.go (the
// faster cgo binding), selected by build tag.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
