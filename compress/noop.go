package compress

// NoOpCodec bypasses compression entirely, for callers who want the
// compress package's uniform Codec interface without paying for
// compression (format.CompressionNone).
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
