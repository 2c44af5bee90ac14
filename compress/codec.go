// Package compress wraps a ColumnWriter/ColumnReader's chunk bytes
// with a general-purpose compression codec, an optional layer outside
// the column codec core proper: a caller that wants compressed column
// chunks compresses a ColumnWriter's Close output before writing it
// out, and decompresses before handing the bytes to a bytestream.Buffer
// a ColumnReader reads from.
package compress

import (
	"fmt"

	"github.com/pixelsdb/pixels-column-codec/format"
)

// Codec compresses and decompresses column-chunk bytes.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// CreateCodec builds a Codec for the given compression kind.
func CreateCodec(kind format.Compression) (Codec, error) {
	switch kind {
	case format.CompressionNone:
		return NoOpCodec{}, nil
	case format.CompressionZstd:
		return ZstdCodec{}, nil
	case format.CompressionLZ4:
		return LZ4Codec{}, nil
	case format.CompressionS2:
		return S2Codec{}, nil
	default:
		return nil, fmt.Errorf("unsupported compression kind: %s", kind)
	}
}

var builtinCodecs = map[format.Compression]Codec{
	format.CompressionNone: NoOpCodec{},
	format.CompressionZstd: ZstdCodec{},
	format.CompressionLZ4:  LZ4Codec{},
	format.CompressionS2:   S2Codec{},
}

// GetCodec retrieves a shared, stateless Codec for kind, avoiding an
// allocation per call the way CreateCodec's fresh struct values don't
// need anyway, since every Codec implementation here is stateless.
func GetCodec(kind format.Compression) (Codec, error) {
	if c, ok := builtinCodecs[kind]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("unsupported compression kind: %s", kind)
}
