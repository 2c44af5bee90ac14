// Package format defines the small wire-level enums shared across the
// column codec core: how a chunk's data region is encoded, which byte
// order a NONE-encoded chunk uses, and which compression (if any) wraps
// the chunk bytes before this package ever sees them.
package format

// Encoding identifies how a column chunk's data region is laid out on
// the wire
type Encoding uint8

const (
	// None stores values as fixed-width big- or little-endian integers.
	None Encoding = iota
	// RunLength stores values via the run-length integer codec (package rle).
	RunLength
)

func (e Encoding) String() string {
	switch e {
	case None:
		return "NONE"
	case RunLength:
		return "RUNLENGTH"
	default:
		return "UNKNOWN"
	}
}

// ByteOrderKind selects the byte order used by the NONE encoding path.
// It exists as a small serializable enum distinct from endian.Engine so
// writer options can be compared and logged without carrying a function
// value around.
type ByteOrderKind uint8

const (
	LittleEndian ByteOrderKind = iota
	BigEndian
)

func (b ByteOrderKind) String() string {
	if b == BigEndian {
		return "BE"
	}

	return "LE"
}

// Compression identifies an optional codec wrapped around an encoded
// chunk's bytes by a caller of this module. The codec core itself never
// branches on this value; it is carried here so package compress and
// package writer share one vocabulary for it.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
	CompressionS2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	case CompressionS2:
		return "S2"
	default:
		return "Unknown"
	}
}
