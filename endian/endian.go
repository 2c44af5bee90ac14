// Package endian supplies the byte-order engine used by every
// NONE-encoded read/write path in the column codec core.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder into one
// interface: a writer picks a format.ByteOrderKind once at
// construction, and every reader/writer in this module gets its
// concrete Engine from that single choice instead of threading a raw
// binary.ByteOrder through call sites.
package endian

import (
	"encoding/binary"
	"unsafe"

	"github.com/pixelsdb/pixels-column-codec/format"
)

// Engine is the byte-order contract the codec core depends on for its
// fixed-width NONE wire path. binary.LittleEndian and binary.BigEndian
// both satisfy it.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little is the little-endian Engine.
var Little Engine = binary.LittleEndian

// Big is the big-endian Engine.
var Big Engine = binary.BigEndian

// For resolves a format.ByteOrderKind to its Engine. Column writer
// options carry the Kind (a small serializable enum); this is the one
// place that turns it into the interface value actually used for I/O.
func For(kind format.ByteOrderKind) Engine {
	if kind == format.BigEndian {
		return Big
	}

	return Little
}

// HostIsLittleEndian reports whether the running process's native byte
// order is little-endian. It exists for diagnostics and for tests that
// want to exercise both the native-matching and native-mismatching
// paths of a NONE-encoded reader/writer.
func HostIsLittleEndian() bool {
	var probe uint16 = 0x0001
	b := (*[2]byte)(unsafe.Pointer(&probe))

	return b[0] == 0x01
}

// PutInt128 writes a 128-bit two's-complement value, given as its hi and
// lo halves, into dst (at least 16 bytes) in engine's byte order: for Big
// the high 8 bytes come first, otherwise the low 8 bytes come first, and
// each 8-byte half is itself written in engine's byte order. This is the NONE-path wire shape for the I128
// decimal physical type: Go has no native 128-bit integer type, so a
// decimal's unscaled value is carried as two int64 halves (hi, lo)
// everywhere outside the RLE feed path.
func PutInt128(dst []byte, engine Engine, hi, lo int64) {
	_ = dst[15]
	if engine == Big {
		engine.PutUint64(dst[0:8], uint64(hi)) //nolint:gosec
		engine.PutUint64(dst[8:16], uint64(lo)) //nolint:gosec
	} else {
		engine.PutUint64(dst[0:8], uint64(lo)) //nolint:gosec
		engine.PutUint64(dst[8:16], uint64(hi)) //nolint:gosec
	}
}

// Int128 reads back a value written by PutInt128.
func Int128(src []byte, engine Engine) (hi, lo int64) {
	_ = src[15]
	if engine == Big {
		hi = int64(engine.Uint64(src[0:8])) //nolint:gosec
		lo = int64(engine.Uint64(src[8:16])) //nolint:gosec
	} else {
		lo = int64(engine.Uint64(src[0:8])) //nolint:gosec
		hi = int64(engine.Uint64(src[8:16])) //nolint:gosec
	}

	return hi, lo
}
