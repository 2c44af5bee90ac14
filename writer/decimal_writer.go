package writer

import (
	"github.com/pixelsdb/pixels-column-codec/bytestream"
	"github.com/pixelsdb/pixels-column-codec/chunkindex"
	"github.com/pixelsdb/pixels-column-codec/coltype"
	"github.com/pixelsdb/pixels-column-codec/endian"
	"github.com/pixelsdb/pixels-column-codec/format"
	"github.com/pixelsdb/pixels-column-codec/rle"
	"github.com/pixelsdb/pixels-column-codec/vector"
)

// DecimalColumnWriter buffers a decimal(precision, scale) column's rows
// pixel by pixel and encodes them to either RUNLENGTH or NONE bytes on
// Close. Its physical width is resolved once from
// precision, mirroring vector.DecimalColumnVector and
// reader.DecimalColumnReader (coltype.PhysicalTypeForPrecision is the
// single source of truth all three share).
type DecimalColumnWriter struct {
	Base
	precision int
	scale     int
	physical  coltype.PhysicalType
}

// NewDecimalColumnWriter creates a writer for decimal(precision, scale).
func NewDecimalColumnWriter(precision, scale int, opts ...Option) (*DecimalColumnWriter, error) {
	physical, err := coltype.PhysicalTypeForPrecision(precision)
	if err != nil {
		return nil, err
	}
	base, err := newBase(opts...)
	if err != nil {
		return nil, err
	}

	w := &DecimalColumnWriter{
		Base:      base,
		precision: precision,
		scale:     scale,
		physical:  physical,
	}
	if physical == coltype.I128 {
		w.withWideValues()
	}

	return w, nil
}

// Write appends every row currently in vec. vec's declared precision
// and scale must equal the writer's own.
func (w *DecimalColumnWriter) Write(vec *vector.DecimalColumnVector) error {
	if vec.Precision() != w.precision || vec.Scale() != w.scale {
		return errTypeMismatch(w.precision, w.scale, vec.Precision(), vec.Scale())
	}

	for i := 0; i < vec.WriteIndex(); i++ {
		isNull := vec.IsNull(i)
		var hi, lo int64
		if !isNull {
			hi, lo = vec.AtWide(i)
		}
		if err := w.write(lo, hi, isNull); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes any trailing partial pixel, encodes the buffered rows
// at this writer's physical width, and returns the chunk's wire bytes
// and index. For RUNLENGTH encoding, I128 values narrow to their low
// 64 bits; NONE encoding always carries the full physical width,
// including both I128 halves. A second Close is a no-op that returns
// nil bytes, an empty index and no error.
func (w *DecimalColumnWriter) Close() ([]byte, chunkindex.Index, error) {
	if !w.closeBase() {
		return nil, chunkindex.Index{}, nil
	}

	var valueBytes []byte
	switch {
	case w.encoding == format.RunLength:
		valueBytes = rle.NewEncoder().Encode(w.values)
	case w.physical == coltype.I128:
		buf := bytestream.New(len(w.values) * 16)
		var tmp [16]byte
		for i, lo := range w.values {
			endian.PutInt128(tmp[:], w.engine, w.hi128[i], lo)
			buf.PutBytes(tmp[:])
		}
		valueBytes = buf.Bytes()
	default:
		valueBytes = w.encodeNarrow()
	}

	out, idx := w.finishChunk(valueBytes)

	return out, idx, nil
}

func (w *DecimalColumnWriter) encodeNarrow() []byte {
	buf := bytestream.New(len(w.values) * w.physical.ByteWidth())
	for _, v := range w.values {
		switch w.physical {
		case coltype.I16:
			buf.PutUint16(w.engine, uint16(int16(v))) //nolint:gosec
		case coltype.I32:
			buf.PutUint32(w.engine, uint32(int32(v))) //nolint:gosec
		default: // I64
			buf.PutUint64(w.engine, uint64(v))
		}
	}

	return buf.Bytes()
}
