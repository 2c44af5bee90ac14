package reader

import (
	"fmt"

	"github.com/pixelsdb/pixels-column-codec/bytestream"
	"github.com/pixelsdb/pixels-column-codec/chunkindex"
	"github.com/pixelsdb/pixels-column-codec/coltype"
	"github.com/pixelsdb/pixels-column-codec/endian"
	"github.com/pixelsdb/pixels-column-codec/errs"
	"github.com/pixelsdb/pixels-column-codec/format"
	"github.com/pixelsdb/pixels-column-codec/rle"
	"github.com/pixelsdb/pixels-column-codec/vector"
)

// DecimalColumnReader streams a decimal column chunk back into a
// vector.DecimalColumnVector. The reader's precision/scale
// must match the destination vector's exactly; a mismatch is an
// ErrTypeMismatch rather than a silently wrong rescale, since rescaling
// on read would hide a schema bug.
type DecimalColumnReader struct {
	Base
	encoding  format.Encoding
	precision int
	scale     int
	physical  coltype.PhysicalType
	rleDec    *rle.Decoder
}

// NewDecimalColumnReader opens a reader for decimal(precision, scale).
func NewDecimalColumnReader(stream *bytestream.Buffer, index chunkindex.Index, pixelStride, precision, scale int, byteOrder format.ByteOrderKind) (*DecimalColumnReader, error) {
	physical, err := coltype.PhysicalTypeForPrecision(precision)
	if err != nil {
		return nil, err
	}

	r := &DecimalColumnReader{
		Base:      newBase(stream, index, pixelStride, byteOrder),
		encoding:  index.Encoding,
		precision: precision,
		scale:     scale,
		physical:  physical,
	}
	if index.Encoding == format.RunLength {
		r.rleDec = rle.NewDecoder(stream.Bytes()[:index.IsNullOffset], true)
	}

	return r, nil
}

// Read produces count rows into dest. dest's declared precision and
// scale must equal the reader's own (type-safety note on
// DecimalColumnReader).
func (r *DecimalColumnReader) Read(count int, dest *vector.DecimalColumnVector) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	if dest.Precision() != r.precision || dest.Scale() != r.scale {
		return fmt.Errorf("%w: reader is decimal(%d,%d), destination is decimal(%d,%d)",
			errs.ErrTypeMismatch, r.precision, r.scale, dest.Precision(), dest.Scale())
	}
	if err := r.checkRange(count); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		isNull, err := r.nextIsNull()
		if err != nil {
			return err
		}
		if isNull {
			if r.encoding == format.None && r.index.NullsPadding {
				if _, err := r.stream.ReadBytes(r.physical.ByteWidth()); err != nil {
					return err
				}
			}
			if err := dest.AddNull(); err != nil {
				return err
			}

			continue
		}

		if r.physical == coltype.I128 {
			hi, lo, err := r.readI128()
			if err != nil {
				return err
			}
			if err := dest.AddWide(hi, lo); err != nil {
				return err
			}

			continue
		}

		v, err := r.readNarrow()
		if err != nil {
			return err
		}
		if err := dest.Add(v); err != nil {
			return err
		}
	}

	return nil
}

// readNarrow reads one value for I16/I32/I64 physical types.
func (r *DecimalColumnReader) readNarrow() (int64, error) {
	if r.encoding == format.RunLength {
		return r.rleDec.Next()
	}

	switch r.physical {
	case coltype.I16:
		raw, err := r.stream.ReadBytes(2)
		if err != nil {
			return 0, err
		}

		return int64(int16(r.engine.Uint16(raw))), nil //nolint:gosec
	case coltype.I32:
		raw, err := r.stream.ReadBytes(4)
		if err != nil {
			return 0, err
		}

		return int64(int32(r.engine.Uint32(raw))), nil //nolint:gosec
	default: // I64
		raw, err := r.stream.ReadBytes(8)
		if err != nil {
			return 0, err
		}

		return int64(r.engine.Uint64(raw)), nil //nolint:gosec
	}
}

// readI128 reads one I128 value. The RUNLENGTH feed narrows to int64,
// matching the delta/direct run codec's lossy int64 feed, so a
// RUNLENGTH-encoded I128 chunk can only round-trip values that fit in
// 64 bits; the NONE path carries the full 128 bits as two int64 halves.
func (r *DecimalColumnReader) readI128() (hi, lo int64, err error) {
	if r.encoding == format.RunLength {
		v, err := r.rleDec.Next()
		if err != nil {
			return 0, 0, err
		}
		hi = 0
		if v < 0 {
			hi = -1
		}

		return hi, v, nil
	}

	raw, err := r.stream.ReadBytes(16)
	if err != nil {
		return 0, 0, err
	}
	hi, lo = endian.Int128(raw, r.engine)

	return hi, lo, nil
}

// Close releases the reader.
func (r *DecimalColumnReader) Close() {
	if !r.doClose() {
		return
	}
	if r.rleDec != nil {
		r.rleDec.Close()
	}
}
