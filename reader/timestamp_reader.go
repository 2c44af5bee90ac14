package reader

import (
	"github.com/pixelsdb/pixels-column-codec/bytestream"
	"github.com/pixelsdb/pixels-column-codec/chunkindex"
	"github.com/pixelsdb/pixels-column-codec/format"
	"github.com/pixelsdb/pixels-column-codec/rle"
	"github.com/pixelsdb/pixels-column-codec/vector"
)

// TimestampColumnReader streams a timestamp column chunk back into a
// vector.TimestampColumnVector. Every value is a full
// 64-bit microsecond offset; unlike decimal's I128 path there is no
// narrowing concern on the RUNLENGTH feed.
type TimestampColumnReader struct {
	Base
	encoding format.Encoding
	rleDec   *rle.Decoder
}

// NewTimestampColumnReader opens a reader over stream.
func NewTimestampColumnReader(stream *bytestream.Buffer, index chunkindex.Index, pixelStride int, byteOrder format.ByteOrderKind) *TimestampColumnReader {
	r := &TimestampColumnReader{
		Base:     newBase(stream, index, pixelStride, byteOrder),
		encoding: index.Encoding,
	}
	if index.Encoding == format.RunLength {
		r.rleDec = rle.NewDecoder(stream.Bytes()[:index.IsNullOffset], true)
	}

	return r
}

// Read produces count rows into dest. The reader re-checks the
// pixel's hasNull flag every time elementIndex crosses a pixelStride
// boundary, which Base.nextIsNull performs transparently.
func (r *TimestampColumnReader) Read(count int, dest *vector.TimestampColumnVector) error {
	if err := r.checkOpen(); err != nil {
		return err
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
				if _, err := r.stream.ReadBytes(8); err != nil {
					return err
				}
			}
			if err := dest.AddNull(); err != nil {
				return err
			}

			continue
		}

		var micros int64
		if r.encoding == format.RunLength {
			micros, err = r.rleDec.Next()
			if err != nil {
				return err
			}
		} else {
			raw, err := r.stream.ReadBytes(8)
			if err != nil {
				return err
			}
			micros = int64(r.engine.Uint64(raw)) //nolint:gosec
		}
		if err := dest.Add(micros); err != nil {
			return err
		}
	}

	return nil
}

// Close releases the reader.
func (r *TimestampColumnReader) Close() {
	if !r.doClose() {
		return
	}
	if r.rleDec != nil {
		r.rleDec.Close()
	}
}
