package reader

import (
	"github.com/pixelsdb/pixels-column-codec/bytestream"
	"github.com/pixelsdb/pixels-column-codec/chunkindex"
	"github.com/pixelsdb/pixels-column-codec/format"
	"github.com/pixelsdb/pixels-column-codec/rle"
	"github.com/pixelsdb/pixels-column-codec/vector"
)

// DateColumnReader streams a date column chunk, either RUNLENGTH- or
// NONE-encoded, back into a vector.DateColumnVector.
type DateColumnReader struct {
	Base
	encoding format.Encoding
	rleDec   *rle.Decoder
}

// NewDateColumnReader opens a reader over stream at the position the
// caller has already positioned it for the value region (offset 0 of
// the chunk's data area). For a RUNLENGTH chunk the entire value region
// [0, index.IsNullOffset) is captured up front so the run-length
// decoder's lazy cursor is independent of the null-bit reads Base
// performs against the same stream.
func NewDateColumnReader(stream *bytestream.Buffer, index chunkindex.Index, pixelStride int, byteOrder format.ByteOrderKind) *DateColumnReader {
	r := &DateColumnReader{
		Base:     newBase(stream, index, pixelStride, byteOrder),
		encoding: index.Encoding,
	}
	if index.Encoding == format.RunLength {
		r.rleDec = rle.NewDecoder(stream.Bytes()[:index.IsNullOffset], true)
	}

	return r
}

// Read produces count rows into dest starting at dest's current write
// position, advancing both the reader's elementIndex and dest's cursor.
// count rows must not cross a pixel boundary.
func (r *DateColumnReader) Read(count int, dest *vector.DateColumnVector) error {
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
				if _, err := r.stream.ReadBytes(4); err != nil {
					return err
				}
			}
			if err := dest.AddNull(); err != nil {
				return err
			}

			continue
		}

		var days int32
		if r.encoding == format.RunLength {
			v, err := r.rleDec.Next()
			if err != nil {
				return err
			}
			days = int32(v) //nolint:gosec
		} else {
			raw, err := r.stream.ReadBytes(4)
			if err != nil {
				return err
			}
			days = int32(r.engine.Uint32(raw)) //nolint:gosec
		}
		if err := dest.Add(days); err != nil {
			return err
		}
	}

	return nil
}

// Close releases the reader. It does not close dest or the underlying
// stream, which outlive an individual Read sequence.
func (r *DateColumnReader) Close() {
	if !r.doClose() {
		return
	}
	if r.rleDec != nil {
		r.rleDec.Close()
	}
}
