package writer

import (
	"github.com/pixelsdb/pixels-column-codec/bytestream"
	"github.com/pixelsdb/pixels-column-codec/chunkindex"
	"github.com/pixelsdb/pixels-column-codec/format"
	"github.com/pixelsdb/pixels-column-codec/rle"
	"github.com/pixelsdb/pixels-column-codec/vector"
)

// DateColumnWriter buffers a date column's rows pixel by pixel and
// encodes them to either RUNLENGTH or NONE bytes on Close.
type DateColumnWriter struct {
	Base
}

// NewDateColumnWriter creates a writer with the given options applied
// over the package defaults (10,000-row pixels, EL2/RUNLENGTH,
// little-endian NONE fallback).
func NewDateColumnWriter(opts ...Option) (*DateColumnWriter, error) {
	base, err := newBase(opts...)
	if err != nil {
		return nil, err
	}

	return &DateColumnWriter{Base: base}, nil
}

// Write appends every row currently in vec (rows [0, vec.WriteIndex()))
// to the writer.
func (w *DateColumnWriter) Write(vec *vector.DateColumnVector) error {
	for i := 0; i < vec.WriteIndex(); i++ {
		isNull := vec.IsNull(i)
		var v int64
		if !isNull {
			v = int64(vec.At(i))
		}
		if err := w.write(v, 0, isNull); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes any trailing partial pixel — that flush happens here,
// never inside Write — encodes the buffered rows, and returns the
// chunk's wire bytes and index. A second Close is a no-op that returns
// nil bytes, an empty index and no error.
func (w *DateColumnWriter) Close() ([]byte, chunkindex.Index, error) {
	if !w.closeBase() {
		return nil, chunkindex.Index{}, nil
	}

	var valueBytes []byte
	if w.encoding == format.RunLength {
		valueBytes = rle.NewEncoder().Encode(w.values)
	} else {
		buf := bytestream.New(len(w.values) * 4)
		for _, v := range w.values {
			buf.PutUint32(w.engine, uint32(int32(v))) //nolint:gosec
		}
		valueBytes = buf.Bytes()
	}

	out, idx := w.finishChunk(valueBytes)

	return out, idx, nil
}
