package writer

import (
	"github.com/pixelsdb/pixels-column-codec/bytestream"
	"github.com/pixelsdb/pixels-column-codec/chunkindex"
	"github.com/pixelsdb/pixels-column-codec/format"
	"github.com/pixelsdb/pixels-column-codec/rle"
	"github.com/pixelsdb/pixels-column-codec/vector"
)

// TimestampColumnWriter buffers a timestamp column's rows pixel by
// pixel and encodes them to either RUNLENGTH or NONE bytes on Close
//.
type TimestampColumnWriter struct {
	Base
}

// NewTimestampColumnWriter creates a writer with the given options.
func NewTimestampColumnWriter(opts ...Option) (*TimestampColumnWriter, error) {
	base, err := newBase(opts...)
	if err != nil {
		return nil, err
	}

	return &TimestampColumnWriter{Base: base}, nil
}

// Write appends every row currently in vec.
func (w *TimestampColumnWriter) Write(vec *vector.TimestampColumnVector) error {
	for i := 0; i < vec.WriteIndex(); i++ {
		isNull := vec.IsNull(i)
		var v int64
		if !isNull {
			v = vec.At(i)
		}
		if err := w.write(v, 0, isNull); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes any trailing partial pixel, encodes the buffered rows,
// and returns the chunk's wire bytes and index. A second Close is a
// no-op that returns nil bytes, an empty index and no error.
func (w *TimestampColumnWriter) Close() ([]byte, chunkindex.Index, error) {
	if !w.closeBase() {
		return nil, chunkindex.Index{}, nil
	}

	var valueBytes []byte
	if w.encoding == format.RunLength {
		valueBytes = rle.NewEncoder().Encode(w.values)
	} else {
		buf := bytestream.New(len(w.values) * 8)
		for _, v := range w.values {
			buf.PutUint64(w.engine, uint64(v))
		}
		valueBytes = buf.Bytes()
	}

	out, idx := w.finishChunk(valueBytes)

	return out, idx, nil
}
