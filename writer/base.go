// Package writer implements a per-pixel buffering ColumnWriter: Base
// (the shared accumulation state) and its three type specializations,
// DateColumnWriter, DecimalColumnWriter and TimestampColumnWriter.
package writer

import (
	"fmt"

	"github.com/pixelsdb/pixels-column-codec/checksum"
	"github.com/pixelsdb/pixels-column-codec/chunkindex"
	"github.com/pixelsdb/pixels-column-codec/endian"
	"github.com/pixelsdb/pixels-column-codec/errs"
	"github.com/pixelsdb/pixels-column-codec/format"
)

// Base accumulates one column chunk's worth of rows: the per-row null
// mask, the per-pixel HasNull statistics newPixel finalizes, and the
// low-64-bit value of every non-null row (or every row when
// Options.NullsPadding keeps a slot for nulls too). A DecimalColumnWriter
// handling the I128 physical type layers a parallel high-64-bit slice
// on top via withWideValues; every other writer leaves it unused.
//
// Invariants: a pixel's stats are only finalized once curPixelEleIndex
// reaches PixelStride or Close flushes a trailing partial pixel;
// write() never finalizes a pixel itself except as the side effect of
// starting the next one; Close is idempotent and a writer never
// accepts another write() afterward.
type Base struct {
	opts     Options
	engine   endian.Engine
	encoding format.Encoding

	values []int64
	hi128  []int64
	isNull []bool

	pixelStats []chunkindex.PixelStat

	curPixelEleIndex int
	curPixelHasNull  bool

	closed   bool
	checksum uint64
}

func newBase(opts ...Option) (Base, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return Base{}, err
	}

	return Base{
		opts:     o,
		engine:   endian.For(o.ByteOrder),
		encoding: o.EncodingLevel.encoding(),
	}, nil
}

// withWideValues opts this writer into also tracking a parallel
// high-64-bit slice, for the decimal I128 physical type. Must be
// called before the first write.
func (w *Base) withWideValues() {
	w.hi128 = make([]int64, 0)
}

func (w *Base) checkOpen() error {
	if w.closed {
		return fmt.Errorf("%w: writer is closed", errs.ErrClosed)
	}

	return nil
}

// write appends one row. lo/hi carry the row's unscaled/day/micros
// value (hi is ignored unless withWideValues was called); isNull marks
// the row as null, in which case lo/hi are only stored when
// Options.NullsPadding is set.
func (w *Base) write(lo, hi int64, isNull bool) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if w.curPixelEleIndex == w.opts.PixelStride {
		w.newPixel()
	}

	w.isNull = append(w.isNull, isNull)
	if isNull {
		w.curPixelHasNull = true
		if w.opts.NullsPadding {
			w.values = append(w.values, 0)
			if w.hi128 != nil {
				w.hi128 = append(w.hi128, 0)
			}
		}
	} else {
		w.values = append(w.values, lo)
		if w.hi128 != nil {
			w.hi128 = append(w.hi128, hi)
		}
	}
	w.curPixelEleIndex++

	return nil
}

// newPixel finalizes the pixel currently being buffered and resets the
// per-pixel counters.
func (w *Base) newPixel() {
	w.pixelStats = append(w.pixelStats, chunkindex.PixelStat{HasNull: w.curPixelHasNull})
	w.curPixelEleIndex = 0
	w.curPixelHasNull = false
}

// closeBase flushes a trailing partial pixel, if any, and marks the
// writer closed. It does not itself encode the value/null regions to
// bytes; each type specialization's Close does that before calling
// this. Returns false if the writer was already closed.
func (w *Base) closeBase() bool {
	if w.closed {
		return false
	}
	if w.curPixelEleIndex > 0 {
		w.newPixel()
	}
	w.closed = true

	return true
}

// getColumnChunkEncoding reports which wire encoding this writer
// produces.
func (w *Base) getColumnChunkEncoding() format.Encoding { return w.encoding }

// buildIndex assembles the chunkindex.Index a reader needs to consume
// the bytes a type specialization's Close produces.
func (w *Base) buildIndex(isNullOffset int) chunkindex.Index {
	return chunkindex.Index{
		IsNullOffset: isNullOffset,
		Encoding:     w.encoding,
		NullsPadding: w.opts.NullsPadding,
		Pixels:       w.pixelStats,
	}
}

// encodeNullBitmap packs the accumulated null mask into a flat,
// MSB-first bitmap spanning every row of the chunk: bit i is row i's
// null flag, regardless of whether that row's pixel has any nulls at
// all (see reader/base.go's doc comment for the layout this mirrors).
func (w *Base) encodeNullBitmap() []byte {
	out := make([]byte, (len(w.isNull)+7)/8)
	for i, isNull := range w.isNull {
		if isNull {
			out[i/8] |= 1 << (7 - uint(i%8))
		}
	}

	return out
}

// finishChunk combines a type specialization's encoded value bytes
// with the null-bitmap region, records the chunk's checksum, and
// returns both the wire bytes and the index a reader needs.
func (w *Base) finishChunk(valueBytes []byte) ([]byte, chunkindex.Index) {
	nullBytes := w.encodeNullBitmap()
	out := make([]byte, 0, len(valueBytes)+len(nullBytes))
	out = append(out, valueBytes...)
	out = append(out, nullBytes...)
	w.checksum = checksum.Sum64(out)
	idx := w.buildIndex(len(valueBytes))

	return out, idx
}

// Checksum returns the xxhash of the bytes produced by the last Close
// call, an optional per-chunk integrity check. It is zero before
// Close has run.
func (w *Base) Checksum() uint64 { return w.checksum }

// Closed reports whether Close has already run.
func (w *Base) Closed() bool { return w.closed }

func errTypeMismatch(wantPrecision, wantScale, gotPrecision, gotScale int) error {
	return fmt.Errorf("%w: writer is decimal(%d,%d), source vector is decimal(%d,%d)",
		errs.ErrTypeMismatch, wantPrecision, wantScale, gotPrecision, gotScale)
}
