// Package reader implements a pixel-aligned streaming ColumnReader:
// Base (the shared state machine) and its three type specializations,
// DateColumnReader, DecimalColumnReader and TimestampColumnReader.
package reader

import (
	"fmt"

	"github.com/pixelsdb/pixels-column-codec/bytestream"
	"github.com/pixelsdb/pixels-column-codec/chunkindex"
	"github.com/pixelsdb/pixels-column-codec/endian"
	"github.com/pixelsdb/pixels-column-codec/errs"
	"github.com/pixelsdb/pixels-column-codec/format"
)

// Base holds the state every ColumnReader shares: the encoded byte
// stream, the chunk index it was opened against, the byte-order engine
// for NONE-encoded payloads, and the elementIndex cursor, the index,
// within the whole chunk, of the next row a read() call will produce.
//
// Nulls are carried as a single packed bit per row, MSB-first within
// each byte, spanning every row of the whole chunk: bit i at
// Index.IsNullOffset is row i's null flag, regardless of whether that
// row's pixel has any nulls at all. A pixel with HasNull false skips
// the bit read (its rows are known non-null) but elementIndex still
// drives the bit position directly, so later pixels' bit positions
// stay correct.
type Base struct {
	stream *bytestream.Buffer
	engine endian.Engine
	index  chunkindex.Index

	pixelStride int

	elementIndex int

	curPixelID      int
	curPixelHasNull bool
	closed          bool
}

func newBase(stream *bytestream.Buffer, index chunkindex.Index, pixelStride int, byteOrder format.ByteOrderKind) Base {
	return Base{
		stream:          stream,
		engine:          endian.For(byteOrder),
		index:           index,
		pixelStride:     pixelStride,
		curPixelID:      -1,
		curPixelHasNull: false,
	}
}

// ElementIndex returns the cursor position within the chunk (spec
// §6.4).
func (b *Base) ElementIndex() int { return b.elementIndex }

// Closed reports whether Close has already been called.
func (b *Base) Closed() bool { return b.closed }

func (b *Base) checkOpen() error {
	if b.closed {
		return fmt.Errorf("%w: reader is closed", errs.ErrClosed)
	}

	return nil
}

// checkRange enforces read precondition: [elementIndex,
// elementIndex+count) must not cross a pixel boundary. A caller that
// wants to read across a boundary must issue two calls.
func (b *Base) checkRange(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: read count must be positive, got %d", errs.ErrInvalidArgument, count)
	}
	startPixel := b.elementIndex / b.pixelStride
	endPixel := (b.elementIndex + count - 1) / b.pixelStride
	if startPixel != endPixel {
		return fmt.Errorf("%w: range [%d,%d) spans pixels %d and %d",
			errs.ErrRangeCrossesPixel, b.elementIndex, b.elementIndex+count, startPixel, endPixel)
	}

	return nil
}

// enterPixel refreshes curPixelID/curPixelHasNull whenever the cursor
// lands on a new pixel boundary, re-checking on every
// elementIndex % pixelStride == 0.
func (b *Base) enterPixel() {
	pixelID := b.elementIndex / b.pixelStride
	if pixelID == b.curPixelID {
		return
	}
	b.curPixelID = pixelID
	b.curPixelHasNull = b.index.HasNull(pixelID)
}

// nextIsNull consumes the next row's null flag and advances
// elementIndex. The bit position is always the chunk-absolute row
// index, so a pixel with HasNull false can skip the read entirely
// without disturbing later pixels' bit positions.
func (b *Base) nextIsNull() (bool, error) {
	b.enterPixel()

	var isNull bool
	if b.curPixelHasNull {
		byteOff := b.index.IsNullOffset + b.elementIndex/8
		bit, err := b.readAbsoluteBit(byteOff, b.elementIndex%8)
		if err != nil {
			return false, err
		}
		isNull = bit
	}
	b.elementIndex++

	return isNull, nil
}

// readAbsoluteBit reads a single MSB-first bit from the stream at an
// absolute byte offset without disturbing the caller's value-read
// cursor.
func (b *Base) readAbsoluteBit(byteOffset, bitIndex int) (bool, error) {
	savedPos := b.stream.ReadPos()
	if err := b.stream.SetReadPos(byteOffset); err != nil {
		return false, err
	}
	raw, err := b.stream.ReadBytes(1)
	if err != nil {
		_ = b.stream.SetReadPos(savedPos)

		return false, err
	}
	if err := b.stream.SetReadPos(savedPos); err != nil {
		return false, err
	}

	return raw[0]&(0x80>>uint(bitIndex)) != 0, nil
}

// doClose marks the reader closed. Specializations embed Base and call
// this from their own Close; it is idempotent and returns false if the
// reader was already closed.
func (b *Base) doClose() bool {
	if b.closed {
		return false
	}
	b.closed = true

	return true
}
