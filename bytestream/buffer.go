// Package bytestream implements the byte-buffer contract the column
// codec core depends on: a random-access growable buffer
// with independent read/write cursors, little- and big-endian scalar
// accessors, and raw putBytes/getPointer/setReadPos primitives.
//
// It is a pooled, write-only append buffer promoted to a full
// read+write cursor type, since this codec core's ColumnReader
// consumes a ByteStream a separate producer already filled.
package bytestream

import (
	"fmt"
	"sync"

	"github.com/pixelsdb/pixels-column-codec/endian"
	"github.com/pixelsdb/pixels-column-codec/errs"
)

// defaultCapacity is the initial capacity handed out by the pool. Column
// chunks are typically a handful of KB (one pixel's worth of fixed-width
// values), so this avoids a reallocation for the common case without
// over-committing for short-lived scratch buffers.
const defaultCapacity = 4096

// growThreshold switches the growth strategy from doubling to a flatter
// 25% step once a buffer has grown past this size, keeping large
// buffers from over-allocating on every resize.
const growThreshold = 4 * defaultCapacity

// Buffer is a growable byte buffer with independent read and write
// cursors. It implements the ByteStream collaborator: a ColumnWriter
// appends to it via the Put* methods, and a ColumnReader consumes it
// via the Get* methods and SetReadPos.
type Buffer struct {
	b       []byte
	readPos int
}

// New creates a Buffer with the given initial capacity.
func New(capacity int) *Buffer {
	return &Buffer{b: make([]byte, 0, capacity)}
}

// NewFromBytes wraps an existing byte slice for reading. The returned
// Buffer's write cursor starts at len(data); writers should not be
// handed a Buffer created this way.
func NewFromBytes(data []byte) *Buffer {
	return &Buffer{b: data}
}

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int { return len(buf.b) }

// Cap returns the buffer's current capacity.
func (buf *Buffer) Cap() int { return cap(buf.b) }

// Bytes returns the written byte slice. The caller must not retain it
// across further writes, which may reallocate the backing array.
func (buf *Buffer) Bytes() []byte { return buf.b }

// Reset empties the buffer and rewinds the read cursor, keeping the
// allocated backing array for reuse.
func (buf *Buffer) Reset() {
	buf.b = buf.b[:0]
	buf.readPos = 0
}

// grow ensures at least n more bytes of capacity, reallocating with a
// doubling strategy up to growThreshold and a flatter 25% step beyond
// it.
func (buf *Buffer) grow(n int) {
	if cap(buf.b)-len(buf.b) >= n {
		return
	}

	growBy := cap(buf.b)
	if cap(buf.b) > growThreshold {
		growBy = cap(buf.b) / 4
	}
	if growBy < n {
		growBy = n
	}

	next := make([]byte, len(buf.b), len(buf.b)+growBy)
	copy(next, buf.b)
	buf.b = next
}

// PutBytes appends raw bytes to the buffer.
func (buf *Buffer) PutBytes(p []byte) {
	buf.grow(len(p))
	buf.b = append(buf.b, p...)
}

// PutUint16 appends a 16-bit integer in the given byte order.
func (buf *Buffer) PutUint16(engine endian.Engine, v uint16) {
	var tmp [2]byte
	engine.PutUint16(tmp[:], v)
	buf.PutBytes(tmp[:])
}

// PutUint32 appends a 32-bit integer in the given byte order.
func (buf *Buffer) PutUint32(engine endian.Engine, v uint32) {
	var tmp [4]byte
	engine.PutUint32(tmp[:], v)
	buf.PutBytes(tmp[:])
}

// PutUint64 appends a 64-bit integer in the given byte order.
func (buf *Buffer) PutUint64(engine endian.Engine, v uint64) {
	var tmp [8]byte
	engine.PutUint64(tmp[:], v)
	buf.PutBytes(tmp[:])
}

// ReadPos returns the current read cursor position.
func (buf *Buffer) ReadPos() int { return buf.readPos }

// SetReadPos moves the read cursor to an absolute position.
func (buf *Buffer) SetReadPos(pos int) error {
	if pos < 0 || pos > len(buf.b) {
		return fmt.Errorf("%w: read position %d out of range [0,%d]", errs.ErrDecodeUnderrun, pos, len(buf.b))
	}
	buf.readPos = pos

	return nil
}

// Remaining returns the number of unread bytes.
func (buf *Buffer) Remaining() int { return len(buf.b) - buf.readPos }

// GetPointer returns the unread tail of the buffer without advancing
// the read cursor, using Go's slice-based aliasing instead of a raw
// pointer.
func (buf *Buffer) GetPointer() []byte { return buf.b[buf.readPos:] }

// ReadBytes returns the n bytes starting at the read cursor and advances
// the cursor. The returned slice aliases the buffer's backing array; it
// is not a copy.
func (buf *Buffer) ReadBytes(n int) ([]byte, error) {
	if buf.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrDecodeUnderrun, n, buf.Remaining())
	}
	out := buf.b[buf.readPos : buf.readPos+n]
	buf.readPos += n

	return out, nil
}

// GetUint16 reads a 16-bit integer in the given byte order and advances
// the read cursor.
func (buf *Buffer) GetUint16(engine endian.Engine) (uint16, error) {
	raw, err := buf.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return engine.Uint16(raw), nil
}

// GetUint32 reads a 32-bit integer in the given byte order and advances
// the read cursor.
func (buf *Buffer) GetUint32(engine endian.Engine) (uint32, error) {
	raw, err := buf.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return engine.Uint32(raw), nil
}

// GetUint64 reads a 64-bit integer in the given byte order and advances
// the read cursor.
func (buf *Buffer) GetUint64(engine endian.Engine) (uint64, error) {
	raw, err := buf.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return engine.Uint64(raw), nil
}

// pool recycles Buffers: column chunks are written and discarded at
// high frequency, so a sync.Pool keeps per-chunk allocation off the hot
// path.
var pool = sync.Pool{
	New: func() any { return New(defaultCapacity) },
}

// Get retrieves a reset Buffer from the pool.
func Get() *Buffer {
	buf, _ := pool.Get().(*Buffer)

	return buf
}

// Put returns a Buffer to the pool. Buffers larger than 128KiB are
// discarded instead of pooled to avoid retaining an oversized backing
// array indefinitely.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}
	const maxPooled = 128 * 1024
	if cap(buf.b) > maxPooled {
		return
	}
	buf.Reset()
	pool.Put(buf)
}
