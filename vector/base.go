// Package vector implements the column vectors of the codec core:
// Base (the shared state of this module) and its three specializations,
// DateColumnVector, DecimalColumnVector and TimestampColumnVector
//.
package vector

import (
	"fmt"

	"github.com/pixelsdb/pixels-column-codec/errs"
)

// Base holds the state every column vector shares: the
// write/read cursors, the null mask, the closed flag, the encoding
// participation flag, and a running memory-usage counter. Concrete
// vectors embed Base and add their own typed data buffer.
type Base struct {
	length     int
	writeIndex int
	readIndex  int
	isNull     []bool
	closed     bool
	// encoding mirrors "encoding" companion flag: whether
	// this vector's primary buffer participates in the encoded-payload
	// path and is therefore owned/freed by this vector. A vector
	// created purely as a consumer-side scratch destination (encoding
	// == false) still carries the flag so Close can decide whether it
	// is the owner of the buffer or a borrowed view.
	encoding    bool
	memoryUsage int64
}

func newBase(length int, encoding bool) Base {
	return Base{
		length:   length,
		isNull:   make([]bool, length),
		encoding: encoding,
	}
}

// Length returns the vector's current row capacity.
func (b *Base) Length() int { return b.length }

// WriteIndex returns the next row index to be written (I1: the exact
// prefix of meaningful rows is [0, WriteIndex)).
func (b *Base) WriteIndex() int { return b.writeIndex }

// ReadIndex returns the consumer iteration cursor.
func (b *Base) ReadIndex() int { return b.readIndex }

// SetReadIndex repositions the consumer cursor.
func (b *Base) SetReadIndex(i int) { b.readIndex = i }

// Advance moves the read cursor forward by n rows, the usual way a
// consumer walks a vector after each batch is produced.
func (b *Base) Advance(n int) { b.readIndex += n }

// IsNull reports whether row i's data slot is indeterminate (I2).
// After Close, per I3, every row reads back as null.
func (b *Base) IsNull(i int) bool {
	if b.closed {
		return true
	}

	return b.isNull[i]
}

// SetNull marks row i's nullness. Vector specializations call this
// from their Add/Set helpers; it never touches the data buffer itself.
func (b *Base) SetNull(i int, isNull bool) { b.isNull[i] = isNull }

// Closed reports whether Close has already been called (I3).
func (b *Base) Closed() bool { return b.closed }

// MemoryUsage returns the running byte counter used for observability
//.
func (b *Base) MemoryUsage() int64 { return b.memoryUsage }

func (b *Base) addMemoryUsage(delta int64) { b.memoryUsage += delta }

// checkOpen returns ErrClosed if the vector has already been closed,
// the guard the specializations' Add/AddNull/Set/EnsureSize methods run
// first (this module's "StateError").
func (b *Base) checkOpen() error {
	if b.closed {
		return fmt.Errorf("%w: vector is closed", errs.ErrClosed)
	}

	return nil
}

// markWritten grows writeIndex to cover row i if needed, keeping I1
// (writeIndex is always the exact prefix of meaningful rows) intact
// even when a caller uses Set to poke an arbitrary row rather than
// appending sequentially via Add.
func (b *Base) markWritten(i int) {
	if i >= b.writeIndex {
		b.writeIndex = i + 1
	}
}

// growNullMask extends the null mask to at least n entries, used by
// ensureSize before a specialization resizes its own data buffer.
func (b *Base) growNullMask(n int, preserveData bool) {
	if n <= len(b.isNull) {
		return
	}
	next := make([]bool, n)
	if preserveData {
		copy(next, b.isNull)
	}
	b.isNull = next
	b.length = n
}

// doClose marks the vector closed. Specializations call this after
// releasing their own data buffer (I3: double-close is a no-op).
func (b *Base) doClose() bool {
	if b.closed {
		return false
	}
	b.closed = true

	return true
}
