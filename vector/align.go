package vector

import "unsafe"

// alignedInt32s and alignedInt64s allocate slices whose backing array
// starts on a 32- or 64-byte boundary: DateColumnVector wants 32-byte
// alignment, TimestampColumnVector wants 64-byte alignment, and
// DecimalColumnVector wants 32-byte alignment for its 16/32/64-bit
// physical types.
//
// Go's allocator gives no alignment guarantee beyond what the element
// type requires, so these helpers over-allocate a byte buffer and carve
// the returned slice out of the first aligned offset, a common trick
// for building SIMD-ready buffers without calling into a C allocator.
// The slice keeps the over-allocated backing array alive for its
// lifetime; there is nothing further to release (Go's GC reclaims it),
// which is why the column vectors' Close methods only need to drop
// their reference to the slice, not call a paired free.

func alignedBytes(n, alignment int) []byte {
	if n <= 0 {
		return nil
	}
	raw := make([]byte, n+alignment)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := int((uintptr(alignment) - addr%uintptr(alignment)) % uintptr(alignment))

	return raw[offset : offset+n : offset+n]
}

func alignedInt32s(n, alignment int) []int32 {
	if n <= 0 {
		return nil
	}
	b := alignedBytes(n*4, alignment)

	return unsafe.Slice((*int32)(unsafe.Pointer(&b[0])), n)
}

func alignedInt64s(n, alignment int) []int64 {
	if n <= 0 {
		return nil
	}
	b := alignedBytes(n*8, alignment)

	return unsafe.Slice((*int64)(unsafe.Pointer(&b[0])), n)
}

func alignedInt16s(n, alignment int) []int16 {
	if n <= 0 {
		return nil
	}
	b := alignedBytes(n*2, alignment)

	return unsafe.Slice((*int16)(unsafe.Pointer(&b[0])), n)
}
