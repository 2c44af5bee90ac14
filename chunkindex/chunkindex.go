// Package chunkindex models the chunk-index contract consumed from an
// external collaborator (the file container's footer/index, explicitly
// out of scope here). This package only carries the handful of fields
// a ColumnReader actually reads: the null-bitmap offset, the chunk's
// wire encoding, and each pixel's hasNull flag.
package chunkindex

import "github.com/pixelsdb/pixels-column-codec/format"

// PixelStat is the subset of per-pixel statistics a ColumnReader
// consumes. The rest of a real pixel-statistics record (min/max,
// sum, distinct count, ...) belongs to the pixel-statistics producer,
// which is out of scope here.
type PixelStat struct {
	HasNull bool
}

// Index is the chunk-level metadata a ColumnReader needs.
type Index struct {
	// IsNullOffset is the byte offset from the start of the chunk's
	// encoded bytes to the first byte of the null-bitmap region.
	IsNullOffset int
	// Encoding is the chunk's wire encoding kind.
	Encoding format.Encoding
	// NullsPadding reports whether a null row still occupies a
	// fixed-width value slot in the NONE-encoded value region. It has
	// no effect when Encoding is RunLength, where null rows never
	// occupy a value slot.
	NullsPadding bool
	// Pixels holds one entry per pixel in the chunk, in order.
	Pixels []PixelStat
}

// HasNull reports whether the pixel at the given index has any null
// rows. It panics on an out-of-range pixelID since that indicates a
// caller bug (a reader computing elementIndex/pixelStride incorrectly),
// not a data-dependent failure mode.
func (idx Index) HasNull(pixelID int) bool {
	return idx.Pixels[pixelID].HasNull
}
