package reader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelsdb/pixels-column-codec/bytestream"
	"github.com/pixelsdb/pixels-column-codec/errs"
	"github.com/pixelsdb/pixels-column-codec/format"
	"github.com/pixelsdb/pixels-column-codec/reader"
	"github.com/pixelsdb/pixels-column-codec/vector"
	"github.com/pixelsdb/pixels-column-codec/writer"
)

func dateWriterOpts(level writer.EncodingLevel, order format.ByteOrderKind, stride int, nullsPad bool) []writer.Option {
	return []writer.Option{
		writer.WithPixelStride(stride),
		writer.WithEncodingLevel(level),
		writer.WithByteOrder(order),
		writer.WithNullsPadding(nullsPad),
	}
}

func TestDateRoundTrip_RunLengthAndNone(t *testing.T) {
	for _, level := range []writer.EncodingLevel{writer.EL1, writer.EL2} {
		for _, order := range []format.ByteOrderKind{format.LittleEndian, format.BigEndian} {
			w, err := writer.NewDateColumnWriter(dateWriterOpts(level, order, 4, false)...)
			require.NoError(t, err)

			src := vector.NewDateColumnVector(10, true)
			for i := 0; i < 9; i++ {
				require.NoError(t, src.Add(int32(1000+i)))
			}
			require.NoError(t, src.AddNull())

			require.NoError(t, w.Write(src))
			out, idx, err := w.Close()
			require.NoError(t, err)

			stream := bytestream.NewFromBytes(out)
			r := reader.NewDateColumnReader(stream, idx, 4, order)

			dest := vector.NewDateColumnVector(10, false)
			for start := 0; start < 10; {
				pixelEnd := ((start / 4) + 1) * 4
				if pixelEnd > 10 {
					pixelEnd = 10
				}
				count := pixelEnd - start
				require.NoError(t, r.Read(count, dest))
				start += count
			}

			for i := 0; i < 9; i++ {
				assert.Equal(t, int32(1000+i), dest.At(i))
				assert.False(t, dest.IsNull(i))
			}
			assert.True(t, dest.IsNull(9))
			r.Close()
		}
	}
}

func TestDateRoundTrip_RangeCrossesPixelBoundary(t *testing.T) {
	w, err := writer.NewDateColumnWriter(dateWriterOpts(writer.EL1, format.LittleEndian, 4, false)...)
	require.NoError(t, err)

	src := vector.NewDateColumnVector(8, true)
	for i := 0; i < 8; i++ {
		require.NoError(t, src.Add(int32(i)))
	}
	require.NoError(t, w.Write(src))
	out, idx, err := w.Close()
	require.NoError(t, err)

	r := reader.NewDateColumnReader(bytestream.NewFromBytes(out), idx, 4, format.LittleEndian)
	dest := vector.NewDateColumnVector(8, false)
	err = r.Read(5, dest) // crosses the 4-row pixel boundary
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrRangeCrossesPixel))
}

func TestDateRoundTrip_NullsPadding_NoneEncoding(t *testing.T) {
	w, err := writer.NewDateColumnWriter(dateWriterOpts(writer.EL1, format.LittleEndian, 4, true)...)
	require.NoError(t, err)

	src := vector.NewDateColumnVector(4, true)
	require.NoError(t, src.Add(7))
	require.NoError(t, src.AddNull())
	require.NoError(t, src.Add(9))
	require.NoError(t, src.AddNull())

	require.NoError(t, w.Write(src))
	out, idx, err := w.Close()
	require.NoError(t, err)
	assert.True(t, idx.NullsPadding)

	r := reader.NewDateColumnReader(bytestream.NewFromBytes(out), idx, 4, format.LittleEndian)
	dest := vector.NewDateColumnVector(4, false)
	require.NoError(t, r.Read(4, dest))

	assert.Equal(t, int32(7), dest.At(0))
	assert.True(t, dest.IsNull(1))
	assert.Equal(t, int32(9), dest.At(2))
	assert.True(t, dest.IsNull(3))
}

func TestDecimalRoundTrip_I128_NoneEncoding(t *testing.T) {
	w, err := writer.NewDecimalColumnWriter(38, 4, dateWriterOpts(writer.EL1, format.BigEndian, 100, false)...)
	require.NoError(t, err)

	src, err := vector.NewDecimalColumnVector(3, 38, 4, true)
	require.NoError(t, err)
	require.NoError(t, src.AddWide(7, -1))
	require.NoError(t, src.AddNull())
	require.NoError(t, src.AddWide(-3, 42))

	require.NoError(t, w.Write(src))
	out, idx, err := w.Close()
	require.NoError(t, err)

	r, err := reader.NewDecimalColumnReader(bytestream.NewFromBytes(out), idx, 100, 38, 4, format.BigEndian)
	require.NoError(t, err)
	dest, err := vector.NewDecimalColumnVector(3, 38, 4, false)
	require.NoError(t, err)
	require.NoError(t, r.Read(3, dest))

	hi, lo := dest.AtWide(0)
	assert.Equal(t, int64(7), hi)
	assert.Equal(t, int64(-1), lo)
	assert.True(t, dest.IsNull(1))
	hi, lo = dest.AtWide(2)
	assert.Equal(t, int64(-3), hi)
	assert.Equal(t, int64(42), lo)
}

func TestDecimalRoundTrip_TypeMismatch(t *testing.T) {
	w, err := writer.NewDecimalColumnWriter(9, 2, dateWriterOpts(writer.EL1, format.LittleEndian, 100, false)...)
	require.NoError(t, err)
	out, idx, err := w.Close()
	require.NoError(t, err)

	r, err := reader.NewDecimalColumnReader(bytestream.NewFromBytes(out), idx, 100, 9, 2, format.LittleEndian)
	require.NoError(t, err)

	dest, err := vector.NewDecimalColumnVector(1, 18, 2, false)
	require.NoError(t, err)
	err = r.Read(1, dest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTypeMismatch))
}

func TestTimestampRoundTrip_RunLength(t *testing.T) {
	w, err := writer.NewTimestampColumnWriter(dateWriterOpts(writer.EL2, format.LittleEndian, 4, false)...)
	require.NoError(t, err)

	src, err := vector.NewTimestampColumnVector(4, 6, true)
	require.NoError(t, err)
	require.NoError(t, src.Add(1_000_000))
	require.NoError(t, src.Add(2_000_000))
	require.NoError(t, src.AddNull())
	require.NoError(t, src.Add(4_000_000))

	require.NoError(t, w.Write(src))
	out, idx, err := w.Close()
	require.NoError(t, err)

	r := reader.NewTimestampColumnReader(bytestream.NewFromBytes(out), idx, 4, format.LittleEndian)
	dest, err := vector.NewTimestampColumnVector(4, 6, false)
	require.NoError(t, err)
	require.NoError(t, r.Read(4, dest))

	assert.Equal(t, int64(1_000_000), dest.At(0))
	assert.Equal(t, int64(2_000_000), dest.At(1))
	assert.True(t, dest.IsNull(2))
	assert.Equal(t, int64(4_000_000), dest.At(3))
}
