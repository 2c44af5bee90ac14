package bytestream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelsdb/pixels-column-codec/bytestream"
	"github.com/pixelsdb/pixels-column-codec/endian"
)

func TestBuffer_PutGetUint32_RoundTrip(t *testing.T) {
	for _, engine := range []endian.Engine{endian.Little, endian.Big} {
		buf := bytestream.New(16)
		buf.PutUint32(engine, 0xDEADBEEF)
		got, err := buf.GetUint32(engine)
		require.NoError(t, err)
		assert.Equal(t, uint32(0xDEADBEEF), got)
	}
}

func TestBuffer_PutGetUint64_RoundTrip(t *testing.T) {
	buf := bytestream.New(16)
	buf.PutUint64(endian.Little, 0x0102030405060708)
	got, err := buf.GetUint64(endian.Little)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), got)
}

func TestBuffer_Grow_PreservesData(t *testing.T) {
	buf := bytestream.New(2)
	for i := 0; i < 10000; i++ {
		buf.PutUint32(endian.Little, uint32(i)) //nolint:gosec
	}
	require.Equal(t, 40000, buf.Len())
	for i := 0; i < 10000; i++ {
		v, err := buf.GetUint32(endian.Little)
		require.NoError(t, err)
		assert.Equal(t, uint32(i), v) //nolint:gosec
	}
}

func TestBuffer_SetReadPos_OutOfRange(t *testing.T) {
	buf := bytestream.New(4)
	buf.PutBytes([]byte{1, 2, 3, 4})
	require.Error(t, buf.SetReadPos(5))
	require.Error(t, buf.SetReadPos(-1))
	require.NoError(t, buf.SetReadPos(2))
	assert.Equal(t, 2, buf.Remaining())
}

func TestBuffer_ReadBytes_Underrun(t *testing.T) {
	buf := bytestream.NewFromBytes([]byte{1, 2})
	_, err := buf.ReadBytes(3)
	require.Error(t, err)
}

func TestBuffer_PoolRoundTrip(t *testing.T) {
	buf := bytestream.Get()
	buf.PutBytes([]byte("hello"))
	bytestream.Put(buf)

	again := bytestream.Get()
	assert.Equal(t, 0, again.Len(), "pooled buffer should come back reset")
}
