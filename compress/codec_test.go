package compress_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelsdb/pixels-column-codec/compress"
	"github.com/pixelsdb/pixels-column-codec/format"
)

func payload() []byte {
	var buf bytes.Buffer
	for i := 0; i < 4096; i++ {
		buf.WriteByte(byte(i % 251)) //nolint:gosec
	}

	return buf.Bytes()
}

func TestCreateCodec_RoundTrip(t *testing.T) {
	kinds := []format.Compression{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionLZ4,
		format.CompressionS2,
	}
	data := payload()
	for _, kind := range kinds {
		codec, err := compress.CreateCodec(kind)
		require.NoError(t, err, kind.String())

		compressed, err := codec.Compress(data)
		require.NoError(t, err, kind.String())

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, kind.String())

		assert.Equal(t, data, decompressed, kind.String())
	}
}

func TestCreateCodec_Unsupported(t *testing.T) {
	_, err := compress.CreateCodec(format.Compression(99))
	require.Error(t, err)
}

func TestGetCodec_SharedInstance(t *testing.T) {
	a, err := compress.GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	b, err := compress.GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := compress.GetCodec(format.Compression(99))
	require.Error(t, err)
}

func TestNoOpCodec_Identity(t *testing.T) {
	data := payload()
	codec := compress.NoOpCodec{}
	out, err := codec.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
