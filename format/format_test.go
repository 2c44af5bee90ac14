package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixelsdb/pixels-column-codec/format"
)

func TestEncoding_String(t *testing.T) {
	assert.Equal(t, "NONE", format.None.String())
	assert.Equal(t, "RUNLENGTH", format.RunLength.String())
	assert.Equal(t, "UNKNOWN", format.Encoding(99).String())
}

func TestByteOrderKind_String(t *testing.T) {
	assert.Equal(t, "LE", format.LittleEndian.String())
	assert.Equal(t, "BE", format.BigEndian.String())
}

func TestCompression_String(t *testing.T) {
	assert.Equal(t, "None", format.CompressionNone.String())
	assert.Equal(t, "Zstd", format.CompressionZstd.String())
	assert.Equal(t, "LZ4", format.CompressionLZ4.String())
	assert.Equal(t, "S2", format.CompressionS2.String())
	assert.Equal(t, "Unknown", format.Compression(99).String())
}
