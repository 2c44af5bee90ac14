package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixelsdb/pixels-column-codec/checksum"
)

func TestSum64_Deterministic(t *testing.T) {
	data := []byte("column chunk bytes")
	assert.Equal(t, checksum.Sum64(data), checksum.Sum64(data))
}

func TestSum64_DiffersOnDifferentInput(t *testing.T) {
	assert.NotEqual(t, checksum.Sum64([]byte("a")), checksum.Sum64([]byte("b")))
}

func TestSum64_Empty(t *testing.T) {
	assert.NotPanics(t, func() { checksum.Sum64(nil) })
}
