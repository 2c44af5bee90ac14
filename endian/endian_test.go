package endian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixelsdb/pixels-column-codec/endian"
	"github.com/pixelsdb/pixels-column-codec/format"
)

func TestFor(t *testing.T) {
	assert.Equal(t, endian.Little, endian.For(format.LittleEndian))
	assert.Equal(t, endian.Big, endian.For(format.BigEndian))
}

func TestPutInt128_Int128_RoundTrip(t *testing.T) {
	for _, engine := range []endian.Engine{endian.Little, endian.Big} {
		cases := []struct{ hi, lo int64 }{
			{0, 0},
			{0, 1},
			{-1, -1},
			{1, -1},
			{123456789, -987654321},
		}
		for _, c := range cases {
			var buf [16]byte
			endian.PutInt128(buf[:], engine, c.hi, c.lo)
			hi, lo := endian.Int128(buf[:], engine)
			assert.Equal(t, c.hi, hi)
			assert.Equal(t, c.lo, lo)
		}
	}
}

func TestHostIsLittleEndian_Stable(t *testing.T) {
	a := endian.HostIsLittleEndian()
	b := endian.HostIsLittleEndian()
	assert.Equal(t, a, b)
}
