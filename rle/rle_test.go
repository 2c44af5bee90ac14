package rle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelsdb/pixels-column-codec/rle"
)

func decodeAll(t *testing.T, data []byte, count int) []int64 {
	t.Helper()
	dec := rle.NewDecoder(data, true)
	out := make([]int64, count)
	for i := range out {
		v, err := dec.Next()
		require.NoError(t, err)
		out[i] = v
	}
	dec.Close()

	return out
}

func TestEncodeDecode_ShortRepeat(t *testing.T) {
	values := []int64{7, 7, 7, 7, 7}
	data := rle.NewEncoder().Encode(values)
	require.Equal(t, values, decodeAll(t, data, len(values)))
}

func TestEncodeDecode_Delta(t *testing.T) {
	values := []int64{10, 20, 30, 40, 50}
	data := rle.NewEncoder().Encode(values)
	require.Equal(t, values, decodeAll(t, data, len(values)))
}

func TestEncodeDecode_NegativeDelta(t *testing.T) {
	values := []int64{100, 90, 80, 70}
	data := rle.NewEncoder().Encode(values)
	require.Equal(t, values, decodeAll(t, data, len(values)))
}

func TestEncodeDecode_Direct(t *testing.T) {
	values := []int64{3, -17, 42, 1000000, -5}
	data := rle.NewEncoder().Encode(values)
	require.Equal(t, values, decodeAll(t, data, len(values)))
}

func TestEncodeDecode_Mixed(t *testing.T) {
	values := []int64{1, 1, 1, 2, 4, 6, 8, -3, 99, 5, 5, 5, 5}
	data := rle.NewEncoder().Encode(values)
	require.Equal(t, values, decodeAll(t, data, len(values)))
}

func TestEncodeDecode_Empty(t *testing.T) {
	data := rle.NewEncoder().Encode(nil)
	require.Nil(t, data)
}

func TestEncodeDecode_SingleValue(t *testing.T) {
	values := []int64{42}
	data := rle.NewEncoder().Encode(values)
	require.Equal(t, values, decodeAll(t, data, len(values)))
}

func TestEncodeDecode_RunLongerThanCap(t *testing.T) {
	values := make([]int64, 200)
	for i := range values {
		values[i] = 5
	}
	data := rle.NewEncoder().Encode(values)
	require.Equal(t, values, decodeAll(t, data, len(values)))
}

func TestDecoder_UnderrunOnEmptyInput(t *testing.T) {
	dec := rle.NewDecoder(nil, true)
	_, err := dec.Next()
	require.Error(t, err)
}
