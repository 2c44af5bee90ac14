package vector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelsdb/pixels-column-codec/coltype"
	"github.com/pixelsdb/pixels-column-codec/errs"
	"github.com/pixelsdb/pixels-column-codec/vector"
)

func TestNewDecimalColumnVector_RejectsBadScale(t *testing.T) {
	_, err := vector.NewDecimalColumnVector(4, 5, 10, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestDecimalColumnVector_PhysicalTypeDispatch(t *testing.T) {
	cases := []struct {
		precision int
		want      coltype.PhysicalType
	}{
		{4, coltype.I16},
		{9, coltype.I32},
		{18, coltype.I64},
		{38, coltype.I128},
	}
	for _, tc := range cases {
		v, err := vector.NewDecimalColumnVector(4, tc.precision, 2, true)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v.Physical, "precision %d", tc.precision)
	}
}

func TestDecimalColumnVector_AddAndAt_Narrow(t *testing.T) {
	v, err := vector.NewDecimalColumnVector(4, 9, 2, true)
	require.NoError(t, err)
	require.NoError(t, v.Add(12345))
	require.NoError(t, v.AddNull())

	assert.Equal(t, int64(12345), v.At(0))
	assert.False(t, v.IsNull(0))
	assert.True(t, v.IsNull(1))
}

func TestDecimalColumnVector_AddWideAtWide_I128(t *testing.T) {
	v, err := vector.NewDecimalColumnVector(4, 38, 4, true)
	require.NoError(t, err)
	require.NoError(t, v.AddWide(7, -1))

	hi, lo := v.AtWide(0)
	assert.Equal(t, int64(7), hi)
	assert.Equal(t, int64(-1), lo)
}

func TestDecimalColumnVector_AtWide_SignExtendsNarrow(t *testing.T) {
	v, err := vector.NewDecimalColumnVector(4, 9, 2, true)
	require.NoError(t, err)
	require.NoError(t, v.Add(-5))

	hi, lo := v.AtWide(0)
	assert.Equal(t, int64(-1), hi)
	assert.Equal(t, int64(-5), lo)
}

func TestDecimalColumnVector_AddBool(t *testing.T) {
	v, err := vector.NewDecimalColumnVector(4, 9, 2, true)
	require.NoError(t, err)
	require.NoError(t, v.AddBool(false))
	require.NoError(t, v.AddBool(true))

	assert.Equal(t, int64(0), v.At(0))
	assert.Equal(t, int64(100), v.At(1)) // 10^scale
}

func TestParseDecimal_Overflow(t *testing.T) {
	_, err := vector.ParseDecimal("99999999999.99", 9, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrOverflow))
}

func TestParseDecimal_RoundsToScale(t *testing.T) {
	unscaled, err := vector.ParseDecimal("12.345", 9, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1235), unscaled) // round-half-up from 12.345 -> 1234.5 -> 1235
}

func TestDecimalColumnVector_AddString(t *testing.T) {
	v, err := vector.NewDecimalColumnVector(4, 9, 2, true)
	require.NoError(t, err)
	require.NoError(t, v.AddString("42.5"))
	assert.Equal(t, int64(4250), v.At(0))
}

func TestDecimalColumnVector_Close_UnconditionalRelease(t *testing.T) {
	for _, precision := range []int{4, 9, 18, 38} {
		v, err := vector.NewDecimalColumnVector(2, precision, 1, true)
		require.NoError(t, err)
		require.NoError(t, v.Add(1))
		v.Close()
		assert.True(t, v.Closed())
		assert.Nil(t, v.Int16s())
		assert.Nil(t, v.Int32s())
		assert.Nil(t, v.Int64s())
		assert.Nil(t, v.Hi128())
	}
}
