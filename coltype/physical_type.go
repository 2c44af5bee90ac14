// Package coltype carries the decimal physical-width dispatch tag: a
// tagged variant instead of reinterpreting one buffer at multiple
// widths.
package coltype

import (
	"fmt"
	"math"

	"github.com/pixelsdb/pixels-column-codec/errs"
)

// PhysicalType is the unscaled-integer width backing a decimal column.
type PhysicalType uint8

const (
	I16 PhysicalType = iota
	I32
	I64
	I128
)

func (t PhysicalType) String() string {
	switch t {
	case I16:
		return "INT16"
	case I32:
		return "INT32"
	case I64:
		return "INT64"
	case I128:
		return "INT128"
	default:
		return "UNKNOWN"
	}
}

// ByteWidth returns the number of bytes one value of this physical type
// occupies in the NONE wire encoding.
func (t PhysicalType) ByteWidth() int {
	switch t {
	case I16:
		return 2
	case I32:
		return 4
	case I64:
		return 8
	case I128:
		return 16
	default:
		return 0
	}
}

// maxDigitsForWidth bounds, per physical type, the largest decimal
// precision whose range +/-(10^p - 1) still fits. These are the same
// bounds duckdb::Decimal::MAX_WIDTH_INT{16,32,64,128} encode in the
// original source: the largest p such that 10^p - 1 fits in the
// signed range of that width.
const (
	maxPrecisionInt16  = 4  // 10^4 - 1 = 9999 fits in int16 (±32767)
	maxPrecisionInt32  = 9  // 10^9 - 1 fits in int32 (±2147483647)
	maxPrecisionInt64  = 18 // 10^18 - 1 fits in int64
	maxPrecisionInt128 = 38 // 10^38 - 1 fits in the 128-bit signed range
)

// MaxPrecision is the largest decimal precision this core can represent.
const MaxPrecision = maxPrecisionInt128

// PhysicalTypeForPrecision implements the width-selection rule of spec
// §3.1 and §8 ("Width monotonicity"): the smallest width in
// {16,32,64,128} whose range contains ±(10^p - 1). It is the single
// source of truth shared by DecimalColumnVector, DecimalColumnReader
// and DecimalColumnWriter, replacing the
// three duplicated if/else ladders of the original source.
func PhysicalTypeForPrecision(precision int) (PhysicalType, error) {
	switch {
	case precision < 0:
		return 0, fmt.Errorf("%w: precision %d must be non-negative", errs.ErrInvalidArgument, precision)
	case precision <= maxPrecisionInt16:
		return I16, nil
	case precision <= maxPrecisionInt32:
		return I32, nil
	case precision <= maxPrecisionInt64:
		return I64, nil
	case precision <= maxPrecisionInt128:
		return I128, nil
	default:
		return 0, fmt.Errorf("%w: precision %d exceeds maximum supported width (%d)",
			errs.ErrUnsupportedPrecision, precision, MaxPrecision)
	}
}

// MaxUnscaled returns 10^precision - 1, the largest magnitude an
// unscaled value of this precision may hold, for precision in [0, 18];
// outside that range it returns math.MaxInt64. It backs the int64-range
// overflow checks used by the string parsers (decimal precision above
// 18 digits cannot be range-checked with a plain int64 power of ten; see
// vector.ParseDecimal for how those precisions are checked).
func MaxUnscaled(precision int) int64 {
	if precision < 0 || precision > maxPrecisionInt64 {
		return math.MaxInt64
	}

	v := int64(1)
	for i := 0; i < precision; i++ {
		v *= 10
	}

	return v - 1
}
