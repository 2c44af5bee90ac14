package vector

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pixelsdb/pixels-column-codec/coltype"
	"github.com/pixelsdb/pixels-column-codec/errs"
)

// decimalAlignment is the 32-byte SIMD alignment this module requires for
// a DecimalColumnVector's primary buffer.
const decimalAlignment = 32

// DecimalColumnVector holds unscaled integers for a decimal(precision,
// scale) column: the decimal value equals
// unscaled x 10^(-scale). The physical width of the unscaled integer is
// resolved once at construction from precision.
//
// Only one of int16s/int32s/int64s/hi+lo is populated, selected by
// Physical; the others stay nil. int128 values are carried as two
// int64 halves (hi, lo) rather than a single slice, since Go has no
// native 128-bit integer.
type DecimalColumnVector struct {
	Base
	Physical  coltype.PhysicalType
	precision int
	scale     int

	int16s []int16
	int32s []int32
	int64s []int64 // backs both I64 and the low half of I128
	hi128  []int64 // high half, populated only for I128
}

// NewDecimalColumnVector creates a vector for decimal(precision, scale)
// with room for length rows.
func NewDecimalColumnVector(length, precision, scale int, encoding bool) (*DecimalColumnVector, error) {
	if scale < 0 || scale > precision {
		return nil, fmt.Errorf("%w: scale %d must satisfy 0 <= scale <= precision %d", errs.ErrInvalidArgument, scale, precision)
	}
	physical, err := coltype.PhysicalTypeForPrecision(precision)
	if err != nil {
		return nil, err
	}

	v := &DecimalColumnVector{
		Base:      newBase(length, encoding),
		Physical:  physical,
		precision: precision,
		scale:     scale,
	}
	v.allocate(length)
	v.addMemoryUsage(int64(length * physical.ByteWidth()))

	return v, nil
}

func (v *DecimalColumnVector) allocate(length int) {
	switch v.Physical {
	case coltype.I16:
		v.int16s = alignedInt16s(length, decimalAlignment)
	case coltype.I32:
		v.int32s = alignedInt32s(length, decimalAlignment)
	case coltype.I64:
		v.int64s = alignedInt64s(length, decimalAlignment)
	case coltype.I128:
		v.int64s = alignedInt64s(length, decimalAlignment)
		v.hi128 = alignedInt64s(length, decimalAlignment)
	}
}

// Precision returns the decimal's declared precision.
func (v *DecimalColumnVector) Precision() int { return v.precision }

// Scale returns the decimal's declared scale.
func (v *DecimalColumnVector) Scale() int { return v.scale }

// Int16s exposes the I16 physical backing buffer. Only valid when
// v.Physical == coltype.I16.
func (v *DecimalColumnVector) Int16s() []int16 { return v.int16s }

// Int32s exposes the I32 physical backing buffer. Only valid when
// v.Physical == coltype.I32.
func (v *DecimalColumnVector) Int32s() []int32 { return v.int32s }

// Int64s exposes the I64 physical backing buffer, or the low 64 bits of
// each I128 value when v.Physical == coltype.I128.
func (v *DecimalColumnVector) Int64s() []int64 { return v.int64s }

// Hi128 exposes the high 64 bits of each I128 value. Only valid when
// v.Physical == coltype.I128; nil otherwise.
func (v *DecimalColumnVector) Hi128() []int64 { return v.hi128 }

// Current returns the unscaled value at the read cursor, widened to
// int64. For I128 values this truncates to the low 64 bits; use
// CurrentWide for the full 128-bit value.
func (v *DecimalColumnVector) Current() (unscaled int64, isNull bool, ok bool) {
	if v.Closed() {
		return 0, true, false
	}
	i := v.ReadIndex()

	return v.at64(i), v.IsNull(i), true
}

// At returns the unscaled value at row i widened to int64 (truncating
// I128 values to their low 64 bits).
func (v *DecimalColumnVector) At(i int) int64 { return v.at64(i) }

func (v *DecimalColumnVector) at64(i int) int64 {
	switch v.Physical {
	case coltype.I16:
		return int64(v.int16s[i])
	case coltype.I32:
		return int64(v.int32s[i])
	default: // I64, I128
		return v.int64s[i]
	}
}

// AtWide returns the full unscaled value at row i as (hi, lo) 64-bit
// halves. For physical widths narrower than I128, hi is the sign
// extension of lo.
func (v *DecimalColumnVector) AtWide(i int) (hi, lo int64) {
	if v.Physical == coltype.I128 {
		return v.hi128[i], v.int64s[i]
	}
	lo = v.at64(i)
	hi = 0
	if lo < 0 {
		hi = -1
	}

	return hi, lo
}

// Add appends an unscaled int64 value, narrowing it to this vector's
// physical width.
func (v *DecimalColumnVector) Add(unscaled int64) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	if v.WriteIndex() >= v.Length() {
		if err := v.EnsureSize(max(1, v.Length()*2), true); err != nil {
			return err
		}
	}
	i := v.WriteIndex()
	v.setAt(i, unscaled)
	v.SetNull(i, false)
	v.markWritten(i)

	return nil
}

// AddWide appends a full 128-bit unscaled value. For physical widths
// narrower than I128 the high half is discarded (the value must already
// fit the declared precision; callers validate that via
// coltype.MaxUnscaled/overflow checks before calling this).
func (v *DecimalColumnVector) AddWide(hi, lo int64) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	if v.WriteIndex() >= v.Length() {
		if err := v.EnsureSize(max(1, v.Length()*2), true); err != nil {
			return err
		}
	}
	i := v.WriteIndex()
	if v.Physical == coltype.I128 {
		v.hi128[i] = hi
		v.int64s[i] = lo
	} else {
		v.setAt(i, lo)
	}
	v.SetNull(i, false)
	v.markWritten(i)

	return nil
}

// AddNull appends a null row.
func (v *DecimalColumnVector) AddNull() error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	if v.WriteIndex() >= v.Length() {
		if err := v.EnsureSize(max(1, v.Length()*2), true); err != nil {
			return err
		}
	}
	i := v.WriteIndex()
	v.SetNull(i, true)
	v.markWritten(i)

	return nil
}

// Set overwrites row i's unscaled value directly.
func (v *DecimalColumnVector) Set(i int, unscaled int64) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	v.setAt(i, unscaled)
	v.SetNull(i, false)
	v.markWritten(i)

	return nil
}

func (v *DecimalColumnVector) setAt(i int, unscaled int64) {
	switch v.Physical {
	case coltype.I16:
		v.int16s[i] = int16(unscaled) //nolint:gosec
	case coltype.I32:
		v.int32s[i] = int32(unscaled) //nolint:gosec
	default: // I64, I128 (low half; AddWide/hi128 handles the high half)
		v.int64s[i] = unscaled
		if v.Physical == coltype.I128 {
			if unscaled < 0 {
				v.hi128[i] = -1
			} else {
				v.hi128[i] = 0
			}
		}
	}
}

// AddBool appends true -> 10^scale, false -> 0.
func (v *DecimalColumnVector) AddBool(value bool) error {
	if !value {
		return v.Add(0)
	}

	if v.scale <= 18 {
		return v.Add(coltype.MaxUnscaled(v.scale) + 1) // 10^scale
	}

	// 10^scale exceeds int64 here, so build it as a 128-bit (hi, lo) pair.
	var hi, lo uint64 = 0, 1
	for i := 0; i < v.scale; i++ {
		carry, next := bits.Mul64(lo, 10)
		hi = hi*10 + carry
		lo = next
	}

	return v.AddWide(int64(hi), int64(lo)) //nolint:gosec
}

// AddString parses a numeric string and appends the resulting unscaled
// value (decimal-parse producer helper).
func (v *DecimalColumnVector) AddString(s string) error {
	unscaled, err := ParseDecimal(s, v.precision, v.scale)
	if err != nil {
		return err
	}

	return v.Add(unscaled)
}

// EnsureSize grows the vector to at least size rows.
func (v *DecimalColumnVector) EnsureSize(size int, preserveData bool) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	if size <= v.Length() {
		return nil
	}
	oldLen := v.Length()

	switch v.Physical {
	case coltype.I16:
		old := v.int16s
		v.int16s = alignedInt16s(size, decimalAlignment)
		if preserveData {
			copy(v.int16s, old)
		}
	case coltype.I32:
		old := v.int32s
		v.int32s = alignedInt32s(size, decimalAlignment)
		if preserveData {
			copy(v.int32s, old)
		}
	case coltype.I64:
		old := v.int64s
		v.int64s = alignedInt64s(size, decimalAlignment)
		if preserveData {
			copy(v.int64s, old)
		}
	case coltype.I128:
		oldLo, oldHi := v.int64s, v.hi128
		v.int64s = alignedInt64s(size, decimalAlignment)
		v.hi128 = alignedInt64s(size, decimalAlignment)
		if preserveData {
			copy(v.int64s, oldLo)
			copy(v.hi128, oldHi)
		}
	}
	v.growNullMask(size, preserveData)
	v.addMemoryUsage(int64(size-oldLen) * int64(v.Physical.ByteWidth()))

	return nil
}

// Close releases the vector's buffer unconditionally for every
// physical width, including INT64/INT128, so no width leaks its
// backing array.
func (v *DecimalColumnVector) Close() {
	if !v.doClose() {
		return
	}
	v.int16s = nil
	v.int32s = nil
	v.int64s = nil
	v.hi128 = nil
}

// ParseDecimal parses a numeric string as a decimal(precision, scale)
// unscaled value, multiplying by 10^scale with round-to-nearest and
// checking for overflow beyond +/-(10^precision - 1).
//
// Precision above 18 is range-checked only against the int64 range of
// the returned value (an int64-based power-of-ten overflow check is
// meaningless once the unscaled range exceeds int64), consistent with
// coltype.MaxUnscaled's documented domain.
func ParseDecimal(s string, precision, scale int) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty decimal string", errs.ErrParse)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid decimal %q: %v", errs.ErrParse, s, err)
	}

	scaled := f * math.Pow10(scale)
	unscaled := int64(math.Round(scaled))

	if precision <= 18 {
		bound := coltype.MaxUnscaled(precision)
		if unscaled > bound || unscaled < -bound {
			return 0, fmt.Errorf("%w: %q exceeds precision(%d,%d)", errs.ErrOverflow, s, precision, scale)
		}
	} else if scaled >= 1<<63 || scaled < -(1<<63) {
		return 0, fmt.Errorf("%w: %q exceeds the int64 unscaled range", errs.ErrOverflow, s)
	}

	return unscaled, nil
}
