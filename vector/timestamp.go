package vector

import (
	"fmt"
	"strings"
	"time"

	"github.com/pixelsdb/pixels-column-codec/errs"
)

// timestampAlignment is the 64-byte SIMD alignment this module requires
// for a TimestampColumnVector's primary buffer.
const timestampAlignment = 64

// MaxTimestampPrecision is the largest fractional-second precision this
// module accepts (microseconds)
const MaxTimestampPrecision = 6

// TimestampColumnVector holds 64-bit microsecond offsets from the UTC
// epoch (1970-01-01T00:00:00). precision records the column's declared
// fractional-second digits (0-6); values are always stored
// microsecond-canonical and rounded to precision on ingest.
type TimestampColumnVector struct {
	Base
	micros    []int64
	precision int
}

// NewTimestampColumnVector creates a vector with room for length rows
// at the given fractional-second precision (0-6).
func NewTimestampColumnVector(length, precision int, encoding bool) (*TimestampColumnVector, error) {
	if precision < 0 || precision > MaxTimestampPrecision {
		return nil, fmt.Errorf("%w: timestamp precision %d out of range [0,%d]", errs.ErrInvalidArgument, precision, MaxTimestampPrecision)
	}

	v := &TimestampColumnVector{
		Base:      newBase(length, encoding),
		micros:    alignedInt64s(length, timestampAlignment),
		precision: precision,
	}
	v.addMemoryUsage(int64(length) * 8)

	return v, nil
}

// Precision returns the column's declared fractional-second digits.
func (v *TimestampColumnVector) Precision() int { return v.precision }

// Current returns the microsecond offset at the read cursor and whether
// that row is null.
func (v *TimestampColumnVector) Current() (micros int64, isNull bool, ok bool) {
	if v.Closed() {
		return 0, true, false
	}

	return v.micros[v.ReadIndex()], v.IsNull(v.ReadIndex()), true
}

// At returns the microsecond offset at an arbitrary row.
func (v *TimestampColumnVector) At(i int) int64 { return v.micros[i] }

// Micros exposes the underlying buffer for bulk access by readers and
// writers within this module.
func (v *TimestampColumnVector) Micros() []int64 { return v.micros }

// Add appends a microsecond offset, rounding it to the vector's
// declared precision first.
func (v *TimestampColumnVector) Add(micros int64) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	if v.WriteIndex() >= v.Length() {
		if err := v.EnsureSize(max(1, v.Length()*2), true); err != nil {
			return err
		}
	}
	i := v.WriteIndex()
	v.micros[i] = roundMicrosToPrecision(micros, v.precision)
	v.SetNull(i, false)
	v.markWritten(i)

	return nil
}

// AddNull appends a null row.
func (v *TimestampColumnVector) AddNull() error {
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

// Set overwrites row i's microsecond offset directly, rounding to
// precision.
func (v *TimestampColumnVector) Set(i int, micros int64) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	v.micros[i] = roundMicrosToPrecision(micros, v.precision)
	v.SetNull(i, false)
	v.markWritten(i)

	return nil
}

// AddBool always fails: this module defines boolean-to-timestamp
// conversion as unconditionally invalid, mirroring DateColumnVector.
func (v *TimestampColumnVector) AddBool(bool) error {
	return fmt.Errorf("%w: cannot convert boolean to timestamp", errs.ErrParse)
}

// AddString parses a "YYYY-MM-DD HH:MM:SS[.fraction]" string and
// appends the resulting microsecond offset.
func (v *TimestampColumnVector) AddString(s string) error {
	micros, err := ParseTimestamp(s)
	if err != nil {
		return err
	}

	return v.Add(micros)
}

// EnsureSize grows the vector to at least size rows, preserving
// existing data when requested.
func (v *TimestampColumnVector) EnsureSize(size int, preserveData bool) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	if size <= v.Length() {
		return nil
	}
	old := v.micros
	next := alignedInt64s(size, timestampAlignment)
	if preserveData {
		copy(next, old)
	}
	v.micros = next
	v.growNullMask(size, preserveData)
	v.addMemoryUsage(int64(size-len(old)) * 8)

	return nil
}

// Close releases the vector's buffer unconditionally.
func (v *TimestampColumnVector) Close() {
	if !v.doClose() {
		return
	}
	v.micros = nil
}

// roundMicrosToPrecision floors micros to a multiple of the unit
// implied by precision fractional-second digits: floor(v /
// 10^(6-p)) * 10^(6-p). The vector always stores microsecond-canonical
// values, truncation to the column's declared precision happens on
// every write so repeated round-trips are idempotent.
func roundMicrosToPrecision(micros int64, precision int) int64 {
	if precision >= MaxTimestampPrecision {
		return micros
	}
	unit := int64(1)
	for i := 0; i < MaxTimestampPrecision-precision; i++ {
		unit *= 10
	}

	return micros - ((micros%unit + unit) % unit)
}

// ParseTimestamp parses a "YYYY-MM-DD HH:MM:SS[.fraction]" string into
// a microsecond offset since the UTC epoch.
func ParseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)
	layout := "2006-01-02 15:04:05"
	if i := strings.IndexByte(s, '.'); i >= 0 {
		layout = "2006-01-02 15:04:05.999999999"
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid timestamp %q: %v", errs.ErrParse, s, err)
	}

	return t.Unix()*1_000_000 + int64(t.Nanosecond())/1000, nil
}

// FormatTimestamp is the inverse of ParseTimestamp, truncated to
// microsecond resolution; a natural companion for tests and
// diagnostics that the column readers and writers do not use.
func FormatTimestamp(micros int64) string {
	sec := micros / 1_000_000
	rem := micros % 1_000_000
	if rem < 0 {
		sec--
		rem += 1_000_000
	}
	t := time.Unix(sec, rem*1000).UTC()

	return t.Format("2006-01-02 15:04:05.000000")
}
