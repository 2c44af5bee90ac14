package vector

import (
	"fmt"
	"strings"
	"time"

	"github.com/pixelsdb/pixels-column-codec/errs"
)

// dateAlignment is the 32-byte SIMD alignment this module requires for a
// DateColumnVector's primary buffer.
const dateAlignment = 32

// DateColumnVector holds 32-bit signed day counts since the UTC epoch
// (1970-01-01)
type DateColumnVector struct {
	Base
	days []int32
}

// NewDateColumnVector creates a vector with room for length rows.
// encoding mirrors companion flag; see Base.
func NewDateColumnVector(length int, encoding bool) *DateColumnVector {
	v := &DateColumnVector{
		Base: newBase(length, encoding),
		days: alignedInt32s(length, dateAlignment),
	}
	v.addMemoryUsage(int64(length) * 4)

	return v
}

// Current returns the day count at the read cursor and whether that
// row is null. ok is false only once the vector has been closed (spec
// §6.5's "current()").
func (v *DateColumnVector) Current() (days int32, isNull bool, ok bool) {
	if v.Closed() {
		return 0, true, false
	}

	return v.days[v.ReadIndex()], v.IsNull(v.ReadIndex()), true
}

// At returns the day count at an arbitrary row, ignoring the read
// cursor; used by readers and by round-trip tests.
func (v *DateColumnVector) At(i int) int32 { return v.days[i] }

// Days exposes the underlying buffer for bulk access by readers and
// writers within this module. Callers outside the codec core should
// prefer At/Current/Add to keep the alignment/null-mask invariants
// intact.
func (v *DateColumnVector) Days() []int32 { return v.days }

// Add appends a day count, extending the vector if necessary (spec
// §6.5's add(value) producer surface).
func (v *DateColumnVector) Add(days int32) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	if v.WriteIndex() >= v.Length() {
		if err := v.EnsureSize(max(1, v.Length()*2), true); err != nil {
			return err
		}
	}
	i := v.WriteIndex()
	v.days[i] = days
	v.SetNull(i, false)
	v.markWritten(i)

	return nil
}

// AddNull appends a null row.
func (v *DateColumnVector) AddNull() error {
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

// Set overwrites row i's day count directly (set(rowIndex,
// value)), growing writeIndex if i is past the current prefix.
func (v *DateColumnVector) Set(i int, days int32) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	v.days[i] = days
	v.SetNull(i, false)
	v.markWritten(i)

	return nil
}

// AddBool always fails: this module defines boolean-to-date conversion as
// unconditionally invalid.
func (v *DateColumnVector) AddBool(bool) error {
	return fmt.Errorf("%w: cannot convert boolean to date", errs.ErrParse)
}

// AddString parses a "YYYY-MM-DD" string and appends the resulting day
// count (date-parse producer helper).
func (v *DateColumnVector) AddString(s string) error {
	days, err := ParseDate(s)
	if err != nil {
		return err
	}

	return v.Add(days)
}

// EnsureSize grows the vector to at least size rows. When preserveData
// is true, rows [0, writeIndex) are preserved.
func (v *DateColumnVector) EnsureSize(size int, preserveData bool) error {
	if err := v.checkOpen(); err != nil {
		return err
	}
	if size <= v.Length() {
		return nil
	}
	old := v.days
	next := alignedInt32s(size, dateAlignment)
	if preserveData {
		copy(next, old)
	}
	v.days = next
	v.growNullMask(size, preserveData)
	v.addMemoryUsage(int64(size-len(old)) * 4)

	return nil
}

// Close releases the vector's buffer unconditionally, applied
// uniformly across every vector type, not just decimal.
func (v *DateColumnVector) Close() {
	if !v.doClose() {
		return
	}
	v.days = nil
}

// ParseDate parses a "YYYY-MM-DD" date string into a day count since
// the UTC epoch.
func ParseDate(s string) (int32, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid date %q: %v", errs.ErrParse, s, err)
	}
	days := t.Unix() / 86400

	return int32(days), nil
}

// FormatDate is the inverse of ParseDate, useful for tests and
// diagnostics; the column readers and writers do not use it.
func FormatDate(days int32) string {
	t := time.Unix(int64(days)*86400, 0).UTC()

	return t.Format("2006-01-02")
}
