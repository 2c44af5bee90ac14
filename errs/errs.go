// Package errs collects the sentinel errors raised by the column codec
// core. Call sites wrap a sentinel with fmt.Errorf("...: %w", errs.ErrX)
// so callers can still match with errors.Is while getting a useful
// message.
package errs

import "errors"

var (
	// ErrTypeMismatch: a reader's declared precision/scale does not match
	// the destination vector, or an operation targets the wrong vector
	// variant.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnsupportedPrecision: decimal precision exceeds the 128-bit
	// unscaled bound, or a physical type is unsupported at dispatch.
	ErrUnsupportedPrecision = errors.New("unsupported decimal precision")

	// ErrRangeCrossesPixel: a read range spans a pixel boundary.
	ErrRangeCrossesPixel = errors.New("read range crosses pixel boundary")

	// ErrParse: string to date/decimal/timestamp parsing failed.
	ErrParse = errors.New("parse error")

	// ErrOverflow: a decimal value exceeds +/-(10^precision - 1).
	ErrOverflow = errors.New("decimal value overflows precision")

	// ErrDecodeUnderrun: the encoded input was exhausted before the
	// requested number of values could be produced.
	ErrDecodeUnderrun = errors.New("decode underrun")

	// ErrClosed: an operation was attempted against a closed
	// vector/reader/writer.
	ErrClosed = errors.New("operation on closed component")

	// ErrInvalidArgument: a catch-all for malformed call arguments that
	// don't fit one of the more specific kinds above (e.g. a negative
	// size, a nil vector).
	ErrInvalidArgument = errors.New("invalid argument")
)
