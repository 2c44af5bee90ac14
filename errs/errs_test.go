package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixelsdb/pixels-column-codec/errs"
)

func TestSentinels_WrapAndMatch(t *testing.T) {
	sentinels := []error{
		errs.ErrTypeMismatch,
		errs.ErrUnsupportedPrecision,
		errs.ErrRangeCrossesPixel,
		errs.ErrParse,
		errs.ErrOverflow,
		errs.ErrDecodeUnderrun,
		errs.ErrClosed,
		errs.ErrInvalidArgument,
	}
	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("context: %w", sentinel)
		assert.True(t, errors.Is(wrapped, sentinel))
	}
}

func TestSentinels_Distinct(t *testing.T) {
	assert.False(t, errors.Is(errs.ErrTypeMismatch, errs.ErrOverflow))
}
