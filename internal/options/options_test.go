package options_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelsdb/pixels-column-codec/internal/options"
)

type target struct {
	n int
}

func TestApply_RunsInOrder(t *testing.T) {
	tgt := &target{}
	opts := []options.Option[*target]{
		options.NoError(func(t *target) { t.n = 1 }),
		options.NoError(func(t *target) { t.n += 10 }),
	}
	require.NoError(t, options.Apply(tgt, opts...))
	assert.Equal(t, 11, tgt.n)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	tgt := &target{}
	boom := errors.New("boom")
	opts := []options.Option[*target]{
		options.New(func(t *target) error { return boom }),
		options.NoError(func(t *target) { t.n = 99 }),
	}
	err := options.Apply(tgt, opts...)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, tgt.n)
}

func TestApply_NoOptions(t *testing.T) {
	tgt := &target{n: 5}
	require.NoError(t, options.Apply(tgt))
	assert.Equal(t, 5, tgt.n)
}
