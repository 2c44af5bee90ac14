package chunkindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixelsdb/pixels-column-codec/chunkindex"
)

func TestIndex_HasNull(t *testing.T) {
	idx := chunkindex.Index{
		Pixels: []chunkindex.PixelStat{
			{HasNull: false},
			{HasNull: true},
		},
	}
	assert.False(t, idx.HasNull(0))
	assert.True(t, idx.HasNull(1))
}

func TestIndex_HasNull_PanicsOutOfRange(t *testing.T) {
	idx := chunkindex.Index{Pixels: []chunkindex.PixelStat{{HasNull: false}}}
	assert.Panics(t, func() { idx.HasNull(5) })
}
