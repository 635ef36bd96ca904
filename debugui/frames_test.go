package debugui_test

import (
	"testing"

	"github.com/plus3/asteroids/debugui"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(3)
	assert.Equal(t, 0, h.Len())
	assert.Zero(t, h.Average())
	assert.Empty(t, h.Ordered())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float32{1, 2}, h.Ordered())
	assert.InDelta(t, 1.5, h.Average(), 1e-6)

	h.Push(3)
	h.Push(4)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float32{2, 3, 4}, h.Ordered())
	assert.InDelta(t, 3, h.Average(), 1e-6)
}
