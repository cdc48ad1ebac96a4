package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointIndexRoundTrip(t *testing.T) {
	const width = 30
	for i := range width * 16 {
		p := PointFromIndex(i, width)
		assert.Equal(t, i, p.Index(width))
	}
}

func TestPointIndexRowMajor(t *testing.T) {
	assert.Equal(t, 0, Point{0, 0}.Index(8))
	assert.Equal(t, 7, Point{7, 0}.Index(8))
	assert.Equal(t, 8, Point{0, 1}.Index(8))
	assert.Equal(t, 63, Point{7, 7}.Index(8))
}

func TestAdjacentOffsets(t *testing.T) {
	seen := map[Point]bool{}
	for _, off := range adjacentOffsets {
		assert.NotEqual(t, Point{0, 0}, off)
		assert.LessOrEqual(t, abs(off.X), 1)
		assert.LessOrEqual(t, abs(off.Y), 1)
		assert.False(t, seen[off], "offset %s repeats", off)
		seen[off] = true
	}
	assert.Len(t, seen, 8)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
