package mines

import "fmt"

// Point is a 2D board coordinate. The zero point is the top-left corner.
type Point struct {
	X, Y int
}

// adjacentOffsets lists the eight neighbors of a cell, clockwise from the
// top-left one.
var adjacentOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1},
	{-1, 1}, {-1, 0},
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Index converts p to a row-major cell index on a board of the given width.
func (p Point) Index(width int) int {
	return p.Y*width + p.X
}

// PointFromIndex is the inverse of [Point.Index].
func PointFromIndex(i, width int) Point {
	return Point{X: i % width, Y: i / width}
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}
