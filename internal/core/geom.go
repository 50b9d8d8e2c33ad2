// Package core provides fundamental types and utilities for Snake World.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Position is a point on the board in source units.
// Grid-aligned positions are multiples of the cell size.
type Position struct {
	X, Y int
}

// Pos is shorthand for building a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Cell converts a position to grid column and row for the given cell size.
func (p Position) Cell(size int) (col, row int) {
	return floorDiv(p.X, size), floorDiv(p.Y, size)
}

// CellsCollide reports whether the cell anchored at a lies within the
// same-size cell anchored at b. The test is inclusive on both ends of
// [b, b+size-1], so for grid-aligned cells it reduces to equality.
func CellsCollide(a, b Position, size int) bool {
	if a.X >= b.X && a.X <= b.X+size-1 {
		if a.Y >= b.Y && a.Y <= b.Y+size-1 {
			return true
		}
	}
	return false
}

// Rect represents an axis-aligned rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CeilDiv divides a by b rounding up. b must be positive.
func CeilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
