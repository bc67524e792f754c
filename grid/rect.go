package grid

import "fmt"

// Rect is an axis-aligned integer rectangle identified by its top-left
// corner and its dimensions. The maximum corner is inclusive: a Rect of
// width 1 covers exactly one column. A Rect with zero width or height is
// the empty rectangle (its MaxX falls below its X).
type Rect struct {
	X, Y          int
	Width, Height int
}

// EmptyRect is the canonical empty rectangle.
var EmptyRect = Rect{}

// MaxX returns the rightmost column covered by the rectangle (inclusive).
func (r Rect) MaxX() int {
	return r.X + r.Width - 1
}

// MaxY returns the bottommost row covered by the rectangle (inclusive).
func (r Rect) MaxY() int {
	return r.Y + r.Height - 1
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.MaxX() < r.X || r.MaxY() < r.Y
}

// Center returns the cell at the middle of the rectangle, rounding toward
// the top-left on even dimensions.
func (r Rect) Center() Position {
	return Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether the two rectangles share at least one cell.
// Spans are inclusive on both ends, so rectangles that merely touch along
// an edge do overlap by one cell only when their spans actually share it.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.MaxX() && other.X <= r.MaxX() &&
		r.Y <= other.MaxY() && other.Y <= r.MaxY()
}

// Contains reports whether the position lies inside the rectangle.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X <= r.MaxX() &&
		p.Y >= r.Y && p.Y <= r.MaxY()
}

// ContainsRect reports whether every corner of other lies inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(Position{X: other.X, Y: other.Y}) &&
		r.Contains(Position{X: other.MaxX(), Y: other.MaxY()})
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.Width, r.Height)
}
