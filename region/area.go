// Package region provides the Area abstraction: a connected or logically
// grouped set of grid positions with an incrementally maintained bounding
// rectangle and set algebra over position membership.
package region

import (
	"math"

	"rogue-gen/grid"
)

// Area is an insertion-ordered, duplicate-free collection of grid
// positions. Membership tests are O(1) via a companion set, iteration is
// deterministic via the ordered sequence, and the bounding rectangle is
// widened incrementally on every insert.
type Area struct {
	positions []grid.Position
	members   map[grid.Position]struct{}

	// Bounds scalars. left/top start at the +infinity sentinel and
	// right/bottom at 0 so that an empty area derives the empty rectangle
	// (right < left).
	left, top     int
	right, bottom int
}

// NewArea creates an empty Area.
func NewArea() *Area {
	return &Area{
		members: make(map[grid.Position]struct{}),
		left:    math.MaxInt,
		top:     math.MaxInt,
	}
}

// FromRect creates an Area covering every cell of the rectangle, row by
// row.
func FromRect(r grid.Rect) *Area {
	a := NewArea()
	for y := r.Y; y <= r.MaxY(); y++ {
		for x := r.X; x <= r.MaxX(); x++ {
			a.Add(grid.Position{X: x, Y: y})
		}
	}
	return a
}

// Add inserts a position if it is not already present. Adding a known
// position is a no-op, so Add is idempotent.
func (a *Area) Add(p grid.Position) {
	if _, ok := a.members[p]; ok {
		return
	}
	a.members[p] = struct{}{}
	a.positions = append(a.positions, p)

	// Widen the bounds to keep the rectangle tight around every position.
	if p.X < a.left {
		a.left = p.X
	}
	if p.X > a.right {
		a.right = p.X
	}
	if p.Y < a.top {
		a.top = p.Y
	}
	if p.Y > a.bottom {
		a.bottom = p.Y
	}
}

// AddArea merges every position of other into a. other is not modified.
func (a *Area) AddArea(other *Area) {
	if other == nil {
		return
	}
	for _, p := range other.positions {
		a.Add(p)
	}
}

// Contains reports whether p is a member of the area.
func (a *Area) Contains(p grid.Position) bool {
	_, ok := a.members[p]
	return ok
}

// ContainsArea reports whether every position of other is a member of a.
// An empty other is contained vacuously. The bounding rectangles act as a
// cheap pre-filter before any position-level scan.
func (a *Area) ContainsArea(other *Area) bool {
	if other == nil || other.Count() == 0 {
		return true
	}
	if !a.Bounds().ContainsRect(other.Bounds()) {
		return false
	}
	for _, p := range other.positions {
		if !a.Contains(p) {
			return false
		}
	}
	return true
}

// Intersects reports whether the two areas share at least one position.
// Bounding rectangles are checked first; the smaller position sequence is
// then scanned against the larger area's membership set, bounding the
// cost by the smaller count.
func (a *Area) Intersects(other *Area) bool {
	if other == nil {
		return false
	}
	if !a.Bounds().Intersects(other.Bounds()) {
		return false
	}
	small, large := a, other
	if large.Count() < small.Count() {
		small, large = large, small
	}
	for _, p := range small.positions {
		if large.Contains(p) {
			return true
		}
	}
	return false
}

// Count returns the number of positions in the area.
func (a *Area) Count() int {
	return len(a.positions)
}

// Positions returns the area's positions in insertion order. The slice is
// the area's backing storage and must not be modified.
func (a *Area) Positions() []grid.Position {
	return a.positions
}

// Bounds returns the tightest rectangle enclosing every position, or the
// empty rectangle for an empty area.
func (a *Area) Bounds() grid.Rect {
	if a.right < a.left {
		return grid.EmptyRect
	}
	return grid.Rect{
		X:      a.left,
		Y:      a.top,
		Width:  a.right - a.left + 1,
		Height: a.bottom - a.top + 1,
	}
}

// Equal reports whether the two areas contain exactly the same set of
// positions, regardless of insertion order. Identity is a fast-path only:
// distinct instances with equal contents compare equal. Equal is total
// over nil receivers and arguments; nil equals only nil, so an absent
// area is never equal to a present one (even an empty one).
func (a *Area) Equal(other *Area) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	if a.Count() != other.Count() {
		return false
	}
	// Counts match, so one-directional containment implies set equality.
	for _, p := range a.positions {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Intersection returns a new Area holding the positions common to both.
// If the bounding rectangles do not overlap the result is empty without
// any position-level scan. Positions keep a's insertion order when a is
// the smaller side, otherwise b's.
func Intersection(a, b *Area) *Area {
	result := NewArea()
	if a == nil || b == nil {
		return result
	}
	if !a.Bounds().Intersects(b.Bounds()) {
		return result
	}
	small, large := a, b
	if large.Count() < small.Count() {
		small, large = large, small
	}
	for _, p := range small.positions {
		if large.Contains(p) {
			result.Add(p)
		}
	}
	return result
}

// Union returns a new Area holding every position of a followed by every
// position of b not already present.
func Union(a, b *Area) *Area {
	result := NewArea()
	result.AddArea(a)
	result.AddArea(b)
	return result
}
