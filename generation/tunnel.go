package generation

import (
	"rogue-gen/grid"
	"rogue-gen/rng"
)

// TunnelCreator carves a contiguous passable path between two positions
// on a grid. Implementations may choose any path shape; the connection
// phase consumes this capability polymorphically so carving strategies
// can be swapped without touching the generator.
type TunnelCreator interface {
	Carve(m grid.Grid, start, end grid.Position)
}

// HorizontalVerticalTunnelCreator carves L-shaped tunnels. Each call
// draws one random bit to pick, with equal probability, between carving
// horizontally at the start row then vertically at the end column, or
// the mirrored vertical-then-horizontal order.
type HorizontalVerticalTunnelCreator struct {
	rng rng.Rng
}

// NewHorizontalVerticalTunnelCreator creates a tunnel creator drawing
// its orientation bits from r. A nil r uses a time-seeded source.
func NewHorizontalVerticalTunnelCreator(r rng.Rng) *HorizontalVerticalTunnelCreator {
	if r == nil {
		r = rng.NewTimeSource()
	}
	return &HorizontalVerticalTunnelCreator{rng: r}
}

// Carve writes a passable L-shaped path from start to end. Carving is
// idempotent; cells already passable stay passable. Out-of-bounds
// coordinates are the caller's responsibility.
func (t *HorizontalVerticalTunnelCreator) Carve(m grid.Grid, start, end grid.Position) {
	// Randomly choose between horizontal-first or vertical-first.
	if t.rng.Next(2) == 0 {
		carveHorizontal(m, start.X, end.X, start.Y)
		carveVertical(m, start.Y, end.Y, end.X)
	} else {
		carveVertical(m, start.Y, end.Y, start.X)
		carveHorizontal(m, start.X, end.X, end.Y)
	}
}

// CarveXY is Carve with raw coordinate pairs.
func (t *HorizontalVerticalTunnelCreator) CarveXY(m grid.Grid, x1, y1, x2, y2 int) {
	t.Carve(m, grid.Position{X: x1, Y: y1}, grid.Position{X: x2, Y: y2})
}

// carveHorizontal marks passable every cell from x1 to x2 at row y,
// inclusive on both ends and order-independent.
func carveHorizontal(m grid.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.Set(x, y, true)
	}
}

// carveVertical marks passable every cell from y1 to y2 at column x,
// inclusive on both ends and order-independent.
func carveVertical(m grid.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.Set(x, y, true)
	}
}
