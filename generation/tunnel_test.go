package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogue-gen/grid"
	"rogue-gen/rng"
)

// scriptedRng replays a fixed sequence of draws so tests can force a
// specific tunnel orientation.
type scriptedRng struct {
	draws []int
	next  int
}

func (s *scriptedRng) Next(bound int) int {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v % bound
}

func (s *scriptedRng) NextRange(min, bound int) int {
	if bound <= min {
		return min
	}
	return min + s.Next(bound-min)
}

func passableCells(m *grid.TileMap) map[grid.Position]bool {
	cells := make(map[grid.Position]bool)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				cells[grid.Pos(x, y)] = true
			}
		}
	}
	return cells
}

// lShape enumerates the cells of one of the two L-shapes between (0,0)
// and (5,5).
func lShape(horizontalFirst bool) map[grid.Position]bool {
	cells := make(map[grid.Position]bool)
	for i := 0; i <= 5; i++ {
		if horizontalFirst {
			cells[grid.Pos(i, 0)] = true // row segment at start's y
			cells[grid.Pos(5, i)] = true // column segment at end's x
		} else {
			cells[grid.Pos(0, i)] = true // column segment at start's x
			cells[grid.Pos(i, 5)] = true // row segment at end's y
		}
	}
	return cells
}

func TestCarveHorizontalFirst(t *testing.T) {
	m := grid.NewTileMap(10, 10)
	tc := NewHorizontalVerticalTunnelCreator(&scriptedRng{draws: []int{0}})

	tc.Carve(m, grid.Pos(0, 0), grid.Pos(5, 5))

	assert.Equal(t, lShape(true), passableCells(m))
}

func TestCarveVerticalFirst(t *testing.T) {
	m := grid.NewTileMap(10, 10)
	tc := NewHorizontalVerticalTunnelCreator(&scriptedRng{draws: []int{1}})

	tc.Carve(m, grid.Pos(0, 0), grid.Pos(5, 5))

	assert.Equal(t, lShape(false), passableCells(m))
}

func TestCarvePicksExactlyOneLShape(t *testing.T) {
	// With a real source the single orientation draw selects one of the
	// two shapes, never a mixture.
	m := grid.NewTileMap(10, 10)
	tc := NewHorizontalVerticalTunnelCreator(rng.NewSource(99))

	tc.Carve(m, grid.Pos(0, 0), grid.Pos(5, 5))

	got := passableCells(m)
	if !assert.ObjectsAreEqual(lShape(true), got) {
		assert.Equal(t, lShape(false), got)
	}
}

func TestCarveIsIdempotent(t *testing.T) {
	m := grid.NewTileMap(10, 10)
	tc := NewHorizontalVerticalTunnelCreator(&scriptedRng{draws: []int{0}})

	tc.Carve(m, grid.Pos(0, 0), grid.Pos(5, 5))
	first := passableCells(m)
	tc.Carve(m, grid.Pos(0, 0), grid.Pos(5, 5))

	assert.Equal(t, first, passableCells(m))
}

func TestCarveHandlesReversedEndpoints(t *testing.T) {
	// Runs are min/max normalized, so start > end carves the same cells.
	forward := grid.NewTileMap(10, 10)
	backward := grid.NewTileMap(10, 10)

	NewHorizontalVerticalTunnelCreator(&scriptedRng{draws: []int{0}}).
		Carve(forward, grid.Pos(2, 1), grid.Pos(7, 6))
	NewHorizontalVerticalTunnelCreator(&scriptedRng{draws: []int{1}}).
		Carve(backward, grid.Pos(7, 6), grid.Pos(2, 1))

	assert.Equal(t, passableCells(forward), passableCells(backward))
}

func TestCarveXY(t *testing.T) {
	byPos := grid.NewTileMap(10, 10)
	byXY := grid.NewTileMap(10, 10)

	NewHorizontalVerticalTunnelCreator(&scriptedRng{draws: []int{0}}).
		Carve(byPos, grid.Pos(1, 2), grid.Pos(6, 7))
	NewHorizontalVerticalTunnelCreator(&scriptedRng{draws: []int{0}}).
		CarveXY(byXY, 1, 2, 6, 7)

	require.Equal(t, passableCells(byPos), passableCells(byXY))
}
