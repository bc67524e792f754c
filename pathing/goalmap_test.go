package pathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogue-gen/generation"
	"rogue-gen/grid"
	"rogue-gen/rng"
)

func openMap(width, height int) *grid.TileMap {
	m := grid.NewTileMap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

func TestGoalMapDistances(t *testing.T) {
	m := openMap(5, 5)
	g := NewGoalMap(m, grid.Cardinals)
	g.AddGoal(0, 0)
	g.Calculate()

	assert.Equal(t, 0, g.Distance(0, 0))
	assert.Equal(t, 1, g.Distance(1, 0))
	assert.Equal(t, 4, g.Distance(2, 2))
	assert.Equal(t, 8, g.Distance(4, 4))
}

func TestGoalMapMultipleGoals(t *testing.T) {
	m := openMap(5, 5)
	g := NewGoalMap(m, grid.Cardinals)
	g.AddGoal(0, 0)
	g.AddGoal(4, 4)
	g.Calculate()

	// Every cell sees its nearest goal.
	assert.Equal(t, 0, g.Distance(4, 4))
	assert.Equal(t, 1, g.Distance(3, 4))
	assert.Equal(t, 4, g.Distance(2, 2))
}

func TestGoalMapImpassableAndUnreachable(t *testing.T) {
	m := openMap(5, 1)
	m.Set(2, 0, false) // wall splits the corridor

	g := NewGoalMap(m, grid.Cardinals)
	g.AddGoal(0, 0)
	g.Calculate()

	assert.Equal(t, 1, g.Distance(1, 0))
	assert.Equal(t, Unreachable, g.Distance(2, 0), "wall cell")
	assert.Equal(t, Unreachable, g.Distance(3, 0), "cut off behind the wall")
	assert.Equal(t, Unreachable, g.Distance(4, 0))
}

func TestGoalMapRecalculateIsIdempotent(t *testing.T) {
	m := openMap(6, 6)
	g := NewGoalMap(m, grid.Cardinals)
	g.AddGoal(2, 3)
	g.Calculate()

	first := make([]int, 0, 36)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			first = append(first, g.Distance(x, y))
		}
	}

	g.Calculate()
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, first[y*6+x], g.Distance(x, y))
		}
	}
}

func TestGoalMapClearGoals(t *testing.T) {
	m := openMap(4, 4)
	g := NewGoalMap(m, grid.Cardinals)
	g.AddGoal(0, 0)
	g.Calculate()
	require.Equal(t, 0, g.Distance(0, 0))

	g.ClearGoals()
	g.Calculate()
	assert.Equal(t, Unreachable, g.Distance(0, 0))
}

func TestGoalMapNextStepWalksDownhill(t *testing.T) {
	m := openMap(5, 5)
	g := NewGoalMap(m, grid.Cardinals)
	g.AddGoal(0, 0)
	g.Calculate()

	// Following NextStep from the far corner reaches the goal in
	// exactly its distance.
	pos := grid.Pos(4, 4)
	steps := 0
	for g.Distance(pos.X, pos.Y) > 0 {
		next, ok := g.NextStep(pos.X, pos.Y)
		require.True(t, ok)
		require.Equal(t, g.Distance(pos.X, pos.Y)-1, g.Distance(next.X, next.Y))
		pos = next
		steps++
	}
	assert.Equal(t, 8, steps)
	assert.Equal(t, grid.Pos(0, 0), pos)

	_, ok := g.NextStep(0, 0)
	assert.False(t, ok, "already at a goal")
}

// BenchmarkGoalMapRecalculate times repeated field recomputation over a
// generated dungeon, the typical per-turn cost in a game loop.
func BenchmarkGoalMapRecalculate(b *testing.B) {
	m := grid.NewTileMap(64, 48)
	gen := generation.NewRandomRoomsGenerator(12, 3, 9, 10, rng.NewSource(1))
	gen.ConnectRooms = true
	rooms, err := gen.Generate(m)
	if err != nil {
		b.Fatal(err)
	}

	g := NewGoalMap(m, grid.Cardinals)
	for _, room := range rooms {
		c := room.Center()
		g.AddGoal(c.X, c.Y)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Calculate()
	}
}
