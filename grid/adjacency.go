package grid

// AdjacencyRule selects which neighbor offsets count as adjacent when
// walking a grid: the four cardinal directions, or those plus diagonals.
type AdjacencyRule int

const (
	// Cardinals treats only the four principal directions as adjacent.
	Cardinals AdjacencyRule = iota
	// EightWay additionally treats the four diagonals as adjacent.
	EightWay
)

var cardinalOffsets = []Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

var eightWayOffsets = []Position{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

// Offsets returns the neighbor offsets for the rule. The returned slice
// is shared and must not be modified.
func (r AdjacencyRule) Offsets() []Position {
	if r == EightWay {
		return eightWayOffsets
	}
	return cardinalOffsets
}

// Neighbors returns the positions adjacent to p under the rule, without
// any bounds filtering.
func (r AdjacencyRule) Neighbors(p Position) []Position {
	offsets := r.Offsets()
	neighbors := make([]Position, len(offsets))
	for i, o := range offsets {
		neighbors[i] = Position{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return neighbors
}
