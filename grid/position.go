package grid

import "fmt"

// Position is a single cell coordinate on a map. Two positions with the
// same X and Y are interchangeable, so Position works directly as a map key.
type Position struct {
	X, Y int
}

// Pos is a shorthand constructor for a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
