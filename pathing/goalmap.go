// Package pathing computes distance fields over boolean grids. A GoalMap
// flood-fills outward from a set of goal cells so that every passable
// cell knows its step distance to the nearest goal, which is the usual
// basis for chase/flee behavior on top of generated maps.
package pathing

import "rogue-gen/grid"

// Unreachable is the distance reported for impassable cells and passable
// cells no goal can reach.
const Unreachable = -1

// GoalMap is a multi-goal distance field. Add goals, call Calculate, then
// query distances or walk downhill with NextStep. Recalculating with
// unchanged goals and grid reproduces the same field.
type GoalMap struct {
	m     grid.Grid
	rule  grid.AdjacencyRule
	goals []grid.Position
	dist  []int
}

// NewGoalMap creates a GoalMap over m using the given adjacency rule.
func NewGoalMap(m grid.Grid, rule grid.AdjacencyRule) *GoalMap {
	return &GoalMap{
		m:    m,
		rule: rule,
		dist: make([]int, m.Width()*m.Height()),
	}
}

// AddGoal marks the cell at (x, y) as a target. Duplicate goals are
// ignored.
func (g *GoalMap) AddGoal(x, y int) {
	for _, goal := range g.goals {
		if goal.X == x && goal.Y == y {
			return
		}
	}
	g.goals = append(g.goals, grid.Position{X: x, Y: y})
}

// ClearGoals removes every goal.
func (g *GoalMap) ClearGoals() {
	g.goals = g.goals[:0]
}

// Calculate recomputes the distance field from the current goal set with
// a multi-source breadth-first fill over passable cells.
func (g *GoalMap) Calculate() {
	width, height := g.m.Width(), g.m.Height()
	for i := range g.dist {
		g.dist[i] = Unreachable
	}

	// Seed the frontier with every passable goal cell at distance 0.
	var queue []grid.Position
	for _, goal := range g.goals {
		if goal.X < 0 || goal.X >= width || goal.Y < 0 || goal.Y >= height {
			continue
		}
		if !g.m.Get(goal.X, goal.Y) {
			continue
		}
		idx := goal.Y*width + goal.X
		if g.dist[idx] == Unreachable {
			g.dist[idx] = 0
			queue = append(queue, goal)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		next := g.dist[curr.Y*width+curr.X] + 1

		for _, n := range g.rule.Neighbors(curr) {
			if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
				continue
			}
			if !g.m.Get(n.X, n.Y) {
				continue
			}
			if g.dist[n.Y*width+n.X] == Unreachable {
				g.dist[n.Y*width+n.X] = next
				queue = append(queue, n)
			}
		}
	}
}

// Distance returns the step distance from (x, y) to the nearest goal, or
// Unreachable.
func (g *GoalMap) Distance(x, y int) int {
	return g.dist[y*g.m.Width()+x]
}

// NextStep returns the neighbor of (x, y) with the smallest distance to a
// goal. The second result is false when (x, y) is unreachable, already a
// goal, or has no reachable neighbor closer than itself.
func (g *GoalMap) NextStep(x, y int) (grid.Position, bool) {
	here := g.Distance(x, y)
	if here <= 0 {
		return grid.Position{}, false
	}

	width, height := g.m.Width(), g.m.Height()
	best := here
	var step grid.Position
	found := false
	for _, n := range g.rule.Neighbors(grid.Position{X: x, Y: y}) {
		if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
			continue
		}
		d := g.Distance(n.X, n.Y)
		if d != Unreachable && d < best {
			best = d
			step = n
			found = true
		}
	}
	return step, found
}
