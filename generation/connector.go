package generation

import (
	"rogue-gen/grid"
	"rogue-gen/region"
	"rogue-gen/rng"
)

// RegionConnector joins a collection of areas by carving tunnels between
// them. Implementations decide the pairing and connection order; the
// generator only supplies the areas and a TunnelCreator.
type RegionConnector interface {
	Connect(m grid.Grid, areas []*region.Area, tunneler TunnelCreator)
}

// PointSelector picks the pair of anchor cells a tunnel is carved
// between when joining two areas.
type PointSelector interface {
	SelectPoints(a, b *region.Area) (grid.Position, grid.Position)
}

// CenterSelector anchors tunnels at the centers of the areas' bounding
// rectangles.
type CenterSelector struct{}

// SelectPoints returns the bounds centers of both areas.
func (CenterSelector) SelectPoints(a, b *region.Area) (grid.Position, grid.Position) {
	return a.Bounds().Center(), b.Bounds().Center()
}

// RandomSelector anchors tunnels at a random member cell of each area.
type RandomSelector struct {
	Rng rng.Rng
}

// SelectPoints returns one random position from each area.
func (s RandomSelector) SelectPoints(a, b *region.Area) (grid.Position, grid.Position) {
	return a.Positions()[s.Rng.Next(a.Count())], b.Positions()[s.Rng.Next(b.Count())]
}

// RandomOrderConnector connects areas pairwise in a shuffled order, so
// every area ends up reachable from every other through the carved
// tunnels. Pairs that already touch under the adjacency rule are skipped.
type RandomOrderConnector struct {
	rule     grid.AdjacencyRule
	selector PointSelector
	rng      rng.Rng
}

// NewRandomOrderConnector creates a connector. A nil selector defaults to
// CenterSelector; a nil r uses a time-seeded source.
func NewRandomOrderConnector(rule grid.AdjacencyRule, selector PointSelector, r rng.Rng) *RandomOrderConnector {
	if r == nil {
		r = rng.NewTimeSource()
	}
	if selector == nil {
		selector = CenterSelector{}
	}
	return &RandomOrderConnector{
		rule:     rule,
		selector: selector,
		rng:      r,
	}
}

// Connect shuffles the areas and carves a tunnel between each consecutive
// pair. Chaining consecutive pairs is enough to make the whole collection
// connected.
func (c *RandomOrderConnector) Connect(m grid.Grid, areas []*region.Area, tunneler TunnelCreator) {
	if len(areas) < 2 {
		return
	}

	// Fisher-Yates shuffle over area indices.
	order := make([]int, len(areas))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := c.rng.Next(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	for i := 0; i < len(order)-1; i++ {
		a, b := areas[order[i]], areas[order[i+1]]
		if c.areasTouch(a, b) {
			continue
		}
		start, end := c.selector.SelectPoints(a, b)
		tunneler.Carve(m, start, end)
	}
}

// areasTouch reports whether some cell of one area neighbors a cell of
// the other under the connector's adjacency rule. The smaller area is
// scanned against the larger one's membership set.
func (c *RandomOrderConnector) areasTouch(a, b *region.Area) bool {
	small, large := a, b
	if large.Count() < small.Count() {
		small, large = large, small
	}
	for _, p := range small.Positions() {
		for _, n := range c.rule.Neighbors(p) {
			if large.Contains(n) {
				return true
			}
		}
	}
	return false
}
