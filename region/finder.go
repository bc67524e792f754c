package region

import "rogue-gen/grid"

// FindAreas splits the passable cells of a map into connected Areas using
// a breadth-first flood fill. Two passable cells belong to the same Area
// when one can be reached from the other through neighbors of the given
// adjacency rule. Areas are returned in scan order (top-left first) and
// each area's positions are in BFS visit order.
func FindAreas(m grid.Grid, rule grid.AdjacencyRule) []*Area {
	width, height := m.Width(), m.Height()
	visited := make([]bool, width*height)

	var areas []*Area
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y*width+x] || !m.Get(x, y) {
				continue
			}

			// Flood fill from this seed cell.
			area := NewArea()
			queue := []grid.Position{{X: x, Y: y}}
			visited[y*width+x] = true

			for len(queue) > 0 {
				curr := queue[0]
				queue = queue[1:]
				area.Add(curr)

				for _, n := range rule.Neighbors(curr) {
					if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
						continue
					}
					if !visited[n.Y*width+n.X] && m.Get(n.X, n.Y) {
						visited[n.Y*width+n.X] = true
						queue = append(queue, n)
					}
				}
			}

			areas = append(areas, area)
		}
	}
	return areas
}
