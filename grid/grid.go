package grid

// Grid is a width x height surface of passable/impassable cells. The
// generation and pathing packages only depend on this interface; callers
// are responsible for sizing the grid adequately before generation.
type Grid interface {
	Width() int
	Height() int
	// Get reports whether the cell at (x, y) is passable.
	Get(x, y int) bool
	// Set marks the cell at (x, y) passable or impassable.
	Set(x, y int, passable bool)
}

// TileMap stores map cells in a dense row-major layout. It is the
// standard Grid implementation for in-memory generation.
type TileMap struct {
	width  int
	height int
	tiles  [][]bool
}

// NewTileMap creates a TileMap with every cell impassable.
func NewTileMap(width, height int) *TileMap {
	tiles := make([][]bool, height)
	for y := range tiles {
		tiles[y] = make([]bool, width)
	}
	return &TileMap{
		width:  width,
		height: height,
		tiles:  tiles,
	}
}

// Width returns the number of columns in the map.
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the number of rows in the map.
func (m *TileMap) Height() int {
	return m.height
}

// Get reports whether the cell at (x, y) is passable.
func (m *TileMap) Get(x, y int) bool {
	return m.tiles[y][x]
}

// Set marks the cell at (x, y) passable or impassable.
func (m *TileMap) Set(x, y int, passable bool) {
	m.tiles[y][x] = passable
}

// InBounds reports whether (x, y) lies inside the map.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}
