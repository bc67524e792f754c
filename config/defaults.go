package config

// Default generation parameters used by the demo driver.
const (
	// Map dimensions in tiles
	MapWidth  = 64
	MapHeight = 48

	// Room placement
	MaxRooms        = 12
	RoomMinSize     = 3 // interior cells, walls excluded
	RoomMaxSize     = 9
	AttemptsPerRoom = 10
)
