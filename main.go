package main

import (
	"flag"
	"fmt"
	"log"

	"rogue-gen/config"
	"rogue-gen/generation"
	"rogue-gen/grid"
	"rogue-gen/rng"
)

// Demo driver: generates a connected dungeon and dumps it to stdout.
func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 seeds from the current time)")
	connect := flag.Bool("connect", true, "carve tunnels between the placed rooms")
	flag.Parse()

	source := rng.NewTimeSource()
	if *seed != 0 {
		source = rng.NewSource(*seed)
	}

	m := grid.NewTileMap(config.MapWidth, config.MapHeight)
	gen := generation.NewRandomRoomsGenerator(
		config.MaxRooms, config.RoomMinSize, config.RoomMaxSize, config.AttemptsPerRoom, source)
	gen.ConnectRooms = *connect

	rooms, err := gen.Generate(m)
	if err != nil {
		log.Fatal(err)
	}

	// '.' for passable cells, '#' for walls.
	for y := 0; y < m.Height(); y++ {
		row := make([]byte, m.Width())
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				row[x] = '.'
			} else {
				row[x] = '#'
			}
		}
		fmt.Println(string(row))
	}
	fmt.Printf("placed %d of %d rooms\n", len(rooms), config.MaxRooms)
}
