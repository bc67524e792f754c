// Package generation builds dungeon layouts on boolean grids: randomized
// room placement with bounded collision retries, tunnel carving, and the
// connection phase that joins placed rooms into one walkable whole.
package generation

import (
	"errors"
	"fmt"

	"rogue-gen/grid"
	"rogue-gen/region"
	"rogue-gen/rng"
)

// ErrInvalidArgument is wrapped by every parameter validation failure.
// Match with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// RandomRoomsGenerator places up to MaxRooms non-overlapping rectangular
// rooms on a grid. Room sizes are interior dimensions; each room is
// surrounded by a one-cell wall ring reserved during placement. Rooms
// that cannot be placed within AttemptsPerRoom tries are dropped
// silently, so a saturated grid simply yields fewer rooms.
//
// A generator, its grid and its Rng are not safe for concurrent use;
// serialize externally if shared.
type RandomRoomsGenerator struct {
	// MaxRooms is the number of placement iterations.
	MaxRooms int
	// RoomMinSize and RoomMaxSize bound the interior dimensions; each
	// iteration draws the width and height uniformly from
	// [RoomMinSize, RoomMaxSize), with RoomMinSize == RoomMaxSize
	// pinning the size.
	RoomMinSize int
	RoomMaxSize int
	// AttemptsPerRoom is the total position draws allowed per room
	// before it is discarded.
	AttemptsPerRoom int
	// ConnectRooms carves tunnels between the placed rooms after
	// placement, using Connector (or a random-order center connector
	// when Connector is nil).
	ConnectRooms bool
	// Connector overrides the connection policy used when ConnectRooms
	// is set.
	Connector RegionConnector

	rng rng.Rng
}

// NewRandomRoomsGenerator creates a generator drawing from r. A nil r
// uses a fresh time-seeded source; pass a seeded rng.Source for
// reproducible layouts.
func NewRandomRoomsGenerator(maxRooms, roomMinSize, roomMaxSize, attemptsPerRoom int, r rng.Rng) *RandomRoomsGenerator {
	if r == nil {
		r = rng.NewTimeSource()
	}
	return &RandomRoomsGenerator{
		MaxRooms:        maxRooms,
		RoomMinSize:     roomMinSize,
		RoomMaxSize:     roomMaxSize,
		AttemptsPerRoom: attemptsPerRoom,
		rng:             r,
	}
}

// Generate clears the whole grid to impassable, places rooms, and marks
// each accepted room's interior passable. It returns the accepted room
// rectangles (wall ring included) so callers can detect under-placement;
// fewer rooms than MaxRooms — even zero — is a normal outcome, not an
// error. Parameters are validated before any grid mutation.
func (g *RandomRoomsGenerator) Generate(m grid.Grid) ([]grid.Rect, error) {
	if err := g.validate(m); err != nil {
		return nil, err
	}

	// Reserve a one-cell wall ring around each room's interior.
	minSize := g.RoomMinSize + 2
	maxSize := g.RoomMaxSize + 2

	// Fill the map with walls initially.
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			m.Set(x, y, false)
		}
	}

	var rooms []grid.Rect
	for i := 0; i < g.MaxRooms; i++ {
		// Size is drawn once per iteration; only the position is
		// redrawn on collision.
		roomWidth := g.rng.NextRange(minSize, maxSize)
		roomHeight := g.rng.NextRange(minSize, maxSize)

		for attempt := 0; attempt < g.AttemptsPerRoom; attempt++ {
			room := grid.Rect{
				X:      g.rng.NextRange(0, m.Width()-roomWidth+1),
				Y:      g.rng.NextRange(0, m.Height()-roomHeight+1),
				Width:  roomWidth,
				Height: roomHeight,
			}
			if overlapsAny(room, rooms) {
				continue
			}
			rooms = append(rooms, room)
			break
		}
		// A room still colliding after the attempt budget is dropped.
	}

	// Carve the interiors: everything strictly inside the wall ring.
	// The max edges fall outside the write range, which together with
	// skipping the min edges leaves a full one-cell border.
	for _, room := range rooms {
		for y := room.Y + 1; y < room.MaxY(); y++ {
			for x := room.X + 1; x < room.MaxX(); x++ {
				m.Set(x, y, true)
			}
		}
	}

	if g.ConnectRooms && len(rooms) > 1 {
		connector := g.Connector
		if connector == nil {
			connector = NewRandomOrderConnector(grid.Cardinals, CenterSelector{}, g.rng)
		}
		areas := make([]*region.Area, len(rooms))
		for i, room := range rooms {
			areas[i] = region.FromRect(interior(room))
		}
		connector.Connect(m, areas, NewHorizontalVerticalTunnelCreator(g.rng))
	}

	return rooms, nil
}

// validate checks the generation parameters against the target grid.
// Failures name the offending parameter and wrap ErrInvalidArgument.
func (g *RandomRoomsGenerator) validate(m grid.Grid) error {
	if g.MaxRooms <= 0 {
		return fmt.Errorf("%w: maxRooms must be positive, got %d", ErrInvalidArgument, g.MaxRooms)
	}
	if g.RoomMinSize <= 0 {
		return fmt.Errorf("%w: roomMinSize must be positive, got %d", ErrInvalidArgument, g.RoomMinSize)
	}
	if g.RoomMaxSize < g.RoomMinSize {
		return fmt.Errorf("%w: roomMaxSize %d is smaller than roomMinSize %d", ErrInvalidArgument, g.RoomMaxSize, g.RoomMinSize)
	}
	if g.AttemptsPerRoom <= 0 {
		return fmt.Errorf("%w: attemptsPerRoom must be positive, got %d", ErrInvalidArgument, g.AttemptsPerRoom)
	}
	if g.RoomMaxSize+2 > m.Width() {
		return fmt.Errorf("%w: roomMaxSize %d plus wall padding exceeds grid width %d", ErrInvalidArgument, g.RoomMaxSize, m.Width())
	}
	return nil
}

// interior returns the passable part of a room rectangle, the extent
// minus its one-cell wall ring.
func interior(room grid.Rect) grid.Rect {
	return grid.Rect{
		X:      room.X + 1,
		Y:      room.Y + 1,
		Width:  room.Width - 2,
		Height: room.Height - 2,
	}
}

// overlapsAny reports whether the candidate rectangle intersects any of
// the accepted rooms.
func overlapsAny(candidate grid.Rect, rooms []grid.Rect) bool {
	for _, room := range rooms {
		if candidate.Intersects(room) {
			return true
		}
	}
	return false
}
