package gamemap

import "github.com/zyedidia/generic/mapset"

// Tile is the character stored in one board cell.
type Tile byte

const (
	Empty    Tile = ' '
	Wall     Tile = '-'
	Block    Tile = 'B'
	Hazard   Tile = '!'
	Button   Tile = '?'
	Pad      Tile = '*'
	Pickup   Tile = '+'
	Cheese   Tile = 'c'
	Goal     Tile = 'o'
	Player   Tile = 'X'
	WarpMark Tile = '@'
	Mud      Tile = 'm'
)

// Doors. Lowercase doors lead to the adjacent room, uppercase ones skip a room.
const (
	DoorNorth Tile = 'w'
	DoorWest  Tile = 'a'
	DoorSouth Tile = 's'
	DoorEast  Tile = 'd'
	FarNorth  Tile = 'W'
	FarWest   Tile = 'A'
	FarSouth  Tile = 'S'
	FarEast   Tile = 'D'
)

// Gripping is drawn in place of Player while the sticky grip is engaged.
// It is never stored on a board.
const Gripping Tile = 'Y'

// NoEntry is the entry edge used for the first room of a run.
const NoEntry Tile = ' '

var (
	doors   = setOf(DoorNorth, DoorWest, DoorSouth, DoorEast, FarNorth, FarWest, FarSouth, FarEast)
	symbols = setOf(Empty, Wall, Block, Hazard, Button, Pad, Pickup, Cheese, Goal, Player, WarpMark, Mud,
		DoorNorth, DoorWest, DoorSouth, DoorEast, FarNorth, FarWest, FarSouth, FarEast)
)

func setOf(tiles ...Tile) mapset.Set[Tile] {
	s := mapset.New[Tile]()
	for _, t := range tiles {
		s.Put(t)
	}
	return s
}

// IsDoor reports whether stepping onto t leaves the room.
func (t Tile) IsDoor() bool { return doors.Has(t) }

// IsFar reports whether t is a door that skips over the neighbouring room.
func (t Tile) IsFar() bool { return t.IsDoor() && t >= 'A' && t <= 'Z' }

// Known reports whether t belongs to the closed set of board symbols.
func (t Tile) Known() bool { return symbols.Has(t) }

func (t Tile) String() string { return string(rune(t)) }
