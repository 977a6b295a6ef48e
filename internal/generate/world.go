package generate

import "puzzleland/internal/gamemap"

// MapWidth is the number of rooms in each row of the world map.
const MapWidth = 11

// Notable rooms, as indexes into the world map.
const (
	StartRoom  = 90 // front room
	CageRoom   = 78 // prison until its button is pressed
	WarpRoom   = 24 // its pickup unlocks the warp
	KnightRoom = 98 // its pickup unlocks the knight's move
)

var layout = [MapWidth * MapWidth]Kind{
	RoomNone, RoomNone, RoomNone, RoomTopLeft, RoomTop, RoomTop, RoomTop, RoomTop, RoomTop, RoomTopRight, RoomNone,
	RoomNone, RoomNone, RoomNone, RoomVert, RoomLeft, RoomOpen, RoomOpen, RoomOpen, RoomOpen, RoomRight, RoomNone,
	RoomNone, RoomWallOfDeath, RoomWarpPoint, RoomVert, RoomLeft, RoomOpen, RoomOpen, RoomOpen, RoomOpen, RoomRight, RoomNone,
	RoomNone, RoomBottomLeft, RoomCopyCats, RoomTele, RoomLeft, RoomOpen, RoomOpen, RoomCheese, RoomOpen, RoomRight, RoomNone,
	RoomDown, RoomPowerGrip, RoomLogo, RoomPostWarp, RoomLeft, RoomOpen, RoomOpen, RoomOpen, RoomOpen, RoomRight, RoomNone,
	RoomBottomLeft, RoomToSticky, RoomMud, RoomCheckers, RoomLeft, RoomOpen, RoomOpen, RoomOpen, RoomOpen, RoomRight, RoomNone,
	RoomNone, RoomBlocks, RoomHall, RoomWarpy, RoomLeft, RoomOpen, RoomOpen, RoomOpen, RoomOpen, RoomRight, RoomNone,
	RoomNone, RoomPrison, RoomBig, RoomLabyrinth, RoomOpen, RoomOpen, RoomOpen, RoomOpen, RoomOpen, RoomRight, RoomNone,
	RoomNone, RoomBlockPuzzle, RoomFront, RoomUnderLab, RoomLeft, RoomOpen, RoomOpen, RoomOpen, RoomOpen, RoomRight, RoomKnightsMove,
	RoomNone, RoomNone, RoomFinal, RoomShield, RoomLeft, RoomOpen, RoomOpen, RoomOpen, RoomToKnight, RoomRight, RoomUp,
	RoomNone, RoomNone, RoomNone, RoomCorner, RoomBottom, RoomBottom, RoomBottom, RoomBottom, RoomBottom, RoomBottomRight, RoomNone,
}

// World is the map of room kinds for one run.
type World struct {
	rooms [MapWidth * MapWidth]Kind
}

// NewWorld returns the world map as it looks at the start of a run.
func NewWorld() *World {
	return &World{rooms: layout}
}

// At returns the room kind at index i, or RoomNone off the map.
func (w *World) At(i int) Kind {
	if i < 0 || i >= len(w.rooms) {
		return RoomNone
	}
	return w.rooms[i]
}

// RevealSecret replaces the cage with the secret room.
func (w *World) RevealSecret() {
	w.rooms[CageRoom] = RoomSecret
}

// Neighbor returns the room reached from room through door. Far doors skip
// the adjacent room.
func Neighbor(room int, door gamemap.Tile) int {
	step := 1
	if door.IsFar() {
		step = 2
	}
	switch door {
	case gamemap.DoorNorth, gamemap.FarNorth:
		return room - step*MapWidth
	case gamemap.DoorWest, gamemap.FarWest:
		return room - step
	case gamemap.DoorSouth, gamemap.FarSouth:
		return room + step*MapWidth
	case gamemap.DoorEast, gamemap.FarEast:
		return room + step
	}
	return room
}
