package generate

import "puzzleland/internal/gamemap"

// Door cells of the 15x15 crossroads every bordered room starts from.
const (
	openNorth  = 7
	openWest   = 105
	openEast   = 119
	openSouth  = 217
	openCenter = 112
)

// open is an empty 15x15 room with a door in the middle of each side.
func open(r *Room, entry gamemap.Tile) int {
	b := r.size(15, 15)
	b.EdgeWalls()
	b.Set(openNorth, gamemap.DoorNorth)
	b.Set(openWest, gamemap.DoorWest)
	b.Set(openSouth, gamemap.DoorSouth)
	b.Set(openEast, gamemap.DoorEast)
	switch entry {
	case gamemap.DoorNorth, gamemap.FarNorth:
		return 202
	case gamemap.DoorWest, gamemap.FarWest:
		return 118
	case gamemap.DoorSouth, gamemap.FarSouth:
		return 22
	}
	return 106
}

var (
	left   = patched(open, gamemap.Wall, openWest)
	right  = patched(open, gamemap.Wall, openEast)
	top    = patched(open, gamemap.Wall, openNorth)
	bottom = patched(open, gamemap.Wall, openSouth)

	topLeft     = patched(top, gamemap.Wall, openWest)
	topRight    = patched(top, gamemap.Wall, openEast)
	bottomLeft  = patched(bottom, gamemap.Wall, openWest)
	bottomRight = patched(bottom, gamemap.Wall, openEast)

	down = patched(topLeft, gamemap.Wall, openEast)
	up   = patched(bottomRight, gamemap.FarWest, openWest)
	vert = patched(left, gamemap.Wall, openEast)

	toKnight  = patched(open, gamemap.FarEast, 134)
	warpPoint = patched(patched(topRight, gamemap.Wall, openSouth), gamemap.Pickup, openCenter)
)

// cheese keeps its pickup until it has been eaten.
func cheese(r *Room, entry gamemap.Tile) int {
	pos := open(r, entry)
	if !r.CheeseFound {
		r.Board.Set(openCenter, gamemap.Cheese)
	}
	return pos
}

// checkers is a corridor with blocks on every other cell.
func checkers(r *Room, entry gamemap.Tile) int {
	pos := vert(r, entry)
	for y := 16; y < 200; y += 15 {
		x := y
		if x%2 == 0 {
			x++
		}
		for ; x < y+13; x += 2 {
			r.Board.Set(x, gamemap.Block)
		}
	}
	return pos
}

// postWarp is the corridor below the teleporter with a far door south.
func postWarp(r *Room, entry gamemap.Tile) int {
	pos := vert(r, entry)
	r.Board.Set(218, gamemap.FarSouth)
	if entry == gamemap.FarNorth {
		pos++
	}
	return pos
}

// corner has a far door north, next to the regular one.
func corner(r *Room, entry gamemap.Tile) int {
	pos := bottomLeft(r, entry)
	if entry == gamemap.FarSouth {
		pos++
	}
	r.Board.Set(8, gamemap.FarNorth)
	return pos
}
