package system

import "puzzleland/internal/gamemap"

// Cells touched by the button style actions.
const (
	cageButton = 6
	cageDoor   = 14

	revealNorth = 3
	revealSouth = 87

	knightExit = 1970
	knightDoor = 1850

	reinforceStart = 123
	reinforceLen   = 5
)

func activated(datum uint32) bool { return datum&Activated != 0 }

// button blinks the cage button. Once pressed it opens the east door and
// asks the engine to swap the cage for the secret room.
func button(t *Turn, signal *uint32) {
	b := t.Board
	if activated(*signal) {
		b.Set(cageDoor, gamemap.DoorEast)
		t.RevealPending = true
	}
	if b.At(cageButton) == gamemap.Empty {
		b.Set(cageButton, gamemap.Button)
	} else {
		b.Set(cageButton, gamemap.Empty)
	}
}

// reveal opens the north and south doors once its button is pressed.
func reveal(t *Turn, signal *uint32) {
	if activated(*signal) {
		t.Board.Set(revealNorth, gamemap.DoorNorth)
		t.Board.Set(revealSouth, gamemap.DoorSouth)
	}
}

// knightGate walls off the south exit and opens a west door that can only
// be reached with knight jumps.
func knightGate(t *Turn, signal *uint32) {
	if activated(*signal) {
		t.Board.Set(knightExit, gamemap.Wall)
		t.Board.Set(knightDoor, gamemap.DoorWest)
	}
}

// reinforce drops a column of blocks into the wall gap once, then disarms.
func reinforce(t *Turn, signal *uint32) {
	if activated(*signal) {
		t.Board.Vertical(reinforceStart, reinforceLen, gamemap.Block)
		*signal = 0
	}
}
