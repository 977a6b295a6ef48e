package generate

import (
	"fmt"

	"puzzleland/internal/gamemap"
	"puzzleland/internal/system"
)

// Room is the state a generator paints into. The board and action table
// are shared by every room and replaced wholesale on entry.
type Room struct {
	Board   *gamemap.Board
	Actions *system.Registry
	// Pads holds the teleport pair of the last room that had one.
	Pads [2]int
	// CheeseFound stops the cheese room from repainting its pickup.
	CheeseFound bool
}

// NewRoom returns a Room with a full-capacity board and no actions.
func NewRoom() *Room {
	return &Room{
		Board:   gamemap.New(80, 40),
		Actions: &system.Registry{},
	}
}

// Generator paints one room kind and returns the player's landing cell
// for the door they came through.
type Generator func(r *Room, entry gamemap.Tile) int

// Enter clears the action table and runs the generator for kind.
// Panics for RoomNone or an unknown kind.
func (r *Room) Enter(kind Kind, entry gamemap.Tile) int {
	gen, ok := generators[kind]
	if !ok {
		panic(fmt.Sprintf("generate: no generator for %v", kind))
	}
	r.Actions.Reset()
	return gen(r, entry)
}

// size resizes the board for a room of w by h cells.
func (r *Room) size(w, h int) *gamemap.Board {
	r.Board.Resize(w, h)
	return r.Board
}

// pads records the teleport pair and paints both pads.
func (r *Room) pads(a, b int) {
	r.Pads = [2]int{a, b}
	r.Board.Set(a, gamemap.Pad)
	r.Board.Set(b, gamemap.Pad)
}

// Partner returns the pad paired with pad.
func (r *Room) Partner(pad int) int {
	if r.Pads[0] == pad {
		return r.Pads[1]
	}
	return r.Pads[0]
}

// patched runs base and then overwrites cells with t.
func patched(base Generator, t gamemap.Tile, cells ...int) Generator {
	return func(r *Room, entry gamemap.Tile) int {
		pos := base(r, entry)
		for _, c := range cells {
			r.Board.Set(c, t)
		}
		return pos
	}
}
