package system

import (
	"fmt"

	"puzzleland/internal/gamemap"
)

// MaxActions is the number of action slots a room can register.
const MaxActions = 10

// Activated is the datum bit set when the player steps on a button.
const Activated uint32 = 1 << 31

// Kind identifies the behaviour an action entry runs every turn.
type Kind uint8

const (
	KindChase           Kind = iota // hazard steps toward the player
	KindMimic                       // hazard repeats the player's key
	KindPatrol                      // hazard alternates between two cells
	KindButton                      // blinking button that opens the cage
	KindReveal                      // button that opens two doors
	KindRisingWall                  // hazard wall climbing from the floor
	KindSweepHorizontal             // hazard column sliding sideways
	KindSweepVertical               // hazard row sliding up and down
	KindKnightGate                  // swaps the knight room exits
	KindReinforce                   // drops a block column into a wall gap
)

var kindNames = [...]string{
	KindChase:           "chase",
	KindMimic:           "mimic",
	KindPatrol:          "patrol",
	KindButton:          "button",
	KindReveal:          "reveal",
	KindRisingWall:      "rising-wall",
	KindSweepHorizontal: "sweep-horizontal",
	KindSweepVertical:   "sweep-vertical",
	KindKnightGate:      "knight-gate",
	KindReinforce:       "reinforce",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Entry is one registered action and the state it carries between turns.
type Entry struct {
	Kind  Kind
	Datum uint32
}

// Turn is what an action can see and change while it runs.
type Turn struct {
	Board  *gamemap.Board
	Player int  // player position before this turn's move
	Key    byte // key read this turn
	// RevealPending is raised by a pressed button; the engine consumes it.
	RevealPending bool
}

type handler func(t *Turn, datum *uint32)

var handlers = map[Kind]handler{
	KindChase:           chase,
	KindMimic:           mimic,
	KindPatrol:          patrol,
	KindButton:          button,
	KindReveal:          reveal,
	KindRisingWall:      risingWall,
	KindSweepHorizontal: sweepHorizontal,
	KindSweepVertical:   sweepVertical,
	KindKnightGate:      knightGate,
	KindReinforce:       reinforce,
}

// Registry is the ordered action table of the current room.
type Registry struct {
	entries [MaxActions]Entry
	n       int
}

// Reset drops every entry. Rooms call it before registering their own.
func (r *Registry) Reset() { r.n = 0 }

// Add appends an action. Panics when the room already has MaxActions.
func (r *Registry) Add(kind Kind, datum uint32) {
	if r.n == MaxActions {
		panic(fmt.Sprintf("system: room registers more than %d actions", MaxActions))
	}
	r.entries[r.n] = Entry{Kind: kind, Datum: datum}
	r.n++
}

// Len returns the number of registered actions.
func (r *Registry) Len() int { return r.n }

// Entries returns a copy of the registered actions in order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, r.n)
	copy(out, r.entries[:r.n])
	return out
}

// Activate sets the Activated bit on the first entry, which by convention
// is the room's button. No-op when the room has no actions.
func (r *Registry) Activate() {
	if r.n > 0 {
		r.entries[0].Datum |= Activated
	}
}

// Run executes every entry in registration order. Later entries see the
// board writes of earlier ones.
func (r *Registry) Run(t *Turn) {
	for i := 0; i < r.n; i++ {
		handlers[r.entries[i].Kind](t, &r.entries[i].Datum)
	}
}
