package system

import "puzzleland/internal/gamemap"

// chase moves the hazard at *pos one cell toward the player, lining up
// columns first. A wall in the way cancels the step. A hazard that has been
// overwritten (or pushed off its cell) stops moving for good.
func chase(t *Turn, pos *uint32) {
	b := t.Board
	at := int(*pos)
	if b.At(at) != gamemap.Hazard {
		return
	}
	b.Set(at, gamemap.Empty)

	next := at
	if dx := sign(b.Column(t.Player) - b.Column(at)); dx != 0 {
		next += dx
	} else if t.Player > at {
		next += b.Width
	} else {
		next -= b.Width
	}
	if b.At(next) != gamemap.Wall {
		*pos = uint32(next)
	}
	b.Set(int(*pos), gamemap.Hazard)
}

// mimic replays the player's key on the hazard at *pos, knight jumps
// included. It only moves into empty cells, the player or another hazard.
func mimic(t *Turn, pos *uint32) {
	b := t.Board
	at := int(*pos)
	if b.At(at) != gamemap.Hazard {
		return
	}
	b.Set(at, gamemap.Empty)

	next := at
	if step, ok := Step(b, t.Key); ok {
		next += step
	}
	next += KnightOffset(b, at, t.Key)
	switch b.At(next) {
	case gamemap.Empty, gamemap.Player, gamemap.Hazard:
		*pos = uint32(next)
	}
	b.Set(int(*pos), gamemap.Hazard)
}

// Patrol cells of the hall.
const (
	patrolA = 81
	patrolB = 82
)

// patrol swaps the hazard between the two patrol cells every turn.
func patrol(t *Turn, pos *uint32) {
	t.Board.ClearIf(int(*pos), gamemap.Hazard)
	if *pos == patrolA {
		*pos = patrolB
	} else {
		*pos = patrolA
	}
	t.Board.Set(int(*pos), gamemap.Hazard)
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
