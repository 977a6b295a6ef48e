package system

import "puzzleland/internal/gamemap"

// Tuning for the hazard walls. All of them live in 80-column rooms.
const (
	roomStride = 80

	// rising wall
	wallSpan   = 78
	wallFloor  = 80   // the wall stops painting once it reaches the top row
	fadeDepth  = 240  // the trailing row this far below the front is wiped
	fadeTop    = -160 // fading continues until the front passes this offset
	fadeBottom = 2870 // and only starts once the front has climbed above this
	wallGone   = -200 // below this the wall has left the room and disarms

	// sweepers
	sweepOrigin  = 1681
	sweepReach   = 750 // vertical extent of a sideways sweeper
	sweepColumns = 78
	sweepRows    = 10
)

// risingWall advances a full-width row of hazards one row up per turn,
// wiping the row it left three rows behind. A zero datum is disarmed.
func risingWall(t *Turn, pos *uint32) {
	if *pos == 0 {
		return
	}
	front := int32(*pos) - roomStride
	*pos = uint32(front)

	if front > wallFloor {
		t.Board.Horizontal(int(front), wallSpan, gamemap.Hazard)
	}
	if front > fadeTop && front < fadeBottom {
		t.Board.Horizontal(int(front)+fadeDepth, wallSpan, gamemap.Empty)
	} else if front < wallGone {
		*pos = 0
	}
}

// sweepHorizontal slides a column of hazards one cell sideways per turn,
// wrapping around the room. The low 16 bits hold the column; Activated
// means moving right.
func sweepHorizontal(t *Turn, pos *uint32) {
	b := t.Board
	col := *pos & 0xFFFF
	for i := 0; i < sweepReach; i += roomStride {
		b.Set(sweepOrigin+int(col)+i, gamemap.Empty)
	}
	*pos -= col
	if activated(*pos) {
		col++
	} else {
		col += sweepColumns - 1
	}
	col %= sweepColumns
	*pos += col
	for i := 0; i < sweepReach; i += roomStride {
		b.Set(sweepOrigin+int(col)+i, gamemap.Hazard)
	}
}

// sweepVertical slides a row of hazards one row per turn, wrapping around
// the swept band. Activated means moving down.
func sweepVertical(t *Turn, pos *uint32) {
	b := t.Board
	row := *pos & 0xFFFF
	b.Horizontal(sweepOrigin+roomStride*int(row), sweepColumns, gamemap.Empty)
	*pos -= row
	if activated(*pos) {
		row++
	} else {
		row += sweepRows - 1
	}
	row %= sweepRows
	*pos += row
	b.Horizontal(sweepOrigin+roomStride*int(row), sweepColumns, gamemap.Hazard)
}
