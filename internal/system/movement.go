package system

import "puzzleland/internal/gamemap"

// MoveResult describes the outcome of a Push call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // destination was not a block
	MovePushed                    // block moved one cell further
	MoveBlocked                   // block could not move, player stays
)

// Step returns the board offset for a movement key and false for any other key.
func Step(b *gamemap.Board, key byte) (int, bool) {
	switch key {
	case 'w':
		return -b.Width, true
	case 'a':
		return -1, true
	case 's':
		return b.Width, true
	case 'd':
		return 1, true
	}
	return 0, false
}

// KnightOffset returns the jump for a knight key made from pos, or 0 when
// key is not a knight key or the jump would leave through a room edge.
func KnightOffset(b *gamemap.Board, pos int, key byte) int {
	w, h := b.Width, b.Height
	col := pos % w
	switch key {
	case 'y':
		if col > 1 {
			return -(2 + w)
		}
	case 'u':
		if pos > 2*w {
			return -(1 + 2*w)
		}
	case 'i':
		if pos > 2*w {
			return 1 - 2*w
		}
	case 'o':
		if col < w-2 {
			return 2 - w
		}
	case 'h':
		if col > 1 {
			return w - 2
		}
	case 'j':
		if pos < w*(h-2) {
			return 2*w - 1
		}
	case 'k':
		if pos < w*(h-2) {
			return 2*w + 1
		}
	case 'l':
		if col < w-2 {
			return 2 + w
		}
	}
	return 0
}

// Push resolves a move onto dest. When dest holds a block it is shoved one
// cell further along key; walls, blocks and doors stop it. Keys that are
// not movement keys never push.
func Push(b *gamemap.Board, dest int, key byte) MoveResult {
	if b.At(dest) != gamemap.Block {
		return MoveOK
	}
	step, ok := Step(b, key)
	if !ok {
		return MoveBlocked
	}
	beyond := dest + step
	switch t := b.At(beyond); {
	case t == gamemap.Wall, t == gamemap.Block, t.IsDoor():
		return MoveBlocked
	}
	b.Set(beyond, gamemap.Block)
	return MovePushed
}
