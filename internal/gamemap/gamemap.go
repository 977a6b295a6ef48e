package gamemap

import (
	"fmt"
	"strings"
)

// Capacity is the number of cells backing every board (80x40).
const Capacity = 80 * 40

// Board holds the tile grid for the room currently being played.
// Cells are stored row-major; only the first Width*Height are part of the room.
type Board struct {
	Width, Height int
	cells         [Capacity]Tile
}

// New creates an empty Board with the given dimensions.
func New(width, height int) *Board {
	b := &Board{}
	b.Resize(width, height)
	return b
}

// Resize sets the room dimensions and blanks every cell.
// Panics if the room does not fit in Capacity.
func (b *Board) Resize(width, height int) {
	if width <= 0 || height <= 0 || width*height > Capacity {
		panic(fmt.Sprintf("gamemap: %dx%d room does not fit a %d cell board", width, height, Capacity))
	}
	b.Width, b.Height = width, height
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// Len returns the number of cells in the current room.
func (b *Board) Len() int { return b.Width * b.Height }

// InBounds reports whether pos lies inside the current room.
func (b *Board) InBounds(pos int) bool {
	return pos >= 0 && pos < b.Len()
}

// At returns the tile at pos. Offsets outside the backing array read as Wall.
func (b *Board) At(pos int) Tile {
	if pos < 0 || pos >= Capacity {
		return Wall
	}
	return b.cells[pos]
}

// Set replaces the tile at pos. Writes outside the backing array are dropped.
func (b *Board) Set(pos int, t Tile) {
	if pos < 0 || pos >= Capacity {
		return
	}
	b.cells[pos] = t
}

// ClearIf empties pos only if it still holds old.
func (b *Board) ClearIf(pos int, old Tile) {
	if b.At(pos) == old {
		b.Set(pos, Empty)
	}
}

// Column returns the x coordinate of pos.
func (b *Board) Column(pos int) int { return pos % b.Width }

// Offset returns the cell index of (x, y).
func (b *Board) Offset(x, y int) int { return y*b.Width + x }

// Find returns every in-room position holding t, in ascending order.
func (b *Board) Find(t Tile) []int {
	var out []int
	for i := 0; i < b.Len(); i++ {
		if b.cells[i] == t {
			out = append(out, i)
		}
	}
	return out
}

// String renders the room one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.Len() + b.Height)
	for i := 0; i < b.Len(); i++ {
		sb.WriteByte(byte(b.cells[i]))
		if (i+1)%b.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
