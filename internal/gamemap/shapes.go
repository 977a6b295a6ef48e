package gamemap

// Horizontal writes length copies of t starting at start.
func (b *Board) Horizontal(start, length int, t Tile) {
	b.run(start, length, 1, t)
}

// Vertical writes length copies of t down a column.
func (b *Board) Vertical(start, length int, t Tile) {
	b.run(start, length, b.Width, t)
}

// LeftDiagonal writes a "/" line going down and to the left.
func (b *Board) LeftDiagonal(start, length int, t Tile) {
	b.run(start, length, b.Width-1, t)
}

// RightDiagonal writes a "\" line going down and to the right.
func (b *Board) RightDiagonal(start, length int, t Tile) {
	b.run(start, length, b.Width+1, t)
}

func (b *Board) run(start, length, stride int, t Tile) {
	for i := 0; i < length; i++ {
		b.Set(start+i*stride, t)
	}
}

// EdgeWalls surrounds the room with walls and empties the interior.
func (b *Board) EdgeWalls() {
	b.Horizontal(0, b.Width, Wall)
	for y := 1; y < b.Height-1; y++ {
		b.Set(y*b.Width, Wall)
		b.Horizontal(y*b.Width+1, b.Width-2, Empty)
		b.Set((y+1)*b.Width-1, Wall)
	}
	b.Horizontal(b.Width*(b.Height-1), b.Width, Wall)
}
