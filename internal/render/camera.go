package render

// Camera maps room coordinates onto the screen.
// Every tile is one terminal column wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera with the given viewport.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow keeps (x, y) in view for a room of roomW x roomH tiles. A room that
// fits the viewport is pinned to the top-left corner; a larger one scrolls
// with the player without showing space past its edges.
func (c *Camera) Follow(x, y, roomW, roomH int) {
	c.OffsetX = follow(x, roomW, c.ViewWidth)
	c.OffsetY = follow(y, roomH, c.ViewHeight)
}

func follow(p, size, view int) int {
	if view <= 0 || size <= view {
		return 0
	}
	off := p - view/2
	if off < 0 {
		off = 0
	}
	if off > size-view {
		off = size - view
	}
	return off
}

// WorldToScreen converts room (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
