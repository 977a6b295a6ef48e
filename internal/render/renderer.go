package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"puzzleland/internal/gamemap"
)

// ErrClosed is returned by ReadKey once the screen has been finalized.
var ErrClosed = errors.New("render: screen closed")

// Frame is everything one repaint shows.
type Frame struct {
	Board    *gamemap.Board
	Player   int
	Gripping bool // draw the player as Y
	Status   string
}

// glyph returns the character shown for cell p.
func (f Frame) glyph(p int) gamemap.Tile {
	t := f.Board.At(p)
	if f.Gripping && t == gamemap.Player {
		return gamemap.Gripping
	}
	return t
}

// hudRows is the space kept under the room for the status line.
const hudRows = 1

// Screen draws frames onto a tcell screen and reads keys from it.
type Screen struct {
	screen  tcell.Screen
	camera  *Camera
	colored bool
	last    Frame
	notice  string
}

// OpenScreen creates and initializes the terminal screen.
func OpenScreen(colored bool) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewScreen(s, colored), nil
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen, colored bool) *Screen {
	w, h := s.Size()
	return &Screen{
		screen:  s,
		camera:  NewCamera(w, h-hudRows),
		colored: colored,
	}
}

// Draw repaints the room and the status line.
func (s *Screen) Draw(f Frame) {
	s.last = f
	s.notice = ""
	s.paint()
}

// Notify shows msg under the room until the next Draw.
func (s *Screen) Notify(msg string) {
	s.notice = msg
	s.paint()
}

func (s *Screen) paint() {
	s.screen.Clear()
	f := s.last
	if f.Board == nil {
		s.drawLines(0, s.notice, messageStyle)
		s.screen.Show()
		return
	}
	w, h := s.screen.Size()
	s.camera.ViewWidth, s.camera.ViewHeight = w, h-hudRows
	b := f.Board
	px, py := f.Player%b.Width, f.Player/b.Width
	s.camera.Follow(px, py, b.Width, b.Height)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sx, sy, onScreen := s.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			t := f.glyph(b.Offset(x, y))
			s.screen.SetContent(sx, sy, rune(t), nil, tileStyle(t, s.colored))
		}
	}

	row := min(b.Height, s.camera.ViewHeight)
	s.drawText(0, row, f.Status, statusStyle)
	s.drawLines(row+1, s.notice, messageStyle)
	s.screen.Show()
}

// ReadKey blocks until a key is pressed and returns it as the game's key
// byte. Resize events repaint the last frame.
func (s *Screen) ReadKey() (byte, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return 0, ErrClosed
		case *tcell.EventResize:
			s.screen.Sync()
			s.paint()
		case *tcell.EventKey:
			return keyByte(ev), nil
		}
	}
}

// Close releases the terminal.
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}

func (s *Screen) drawLines(y int, text string, style tcell.Style) {
	if text == "" {
		return
	}
	for i, line := range strings.Split(text, "\n") {
		s.drawText(0, y+i, line, style)
	}
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		s.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
