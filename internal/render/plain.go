package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"puzzleland/internal/gamemap"
)

// clearLines scrolls the previous frame away before each repaint.
const clearLines = 52

// Plain prints every frame as lines of text, the way a dumb terminal would.
type Plain struct {
	in      *bufio.Reader
	out     io.Writer
	colored bool

	fd    int
	state *term.State
}

// OpenPlain puts the terminal behind in into raw mode and prints to out.
func OpenPlain(in *os.File, out io.Writer, colored bool) (*Plain, error) {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	p := NewPlain(in, out, colored)
	p.fd, p.state = fd, state
	return p, nil
}

// NewPlain reads keys from in as they arrive without touching terminal modes.
func NewPlain(in io.Reader, out io.Writer, colored bool) *Plain {
	return &Plain{in: bufio.NewReader(in), out: out, colored: colored}
}

// Draw prints the room followed by the status line.
func (p *Plain) Draw(f Frame) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", clearLines))
	b := f.Board
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sb.WriteString(p.cell(f.glyph(b.Offset(x, y))))
		}
		sb.WriteString("\r\n")
	}
	sb.WriteString(f.Status)
	sb.WriteString("\r\n")
	fmt.Fprint(p.out, sb.String())
}

func (p *Plain) cell(t gamemap.Tile) string {
	style := plainStyles[classOf(t)]
	if !p.colored || len(style) == 0 {
		return t.String()
	}
	return style.Sprint(t.String())
}

// Notify prints msg below the current frame.
func (p *Plain) Notify(msg string) {
	fmt.Fprint(p.out, strings.ReplaceAll(msg, "\n", "\r\n")+"\r\n")
}

// ReadKey returns the next key byte.
func (p *Plain) ReadKey() (byte, error) {
	return readPlainKey(p.in)
}

// Close restores the terminal mode saved by OpenPlain.
func (p *Plain) Close() error {
	if p.state == nil {
		return nil
	}
	if err := term.Restore(p.fd, p.state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	p.state = nil
	return nil
}

// WriteBoard prints the board one row per line, for output after the
// terminal has been released.
func WriteBoard(w io.Writer, b *gamemap.Board, gripping bool) error {
	f := Frame{Board: b, Gripping: gripping}
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sb.WriteByte(byte(f.glyph(b.Offset(x, y))))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
