package render

import (
	"bufio"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

const (
	keyWait   = 0x00 // any key without a byte of its own
	keyCtrlC  = 0x03
	keyEscape = 0x1b
	keyDelete = 0x7f
)

// keyByte maps a tcell key event to the byte the game reads. Arrows alias
// the wasd steps and Escape or Ctrl-C quit. Keys with no byte of their own,
// such as function keys, still take a turn as keyWait.
func keyByte(ev *tcell.EventKey) byte {
	switch k := ev.Key(); k {
	case tcell.KeyUp:
		return 'w'
	case tcell.KeyDown:
		return 's'
	case tcell.KeyLeft:
		return 'a'
	case tcell.KeyRight:
		return 'd'
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 't'
	case tcell.KeyEnter:
		return '\n'
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return keyDelete
	case tcell.KeyRune:
		if r := ev.Rune(); r < utf8.RuneSelf {
			return byte(r)
		}
	default:
		if k < ' ' {
			return byte(k)
		}
	}
	return keyWait
}

// arrows maps the final byte of an ANSI cursor sequence.
var arrows = map[byte]byte{'A': 'w', 'B': 's', 'C': 'd', 'D': 'a'}

// readPlainKey reads one key from a raw byte stream. ESC [ A..D are arrows.
// An Escape that arrives alone quits at once; followed by anything other
// than '[' it quits and consumes that byte.
func readPlainKey(in *bufio.Reader) (byte, error) {
	b, err := in.ReadByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case keyCtrlC:
		return 't', nil
	case '\r':
		return '\n', nil
	case keyEscape:
	default:
		return b, nil
	}
	if in.Buffered() == 0 {
		return 't', nil
	}
	if b, err = in.ReadByte(); err != nil || b != '[' {
		return 't', err
	}
	if b, err = in.ReadByte(); err != nil {
		return 0, err
	}
	if k, ok := arrows[b]; ok {
		return k, nil
	}
	return 't', nil
}
