package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"

	"puzzleland/internal/gamemap"
)

// tileClass groups tiles that are drawn alike.
type tileClass uint8

const (
	classFloor tileClass = iota
	classWall
	classBlock
	classHazard
	classDoor
	classItem
	classGoal
	classPad
	classMark
	classMud
	classPlayer
)

func classOf(t gamemap.Tile) tileClass {
	switch {
	case t.IsDoor():
		return classDoor
	case t == gamemap.Wall:
		return classWall
	case t == gamemap.Block:
		return classBlock
	case t == gamemap.Hazard:
		return classHazard
	case t == gamemap.Pickup, t == gamemap.Cheese, t == gamemap.Button:
		return classItem
	case t == gamemap.Goal:
		return classGoal
	case t == gamemap.Pad:
		return classPad
	case t == gamemap.WarpMark:
		return classMark
	case t == gamemap.Mud:
		return classMud
	case t == gamemap.Player, t == gamemap.Gripping:
		return classPlayer
	}
	return classFloor
}

// screenStyles colours the full-screen view.
var screenStyles = [...]tcell.Style{
	classFloor:  tcell.StyleDefault,
	classWall:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	classBlock:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	classHazard: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	classDoor:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	classItem:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	classGoal:   tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	classPad:    tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
	classMark:   tcell.StyleDefault.Foreground(tcell.ColorTeal),
	classMud:    tcell.StyleDefault.Foreground(tcell.ColorOlive),
	classPlayer: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
}

// plainStyles colours the line-printed view.
var plainStyles = [...]color.Style{
	classFloor:  nil,
	classWall:   {color.FgGray},
	classBlock:  {color.FgWhite},
	classHazard: {color.FgRed, color.OpBold},
	classDoor:   {color.FgYellow},
	classItem:   {color.FgGreen},
	classGoal:   {color.FgCyan, color.OpBold},
	classPad:    {color.FgMagenta},
	classMark:   {color.FgLightCyan},
	classMud:    {color.FgBlue},
	classPlayer: {color.FgWhite, color.OpBold},
}

var (
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

func tileStyle(t gamemap.Tile, colored bool) tcell.Style {
	if !colored {
		return tcell.StyleDefault
	}
	return screenStyles[classOf(t)]
}
