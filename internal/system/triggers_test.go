package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"puzzleland/internal/gamemap"
)

func TestButtonBlinks(t *testing.T) {
	b := gamemap.New(5, 5)
	b.EdgeWalls()
	turn := &Turn{Board: b}
	var signal uint32

	button(turn, &signal)
	assert.Equal(t, gamemap.Button, b.At(cageButton))
	button(turn, &signal)
	assert.Equal(t, gamemap.Empty, b.At(cageButton))
	assert.False(t, turn.RevealPending)
	assert.Equal(t, gamemap.Wall, b.At(cageDoor))
}

func TestButtonPressedOpensCage(t *testing.T) {
	b := gamemap.New(5, 5)
	b.EdgeWalls()
	b.Set(cageButton, gamemap.Player)
	turn := &Turn{Board: b}
	signal := Activated

	button(turn, &signal)
	assert.Equal(t, gamemap.DoorEast, b.At(cageDoor))
	assert.True(t, turn.RevealPending)
	// Standing on the button cell hides it like any non-empty cell.
	assert.Equal(t, gamemap.Empty, b.At(cageButton))
}

func TestOneShotTriggers(t *testing.T) {
	t.Run("reveal waits for the button", func(t *testing.T) {
		b := gamemap.New(7, 13)
		b.EdgeWalls()
		var signal uint32
		reveal(&Turn{Board: b}, &signal)
		assert.Equal(t, gamemap.Wall, b.At(revealNorth))

		signal |= Activated
		reveal(&Turn{Board: b}, &signal)
		assert.Equal(t, gamemap.DoorNorth, b.At(revealNorth))
		assert.Equal(t, gamemap.DoorSouth, b.At(revealSouth))
	})

	t.Run("knight gate swaps exits", func(t *testing.T) {
		b := gamemap.New(50, 40)
		b.Set(knightExit, gamemap.DoorSouth)
		signal := Activated
		knightGate(&Turn{Board: b}, &signal)
		assert.Equal(t, gamemap.Wall, b.At(knightExit))
		assert.Equal(t, gamemap.DoorWest, b.At(knightDoor))
	})

	t.Run("reinforce disarms", func(t *testing.T) {
		b := gamemap.New(80, 40)
		signal := Activated
		reinforce(&Turn{Board: b}, &signal)
		assert.Zero(t, signal)
		assert.Len(t, b.Find(gamemap.Block), reinforceLen)
		assert.Equal(t, gamemap.Block, b.At(reinforceStart+4*80))

		b.Set(reinforceStart, gamemap.Empty)
		reinforce(&Turn{Board: b}, &signal)
		assert.Equal(t, gamemap.Empty, b.At(reinforceStart))
	})
}
