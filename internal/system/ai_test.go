package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"puzzleland/internal/gamemap"
)

func setupChaseBoard(hazard int) *gamemap.Board {
	b := gamemap.New(10, 10)
	b.EdgeWalls()
	b.Set(hazard, gamemap.Hazard)
	return b
}

func TestChasePrefersColumns(t *testing.T) {
	cases := []struct {
		name   string
		player int
		want   int
	}{
		{"player to the left", 12, 44},
		{"player to the right", 48, 46},
		{"player above", 15, 35},
		{"player below", 85, 55},
		{"diagonal still moves sideways first", 88, 46},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := setupChaseBoard(45)
			pos := uint32(45)
			chase(&Turn{Board: b, Player: tc.player}, &pos)
			assert.Equal(t, uint32(tc.want), pos)
			assert.Equal(t, gamemap.Hazard, b.At(tc.want))
			assert.Equal(t, gamemap.Empty, b.At(45))
		})
	}
}

func TestChaseBlockedByWall(t *testing.T) {
	b := setupChaseBoard(41)
	pos := uint32(41)
	chase(&Turn{Board: b, Player: 40}, &pos) // column 0 is the wall
	assert.Equal(t, uint32(41), pos)
	assert.Equal(t, gamemap.Hazard, b.At(41))
}

func TestChaseIgnoresOverwrittenHazard(t *testing.T) {
	b := setupChaseBoard(45)
	b.Set(45, gamemap.Block)
	pos := uint32(45)
	chase(&Turn{Board: b, Player: 12}, &pos)
	assert.Equal(t, uint32(45), pos)
	assert.Equal(t, gamemap.Block, b.At(45))
	assert.Empty(t, b.Find(gamemap.Hazard))
}

func TestChaseStepsOneCell(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := gamemap.New(10, 10)
		b.EdgeWalls()
		interior := rapid.Custom(func(rt *rapid.T) int {
			x := rapid.IntRange(1, 8).Draw(rt, "x")
			y := rapid.IntRange(1, 8).Draw(rt, "y")
			return y*10 + x
		})
		hazard := interior.Draw(rt, "hazard")
		player := interior.Draw(rt, "player")
		if hazard == player {
			return
		}
		b.Set(hazard, gamemap.Hazard)

		pos := uint32(hazard)
		chase(&Turn{Board: b, Player: player}, &pos)
		moved := int(pos) - hazard
		switch moved {
		case 1, -1:
			if b.Column(hazard) == b.Column(player) {
				rt.Fatalf("moved sideways while already in the player's column")
			}
		case 10, -10:
			if b.Column(hazard) != b.Column(player) {
				rt.Fatalf("moved vertically before lining up columns")
			}
		default:
			rt.Fatalf("hazard moved by %d", moved)
		}
	})
}

func TestMimic(t *testing.T) {
	cases := []struct {
		name string
		key  byte
		want int
	}{
		{"east", 'd', 46},
		{"north", 'w', 35},
		{"wait", '.', 45},
		{"knight jump without the ability", 'l', 57},
		{"knight jump into the wall", 'y', 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := setupChaseBoard(45)
			b.Set(33, gamemap.Wall) // 'y' target
			pos := uint32(45)
			mimic(&Turn{Board: b, Player: 12, Key: tc.key}, &pos)
			assert.Equal(t, uint32(tc.want), pos)
			assert.Equal(t, gamemap.Hazard, b.At(tc.want))
		})
	}
}

func TestMimicDestinations(t *testing.T) {
	cases := []struct {
		name  string
		there gamemap.Tile
		moves bool
	}{
		{"empty", gamemap.Empty, true},
		{"player", gamemap.Player, true},
		{"hazard", gamemap.Hazard, true},
		{"block", gamemap.Block, false},
		{"door", gamemap.DoorEast, false},
		{"mud", gamemap.Mud, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := setupChaseBoard(45)
			b.Set(46, tc.there)
			pos := uint32(45)
			mimic(&Turn{Board: b, Key: 'd'}, &pos)
			assert.Equal(t, tc.moves, pos == 46)
		})
	}
}

func TestPatrolAlternates(t *testing.T) {
	b := gamemap.New(5, 40)
	b.EdgeWalls()
	b.Set(81, gamemap.Hazard)
	pos := uint32(82)
	turn := &Turn{Board: b}

	patrol(turn, &pos) // 82 is empty so 81 keeps its hazard too
	assert.Equal(t, uint32(81), pos)
	patrol(turn, &pos)
	assert.Equal(t, uint32(82), pos)
	assert.Equal(t, gamemap.Empty, b.At(81))
	assert.Equal(t, gamemap.Hazard, b.At(82))
	patrol(turn, &pos)
	assert.Equal(t, gamemap.Hazard, b.At(81))
	assert.Equal(t, gamemap.Empty, b.At(82))
}
