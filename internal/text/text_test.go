package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	cases := []struct {
		id   string
		want string
	}{
		{GameOver, "Game over."},
		{Exiting, "Exiting..."},
		{WinCheese, "With a bit of cream cheese, though, it isn't too bad."},
		{AbilityGrip, "x-ray"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Get(tc.id), tc.id)
	}
}

func TestMultilineMessages(t *testing.T) {
	c := Default()
	intro := c.Get(Intro)
	assert.Contains(t, intro, "Welcome to puzzle-land.\n")
	assert.Contains(t, intro, "x - reset room\n")
	assert.Contains(t, c.Get(PickupSticky), "Press e to use it.")
}

func TestFormatting(t *testing.T) {
	c := Default()
	assert.Contains(t, c.Format(WinFarewell, 42), "Moves taken: 42")
	assert.Equal(t, "mud room  moves: 3  warp", c.Format(Status, "mud room", 3, "warp"))
}

func TestEveryIDIsTranslated(t *testing.T) {
	c := Default()
	for _, id := range []string{
		Intro, PickupWarp, PickupKnight, PickupSticky, PickupCheese, Win,
		WinCheese, WinFarewell, GameOver, Exiting, Status,
		AbilityWarp, AbilityKnight, AbilitySticky, AbilityGrip,
	} {
		assert.NotEqual(t, id, c.Get(id), "%s has no translation", id)
	}
}

func TestLoadOverridesAndFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pirate.po")
	po := "msgid \"GAME_OVER\"\nmsgstr \"Ye be sunk.\"\n"
	require.NoError(t, os.WriteFile(path, []byte(po), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ye be sunk.", c.Get(GameOver))
	assert.Equal(t, Exiting, c.Get(Exiting), "unknown IDs come back unchanged")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.po"))
	assert.Error(t, err)
}
