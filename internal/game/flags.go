package game

import "puzzleland/internal/text"

// Flags is the set of run-wide switches.
type Flags uint8

const (
	FlagRevealPending Flags = 1 << iota // a button asked for the secret room
	FlagWarp                            // r and f work
	FlagKnight                          // knight keys jump
	FlagSticky                          // e engages the grip
	FlagCheese                          // the cream cheese was picked up
	FlagGrip                            // X-ray: blocks behind follow the player
)

// CheatFlags is unlocked by the intro cheat.
const CheatFlags = FlagWarp | FlagKnight | FlagSticky

// Has reports whether every bit of x is set.
func (f Flags) Has(x Flags) bool { return f&x == x }

var abilityNames = []struct {
	flag Flags
	id   string
}{
	{FlagWarp, text.AbilityWarp},
	{FlagKnight, text.AbilityKnight},
	{FlagSticky, text.AbilitySticky},
	{FlagGrip, text.AbilityGrip},
}

// abilities lists the unlocked abilities in display order.
func (f Flags) abilities(c *text.Catalog) []string {
	var out []string
	for _, a := range abilityNames {
		if f.Has(a.flag) {
			out = append(out, c.Get(a.id))
		}
	}
	return out
}
