package game

// Action is what a key asks the engine to do.
type Action uint8

const (
	ActionWait   Action = iota // any key without a meaning
	ActionMove                 // w a s d
	ActionKnight               // y u i o h j k l, once the knight's move is unlocked
	ActionMark                 // r drops the warp mark
	ActionWarp                 // f jumps back to the mark
	ActionGrip                 // e toggles the sticky grip
	ActionReset                // x repaints the current room
	ActionQuit                 // t
)

// keyToAction maps a key byte to a game action.
func keyToAction(key byte) Action {
	switch key {
	case 'w', 'a', 's', 'd':
		return ActionMove
	case 'y', 'u', 'i', 'o', 'h', 'j', 'k', 'l':
		return ActionKnight
	case 'r':
		return ActionMark
	case 'f':
		return ActionWarp
	case 'e':
		return ActionGrip
	case 'x':
		return ActionReset
	case 't':
		return ActionQuit
	}
	return ActionWait
}

// cheatKey at the intro prompt unlocks CheatFlags when cheats are allowed.
const cheatKey = 'C'
