package generate

import "fmt"

// Kind identifies one room layout of the world map.
type Kind uint8

const (
	RoomNone Kind = iota
	RoomOpen
	RoomLeft
	RoomRight
	RoomTop
	RoomBottom
	RoomTopLeft
	RoomTopRight
	RoomBottomLeft
	RoomBottomRight
	RoomDown
	RoomUp
	RoomVert
	RoomCheese
	RoomCheckers
	RoomPostWarp
	RoomToKnight
	RoomWarpPoint
	RoomCorner
	RoomMud
	RoomBlocks
	RoomHall
	RoomTele
	RoomPrison
	RoomSecret
	RoomBig
	RoomLabyrinth
	RoomBlockPuzzle
	RoomFront
	RoomKnightsMove
	RoomPowerGrip
	RoomFinal
	RoomWarpy
	RoomWallOfDeath
	RoomCopyCats
	RoomUnderLab
	RoomToSticky
	RoomShield
	RoomLogo

	numKinds
)

var kindNames = [numKinds]string{
	RoomNone:        "none",
	RoomOpen:        "crossroads",
	RoomLeft:        "west wall",
	RoomRight:       "east wall",
	RoomTop:         "north wall",
	RoomBottom:      "south wall",
	RoomTopLeft:     "north-west corner",
	RoomTopRight:    "north-east corner",
	RoomBottomLeft:  "south-west corner",
	RoomBottomRight: "south-east corner",
	RoomDown:        "dead end",
	RoomUp:          "long jump",
	RoomVert:        "corridor",
	RoomCheese:      "pantry",
	RoomCheckers:    "checkers",
	RoomPostWarp:    "landing",
	RoomToKnight:    "stable door",
	RoomWarpPoint:   "warp point",
	RoomCorner:      "corner",
	RoomMud:         "mud room",
	RoomBlocks:      "blocks",
	RoomHall:        "hall",
	RoomTele:        "teleporter",
	RoomPrison:      "prison",
	RoomSecret:      "secret room",
	RoomBig:         "big room",
	RoomLabyrinth:   "labyrinth",
	RoomBlockPuzzle: "block room",
	RoomFront:       "front room",
	RoomKnightsMove: "knight's move",
	RoomPowerGrip:   "power grip",
	RoomFinal:       "final room",
	RoomWarpy:       "warpy",
	RoomWallOfDeath: "wall of death",
	RoomCopyCats:    "copy cats",
	RoomUnderLab:    "under the labyrinth",
	RoomToSticky:    "sticky hallway",
	RoomShield:      "shield",
	RoomLogo:        "penguin",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Kinds returns every playable room kind.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := RoomOpen; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

var generators = map[Kind]Generator{
	RoomOpen:        open,
	RoomLeft:        left,
	RoomRight:       right,
	RoomTop:         top,
	RoomBottom:      bottom,
	RoomTopLeft:     topLeft,
	RoomTopRight:    topRight,
	RoomBottomLeft:  bottomLeft,
	RoomBottomRight: bottomRight,
	RoomDown:        down,
	RoomUp:          up,
	RoomVert:        vert,
	RoomCheese:      cheese,
	RoomCheckers:    checkers,
	RoomPostWarp:    postWarp,
	RoomToKnight:    toKnight,
	RoomWarpPoint:   warpPoint,
	RoomCorner:      corner,
	RoomMud:         mudRoom,
	RoomBlocks:      blocks,
	RoomHall:        hall,
	RoomTele:        tele,
	RoomPrison:      prison,
	RoomSecret:      secret,
	RoomBig:         bigRoom,
	RoomLabyrinth:   labyrinth,
	RoomBlockPuzzle: blockPuzzle,
	RoomFront:       frontRoom,
	RoomKnightsMove: knightsMove,
	RoomPowerGrip:   powerGrip,
	RoomFinal:       finalRoom,
	RoomWarpy:       warpy,
	RoomWallOfDeath: wallOfDeath,
	RoomCopyCats:    copyCats,
	RoomUnderLab:    underLab,
	RoomToSticky:    toSticky,
	RoomShield:      shield,
	RoomLogo:        logo,
}
