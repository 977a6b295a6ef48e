package generate

import (
	"puzzleland/internal/gamemap"
	"puzzleland/internal/system"
)

// mudRoom is carpeted with mud and guarded by a chaser.
func mudRoom(r *Room, entry gamemap.Tile) int {
	b := r.size(10, 10)
	b.EdgeWalls()
	for y := 1; y < 9; y++ {
		b.Horizontal(y*10+1, 8, gamemap.Mud)
	}
	b.Set(5, gamemap.DoorNorth)
	b.Set(95, gamemap.DoorSouth)
	b.Set(45, gamemap.Hazard)
	r.Actions.Add(system.KindChase, 45)
	if entry == gamemap.DoorNorth {
		return 85
	}
	return 15
}

// blocks hides its exits until the button between the walls is pressed.
func blocks(r *Room, entry gamemap.Tile) int {
	b := r.size(7, 13)
	b.EdgeWalls()
	b.Horizontal(29, 2, gamemap.Block)
	b.Horizontal(32, 2, gamemap.Block)
	b.Horizontal(57, 2, gamemap.Block)
	b.Horizontal(60, 2, gamemap.Block)
	b.Horizontal(43, 2, gamemap.Wall)
	b.Horizontal(46, 2, gamemap.Wall)
	for _, c := range []int{9, 11, 17, 38, 52, 73, 79, 81} {
		b.Set(c, gamemap.Block)
	}
	b.Set(45, gamemap.Button)
	r.Actions.Add(system.KindReveal, 0)
	if entry == gamemap.DoorNorth {
		b.Set(87, gamemap.DoorSouth)
		return 80
	}
	b.Set(3, gamemap.DoorNorth)
	return 10
}

// hall is a long corridor with a patrolling hazard.
func hall(r *Room, entry gamemap.Tile) int {
	b := r.size(5, 40)
	b.EdgeWalls()
	b.Set(2, gamemap.DoorNorth)
	b.Set(197, gamemap.DoorSouth)
	b.Set(81, gamemap.Hazard)
	r.Actions.Add(system.KindPatrol, 82)
	if entry == gamemap.DoorNorth {
		return 192
	}
	return 7
}

// tele is split by a wall that only the pads cross.
func tele(r *Room, entry gamemap.Tile) int {
	b := r.size(7, 11)
	b.EdgeWalls()
	b.Horizontal(36, 5, gamemap.Wall)
	r.pads(24, 52)
	b.Set(3, gamemap.DoorNorth)
	b.Set(73, gamemap.DoorSouth)
	if entry == gamemap.DoorNorth {
		return 66
	}
	return 10
}

// prison has no exit until its blinking button is caught.
func prison(r *Room, entry gamemap.Tile) int {
	b := r.size(5, 5)
	b.EdgeWalls()
	r.Actions.Add(system.KindButton, 0)
	return 12
}

// secret replaces the prison once it has been escaped.
func secret(r *Room, entry gamemap.Tile) int {
	b := r.size(7, 10)
	b.EdgeWalls()
	for _, c := range []int{16, 18, 37, 39, 51, 53} {
		b.Set(c, gamemap.Wall)
	}
	b.Set(3, gamemap.DoorNorth)
	b.Set(66, gamemap.DoorSouth)
	switch entry {
	case gamemap.DoorNorth:
		return 59
	case gamemap.DoorSouth:
		return 10
	}
	return 31
}

// blockPuzzle walls a hazard and the east door behind blocks.
func blockPuzzle(r *Room, entry gamemap.Tile) int {
	b := r.size(11, 10)
	b.EdgeWalls()
	b.Horizontal(27, 4, gamemap.Wall)
	b.Horizontal(49, 2, gamemap.Wall)
	b.Horizontal(96, 2, gamemap.Block)
	b.Vertical(14, 4, gamemap.Wall)
	b.Vertical(41, 2, gamemap.Wall)
	b.Vertical(74, 2, gamemap.Wall)
	b.Vertical(58, 4, gamemap.Block)
	b.Vertical(68, 3, gamemap.Block)
	b.Set(62, gamemap.Block)
	b.Set(70, gamemap.Block)
	b.Set(64, gamemap.Hazard)
	b.Set(1, gamemap.DoorNorth)
	b.Set(65, gamemap.DoorEast)
	return 12
}

// frontRoom is where every run starts.
func frontRoom(r *Room, entry gamemap.Tile) int {
	b := r.size(10, 10)
	b.EdgeWalls()
	b.Set(5, gamemap.DoorNorth)
	b.Set(95, gamemap.DoorSouth)
	if entry == gamemap.DoorSouth {
		return 15
	}
	b.Set(45, gamemap.Player)
	return 45
}

// powerGrip holds the sticky behind a block maze.
func powerGrip(r *Room, entry gamemap.Tile) int {
	b := r.size(15, 15)
	b.EdgeWalls()
	b.Horizontal(69, 4, gamemap.Wall)
	b.Horizontal(115, 4, gamemap.Wall)
	b.Horizontal(159, 4, gamemap.Wall)
	b.Vertical(22, 9, gamemap.Wall)
	b.Vertical(24, 3, gamemap.Wall)
	b.Horizontal(46, 5, gamemap.Block)
	b.Horizontal(61, 5, gamemap.Block)
	b.Horizontal(99, 2, gamemap.Block)
	b.Horizontal(130, 4, gamemap.Block)
	b.Vertical(21, 8, gamemap.Block)
	b.Set(143, gamemap.Wall)
	b.Set(84, gamemap.Block)
	b.Set(86, gamemap.Block)
	b.Set(128, gamemap.Block)
	b.Set(42, gamemap.Pickup)
	b.Set(15, gamemap.DoorWest)
	return 202
}

// warpy needs the teleporter to reach its far door.
func warpy(r *Room, entry gamemap.Tile) int {
	b := r.size(11, 15)
	b.EdgeWalls()
	b.Horizontal(25, 7, gamemap.Wall)
	b.Horizontal(48, 3, gamemap.Wall)
	b.Horizontal(61, 4, gamemap.Wall)
	b.Horizontal(105, 4, gamemap.Wall)
	b.Horizontal(126, 4, gamemap.Wall)
	b.Vertical(13, 12, gamemap.Wall)
	b.Vertical(59, 8, gamemap.Wall)
	b.Vertical(83, 2, gamemap.Wall)
	b.Set(1, gamemap.DoorNorth)
	b.Set(5, gamemap.FarNorth)
	b.Set(159, gamemap.DoorSouth)
	r.pads(41, 85)
	switch entry {
	case gamemap.DoorNorth:
		return 148
	case gamemap.DoorSouth:
		return 12
	}
	return 16
}

// copyCats has two hazards that repeat every move the player makes.
// Coming up from the south door only the lower one is awake.
func copyCats(r *Room, entry gamemap.Tile) int {
	b := r.size(18, 12)
	b.EdgeWalls()
	b.Horizontal(38, 15, gamemap.Wall)
	b.Horizontal(56, 15, gamemap.Wall)
	b.Horizontal(91, 14, gamemap.Wall)
	b.Horizontal(109, 14, gamemap.Wall)
	b.Set(16, gamemap.DoorNorth)
	b.Set(126, gamemap.DoorWest)
	b.Set(206, gamemap.DoorSouth)
	b.Set(134, gamemap.Hazard)
	r.Actions.Add(system.KindMimic, 134)
	if entry == gamemap.DoorSouth {
		return 34
	}
	b.Set(34, gamemap.Hazard)
	r.Actions.Add(system.KindMimic, 34)
	if entry == gamemap.DoorNorth {
		return 188
	}
	return 127
}

// underLab sits below the labyrinth; its far door is optional.
func underLab(r *Room, entry gamemap.Tile) int {
	b := r.size(10, 13)
	b.EdgeWalls()
	b.Set(23, gamemap.Block)
	b.Set(74, gamemap.Block)
	b.Set(76, gamemap.Block)
	b.Set(5, gamemap.DoorNorth)
	b.Set(121, gamemap.DoorSouth)
	b.Set(128, gamemap.FarSouth)
	b.Horizontal(63, 2, gamemap.Wall)
	b.Horizontal(66, 3, gamemap.Wall)
	b.Horizontal(84, 3, gamemap.Wall)
	b.Horizontal(107, 2, gamemap.Block)
	b.Horizontal(33, 2, gamemap.Block)
	b.Horizontal(36, 3, gamemap.Block)
	b.Horizontal(44, 5, gamemap.Block)
	b.Vertical(22, 10, gamemap.Wall)
	switch entry {
	case gamemap.DoorNorth:
		return 111
	case gamemap.FarNorth:
		return 118
	}
	return 15
}

// toSticky leads to the power grip through a row of blocks.
func toSticky(r *Room, entry gamemap.Tile) int {
	b := r.size(17, 17)
	b.EdgeWalls()
	b.Set(95, gamemap.Wall)
	b.Set(8, gamemap.DoorNorth)
	b.Set(136, gamemap.DoorWest)
	b.Set(280, gamemap.DoorSouth)
	b.Horizontal(18, 7, gamemap.Block)
	b.Horizontal(26, 7, gamemap.Block)
	switch entry {
	case gamemap.DoorNorth:
		return 263
	case gamemap.DoorSouth:
		return 25
	}
	return 137
}

// shield can only be crossed by pushing a block ahead through the hazards.
func shield(r *Room, entry gamemap.Tile) int {
	b := r.size(9, 15)
	b.EdgeWalls()
	b.Set(24, gamemap.Block)
	b.Set(113, gamemap.Block)
	b.Set(4, gamemap.DoorNorth)
	b.Set(130, gamemap.DoorSouth)
	for c := 37; c < 44; c++ {
		b.Vertical(c, 7, gamemap.Hazard)
	}
	if entry == gamemap.DoorNorth {
		return 121
	}
	return 13
}
