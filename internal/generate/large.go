package generate

import (
	"puzzleland/internal/gamemap"
	"puzzleland/internal/system"
)

func bigRoom(r *Room, entry gamemap.Tile) int {
	b := r.size(80, 40)
	b.EdgeWalls()
	b.Set(40, gamemap.DoorNorth)
	b.Set(1600, gamemap.DoorWest)
	b.Set(3160, gamemap.DoorSouth)
	b.Set(1679, gamemap.DoorEast)
	switch entry {
	case gamemap.DoorNorth:
		return 3080
	case gamemap.DoorWest:
		return 1678
	case gamemap.DoorSouth:
		return 120
	}
	return 1601
}

type span struct{ start, length int }

var (
	labyrinthRows = []span{
		{402, 59}, {724, 57}, {883, 57}, {1021, 17}, {1121, 60}, {1183, 16}, {1246, 14},
		{1284, 21}, {1309, 7}, {1400, 38}, {1444, 20}, {1556, 43}, {1714, 44}, {1764, 15},
		{1872, 47}, {1923, 8}, {1932, 9}, {2030, 48}, {2085, 16}, {2188, 51},
	}
	labyrinthCols = []span{
		{91, 3}, {111, 3}, {118, 3}, {131, 3}, {141, 11}, {164, 3}, {179, 3}, {193, 3},
		{205, 3}, {218, 3}, {482, 8}, {1202, 13}, {1202, 2}, {1305, 13}, {1307, 10},
		{1526, 2}, {1530, 2}, {1534, 2}, {1538, 2}, {1541, 8}, {1608, 2}, {1612, 2},
		{1616, 2}, {1624, 9}, {1629, 3},
	}
	labyrinthWalls = []int{
		150, 235, 304, 470, 544, 634, 709, 793, 866, 1100, 1325, 1473, 1488, 1498, 1523,
		1660, 1818, 1979,
	}
	labyrinthGaps = []int{301, 701, 1409, 1422, 1561, 1575, 1589, 1739, 1874, 1888, 1913, 2044, 2223}
)

func labyrinth(r *Room, entry gamemap.Tile) int {
	b := r.size(80, 30)
	b.EdgeWalls()
	for _, s := range labyrinthRows {
		b.Horizontal(s.start, s.length, gamemap.Wall)
	}
	for _, s := range labyrinthCols {
		b.Vertical(s.start, s.length, gamemap.Wall)
	}
	b.LeftDiagonal(1239, 13, gamemap.Wall)
	b.LeftDiagonal(1262, 2, gamemap.Wall)
	b.RightDiagonal(1389, 4, gamemap.Wall)
	for _, c := range labyrinthWalls {
		b.Set(c, gamemap.Wall)
	}
	for _, c := range labyrinthGaps {
		b.Set(c, gamemap.Empty)
	}
	b.Set(1271, gamemap.DoorNorth)
	b.Set(1200, gamemap.DoorWest)
	b.Set(1043, gamemap.DoorSouth)
	b.Set(1041, gamemap.DoorEast)
	switch entry {
	case gamemap.DoorNorth:
		return 963
	case gamemap.DoorWest:
		return 961
	case gamemap.DoorSouth:
		return 1351
	}
	return 1201
}

// Cells cut into the knight's move wall block; only jumps reach them.
var knightHoles = []int{
	82, 123, 130, 136, 171, 178, 183, 219, 222, 226, 235, 267, 274, 315, 320, 334, 363,
	367, 372, 382, 411, 420, 434, 459, 481, 486, 507, 519, 534, 555, 582, 618, 654, 719,
	820, 869, 873, 921, 925, 1024, 1072, 1120, 1168, 1165, 1216, 1264, 1312, 1360, 1408,
	1456, 1504, 1603,
}

func knightsMove(r *Room, entry gamemap.Tile) int {
	b := r.size(50, 40)
	b.EdgeWalls()
	b.Horizontal(1853, 34, gamemap.Wall)
	for c := 52; c < 88; c++ {
		b.Vertical(c, 37, gamemap.Wall)
	}
	b.Horizontal(904, 14, gamemap.Empty)
	b.Vertical(89, 2, gamemap.Wall)
	for _, c := range knightHoles {
		b.Set(c, gamemap.Empty)
	}
	b.Set(1903, gamemap.Wall)
	b.Set(88, gamemap.Pickup)
	b.Set(138, gamemap.Button)
	b.Set(1970, gamemap.DoorSouth)
	r.Actions.Add(system.KindKnightGate, 0)
	return 1920
}

// finalRoom is the gauntlet in front of the goal: two chasers, two
// mimics and four sweeping hazard walls.
func finalRoom(r *Room, entry gamemap.Tile) int {
	b := r.size(80, 40)
	b.EdgeWalls()
	for _, s := range []span{{401, 78}, {481, 78}, {965, 74}, {1045, 74}, {1521, 77}, {1601, 78}, {2482, 77}, {2561, 78}} {
		b.Horizontal(s.start, s.length, gamemap.Wall)
	}
	b.Horizontal(1841, 78, gamemap.Block)
	b.Horizontal(1921, 78, gamemap.Block)
	b.Vertical(122, 5, gamemap.Wall)
	b.RightDiagonal(2840, 4, gamemap.Block)
	b.RightDiagonal(2920, 3, gamemap.Wall)
	b.RightDiagonal(3000, 2, gamemap.Hazard)
	b.LeftDiagonal(2919, 3, gamemap.Block)
	b.LeftDiagonal(2999, 2, gamemap.Wall)
	b.Set(3079, gamemap.Hazard)
	b.Set(696, gamemap.Block)
	b.Set(1598, gamemap.Block)
	b.Set(2481, gamemap.Block)
	for _, c := range []int{754, 781, 1242, 1295} {
		b.Set(c, gamemap.Hazard)
	}
	b.Set(321, gamemap.Button)
	b.Set(40, gamemap.DoorNorth)

	a := r.Actions
	a.Add(system.KindReinforce, 0)
	a.Add(system.KindChase, 1242)
	a.Add(system.KindChase, 754)
	a.Add(system.KindMimic, 781)
	a.Add(system.KindMimic, 1295)
	a.Add(system.KindSweepHorizontal, system.Activated)
	a.Add(system.KindSweepHorizontal, 77)
	a.Add(system.KindSweepVertical, system.Activated)
	a.Add(system.KindSweepVertical, 9)

	b.Set(3080, gamemap.Goal)
	return 120
}

// wallOfDeath arms its rising hazard wall only for players coming in
// through the west door.
func wallOfDeath(r *Room, entry gamemap.Tile) int {
	b := r.size(80, 40)
	b.EdgeWalls()
	b.Set(3160, gamemap.DoorSouth)
	b.Horizontal(994, 14, gamemap.Block)
	b.Horizontal(1440, 4, gamemap.Wall)
	b.Horizontal(1765, 74, gamemap.Wall)
	b.Vertical(108, 12, gamemap.Wall)
	b.Vertical(132, 12, gamemap.Wall)
	b.Vertical(1444, 5, gamemap.Wall)
	for _, c := range []int{2918, 2919, 2921, 2922} {
		b.Vertical(c, 3, gamemap.Wall)
	}
	r.pads(1602, 1677)
	if entry == gamemap.DoorWest {
		r.Actions.Add(system.KindRisingWall, 3121)
		return 158
	}
	return 3080
}

var (
	logoBlocks = []int{514, 608, 748, 779, 963, 973, 1001, 1090, 1113, 1144, 1149}
	logoRows   = []span{
		{289, 4}, {333, 6}, {378, 7}, {425, 2}, {428, 2}, {470, 2}, {650, 3}, {1009, 2},
		{1100, 4}, {1136, 3}, {1155, 3}, {1183, 6}, {1195, 6},
	}
	logoCols  = []span{{423, 4}, {778, 4}, {794, 4}, {822, 3}, {840, 3}, {841, 4}, {887, 4}}
	logoSlash = []span{{557, 5}, {646, 3}, {956, 3}, {972, 5}}
	logoBack  = []span{{474, 7}, {518, 2}, {519, 7}, {558, 2}, {914, 2}, {915, 6}, {916, 3}, {976, 2}, {977, 3}}
)

// logo is a penguin drawn in blocks.
func logo(r *Room, entry gamemap.Tile) int {
	b := r.size(45, 31)
	b.EdgeWalls()
	for _, c := range logoBlocks {
		b.Set(c, gamemap.Block)
	}
	b.Set(21, gamemap.DoorNorth)
	b.Set(1371, gamemap.DoorSouth)
	for _, s := range logoRows {
		b.Horizontal(s.start, s.length, gamemap.Block)
	}
	for _, s := range logoCols {
		b.Vertical(s.start, s.length, gamemap.Block)
	}
	for _, s := range logoSlash {
		b.LeftDiagonal(s.start, s.length, gamemap.Block)
	}
	for _, s := range logoBack {
		b.RightDiagonal(s.start, s.length, gamemap.Block)
	}
	if entry == gamemap.DoorNorth {
		return 1326
	}
	return 66
}
