package generate

import (
	"math/rand"
	"sort"

	"disguiser/internal/gamemap"
	"disguiser/internal/geom"
	"disguiser/internal/guard"
)

var dirs = [4]geom.Coord{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// placeOutfits hides the guard outfits in the mansion, preferring dead-end
// rooms and then rooms deep inside.
func placeOutfits(rng *rand.Rand, rooms []*room, m *gamemap.Map) {
	var roomsOrdered []*room
	for _, r := range rooms {
		if r.roomType != roomExterior {
			roomsOrdered = append(roomsOrdered, r)
		}
	}

	rng.Shuffle(len(roomsOrdered), func(i, j int) {
		roomsOrdered[i], roomsOrdered[j] = roomsOrdered[j], roomsOrdered[i]
	})

	sort.SliceStable(roomsOrdered, func(i, j int) bool {
		room0, room1 := roomsOrdered[i], roomsOrdered[j]
		if room0.deadEnd != room1.deadEnd {
			return room0.deadEnd
		}
		return room0.depth >= 2 && room1.depth < 2
	})

	outfits := []gamemap.ItemKind{gamemap.ItemOutfit1, gamemap.ItemOutfit2}
	outfitIndex := 0

	numOutfits := max(1, min(len(outfits), len(rooms)/12))
	for _, r := range roomsOrdered {
		if tryPlaceOutfit(rng, r.posMin, r.posMax, m, outfits[outfitIndex]) {
			outfitIndex++
			numOutfits--
			if numOutfits == 0 {
				break
			}
		}
	}
}

func tryPlaceOutfit(rng *rand.Rand, posMin, posMax geom.Coord, m *gamemap.Map, kind gamemap.ItemKind) bool {
	dx := posMax.X - posMin.X
	dy := posMax.Y - posMin.Y

	for i := 0; i < 1000; i++ {
		pos := geom.Coord{X: posMin.X + rng.Intn(dx), Y: posMin.Y + rng.Intn(dy)}

		cellType := m.Cells.At(pos.X, pos.Y).Type
		if cellType != gamemap.GroundWood && cellType != gamemap.GroundMarble && cellType != gamemap.GroundGrass {
			continue
		}
		if isItemAt(m, pos) {
			continue
		}
		if doorOrWindowAdjacent(m.Cells, pos) {
			continue
		}

		placeItem(m, pos, kind)
		return true
	}

	return false
}

func doorOrWindowAdjacent(cells gamemap.CellGrid, pos geom.Coord) bool {
	for _, dir := range &dirs {
		posAdj := pos.Add(dir)
		if cells.At(posAdj.X, posAdj.Y).Type >= gamemap.OneWayWindowE {
			return true
		}
	}
	return false
}

// placeLoot scatters the coins: most master-suite rooms get one, dead-end
// rooms always get one, and a few extras land anywhere indoors.
func placeLoot(rng *rand.Rand, rooms []*room, adjacencies []*adjacency, m *gamemap.Map) {
	numRooms := 0
	for _, r := range rooms {
		if r.roomType == roomPublicRoom || r.roomType == roomPrivateRoom {
			numRooms++
		}
	}

	for _, r := range rooms {
		if r.roomType != roomPrivateRoom {
			continue
		}
		if rng.Float64() < 0.2 {
			continue
		}
		tryPlaceLoot(rng, r.posMin, r.posMax, m)
	}

	for _, r := range rooms {
		if r.roomType != roomPublicRoom && r.roomType != roomPrivateRoom {
			continue
		}

		numExits := 0
		for _, iAdj := range r.edges {
			if adjacencies[iAdj].door {
				numExits++
			}
		}

		if numExits < 2 {
			tryPlaceLoot(rng, r.posMin, r.posMax, m)
		}
	}

	posMin := geom.Coord{}
	posMax := geom.Coord{X: m.Cells.SizeX(), Y: m.Cells.SizeY()}
	for i := 0; i < numRooms/4+rng.Intn(4); i++ {
		tryPlaceLoot(rng, posMin, posMax, m)
	}
}

func tryPlaceLoot(rng *rand.Rand, posMin, posMax geom.Coord, m *gamemap.Map) {
	dx := posMax.X - posMin.X
	dy := posMax.Y - posMin.Y

	for i := 0; i < 1000; i++ {
		pos := geom.Coord{X: posMin.X + rng.Intn(dx), Y: posMin.Y + rng.Intn(dy)}

		cellType := m.Cells.At(pos.X, pos.Y).Type
		if cellType != gamemap.GroundWood && cellType != gamemap.GroundMarble {
			continue
		}
		if isItemAt(m, pos) {
			continue
		}

		placeItem(m, pos, gamemap.ItemCoin)
		break
	}
}

func isItemAt(m *gamemap.Map, pos geom.Coord) bool {
	for _, item := range m.Items {
		if item.Pos == pos {
			return true
		}
	}
	for _, g := range m.Guards {
		if g.Pos == pos {
			return true
		}
	}
	return false
}

// placeExteriorBushes rings the grounds with grass and bushes so the
// approach to the mansion offers cover.
func placeExteriorBushes(rng *rand.Rand, m *gamemap.Map) {
	sx := m.Cells.SizeX()
	sy := m.Cells.SizeY()

	for x := 0; x < sx; x++ {
		for y := sy - outerBorder + 1; y < sy; y++ {
			cell := m.Cells.At(x, y)
			if cell.Type != gamemap.GroundNormal {
				continue
			}
			cell.Type = gamemap.GroundGrass
			cell.Seen = true
		}

		if x&1 == 0 && rng.Float64() < 0.8 {
			placeItem(m, geom.Coord{X: x, Y: sy - 1}, gamemap.ItemBush)
		}
	}

	for y := outerBorder; y < sy-outerBorder+1; y++ {
		for x := 0; x < outerBorder-1; x++ {
			cell := m.Cells.At(x, y)
			if cell.Type != gamemap.GroundNormal {
				continue
			}
			cell.Type = gamemap.GroundGrass
			cell.Seen = true
		}

		for x := sx - outerBorder + 1; x < sx; x++ {
			cell := m.Cells.At(x, y)
			if cell.Type != gamemap.GroundNormal {
				continue
			}
			cell.Type = gamemap.GroundGrass
			cell.Seen = true
		}

		if (sy-y)&1 != 0 {
			if rng.Float64() < 0.8 {
				placeItem(m, geom.Coord{X: 0, Y: y}, gamemap.ItemBush)
			}
			if rng.Float64() < 0.8 {
				placeItem(m, geom.Coord{X: sx - 1, Y: y}, gamemap.ItemBush)
			}
		}
	}
}

// placeFrontPillars lines the front walk with freestanding pillars.
func placeFrontPillars(m *gamemap.Map) {
	sx := m.Cells.SizeX() - 1
	cx := m.Cells.SizeX() / 2

	for x := outerBorder; x < cx; x += 5 {
		m.Cells.At(x, 1).Type = gamemap.Wall0000
		m.Cells.At(sx-x, 1).Type = gamemap.Wall0000
	}
}

// placeGuardsByKind spawns the patrol staff for one guard kind, scaled to
// the number of rooms that kind patrols.
func placeGuardsByKind(rng *rand.Rand, level int, rooms []*room, m *gamemap.Map, kind gamemap.GuardKind) {
	numRooms := 0
	for _, r := range rooms {
		if r.hasPatroller && r.patroller == kind {
			numRooms++
		}
	}

	var numGuards int
	if level == 1 && numRooms > 0 {
		numGuards = 1
	} else {
		numGuards = (numRooms*min(level+18, 40) + 99) / 100
	}

	for numGuards > 0 {
		pos, ok := initialGuardPos(rng, m)
		if !ok {
			break
		}
		placeGuard(rng, m, pos, kind)
		numGuards--
	}
}

func initialGuardPos(rng *rand.Rand, m *gamemap.Map) (geom.Coord, bool) {
	sizeX := m.Cells.SizeX()
	sizeY := m.Cells.SizeY()

	for i := 0; i < 1000; i++ {
		pos := geom.Coord{X: rng.Intn(sizeX), Y: rng.Intn(sizeY)}

		// Keep guards away from the player's start.
		if m.PosStart.Sub(pos).LengthSq() < 64 {
			continue
		}

		cellType := m.Cells.At(pos.X, pos.Y).Type
		if cellType != gamemap.GroundWood && cellType != gamemap.GroundMarble {
			continue
		}
		if isItemAt(m, pos) {
			continue
		}

		return pos, true
	}

	return geom.Coord{}, false
}

func placeGuard(rng *rand.Rand, m *gamemap.Map, pos geom.Coord, kind gamemap.GuardKind) {
	g := &gamemap.Guard{
		Pos:           pos,
		Dir:           geom.Coord{X: 1, Y: 0},
		Kind:          kind,
		Mode:          gamemap.Patrol,
		HeardGuardPos: pos,
		Goal:          pos,
		RegionGoal:    gamemap.InvalidRegion,
		RegionPrev:    gamemap.InvalidRegion,
	}

	guard.SetupGoalRegion(rng, m, g)
	g.Dir = guard.InitialDir(m, g)

	m.Guards = append(m.Guards, g)
}

// markExteriorSeen reveals the grounds and the mansion's outer wall, so a
// new map starts with its silhouette on screen.
func markExteriorSeen(m *gamemap.Map) {
	sx := m.Cells.SizeX()
	sy := m.Cells.SizeY()

	isExterior := func(x, y int) bool {
		return m.Cells.At(x, y).Type == gamemap.GroundNormal
	}

	for x := 0; x < sx; x++ {
		for y := 0; y < sy; y++ {
			seen := false
			for dx := -1; dx <= 1 && !seen; dx++ {
				for dy := -1; dy <= 1 && !seen; dy++ {
					nx, ny := x+dx, y+dy
					if nx >= 0 && ny >= 0 && nx < sx && ny < sy && isExterior(nx, ny) {
						seen = true
					}
				}
			}
			if seen {
				m.Cells.At(x, y).Seen = true
			}
		}
	}
}

// cacheCellInfo folds the per-type tile flags and per-item modifiers into
// each cell, so the simulation never consults the item list for movement or
// senses.
func cacheCellInfo(m *gamemap.Map) {
	sx := m.Cells.SizeX()
	sy := m.Cells.SizeY()

	for x := 0; x < sx; x++ {
		for y := 0; y < sy; y++ {
			cell := m.Cells.At(x, y)
			tile := gamemap.TileDef(cell.Type)
			cell.MoveCost = cell.Type.MoveCost()
			cell.BlocksPlayerSight = tile.BlocksPlayerSight
			cell.BlocksSight = tile.BlocksSight
			cell.BlocksSound = tile.BlocksSound
			cell.HidesPlayer = false
		}
	}

	for _, item := range m.Items {
		cell := m.Cells.At(item.Pos.X, item.Pos.Y)
		kind := item.Kind
		cell.MoveCost = max(cell.MoveCost, kind.MoveCost())
		if kind == gamemap.ItemDoorNS || kind == gamemap.ItemDoorEW {
			cell.BlocksPlayerSight = true
		}
		if kind == gamemap.ItemDoorNS || kind == gamemap.ItemDoorEW ||
			kind == gamemap.ItemPortcullisNS || kind == gamemap.ItemPortcullisEW ||
			kind == gamemap.ItemBush {
			cell.BlocksSight = true
		}
		if kind == gamemap.ItemTable || kind == gamemap.ItemBush {
			cell.HidesPlayer = true
		}
	}
}
