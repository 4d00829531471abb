package generate

import (
	"math/rand"

	"disguiser/internal/gamemap"
	"disguiser/internal/geom"
)

// oneWayWindow maps a facing direction (indexed 2*dx+dy+2) to the window cell
// that looks out that way.
var oneWayWindow = [5]gamemap.CellType{
	gamemap.OneWayWindowS,
	gamemap.OneWayWindowE,
	gamemap.OneWayWindowE, // unused
	gamemap.OneWayWindowW,
	gamemap.OneWayWindowN,
}

// renderWalls knocks openings into the plotted walls: grass gaps between
// courtyards, one-way windows looking out of interior rooms, and the doors
// and portcullises decided by connectRooms.
func renderWalls(rng *rand.Rand, rooms []*room, adjacencies []*adjacency, m *gamemap.Map) {

	// Courtyard-to-courtyard walls dissolve into grass.

	for _, adj := range adjacencies {
		type0 := rooms[adj.roomLeft].roomType
		type1 := rooms[adj.roomRight].roomType

		if !isCourtyardRoomType(type0) || !isCourtyardRoomType(type1) {
			continue
		}

		for j := 0; j < adj.length; j++ {
			p := adj.origin.Add(adj.dir.Scale(j))
			m.Cells.At(p.X, p.Y).Type = gamemap.GroundGrass
		}
	}

	for i, adj0 := range adjacencies {
		type0 := rooms[adj0.roomLeft].roomType
		type1 := rooms[adj0.roomRight].roomType

		if isCourtyardRoomType(type0) && isCourtyardRoomType(type1) {
			continue
		}

		j := adj0.nextMatching
		if j < i {
			continue
		}

		var offset int
		switch {
		case j == i:
			offset = adj0.length / 2
		case adj0.length > 2:
			offset = 1 + rng.Intn(adj0.length-2)
		default:
			offset = rng.Intn(adj0.length)
		}

		walls := []*adjacency{adj0}
		if j != i {
			walls = append(walls, adjacencies[j])
		}

		if !adj0.door && type0 != type1 {
			if type0 == roomExterior || type1 == roomExterior {
				// A centered window out of the mansion, when the wall has a
				// center tile.
				if adj0.length&1 != 0 {
					k := adj0.length / 2

					for _, a := range walls {
						p := a.origin.Add(a.dir.Scale(k))

						dir := a.dir
						if rooms[a.roomRight].roomType == roomExterior {
							dir = dir.Neg()
						}

						m.Cells.At(p.X, p.Y).Type = oneWayWindow[2*dir.X+dir.Y+2]
					}
				}
			} else if isCourtyardRoomType(type0) || isCourtyardRoomType(type1) {
				// Windows overlooking the courtyard, spaced every other tile
				// from both ends.
				kEnd := (adj0.length + 1) / 2

				for k := rng.Intn(2); k < kEnd; k += 2 {
					for _, a := range walls {
						dir := a.dir
						if isCourtyardRoomType(rooms[a.roomRight].roomType) {
							dir = dir.Neg()
						}

						windowType := oneWayWindow[2*dir.X+dir.Y+2]

						p := a.origin.Add(a.dir.Scale(k))
						q := a.origin.Add(a.dir.Scale(a.length - (k + 1)))

						m.Cells.At(p.X, p.Y).Type = windowType
						m.Cells.At(q.X, q.Y).Type = windowType
					}
				}
			}
		}

		installMasterSuiteDoor := rng.Float64() < 0.3333

		for _, a := range walls {
			if !a.door {
				continue
			}

			p := a.origin.Add(a.dir.Scale(offset))
			orientNS := a.dir.X == 0

			if orientNS {
				m.Cells.At(p.X, p.Y).Type = gamemap.DoorNS
			} else {
				m.Cells.At(p.X, p.Y).Type = gamemap.DoorEW
			}

			roomTypeLeft := rooms[a.roomLeft].roomType
			roomTypeRight := rooms[a.roomRight].roomType

			if roomTypeLeft == roomExterior || roomTypeRight == roomExterior {
				if orientNS {
					m.Cells.At(p.X, p.Y).Type = gamemap.PortcullisNS
					placeItem(m, p, gamemap.ItemPortcullisNS)
				} else {
					m.Cells.At(p.X, p.Y).Type = gamemap.PortcullisEW
					placeItem(m, p, gamemap.ItemPortcullisEW)
				}
			} else if roomTypeLeft != roomPrivateRoom || roomTypeRight != roomPrivateRoom || installMasterSuiteDoor {
				// Doorways between master-suite rooms usually stay open.
				if orientNS {
					placeItem(m, p, gamemap.ItemDoorNS)
				} else {
					placeItem(m, p, gamemap.ItemDoorEW)
				}
			}
		}
	}
}

// renderRooms lays the final floors and furnishes each room. Larger rooms
// get pillar-and-pool centerpieces; smaller ones get tables, chairs, or
// bushes depending on type.
func renderRooms(rng *rand.Rand, level int, rooms []*room, m *gamemap.Map) {
	for _, r := range rooms[1:] {
		var cellType gamemap.CellType
		switch r.roomType {
		case roomPublicCourtyard, roomPrivateCourtyard:
			cellType = gamemap.GroundGrass
		case roomPublicRoom:
			cellType = gamemap.GroundWood
		case roomPrivateRoom:
			cellType = gamemap.GroundMarble
		default:
			cellType = gamemap.GroundNormal
		}

		for x := r.posMin.X; x < r.posMax.X; x++ {
			for y := r.posMin.Y; y < r.posMax.Y; y++ {
				t := cellType
				if t == gamemap.GroundWood && level > 3 && rng.Float64() < 1.0/50.0 {
					t = gamemap.GroundWoodCreaky
				}
				m.Cells.At(x, y).Type = t
			}
		}

		if r.roomType == roomPrivateCourtyard || r.roomType == roomPrivateRoom {
			for x := r.posMin.X - 1; x < r.posMax.X+1; x++ {
				for y := r.posMin.Y - 1; y < r.posMax.Y+1; y++ {
					m.Cells.At(x, y).Inner = true
				}
			}
		}

		dx := r.posMax.X - r.posMin.X
		dy := r.posMax.Y - r.posMin.Y

		if isCourtyardRoomType(r.roomType) {
			if dx >= 5 && dy >= 5 {
				for x := r.posMin.X + 1; x < r.posMax.X-1; x++ {
					for y := r.posMin.Y + 1; y < r.posMax.Y-1; y++ {
						m.Cells.At(x, y).Type = gamemap.GroundWater
					}
				}
			} else if dx >= 2 && dy >= 2 {
				tryPlaceBush(m, r.posMin.X, r.posMin.Y)
				tryPlaceBush(m, r.posMax.X-1, r.posMin.Y)
				tryPlaceBush(m, r.posMin.X, r.posMax.Y-1)
				tryPlaceBush(m, r.posMax.X-1, r.posMax.Y-1)
			}
		} else if r.roomType == roomPublicRoom || r.roomType == roomPrivateRoom {
			switch {
			case dx >= 5 && dy >= 5:
				if r.roomType == roomPrivateRoom {
					for x := 2; x < dx-2; x++ {
						for y := 2; y < dy-2; y++ {
							m.Cells.At(r.posMin.X+x, r.posMin.Y+y).Type = gamemap.GroundWater
						}
					}
				}

				m.Cells.At(r.posMin.X+1, r.posMin.Y+1).Type = gamemap.Wall0000
				m.Cells.At(r.posMax.X-2, r.posMin.Y+1).Type = gamemap.Wall0000
				m.Cells.At(r.posMin.X+1, r.posMax.Y-2).Type = gamemap.Wall0000
				m.Cells.At(r.posMax.X-2, r.posMax.Y-2).Type = gamemap.Wall0000

			case dx == 5 && dy >= 3 && (r.roomType == roomPublicRoom || rng.Float64() < 1.0/3.0):
				for y := 1; y < dy-1; y++ {
					placeItem(m, geom.Coord{X: r.posMin.X + 1, Y: r.posMin.Y + y}, gamemap.ItemChair)
					placeItem(m, geom.Coord{X: r.posMin.X + 2, Y: r.posMin.Y + y}, gamemap.ItemTable)
					placeItem(m, geom.Coord{X: r.posMin.X + 3, Y: r.posMin.Y + y}, gamemap.ItemChair)
				}

			case dy == 5 && dx >= 3 && (r.roomType == roomPublicRoom || rng.Float64() < 1.0/3.0):
				for x := 1; x < dx-1; x++ {
					placeItem(m, geom.Coord{X: r.posMin.X + x, Y: r.posMin.Y + 1}, gamemap.ItemChair)
					placeItem(m, geom.Coord{X: r.posMin.X + x, Y: r.posMin.Y + 2}, gamemap.ItemTable)
					placeItem(m, geom.Coord{X: r.posMin.X + x, Y: r.posMin.Y + 3}, gamemap.ItemChair)
				}

			case dx > dy && dy&1 == 1 && rng.Float64() < 2.0/3.0:
				y := r.posMin.Y + dy/2
				if r.roomType == roomPublicRoom {
					tryPlaceTable(m, r.posMin.X+1, y)
					tryPlaceTable(m, r.posMax.X-2, y)
				} else {
					tryPlaceChair(m, r.posMin.X+1, y)
					tryPlaceChair(m, r.posMax.X-2, y)
				}

			case dy > dx && dx&1 == 1 && rng.Float64() < 2.0/3.0:
				x := r.posMin.X + dx/2
				if r.roomType == roomPublicRoom {
					tryPlaceTable(m, x, r.posMin.Y+1)
					tryPlaceTable(m, x, r.posMax.Y-2)
				} else {
					tryPlaceChair(m, x, r.posMin.Y+1)
					tryPlaceChair(m, x, r.posMax.Y-2)
				}

			case dx > 3 && dy > 3:
				if r.roomType == roomPublicRoom {
					tryPlaceTable(m, r.posMin.X, r.posMin.Y)
					tryPlaceTable(m, r.posMax.X-1, r.posMin.Y)
					tryPlaceTable(m, r.posMin.X, r.posMax.Y-1)
					tryPlaceTable(m, r.posMax.X-1, r.posMax.Y-1)
				} else {
					tryPlaceChair(m, r.posMin.X, r.posMin.Y)
					tryPlaceChair(m, r.posMax.X-1, r.posMin.Y)
					tryPlaceChair(m, r.posMin.X, r.posMax.Y-1)
					tryPlaceChair(m, r.posMax.X-1, r.posMax.Y-1)
				}
			}
		}
	}
}

func doorAdjacent(cells gamemap.CellGrid, x, y int) bool {
	return cells.At(x-1, y).Type >= gamemap.PortcullisNS ||
		cells.At(x+1, y).Type >= gamemap.PortcullisNS ||
		cells.At(x, y-1).Type >= gamemap.PortcullisNS ||
		cells.At(x, y+1).Type >= gamemap.PortcullisNS
}

func tryPlaceBush(m *gamemap.Map, x, y int) {
	if m.Cells.At(x, y).Type != gamemap.GroundGrass {
		return
	}
	if doorAdjacent(m.Cells, x, y) {
		return
	}
	placeItem(m, geom.Coord{X: x, Y: y}, gamemap.ItemBush)
}

func tryPlaceTable(m *gamemap.Map, x, y int) {
	if doorAdjacent(m.Cells, x, y) {
		return
	}
	placeItem(m, geom.Coord{X: x, Y: y}, gamemap.ItemTable)
}

func tryPlaceChair(m *gamemap.Map, x, y int) {
	if doorAdjacent(m.Cells, x, y) {
		return
	}
	placeItem(m, geom.Coord{X: x, Y: y}, gamemap.ItemChair)
}

func placeItem(m *gamemap.Map, pos geom.Coord, kind gamemap.ItemKind) {
	m.Items = append(m.Items, gamemap.Item{Pos: pos, Kind: kind})
}
