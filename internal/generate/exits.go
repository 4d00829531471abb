package generate

import (
	"math/rand"

	"disguiser/internal/gamemap"
	"disguiser/internal/geom"
)

type roomType uint8

const (
	roomExterior roomType = iota
	roomPublicCourtyard
	roomPublicRoom
	roomPrivateCourtyard
	roomPrivateRoom
)

func isCourtyardRoomType(t roomType) bool {
	return t == roomPublicCourtyard || t == roomPrivateCourtyard
}

type room struct {
	roomType     roomType
	group        int
	depth        int
	deadEnd      bool
	patroller    gamemap.GuardKind
	hasPatroller bool
	posMin       geom.Coord
	posMax       geom.Coord
	edges        []int
}

// adjacency is one shared wall segment between two rooms. Mirror-partner
// segments reference each other through nextMatching so decisions made on one
// side of the mansion repeat on the other.
type adjacency struct {
	origin       geom.Coord
	dir          geom.Coord
	length       int
	roomLeft     int
	roomRight    int
	nextMatching int
	door         bool
}

// createExits builds the room and adjacency graphs from the plotted walls,
// connects the rooms, assigns room types, lays out patrol routes, and
// decorates walls and floors. Returns the rooms, adjacencies, and the
// player's start position outside the front door.
func createExits(
	rng *rand.Rand,
	level int,
	mirrorX, mirrorY bool,
	inside boolGrid,
	offsetX, offsetY intGrid,
	m *gamemap.Map,
) ([]*room, []*adjacency, geom.Coord) {
	roomsX := len(inside)
	roomsY := len(inside[0])

	roomIndex := newIntGrid(roomsX, roomsY, 0)
	var rooms []*room

	// Room 0 is the exterior surrounding the mansion.

	rooms = append(rooms, &room{
		roomType: roomExterior,
		deadEnd:  true,
	})

	for rx := 0; rx < roomsX; rx++ {
		for ry := 0; ry < roomsY; ry++ {
			groupIndex := len(rooms)
			roomIndex[rx][ry] = groupIndex

			t := roomPublicCourtyard
			if inside[rx][ry] {
				t = roomPublicRoom
			}

			rooms = append(rooms, &room{
				roomType: t,
				group:    groupIndex,
				posMin:   geom.Coord{X: offsetX[rx][ry] + 1, Y: offsetY[rx][ry] + 1},
				posMax:   geom.Coord{X: offsetX[rx+1][ry], Y: offsetY[rx][ry+1]},
			})
		}
	}

	adjacencies := computeAdjacencies(mirrorX, mirrorY, inside, offsetX, offsetY, roomIndex)
	storeAdjacenciesInRooms(adjacencies, rooms)

	posStart := connectRooms(rng, rooms, adjacencies)

	assignRoomTypes(roomIndex, adjacencies, rooms)

	generatePatrolRoutes(m, rooms, adjacencies)

	renderWalls(rng, rooms, adjacencies, m)

	renderRooms(rng, level, rooms, m)

	return rooms, adjacencies, posStart
}

func computeAdjacencies(
	mirrorX, mirrorY bool,
	inside boolGrid,
	offsetX, offsetY intGrid,
	roomIndex intGrid,
) []*adjacency {
	roomsX := len(inside)
	roomsY := len(inside[0])

	var adjacencies []*adjacency

	addAdj := func(a adjacency) int {
		i := len(adjacencies)
		a.nextMatching = i
		adjacencies = append(adjacencies, &a)
		return i
	}

	// East-west walls, bottom row to top row.

	{
		var adjacencyRows [][]int

		{
			var adjacencyRow []int
			ry := 0

			for rx := 0; rx < roomsX; rx++ {
				x0 := offsetX[rx][ry]
				x1 := offsetX[rx+1][ry]
				y := offsetY[rx][ry]

				adjacencyRow = append(adjacencyRow, addAdj(adjacency{
					origin:    geom.Coord{X: x0 + 1, Y: y},
					dir:       geom.Coord{X: 1, Y: 0},
					length:    x1 - (x0 + 1),
					roomLeft:  roomIndex[rx][ry],
					roomRight: 0,
				}))
			}

			adjacencyRows = append(adjacencyRows, adjacencyRow)
		}

		for ry := 1; ry < roomsY; ry++ {
			var adjacencyRow []int

			for rx := 0; rx < roomsX; rx++ {
				x0Upper := offsetX[rx][ry]
				x0Lower := offsetX[rx][ry-1]
				x1Upper := offsetX[rx+1][ry]
				x1Lower := offsetX[rx+1][ry-1]
				x0 := max(x0Lower, x0Upper)
				x1 := min(x1Lower, x1Upper)
				y := offsetY[rx][ry]

				if rx > 0 && x0Lower-x0Upper > 1 {
					adjacencyRow = append(adjacencyRow, addAdj(adjacency{
						origin:    geom.Coord{X: x0Upper + 1, Y: y},
						dir:       geom.Coord{X: 1, Y: 0},
						length:    x0Lower - (x0Upper + 1),
						roomLeft:  roomIndex[rx][ry],
						roomRight: roomIndex[rx-1][ry-1],
					}))
				}

				if x1-x0 > 1 {
					adjacencyRow = append(adjacencyRow, addAdj(adjacency{
						origin:    geom.Coord{X: x0 + 1, Y: y},
						dir:       geom.Coord{X: 1, Y: 0},
						length:    x1 - (x0 + 1),
						roomLeft:  roomIndex[rx][ry],
						roomRight: roomIndex[rx][ry-1],
					}))
				}

				if rx+1 < roomsX && x1Upper-x1Lower > 1 {
					adjacencyRow = append(adjacencyRow, addAdj(adjacency{
						origin:    geom.Coord{X: x1Lower + 1, Y: y},
						dir:       geom.Coord{X: 1, Y: 0},
						length:    x1Upper - (x1Lower + 1),
						roomLeft:  roomIndex[rx][ry],
						roomRight: roomIndex[rx+1][ry-1],
					}))
				}
			}

			adjacencyRows = append(adjacencyRows, adjacencyRow)
		}

		{
			var adjacencyRow []int
			ry := roomsY

			for rx := 0; rx < roomsX; rx++ {
				x0 := offsetX[rx][ry-1]
				x1 := offsetX[rx+1][ry-1]
				y := offsetY[rx][ry]

				adjacencyRow = append(adjacencyRow, addAdj(adjacency{
					origin:    geom.Coord{X: x0 + 1, Y: y},
					dir:       geom.Coord{X: 1, Y: 0},
					length:    x1 - (x0 + 1),
					roomLeft:  0,
					roomRight: roomIndex[rx][ry-1],
				}))
			}

			adjacencyRows = append(adjacencyRows, adjacencyRow)
		}

		if mirrorX {
			for _, row := range adjacencyRows {
				for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
					pairMirrored(adjacencies, row[i], row[j])
				}
			}
		}

		if mirrorY {
			for ry0, ry1 := 0, len(adjacencyRows)-1; ry0 < ry1; ry0, ry1 = ry0+1, ry1-1 {
				row0 := adjacencyRows[ry0]
				row1 := adjacencyRows[ry1]
				for i := range row0 {
					pairMatching(adjacencies, row0[i], row1[i])
				}
			}
		}
	}

	// North-south walls, west column to east column.

	{
		var adjacencyRows [][]int

		{
			var adjacencyRow []int
			rx := 0

			for ry := 0; ry < roomsY; ry++ {
				y0 := offsetY[rx][ry]
				y1 := offsetY[rx][ry+1]
				x := offsetX[rx][ry]

				adjacencyRow = append(adjacencyRow, addAdj(adjacency{
					origin:    geom.Coord{X: x, Y: y0 + 1},
					dir:       geom.Coord{X: 0, Y: 1},
					length:    y1 - (y0 + 1),
					roomLeft:  0,
					roomRight: roomIndex[rx][ry],
				}))
			}

			adjacencyRows = append(adjacencyRows, adjacencyRow)
		}

		for rx := 1; rx < roomsX; rx++ {
			var adjacencyRow []int

			for ry := 0; ry < roomsY; ry++ {
				y0Left := offsetY[rx-1][ry]
				y0Right := offsetY[rx][ry]
				y1Left := offsetY[rx-1][ry+1]
				y1Right := offsetY[rx][ry+1]
				y0 := max(y0Left, y0Right)
				y1 := min(y1Left, y1Right)
				x := offsetX[rx][ry]

				if ry > 0 && y0Left-y0Right > 1 {
					adjacencyRow = append(adjacencyRow, addAdj(adjacency{
						origin:    geom.Coord{X: x, Y: y0Right + 1},
						dir:       geom.Coord{X: 0, Y: 1},
						length:    y0Left - (y0Right + 1),
						roomLeft:  roomIndex[rx-1][ry-1],
						roomRight: roomIndex[rx][ry],
					}))
				}

				if y1-y0 > 1 {
					adjacencyRow = append(adjacencyRow, addAdj(adjacency{
						origin:    geom.Coord{X: x, Y: y0 + 1},
						dir:       geom.Coord{X: 0, Y: 1},
						length:    y1 - (y0 + 1),
						roomLeft:  roomIndex[rx-1][ry],
						roomRight: roomIndex[rx][ry],
					}))
				}

				if ry+1 < roomsY && y1Right-y1Left > 1 {
					adjacencyRow = append(adjacencyRow, addAdj(adjacency{
						origin:    geom.Coord{X: x, Y: y1Left + 1},
						dir:       geom.Coord{X: 0, Y: 1},
						length:    y1Right - (y1Left + 1),
						roomLeft:  roomIndex[rx-1][ry+1],
						roomRight: roomIndex[rx][ry],
					}))
				}
			}

			adjacencyRows = append(adjacencyRows, adjacencyRow)
		}

		{
			var adjacencyRow []int
			rx := roomsX

			for ry := 0; ry < roomsY; ry++ {
				y0 := offsetY[rx-1][ry]
				y1 := offsetY[rx-1][ry+1]
				x := offsetX[rx][ry]

				adjacencyRow = append(adjacencyRow, addAdj(adjacency{
					origin:    geom.Coord{X: x, Y: y0 + 1},
					dir:       geom.Coord{X: 0, Y: 1},
					length:    y1 - (y0 + 1),
					roomLeft:  roomIndex[rx-1][ry],
					roomRight: 0,
				}))
			}

			adjacencyRows = append(adjacencyRows, adjacencyRow)
		}

		if mirrorY {
			for _, row := range adjacencyRows {
				n := len(row) / 2
				for i := 0; i < n; i++ {
					pairMirrored(adjacencies, row[i], row[len(row)-1-i])
				}
			}
		}

		if mirrorX {
			for ry0, ry1 := 0, len(adjacencyRows)-1; ry0 < ry1; ry0, ry1 = ry0+1, ry1-1 {
				row0 := adjacencyRows[ry0]
				row1 := adjacencyRows[ry1]
				for i := range row0 {
					pairMatching(adjacencies, row0[i], row1[i])
				}
			}
		}
	}

	return adjacencies
}

// pairMirrored links two adjacencies as mirror partners and flips the second
// to run the opposite direction, so the same offset lands at mirrored
// positions on both.
func pairMirrored(adjacencies []*adjacency, i0, i1 int) {
	adjacencies[i0].nextMatching = i1
	adjacencies[i1].nextMatching = i0

	a1 := adjacencies[i1]
	a1.origin = a1.origin.Add(a1.dir.Scale(a1.length - 1))
	a1.dir = a1.dir.Neg()
	a1.roomLeft, a1.roomRight = a1.roomRight, a1.roomLeft
}

func pairMatching(adjacencies []*adjacency, i0, i1 int) {
	adjacencies[i0].nextMatching = i1
	adjacencies[i1].nextMatching = i0
}

func storeAdjacenciesInRooms(adjacencies []*adjacency, rooms []*room) {
	for i, adj := range adjacencies {
		rooms[adj.roomLeft].edges = append(rooms[adj.roomLeft].edges, i)
		rooms[adj.roomRight].edges = append(rooms[adj.roomRight].edges, i)
	}
}

// getEdgeSets groups each adjacency with its mirror partner and shuffles the
// groups, so door placement is random but stays symmetric.
func getEdgeSets(rng *rand.Rand, adjacencies []*adjacency) [][]int {
	var edgeSets [][]int

	for i, adj := range adjacencies {
		j := adj.nextMatching
		if j > i {
			edgeSets = append(edgeSets, []int{i, j})
		} else if j == i {
			edgeSets = append(edgeSets, []int{i})
		}
	}

	rng.Shuffle(len(edgeSets), func(i, j int) {
		edgeSets[i], edgeSets[j] = edgeSets[j], edgeSets[i]
	})

	return edgeSets
}

// connectRooms decides which adjacencies get doors: courtyards all connect,
// then interior rooms connect with a spanning set plus a 40% chance of extra
// doors, then interiors connect to courtyards the same way, and finally one
// front door opens to the exterior on the south side.
func connectRooms(rng *rand.Rand, rooms []*room, adjacencies []*adjacency) geom.Coord {
	edgeSets := getEdgeSets(rng, adjacencies)

	// Connect all adjacent courtyard rooms together.

	for _, adj := range adjacencies {
		i0 := adj.roomLeft
		i1 := adj.roomRight
		if rooms[i0].roomType != roomPublicCourtyard || rooms[i1].roomType != roomPublicCourtyard {
			continue
		}

		adj.door = true
		joinGroups(rooms, rooms[i0].group, rooms[i1].group)
	}

	// Connect all the interior rooms with doors.

	for _, edgeSet := range edgeSets {
		addedDoor := false

		{
			adj := adjacencies[edgeSet[0]]
			i0 := adj.roomLeft
			i1 := adj.roomRight

			if rooms[i0].roomType != roomPublicRoom || rooms[i1].roomType != roomPublicRoom {
				continue
			}

			group0 := rooms[i0].group
			group1 := rooms[i1].group

			if group0 != group1 || rng.Float64() < 0.4 {
				adj.door = true
				addedDoor = true
				joinGroups(rooms, group0, group1)
			}
		}

		if addedDoor {
			for _, i := range edgeSet[1:] {
				adj := adjacencies[i]
				adj.door = true
				joinGroups(rooms, rooms[adj.roomLeft].group, rooms[adj.roomRight].group)
			}
		}
	}

	// Create doors between the interiors and the courtyard areas.

	for _, edgeSet := range edgeSets {
		addedDoor := false

		{
			adj := adjacencies[edgeSet[0]]
			i0 := adj.roomLeft
			i1 := adj.roomRight

			roomType0 := rooms[i0].roomType
			roomType1 := rooms[i1].roomType

			if roomType0 == roomType1 {
				continue
			}
			if roomType0 == roomExterior || roomType1 == roomExterior {
				continue
			}

			group0 := rooms[i0].group
			group1 := rooms[i1].group

			if group0 != group1 || rng.Float64() < 0.4 {
				adj.door = true
				addedDoor = true
				joinGroups(rooms, group0, group1)
			}
		}

		if addedDoor {
			for _, i := range edgeSet[1:] {
				adj := adjacencies[i]
				adj.door = true
				joinGroups(rooms, rooms[adj.roomLeft].group, rooms[adj.roomRight].group)
			}
		}
	}

	// Create the door to the surrounding exterior. It must be on the south
	// side, and the player starts just outside it.

	var posStart geom.Coord

	{
		i := frontDoorAdjacencyIndex(rooms, adjacencies, edgeSets)

		posStart.X = adjacencies[i].origin.X + adjacencies[i].dir.X*(adjacencies[i].length/2)
		posStart.Y = outerBorder - 1

		adjacencies[i].door = true

		// Break symmetry if the door is off center.

		j := adjacencies[i].nextMatching
		if j != i {
			adjacencies[j].nextMatching = j
			adjacencies[i].nextMatching = i
		}
	}

	return posStart
}

func frontDoorAdjacencyIndex(rooms []*room, adjacencies []*adjacency, edgeSets [][]int) int {
	for _, edgeSet := range edgeSets {
		for _, i := range edgeSet {
			adj := adjacencies[i]

			if adj.dir.X == 0 {
				continue
			}
			if adj.nextMatching > i {
				continue
			}

			if adj.nextMatching == i {
				if rooms[adj.roomRight].roomType != roomExterior {
					continue
				}
			} else {
				if rooms[adj.roomLeft].roomType != roomExterior {
					continue
				}
			}

			return i
		}
	}

	return 0
}

func joinGroups(rooms []*room, groupFrom, groupTo int) {
	if groupFrom == groupTo {
		return
	}
	for _, r := range rooms {
		if r.group == groupFrom {
			r.group = groupTo
		}
	}
}

// assignRoomTypes runs a breadth-first scan from the front row of rooms and
// converts the deepest quarter of the mansion into the master suite.
func assignRoomTypes(roomIndex intGrid, adjacencies []*adjacency, rooms []*room) {
	unvisited := len(rooms)

	rooms[0].depth = 0
	for _, r := range rooms[1:] {
		r.depth = unvisited
	}

	var roomsToVisit []int
	for x := 0; x < len(roomIndex); x++ {
		iRoom := roomIndex[x][0]
		rooms[iRoom].depth = 1
		roomsToVisit = append(roomsToVisit, iRoom)
	}

	for iiRoom := 0; iiRoom < len(roomsToVisit); iiRoom++ {
		iRoom := roomsToVisit[iiRoom]

		for _, iAdj := range rooms[iRoom].edges {
			adj := adjacencies[iAdj]
			if !adj.door {
				continue
			}

			iRoomNeighbor := adj.roomRight
			if adj.roomLeft != iRoom {
				iRoomNeighbor = adj.roomLeft
			}

			if rooms[iRoomNeighbor].depth == unvisited {
				rooms[iRoomNeighbor].depth = rooms[iRoom].depth + 1
				roomsToVisit = append(roomsToVisit, iRoomNeighbor)
			}
		}
	}

	maxDepth := 0
	for _, r := range rooms {
		maxDepth = max(maxDepth, r.depth)
	}

	targetNumMasterRooms := (len(roomIndex) * len(roomIndex[0])) / 4
	numMasterRooms := 0

	for depth := maxDepth; depth > 0; depth-- {
		for _, r := range rooms {
			if r.roomType != roomPublicRoom && r.roomType != roomPublicCourtyard {
				continue
			}
			if r.depth != depth {
				continue
			}

			if r.roomType == roomPublicRoom {
				r.roomType = roomPrivateRoom
				numMasterRooms++
			} else {
				r.roomType = roomPrivateCourtyard
			}
		}

		if numMasterRooms >= targetNumMasterRooms {
			break
		}
	}

	// Public courtyards adjacent to private courtyards become private too.

	for {
		changed := false

		for iRoom, r := range rooms {
			if r.roomType != roomPublicCourtyard {
				continue
			}

			for _, iAdj := range r.edges {
				adj := adjacencies[iAdj]

				iRoomOther := adj.roomLeft
				if iRoomOther == iRoom {
					iRoomOther = adj.roomRight
				}

				if rooms[iRoomOther].roomType == roomPrivateCourtyard {
					r.roomType = roomPrivateCourtyard
					changed = true
					break
				}
			}
		}

		if !changed {
			break
		}
	}
}
