package generate

import (
	"disguiser/internal/gamemap"
	"disguiser/internal/geom"
)

// nonDeadEndRooms marks which accepted rooms survive repeated trimming of
// dead ends. The survivors form cycles guards can patrol without doubling
// back.
func nonDeadEndRooms(rooms []*room, adjacencies []*adjacency, acceptRoom func(*room) bool) []bool {
	includeRoom := make([]bool, len(rooms))
	for i, r := range rooms {
		includeRoom[i] = acceptRoom(r)
	}

	for {
		trimmed := false

		for iRoom, r := range rooms {
			if !includeRoom[iRoom] {
				continue
			}

			numExits := 0
			for _, iAdj := range r.edges {
				adj := adjacencies[iAdj]
				if !adj.door {
					continue
				}

				iRoomOther := adj.roomLeft
				if iRoomOther == iRoom {
					iRoomOther = adj.roomRight
				}

				if includeRoom[iRoomOther] {
					numExits++
				}
			}

			if numExits < 2 {
				includeRoom[iRoom] = false
				trimmed = true
			}
		}

		if !trimmed {
			break
		}
	}

	return includeRoom
}

// generatePatrolRoutes derives the patrol regions and their route graph from
// the room graph. Rooms trimmed as dead ends get no region; rooms only the
// master-suite cycle reaches are patrolled by inner guards.
func generatePatrolRoutes(m *gamemap.Map, rooms []*room, adjacencies []*adjacency) {
	generalNonDeadEnd := nonDeadEndRooms(rooms, adjacencies, func(r *room) bool {
		return r.roomType != roomExterior
	})
	outerNonDeadEnd := nonDeadEndRooms(rooms, adjacencies, func(r *room) bool {
		return r.roomType != roomExterior &&
			r.roomType != roomPrivateRoom &&
			r.roomType != roomPrivateCourtyard
	})

	roomPatrolRegion := make([]int, len(rooms))
	for i := range roomPatrolRegion {
		roomPatrolRegion[i] = gamemap.InvalidRegion
	}

	for iRoom, r := range rooms {
		r.deadEnd = !generalNonDeadEnd[iRoom]
		if generalNonDeadEnd[iRoom] {
			inner := !outerNonDeadEnd[iRoom]
			if inner {
				r.patroller = gamemap.GuardInner
			} else {
				r.patroller = gamemap.GuardOuter
			}
			r.hasPatroller = true
			roomPatrolRegion[iRoom] = addPatrolRegion(m, r.posMin, r.posMax, inner)
		}
	}

	for _, adj := range adjacencies {
		if !adj.door {
			continue
		}

		region0 := roomPatrolRegion[adj.roomLeft]
		region1 := roomPatrolRegion[adj.roomRight]

		if region0 == gamemap.InvalidRegion || region1 == gamemap.InvalidRegion {
			continue
		}

		m.PatrolRoutes = append(m.PatrolRoutes, gamemap.PatrolRoute{Region0: region0, Region1: region1})
	}
}

func addPatrolRegion(m *gamemap.Map, posMin, posMax geom.Coord, inner bool) int {
	iPatrolRegion := len(m.PatrolRegions)

	m.PatrolRegions = append(m.PatrolRegions, gamemap.PatrolRegion{
		Rect:  geom.Rect{Min: posMin, Max: posMax},
		Inner: inner,
	})

	for x := posMin.X; x < posMax.X; x++ {
		for y := posMin.Y; y < posMax.Y; y++ {
			m.Cells.At(x, y).Region = iPatrolRegion
		}
	}

	return iPatrolRegion
}
