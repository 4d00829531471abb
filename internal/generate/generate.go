// Package generate builds the mansion levels: a mirror-symmetric grid of
// rooms and courtyards ringed by patrol routes, furnished, stocked with loot,
// and staffed with guards.
package generate

import (
	"math/rand"

	"disguiser/internal/gamemap"
)

// MansionMap generates the level'th mansion. Generation occasionally
// produces a mansion with no patrollable cycle, or one whose patrol graph
// splits into disconnected cycles; those are discarded and retried, and
// after 100 attempts the last result is returned regardless.
func MansionMap(rng *rand.Rand, level int) *gamemap.Map {
	for i := 0; i < 100; i++ {
		m := generateSiheyuan(rng, level)
		if len(m.PatrolRegions) > 0 && patrolGraphConnected(m) {
			return m
		}
	}

	return generateSiheyuan(rng, level)
}

// patrolGraphConnected reports whether every patrol region is reachable from
// every other by walking patrol routes.
func patrolGraphConnected(m *gamemap.Map) bool {
	reached := make([]bool, len(m.PatrolRegions))
	frontier := []int{0}
	reached[0] = true
	numReached := 1

	for len(frontier) > 0 {
		region := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, route := range m.PatrolRoutes {
			next := gamemap.InvalidRegion
			if route.Region0 == region {
				next = route.Region1
			} else if route.Region1 == region {
				next = route.Region0
			}
			if next != gamemap.InvalidRegion && !reached[next] {
				reached[next] = true
				numReached++
				frontier = append(frontier, next)
			}
		}
	}

	return numReached == len(m.PatrolRegions)
}

// generateSiheyuan builds one candidate mansion in the style of a courtyard
// house: mirrored east-west, courtyards breaking up the room grid, the
// master suite deepest from the front door.
func generateSiheyuan(rng *rand.Rand, level int) *gamemap.Map {
	sizeX := 0
	for i := 0; i < min(3, level); i++ {
		sizeX += rng.Intn(2)
	}
	sizeX *= 2
	sizeX += 3

	sizeY := 2
	if level > 0 {
		sizeY = 3
		for i := 0; i < min(4, level-1); i++ {
			sizeY += rng.Intn(2)
		}
	}

	mirrorX := true
	mirrorY := false

	inside := makeRoomGrid(sizeX, sizeY, rng)

	offsetX, offsetY := offsetWalls(mirrorX, mirrorY, inside, rng)

	cells := plotWalls(inside, offsetX, offsetY)

	fixupWalls(cells)

	m := &gamemap.Map{Cells: cells}

	rooms, adjacencies, posStart := createExits(
		rng, level, mirrorX, mirrorY, inside, offsetX, offsetY, m)

	m.PosStart = posStart

	if level > 1 {
		placeOutfits(rng, rooms, m)
	}

	placeLoot(rng, rooms, adjacencies, m)

	placeExteriorBushes(rng, m)
	placeFrontPillars(m)

	if level > 0 {
		placeGuardsByKind(rng, level, rooms, m, gamemap.GuardInner)
		placeGuardsByKind(rng, level, rooms, m, gamemap.GuardOuter)
	}

	markExteriorSeen(m)

	cacheCellInfo(m)

	for _, item := range m.Items {
		if item.Kind == gamemap.ItemCoin {
			m.TotalLoot++
		}
	}

	return m
}
