package generate

import (
	"math/rand"
	"reflect"
	"testing"

	"disguiser/internal/gamemap"
	"pgregory.net/rapid"
)

func TestMansionMapDeterministic(t *testing.T) {
	for _, level := range []int{0, 1, 3, 6} {
		m0 := MansionMap(rand.New(rand.NewSource(12345)), level)
		m1 := MansionMap(rand.New(rand.NewSource(12345)), level)

		if !reflect.DeepEqual(m0.Cells, m1.Cells) {
			t.Fatalf("level %d: cells differ between identical seeds", level)
		}
		if !reflect.DeepEqual(m0.Items, m1.Items) {
			t.Fatalf("level %d: items differ between identical seeds", level)
		}
		if !reflect.DeepEqual(m0.Guards, m1.Guards) {
			t.Fatalf("level %d: guards differ between identical seeds", level)
		}
		if m0.PosStart != m1.PosStart {
			t.Fatalf("level %d: start position differs between identical seeds", level)
		}
	}
}

func TestLevelZeroHasNoGuards(t *testing.T) {
	m := MansionMap(rand.New(rand.NewSource(99)), 0)
	if len(m.Guards) != 0 {
		t.Fatalf("level 0 spawned %d guards, want none", len(m.Guards))
	}
}

func TestPatrolRegions(t *testing.T) {
	m := MansionMap(rand.New(rand.NewSource(7)), 3)

	if len(m.PatrolRegions) == 0 {
		t.Fatal("a guarded mansion needs patrol regions")
	}

	for i, region := range m.PatrolRegions {
		r := region.Rect
		if r.Min.X < 0 || r.Min.Y < 0 || r.Max.X > m.Cells.SizeX() || r.Max.Y > m.Cells.SizeY() {
			t.Fatalf("region %d rect %v out of bounds", i, r)
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			for y := r.Min.Y; y < r.Max.Y; y++ {
				if got := m.Cells.At(x, y).Region; got != i {
					t.Fatalf("cell (%d,%d) region = %d, want %d", x, y, got, i)
				}
			}
		}
	}

	for _, route := range m.PatrolRoutes {
		if route.Region0 < 0 || route.Region0 >= len(m.PatrolRegions) ||
			route.Region1 < 0 || route.Region1 >= len(m.PatrolRegions) {
			t.Fatalf("route %v references a region that doesn't exist", route)
		}
	}
}

func TestPatrolGraphConnected(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		for _, level := range []int{1, 2, 4} {
			m := MansionMap(rand.New(rand.NewSource(seed)), level)

			start := m.ClosestRegion(m.PosStart)
			if start == gamemap.InvalidRegion {
				t.Fatalf("seed %d level %d: no region reachable from the start", seed, level)
			}

			// Walk the route graph; a guard patrolling from the entrance
			// must be able to wander into every region.
			reached := make([]bool, len(m.PatrolRegions))
			reached[start] = true
			frontier := []int{start}
			numReached := 1

			for len(frontier) > 0 {
				region := frontier[len(frontier)-1]
				frontier = frontier[:len(frontier)-1]

				for _, route := range m.PatrolRoutes {
					for _, next := range [2]int{route.Region0, route.Region1} {
						if (route.Region0 == region || route.Region1 == region) && !reached[next] {
							reached[next] = true
							numReached++
							frontier = append(frontier, next)
						}
					}
				}
			}

			if numReached != len(m.PatrolRegions) {
				t.Errorf("seed %d level %d: only %d of %d patrol regions reachable from region %d",
					seed, level, numReached, len(m.PatrolRegions), start)
			}
		}
	}
}

func TestGuardPlacement(t *testing.T) {
	m := MansionMap(rand.New(rand.NewSource(21)), 5)

	if len(m.Guards) == 0 {
		t.Fatal("level 5 should have guards")
	}

	seen := make(map[[2]int]bool)
	for _, g := range m.Guards {
		if g.Pos.Sub(m.PosStart).LengthSq() < 64 {
			t.Errorf("guard at %v spawned too close to the start %v", g.Pos, m.PosStart)
		}
		cellType := m.Cells.At(g.Pos.X, g.Pos.Y).Type
		if cellType != gamemap.GroundWood && cellType != gamemap.GroundMarble {
			t.Errorf("guard at %v stands on cell type %d, want indoor flooring", g.Pos, cellType)
		}
		key := [2]int{g.Pos.X, g.Pos.Y}
		if seen[key] {
			t.Errorf("two guards spawned on %v", g.Pos)
		}
		seen[key] = true

		if g.Mode != gamemap.Patrol {
			t.Errorf("guard at %v spawned in mode %d, want Patrol", g.Pos, g.Mode)
		}
	}
}

func TestStartPosition(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		m := MansionMap(rand.New(rand.NewSource(seed)), 2)

		if m.PosStart.Y != outerBorder-1 {
			t.Fatalf("seed %d: start y = %d, want %d (just outside the front door)", seed, m.PosStart.Y, outerBorder-1)
		}
		if m.PosStart.X < 0 || m.PosStart.X >= m.Cells.SizeX() {
			t.Fatalf("seed %d: start x = %d out of bounds", seed, m.PosStart.X)
		}
		if gamemap.TileDef(m.Cells.At(m.PosStart.X, m.PosStart.Y).Type).BlocksPlayer {
			t.Fatalf("seed %d: start cell is not walkable", seed)
		}
	}
}

func TestMansionInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		level := rapid.IntRange(0, 6).Draw(t, "level")

		m := MansionMap(rand.New(rand.NewSource(seed)), level)

		sizeX, sizeY := m.Cells.SizeX(), m.Cells.SizeY()

		if !m.Cells.InBounds(m.PosStart) {
			t.Fatalf("start %v out of %dx%d map", m.PosStart, sizeX, sizeY)
		}

		itemsAt := make(map[[2]int]bool)
		coins := 0
		for _, item := range m.Items {
			if item.Pos.X < 0 || item.Pos.Y < 0 || item.Pos.X >= sizeX || item.Pos.Y >= sizeY {
				t.Fatalf("item %v out of bounds", item)
			}
			key := [2]int{item.Pos.X, item.Pos.Y}
			if itemsAt[key] {
				t.Fatalf("two items share %v", item.Pos)
			}
			itemsAt[key] = true
			if item.Kind == gamemap.ItemCoin {
				coins++
			}
		}
		if coins != m.TotalLoot {
			t.Fatalf("TotalLoot = %d but %d coins placed", m.TotalLoot, coins)
		}

		for y := 0; y < sizeY; y++ {
			for x := 0; x < sizeX; x++ {
				if region := m.Cells.At(x, y).Region; region != gamemap.InvalidRegion &&
					(region < 0 || region >= len(m.PatrolRegions)) {
					t.Fatalf("cell (%d,%d) region %d out of range", x, y, region)
				}
			}
		}

		for _, g := range m.Guards {
			if !m.Cells.InBounds(g.Pos) {
				t.Fatalf("guard %v out of bounds", g.Pos)
			}
			if m.Cells.At(g.Pos.X, g.Pos.Y).Type.IsWall() {
				t.Fatalf("guard spawned inside a wall at %v", g.Pos)
			}
		}
	})
}
