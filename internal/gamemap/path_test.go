package gamemap

import (
	"testing"

	"disguiser/internal/geom"
)

// openMap returns a map of bare ground with the per-cell caches already
// valid (ground costs nothing and blocks nothing).
func openMap(sizeX, sizeY int) *Map {
	return &Map{Cells: NewCellGrid(sizeX, sizeY, GroundNormal)}
}

func setWall(m *Map, x, y int) {
	cell := m.Cells.At(x, y)
	cell.Type = Wall1111
	cell.MoveCost = InfiniteCost
	cell.BlocksPlayerSight = true
	cell.BlocksSight = true
	cell.BlocksSound = true
}

func TestDistanceFieldStepCosts(t *testing.T) {
	m := openMap(11, 11)
	goal := geom.Coord{X: 5, Y: 5}

	field := m.ComputeDistancesToPosition(goal)

	cases := []struct {
		name string
		pos  geom.Coord
		want int
	}{
		{"goal itself", geom.Coord{X: 5, Y: 5}, 0},
		{"one cardinal step", geom.Coord{X: 6, Y: 5}, 2},
		{"three cardinal steps", geom.Coord{X: 8, Y: 5}, 6},
		{"one diagonal step", geom.Coord{X: 6, Y: 6}, 3},
		{"three diagonal steps", geom.Coord{X: 8, Y: 8}, 9},
		{"knight's move is cardinal plus diagonal", geom.Coord{X: 7, Y: 6}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := field.At(tc.pos); got != tc.want {
				t.Errorf("dist%v = %d, want %d", tc.pos, got, tc.want)
			}
		})
	}
}

func TestGuardMoveCostCornerCut(t *testing.T) {
	m := openMap(8, 8)
	setWall(m, 5, 4)
	setWall(m, 4, 5)

	from := geom.Coord{X: 4, Y: 4}

	if got := m.GuardMoveCost(from, geom.Coord{X: 5, Y: 5}); got != InfiniteCost {
		t.Errorf("diagonal between two walls cost = %d, want infinite", got)
	}
	if got := m.GuardMoveCost(from, geom.Coord{X: 3, Y: 3}); got != 0 {
		t.Errorf("open diagonal cost = %d, want 0", got)
	}
	if got := m.GuardMoveCost(from, geom.Coord{X: 5, Y: 4}); got != InfiniteCost {
		t.Errorf("step into wall cost = %d, want infinite", got)
	}
}

func TestGuardMoveCostWater(t *testing.T) {
	m := openMap(4, 4)
	cell := m.Cells.At(2, 2)
	cell.Type = GroundWater
	cell.MoveCost = GroundWater.MoveCost()

	if got := m.GuardMoveCost(geom.Coord{X: 1, Y: 2}, geom.Coord{X: 2, Y: 2}); got != 4096 {
		t.Errorf("step into water cost = %d, want 4096", got)
	}
}

func TestDistanceFieldDetoursAroundWalls(t *testing.T) {
	m := openMap(9, 7)
	// A wall column with a gap only at the top row.
	for y := 0; y < 6; y++ {
		setWall(m, 4, y)
	}

	goal := geom.Coord{X: 2, Y: 3}
	field := m.ComputeDistancesToPosition(goal)

	direct := 2 * 4 // what the straight walk would cost
	got := field.At(geom.Coord{X: 6, Y: 3})
	if got == InfiniteCost {
		t.Fatal("cell past the wall should be reachable through the gap")
	}
	if got <= direct {
		t.Errorf("dist past wall = %d, want > %d (forced detour)", got, direct)
	}

	// Fully sealed: no gap anywhere.
	setWall(m, 4, 6)
	field = m.ComputeDistanceField([]distState{{dist: 0, pos: goal}})
	if got := field.At(geom.Coord{X: 6, Y: 3}); got != InfiniteCost {
		t.Errorf("sealed-off cell dist = %d, want infinite", got)
	}
}

func TestClosestRegion(t *testing.T) {
	m := openMap(10, 10)

	m.PatrolRegions = []PatrolRegion{
		{Rect: geom.Rect{Min: geom.Coord{X: 1, Y: 1}, Max: geom.Coord{X: 3, Y: 3}}},
		{Rect: geom.Rect{Min: geom.Coord{X: 7, Y: 7}, Max: geom.Coord{X: 9, Y: 9}}},
	}
	for i, region := range m.PatrolRegions {
		for x := region.Rect.Min.X; x < region.Rect.Max.X; x++ {
			for y := region.Rect.Min.Y; y < region.Rect.Max.Y; y++ {
				m.Cells.At(x, y).Region = i
			}
		}
	}

	if got := m.ClosestRegion(geom.Coord{X: 4, Y: 2}); got != 0 {
		t.Errorf("ClosestRegion near region 0 = %d, want 0", got)
	}
	if got := m.ClosestRegion(geom.Coord{X: 8, Y: 5}); got != 1 {
		t.Errorf("ClosestRegion near region 1 = %d, want 1", got)
	}
	if got := m.ClosestRegion(geom.Coord{X: 8, Y: 8}); got != 1 {
		t.Errorf("ClosestRegion inside region 1 = %d, want 1", got)
	}

	// A walled-in start can't reach any region.
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx != 0 || dy != 0 {
				setWall(m, 5+dx, 5+dy)
			}
		}
	}
	if got := m.ClosestRegion(geom.Coord{X: 5, Y: 5}); got != InvalidRegion {
		t.Errorf("ClosestRegion from sealed cell = %d, want InvalidRegion", got)
	}
}
