package gamemap

import (
	"testing"

	"disguiser/internal/geom"
)

func seenCount(m *Map) int {
	n := 0
	for y := range m.Cells {
		for x := range m.Cells[y] {
			if m.Cells[y][x].Seen {
				n++
			}
		}
	}
	return n
}

func TestVisibilityOpenGround(t *testing.T) {
	m := openMap(11, 11)

	m.RecomputeVisibility(geom.Coord{X: 5, Y: 5})

	// Everything is within sight radius and nothing blocks.
	if got, want := seenCount(m), 11*11; got != want {
		t.Errorf("seen cells = %d, want %d", got, want)
	}
}

func TestVisibilityStopsAtWalls(t *testing.T) {
	m := openMap(11, 11)
	// A wall column through the middle.
	for y := 0; y < 11; y++ {
		setWall(m, 5, y)
	}

	m.RecomputeVisibility(geom.Coord{X: 2, Y: 5})

	if !m.Cells.At(5, 5).Seen {
		t.Error("the wall itself should be seen")
	}
	for y := 0; y < 11; y++ {
		if m.Cells.At(8, y).Seen {
			t.Fatalf("cell (8,%d) behind the wall should not be seen", y)
		}
	}
}

func TestVisibilityRadiusCutoff(t *testing.T) {
	m := openMap(100, 3)

	m.RecomputeVisibility(geom.Coord{X: 0, Y: 1})

	if !m.Cells.At(19, 1).Seen {
		t.Error("cell inside sight radius should be seen")
	}
	if m.Cells.At(90, 1).Seen {
		t.Error("cell far beyond sight radius should not be seen")
	}
}

func TestVisibilityIsMonotonic(t *testing.T) {
	m := openMap(30, 30)
	for y := 0; y < 30; y++ {
		setWall(m, 15, y)
	}

	m.RecomputeVisibility(geom.Coord{X: 5, Y: 5})
	before := seenCount(m)

	// Looking from the far side reveals more but never forgets.
	m.RecomputeVisibility(geom.Coord{X: 25, Y: 25})
	after := seenCount(m)

	if after < before {
		t.Errorf("seen count dropped from %d to %d", before, after)
	}
	if !m.Cells.At(5, 5).Seen {
		t.Error("previously seen cell was forgotten")
	}
}

func TestPlayerCanSeeInDirection(t *testing.T) {
	m := openMap(5, 5)
	setWall(m, 3, 2)

	viewer := geom.Coord{X: 2, Y: 2}

	if m.PlayerCanSeeInDirection(viewer, geom.Coord{X: 1, Y: 0}) {
		t.Error("sight east should be blocked by the wall")
	}
	if !m.PlayerCanSeeInDirection(viewer, geom.Coord{X: -1, Y: 0}) {
		t.Error("sight west should be clear")
	}

	// Off the map edge counts as visible.
	if !m.PlayerCanSeeInDirection(geom.Coord{X: 0, Y: 2}, geom.Coord{X: -1, Y: 0}) {
		t.Error("sight off the map edge should be clear")
	}
}
