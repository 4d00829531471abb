package gamemap

import (
	"testing"

	"disguiser/internal/geom"
)

func TestEarshotRadius(t *testing.T) {
	m := openMap(11, 11)
	emitter := geom.Coord{X: 5, Y: 5}

	coords := m.CoordsInEarshot(emitter, 9)

	cases := []struct {
		name string
		pos  geom.Coord
		want bool
	}{
		{"emitter", geom.Coord{X: 5, Y: 5}, true},
		{"adjacent", geom.Coord{X: 6, Y: 5}, true},
		{"distance squared 8", geom.Coord{X: 7, Y: 7}, true},
		{"distance squared 9 excluded", geom.Coord{X: 8, Y: 5}, false},
		{"far away", geom.Coord{X: 0, Y: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := coords[tc.pos]; got != tc.want {
				t.Errorf("in earshot%v = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestSoundBendsAroundWalls(t *testing.T) {
	m := openMap(11, 11)
	// Wall between emitter and listener, with open ends.
	for y := 3; y <= 7; y++ {
		setWall(m, 5, y)
	}
	emitter := geom.Coord{X: 4, Y: 5}

	// Straight through is two tiles away but walled off; around the end it
	// still fits in a big radius.
	coords := m.CoordsInEarshot(emitter, 50)
	if !coords[geom.Coord{X: 6, Y: 5}] {
		t.Error("sound should bend around the wall within budget")
	}
	if coords[geom.Coord{X: 5, Y: 5}] {
		t.Error("the wall cell itself should not carry sound")
	}

	// A tight radius can't afford the detour even though the straight-line
	// distance fits.
	coords = m.CoordsInEarshot(emitter, 5)
	if coords[geom.Coord{X: 6, Y: 5}] {
		t.Error("sound should not pass through the wall on a small budget")
	}
}

func TestGuardsInEarshot(t *testing.T) {
	m := openMap(11, 11)
	near := &Guard{Pos: geom.Coord{X: 6, Y: 5}}
	far := &Guard{Pos: geom.Coord{X: 10, Y: 10}}
	m.Guards = []*Guard{near, far}

	guards := m.GuardsInEarshot(geom.Coord{X: 5, Y: 5}, 9)

	if len(guards) != 1 || guards[0] != near {
		t.Fatalf("GuardsInEarshot = %v, want just the near guard", guards)
	}
}
