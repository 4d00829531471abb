package geom

import "testing"

func TestCoordArithmetic(t *testing.T) {
	a := Coord{X: 3, Y: -2}
	b := Coord{X: -1, Y: 5}

	if got := a.Add(b); got != (Coord{X: 2, Y: 3}) {
		t.Errorf("Add = %v, want {2 3}", got)
	}
	if got := a.Sub(b); got != (Coord{X: 4, Y: -7}) {
		t.Errorf("Sub = %v, want {4 -7}", got)
	}
	if got := a.Neg(); got != (Coord{X: -3, Y: 2}) {
		t.Errorf("Neg = %v, want {-3 2}", got)
	}
	if got := a.Scale(3); got != (Coord{X: 9, Y: -6}) {
		t.Errorf("Scale = %v, want {9 -6}", got)
	}
	if got := a.Mul(b); got != (Coord{X: -3, Y: -10}) {
		t.Errorf("Mul = %v, want {-3 -10}", got)
	}
	if got := a.Dot(b); got != -13 {
		t.Errorf("Dot = %d, want -13", got)
	}
	if got := a.LengthSq(); got != 13 {
		t.Errorf("LengthSq = %d, want 13", got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{Min: Coord{X: 1, Y: 2}, Max: Coord{X: 4, Y: 6}}

	if got := r.Size(); got != (Coord{X: 3, Y: 4}) {
		t.Errorf("Size = %v, want {3 4}", got)
	}

	cases := []struct {
		name string
		p    Coord
		want bool
	}{
		{"interior", Coord{X: 2, Y: 3}, true},
		{"min corner inclusive", Coord{X: 1, Y: 2}, true},
		{"max corner exclusive", Coord{X: 4, Y: 6}, false},
		{"east edge exclusive", Coord{X: 4, Y: 3}, false},
		{"outside", Coord{X: 0, Y: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}
