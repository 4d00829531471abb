package geom

// Rect is an axis-aligned rectangle of cells. Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Coord
}

// Size returns the rectangle's width and height as a Coord.
func (r Rect) Size() Coord {
	return r.Max.Sub(r.Min)
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Coord) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}
