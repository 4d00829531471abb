package geom

// Coord is a 2D integer vector, used both as a world-tile position and as a
// displacement. All arithmetic is exact integer math.
type Coord struct {
	X, Y int
}

// Add returns c + d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

// Sub returns c - d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{c.X - d.X, c.Y - d.Y}
}

// Neg returns -c.
func (c Coord) Neg() Coord {
	return Coord{-c.X, -c.Y}
}

// Scale returns c scaled by the integer factor k.
func (c Coord) Scale(k int) Coord {
	return Coord{c.X * k, c.Y * k}
}

// Mul returns the componentwise product of c and d.
func (c Coord) Mul(d Coord) Coord {
	return Coord{c.X * d.X, c.Y * d.Y}
}

// Dot returns the dot product of c and d.
func (c Coord) Dot(d Coord) int {
	return c.X*d.X + c.Y*d.Y
}

// LengthSq returns the squared Euclidean length of c.
func (c Coord) LengthSq() int {
	return c.X*c.X + c.Y*c.Y
}
