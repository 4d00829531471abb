package gamemap

import "disguiser/internal/geom"

// InvalidRegion is the region id of cells outside every patrol region.
const InvalidRegion = -1

// Cell is the mutable per-tile state. The Blocks*/Hides/MoveCost fields are
// caches combining the tile type with any item on the tile; they are computed
// once at the end of generation.
type Cell struct {
	Type              CellType
	MoveCost          int
	Region            int
	BlocksPlayerSight bool
	BlocksSight       bool
	BlocksSound       bool
	HidesPlayer       bool
	Lit               bool
	Seen              bool
	// Inner marks the master suite's footprint, walls included.
	Inner bool
}

// CellGrid is a dense 2D grid of cells, indexed [y][x].
type CellGrid [][]Cell

// NewCellGrid returns a grid of the given extent filled with cells of type t.
func NewCellGrid(sizeX, sizeY int, t CellType) CellGrid {
	g := make(CellGrid, sizeY)
	for y := range g {
		g[y] = make([]Cell, sizeX)
		for x := range g[y] {
			g[y][x] = Cell{Type: t, Region: InvalidRegion}
		}
	}
	return g
}

// SizeX returns the grid width.
func (g CellGrid) SizeX() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// SizeY returns the grid height.
func (g CellGrid) SizeY() int { return len(g) }

// At returns a pointer to the cell at (x, y). Callers must bounds-check first.
func (g CellGrid) At(x, y int) *Cell { return &g[y][x] }

// InBounds reports whether p is within the grid.
func (g CellGrid) InBounds(p geom.Coord) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.SizeX() && p.Y < g.SizeY()
}
