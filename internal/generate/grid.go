package generate

import (
	"math/rand"

	"disguiser/internal/gamemap"
)

const outerBorder = 3

const (
	roomSizeX = 5
	roomSizeY = 5
)

// boolGrid and intGrid are small [x][y]-indexed scratch grids used during
// generation.
type boolGrid [][]bool

func newBoolGrid(sizeX, sizeY int, v bool) boolGrid {
	g := make(boolGrid, sizeX)
	for x := range g {
		g[x] = make([]bool, sizeY)
		for y := range g[x] {
			g[x][y] = v
		}
	}
	return g
}

type intGrid [][]int

func newIntGrid(sizeX, sizeY, v int) intGrid {
	g := make(intGrid, sizeX)
	for x := range g {
		g[x] = make([]int, sizeY)
		for y := range g[x] {
			g[x][y] = v
		}
	}
	return g
}

// makeRoomGrid decides which rooms of the mansion footprint are built
// (inside) versus left as courtyards, knocking out random rooms on the west
// half and mirroring the result east.
func makeRoomGrid(sizeX, sizeY int, rng *rand.Rand) boolGrid {
	inside := newBoolGrid(sizeX, sizeY, true)

	halfX := (sizeX + 1) / 2

	for i := 0; i < (sizeY*halfX)/4; i++ {
		x := rng.Intn(halfX)
		y := rng.Intn(sizeY)
		inside[x][y] = false
	}

	for y := 0; y < sizeY; y++ {
		for x := halfX; x < sizeX; x++ {
			inside[x][y] = inside[(sizeX-1)-x][y]
		}
	}

	return inside
}

// offsetWalls jitters each interior wall by one tile, keeps shared wall
// corners consistent, enforces the mirror symmetry, and finally converts the
// jitters into absolute wall coordinates.
func offsetWalls(mirrorX, mirrorY bool, inside boolGrid, rng *rand.Rand) (offsetX, offsetY intGrid) {
	roomsX := len(inside)
	roomsY := len(inside[0])

	offsetX = newIntGrid(roomsX+1, roomsY, 0)
	offsetY = newIntGrid(roomsX, roomsY+1, 0)

	{
		i := rng.Intn(3) - 1
		for y := 0; y < roomsY; y++ {
			offsetX[0][y] = i
		}
	}
	{
		i := rng.Intn(3) - 1
		for y := 0; y < roomsY; y++ {
			offsetX[roomsX][y] = i
		}
	}
	{
		i := rng.Intn(3) - 1
		for x := 0; x < roomsX; x++ {
			offsetY[x][0] = i
		}
	}
	{
		i := rng.Intn(3) - 1
		for x := 0; x < roomsX; x++ {
			offsetY[x][roomsY] = i
		}
	}

	for x := 1; x < roomsX; x++ {
		for y := 0; y < roomsY; y++ {
			offsetX[x][y] = rng.Intn(3) - 1
		}
	}

	for x := 0; x < roomsX; x++ {
		for y := 1; y < roomsY; y++ {
			offsetY[x][y] = rng.Intn(3) - 1
		}
	}

	for x := 1; x < roomsX; x++ {
		for y := 1; y < roomsY; y++ {
			if rng.Intn(2) == 0 {
				offsetX[x][y] = offsetX[x][y-1]
			} else {
				offsetY[x][y] = offsetY[x-1][y]
			}
		}
	}

	if mirrorX {
		if roomsX&1 == 0 {
			xMid := roomsX / 2
			for y := 0; y < roomsY; y++ {
				offsetX[xMid][y] = 0
			}
		}

		for x := 0; x < (roomsX+1)/2; x++ {
			for y := 0; y < roomsY; y++ {
				offsetX[roomsX-x][y] = 1 - offsetX[x][y]
			}
		}

		for x := 0; x < roomsX/2; x++ {
			for y := 0; y < roomsY+1; y++ {
				offsetY[(roomsX-1)-x][y] = offsetY[x][y]
			}
		}
	}

	if mirrorY {
		if roomsY&1 == 0 {
			yMid := roomsY / 2
			for x := 0; x < roomsX; x++ {
				offsetY[x][yMid] = 0
			}
		}

		for y := 0; y < (roomsY+1)/2; y++ {
			for x := 0; x < roomsX; x++ {
				offsetY[x][roomsY-y] = 1 - offsetY[x][y]
			}
		}

		for y := 0; y < roomsY/2; y++ {
			for x := 0; x < roomsX+1; x++ {
				offsetX[x][(roomsY-1)-y] = offsetX[x][y]
			}
		}
	}

	roomOffsetX := minInt
	roomOffsetY := minInt

	for y := 0; y < roomsY; y++ {
		roomOffsetX = max(roomOffsetX, -offsetX[0][y])
	}
	for x := 0; x < roomsX; x++ {
		roomOffsetY = max(roomOffsetY, -offsetY[x][0])
	}

	roomOffsetX += outerBorder
	roomOffsetY += outerBorder

	for x := 0; x < roomsX+1; x++ {
		for y := 0; y < roomsY; y++ {
			offsetX[x][y] += roomOffsetX + x*roomSizeX
		}
	}

	for x := 0; x < roomsX; x++ {
		for y := 0; y < roomsY+1; y++ {
			offsetY[x][y] += roomOffsetY + y*roomSizeY
		}
	}

	return offsetX, offsetY
}

// plotWalls lays down the room footprints (grass, lit) and their bare walls
// on a fresh cell grid sized to fit everything plus the exterior border.
func plotWalls(inside boolGrid, offsetX, offsetY intGrid) gamemap.CellGrid {
	cx := len(inside)
	cy := len(inside[0])

	mapX, mapY := 0, 0
	for y := 0; y < cy; y++ {
		mapX = max(mapX, offsetX[cx][y])
	}
	for x := 0; x < cx; x++ {
		mapY = max(mapY, offsetY[x][cy])
	}

	mapX += outerBorder + 1
	mapY += outerBorder + 1

	cells := gamemap.NewCellGrid(mapX, mapY, gamemap.GroundNormal)

	// Grass under all the rooms plugs gaps between jittered walls, and the
	// whole interior is lit.

	for rx := 0; rx < cx; rx++ {
		for ry := 0; ry < cy; ry++ {
			x0 := offsetX[rx][ry]
			x1 := offsetX[rx+1][ry] + 1
			y0 := offsetY[rx][ry]
			y1 := offsetY[rx][ry+1] + 1

			for x := x0; x < x1; x++ {
				for y := y0; y < y1; y++ {
					cell := cells.At(x, y)
					cell.Type = gamemap.GroundGrass
					cell.Lit = true
				}
			}
		}
	}

	for rx := 0; rx < cx; rx++ {
		for ry := 0; ry < cy; ry++ {
			indoors := inside[rx][ry]

			x0 := offsetX[rx][ry]
			x1 := offsetX[rx+1][ry]
			y0 := offsetY[rx][ry]
			y1 := offsetY[rx][ry+1]

			if rx == 0 || indoors {
				plotNSWall(cells, x0, y0, y1)
			}
			if rx == cx-1 || indoors {
				plotNSWall(cells, x1, y0, y1)
			}
			if ry == 0 || indoors {
				plotEWWall(cells, x0, y0, x1)
			}
			if ry == cy-1 || indoors {
				plotEWWall(cells, x0, y1, x1)
			}
		}
	}

	return cells
}

func plotNSWall(cells gamemap.CellGrid, x0, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		cells.At(x0, y).Type = gamemap.Wall0000
	}
}

func plotEWWall(cells gamemap.CellGrid, x0, y0, x1 int) {
	for x := x0; x <= x1; x++ {
		cells.At(x, y0).Type = gamemap.Wall0000
	}
}

// fixupWalls replaces every wall cell with the variant matching which of its
// four neighbors are also walls, so the renderer can draw connected runs.
func fixupWalls(cells gamemap.CellGrid) {
	for x := 0; x < cells.SizeX(); x++ {
		for y := 0; y < cells.SizeY(); y++ {
			if cells.At(x, y).Type.IsWall() {
				cells.At(x, y).Type = gamemap.Wall0000 + gamemap.CellType(neighboringWalls(cells, x, y))
			}
		}
	}
}

func neighboringWalls(cells gamemap.CellGrid, x, y int) int {
	sizeX, sizeY := cells.SizeX(), cells.SizeY()
	wallBits := 0

	if y < sizeY-1 && cells.At(x, y+1).Type.IsWall() {
		wallBits |= 8
	}
	if y > 0 && cells.At(x, y-1).Type.IsWall() {
		wallBits |= 4
	}
	if x < sizeX-1 && cells.At(x+1, y).Type.IsWall() {
		wallBits |= 2
	}
	if x > 0 && cells.At(x-1, y).Type.IsWall() {
		wallBits |= 1
	}

	return wallBits
}

const minInt = -int(^uint(0)>>1) - 1

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
