package gamemap

import (
	"container/heap"

	"disguiser/internal/geom"
)

// adjacentMoves lists the eight guard moves with their base costs: cardinal
// steps cost 2, diagonal steps 3.
var adjacentMoves = [8]struct {
	Cost int
	Dir  geom.Coord
}{
	{2, geom.Coord{X: 1, Y: 0}},
	{2, geom.Coord{X: -1, Y: 0}},
	{2, geom.Coord{X: 0, Y: 1}},
	{2, geom.Coord{X: 0, Y: -1}},
	{3, geom.Coord{X: -1, Y: -1}},
	{3, geom.Coord{X: 1, Y: -1}},
	{3, geom.Coord{X: -1, Y: 1}},
	{3, geom.Coord{X: 1, Y: 1}},
}

// DistField is a per-cell distance map produced by the Dijkstra scan,
// indexed [y][x] like CellGrid.
type DistField [][]int

// NewDistField returns a field of the given extent filled with InfiniteCost.
func NewDistField(sizeX, sizeY int) DistField {
	f := make(DistField, sizeY)
	for y := range f {
		f[y] = make([]int, sizeX)
		for x := range f[y] {
			f[y][x] = InfiniteCost
		}
	}
	return f
}

// At returns the distance at p.
func (f DistField) At(p geom.Coord) int { return f[p.Y][p.X] }

func (m *Map) guardCellCost(x, y int) int {
	return m.Cells.At(x, y).MoveCost
}

// GuardMoveCost returns the cost added by stepping onto posNew from posOld,
// not counting the per-direction base cost. Diagonal steps that would cut a
// corner past an impassable cell are themselves impassable.
func (m *Map) GuardMoveCost(posOld, posNew geom.Coord) int {
	cost := m.guardCellCost(posNew.X, posNew.Y)
	if cost == InfiniteCost {
		return cost
	}

	if posOld.X != posNew.X && posOld.Y != posNew.Y &&
		(m.guardCellCost(posOld.X, posNew.Y) == InfiniteCost ||
			m.guardCellCost(posNew.X, posOld.Y) == InfiniteCost) {
		return InfiniteCost
	}

	return cost
}

type distState struct {
	dist int
	pos  geom.Coord
}

// distQueue is a min-heap of distState ordered by dist.
type distQueue []distState

func (q distQueue) Len() int            { return len(q) }
func (q distQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q distQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *distQueue) Push(x interface{}) { *q = append(*q, x.(distState)) }
func (q *distQueue) Pop() interface{} {
	old := *q
	n := len(old)
	s := old[n-1]
	*q = old[:n-1]
	return s
}

// ComputeDistanceField runs a Dijkstra scan from the given seed distances and
// returns the resulting field. Unreachable cells stay at InfiniteCost.
func (m *Map) ComputeDistanceField(initialDistances []distState) DistField {
	sizeX, sizeY := m.Cells.SizeX(), m.Cells.SizeY()
	distField := NewDistField(sizeX, sizeY)

	q := make(distQueue, 0, sizeX*sizeY)
	for _, s := range initialDistances {
		q = append(q, s)
	}
	heap.Init(&q)

	for q.Len() > 0 {
		s := heap.Pop(&q).(distState)
		if s.dist >= distField.At(s.pos) {
			continue
		}
		distField[s.pos.Y][s.pos.X] = s.dist

		for _, move := range &adjacentMoves {
			posNew := s.pos.Add(move.Dir)
			if posNew.X < 0 || posNew.Y < 0 || posNew.X >= sizeX || posNew.Y >= sizeY {
				continue
			}

			moveCost := m.GuardMoveCost(s.pos, posNew)
			if moveCost == InfiniteCost {
				continue
			}

			distNew := s.dist + moveCost + move.Cost
			if distNew < distField.At(posNew) {
				heap.Push(&q, distState{dist: distNew, pos: posNew})
			}
		}
	}

	return distField
}

// ComputeDistancesToPosition returns the distance field toward a single goal
// cell.
func (m *Map) ComputeDistancesToPosition(posGoal geom.Coord) DistField {
	return m.ComputeDistanceField([]distState{{dist: 0, pos: posGoal}})
}

// ComputeDistancesToRegion returns the distance field toward every cell of
// the given patrol region, each seeded with its own cell cost.
func (m *Map) ComputeDistancesToRegion(iRegionGoal int) DistField {
	region := &m.PatrolRegions[iRegionGoal]

	size := region.Rect.Size()
	goal := make([]distState, 0, size.X*size.Y)
	for x := region.Rect.Min.X; x < region.Rect.Max.X; x++ {
		for y := region.Rect.Min.Y; y < region.Rect.Max.Y; y++ {
			goal = append(goal, distState{
				dist: m.guardCellCost(x, y),
				pos:  geom.Coord{X: x, Y: y},
			})
		}
	}

	return m.ComputeDistanceField(goal)
}

// ClosestRegion returns the patrol region reachable from pos with the lowest
// travel cost, or InvalidRegion if none is reachable.
func (m *Map) ClosestRegion(pos geom.Coord) int {
	sizeX, sizeY := m.Cells.SizeX(), m.Cells.SizeY()
	distField := NewDistField(sizeX, sizeY)

	q := make(distQueue, 0, sizeX*sizeY)
	q = append(q, distState{dist: 0, pos: pos})

	for q.Len() > 0 {
		s := heap.Pop(&q).(distState)

		if region := m.Cells.At(s.pos.X, s.pos.Y).Region; region != InvalidRegion {
			return region
		}

		if s.dist >= distField.At(s.pos) {
			continue
		}
		distField[s.pos.Y][s.pos.X] = s.dist

		for _, move := range &adjacentMoves {
			posNew := s.pos.Add(move.Dir)
			if posNew.X < 0 || posNew.Y < 0 || posNew.X >= sizeX || posNew.Y >= sizeY {
				continue
			}

			moveCost := m.GuardMoveCost(s.pos, posNew)
			if moveCost == InfiniteCost {
				continue
			}

			distNew := s.dist + moveCost + move.Cost
			if distNew < distField.At(posNew) {
				heap.Push(&q, distState{dist: distNew, pos: posNew})
			}
		}
	}

	return InvalidRegion
}
