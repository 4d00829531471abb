package gamemap

import "disguiser/internal/geom"

// Sound spreads orthogonally only, so it has to bend around walls.
var soundNeighbors = [4]geom.Coord{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// CoordsInEarshot flood-fills outward from emitterPos and returns the set of
// cells a sound of the given radius (squared distance budget) reaches. Cells
// that block sound stop the fill.
func (m *Map) CoordsInEarshot(emitterPos geom.Coord, radius int) map[geom.Coord]bool {
	coordsVisited := make(map[geom.Coord]bool)
	coordsToVisit := []geom.Coord{emitterPos}

	for len(coordsToVisit) > 0 {
		pos := coordsToVisit[0]
		coordsToVisit = coordsToVisit[1:]

		coordsVisited[pos] = true

		for _, dir := range &soundNeighbors {
			posNew := pos.Add(dir)

			if !m.Cells.InBounds(posNew) {
				continue
			}
			if coordsVisited[posNew] {
				continue
			}

			d := posNew.Sub(emitterPos)
			if d.LengthSq() >= radius {
				continue
			}

			if m.Cells.At(posNew.X, posNew.Y).BlocksSound {
				continue
			}

			coordsToVisit = append(coordsToVisit, posNew)
		}
	}

	return coordsVisited
}

// GuardsInEarshot returns the guards standing within earshot of a sound made
// at emitterPos.
func (m *Map) GuardsInEarshot(emitterPos geom.Coord, radius int) []*Guard {
	coordsInEarshot := m.CoordsInEarshot(emitterPos, radius)

	var guards []*Guard
	for _, g := range m.Guards {
		if coordsInEarshot[g.Pos] {
			guards = append(guards, g)
		}
	}
	return guards
}
