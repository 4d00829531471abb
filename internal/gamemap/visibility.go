package gamemap

import "disguiser/internal/geom"

// sightRadiusSq bounds visibility at 20 tiles, measured on doubled
// coordinates: (2*20)^2 = 1600.
const sightRadiusSq = 1600

// portalInfo describes one of the four cardinal portals out of a cell, in
// doubled coordinates relative to the cell center: the left and right corner
// offsets of the shared edge, and the offset to the neighboring cell.
type portalInfo struct {
	lx, ly int
	rx, ry int
	nx, ny int
}

var portals = [4]portalInfo{
	{-1, -1, -1, 1, -1, 0},
	{-1, 1, 1, 1, 0, 1},
	{1, 1, 1, -1, 1, 0},
	{1, -1, -1, -1, 0, -1},
}

// aRightOfB reports whether vector a is strictly clockwise of vector b.
// This cross-product sign test is the only comparison the visibility scan
// needs; everything stays in exact integer arithmetic.
func aRightOfB(ax, ay, bx, by int) bool {
	return ax*by > ay*bx
}

// RecomputeVisibility marks every cell visible from posViewer as seen. It
// never clears seen flags; use MarkAllUnseen to reset.
func (m *Map) RecomputeVisibility(posViewer geom.Coord) {
	for _, portal := range &portals {
		m.computeVisibility(
			posViewer, posViewer,
			portal.lx, portal.ly,
			portal.rx, portal.ry)
	}
}

// PlayerCanSeeInDirection reports whether the player could see through the
// cell adjacent to posViewer in direction dir. Used to re-run the visibility
// scan from cells just beyond a doorway the player stands next to.
func (m *Map) PlayerCanSeeInDirection(posViewer, dir geom.Coord) bool {
	posTarget := posViewer.Add(dir)
	if !m.Cells.InBounds(posTarget) {
		return true
	}
	return !m.BlocksPlayerSight(posTarget)
}

// computeVisibility recursively scans outward from the viewer through the
// angular frustum bounded by (ldx,ldy) on the left and (rdx,rdy) on the
// right, both in doubled coordinates relative to the viewer.
func (m *Map) computeVisibility(posViewer, posTarget geom.Coord, ldx, ldy, rdx, rdy int) {
	if !m.Cells.InBounds(posTarget) {
		return
	}

	// Doubled offsets keep the half-integer cell corners exact.
	dx := 2 * (posTarget.X - posViewer.X)
	dy := 2 * (posTarget.Y - posViewer.Y)

	if dx*dx+dy*dy > sightRadiusSq {
		return
	}

	m.Cells.At(posTarget.X, posTarget.Y).Seen = true

	if m.BlocksPlayerSight(posTarget) {
		return
	}

	// Mark diagonal neighbors whose shared corner lies inside the frustum.
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			n := geom.Coord{X: posTarget.X + 2*x - 1, Y: posTarget.Y + 2*y - 1}
			cdx := dx + 2*x - 1
			cdy := dy + 2*y - 1

			if m.Cells.InBounds(n) &&
				!aRightOfB(ldx, ldy, cdx, cdy) &&
				!aRightOfB(cdx, cdy, rdx, rdy) {
				m.Cells.At(n.X, n.Y).Seen = true
			}
		}
	}

	// Clip each portal against the frustum and recurse through whatever
	// angular width survives.
	for _, portal := range &portals {
		pldx, pldy := dx+portal.lx, dy+portal.ly
		prdx, prdy := dx+portal.rx, dy+portal.ry

		cldx, cldy := pldx, pldy
		if aRightOfB(ldx, ldy, pldx, pldy) {
			cldx, cldy = ldx, ldy
		}
		crdx, crdy := rdx, rdy
		if aRightOfB(rdx, rdy, prdx, prdy) {
			crdx, crdy = prdx, prdy
		}

		if aRightOfB(crdx, crdy, cldx, cldy) {
			m.computeVisibility(
				posViewer,
				geom.Coord{X: posTarget.X + portal.nx, Y: posTarget.Y + portal.ny},
				cldx, cldy,
				crdx, crdy)
		}
	}
}
