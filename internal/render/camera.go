package render

import "disguiser/internal/geom"

// Camera translates between world coordinates and screen coordinates.
// World north is +Y and screen rows grow downward, so Y flips. A map
// smaller than the viewport is centered; a larger one scrolls to keep
// the focus position in view without showing space past the map edge.
type Camera struct {
	offset   geom.Coord // world coordinate at the viewport's bottom-left
	viewTop  int        // first screen row of the viewport
	viewSize geom.Coord
}

// NewCamera frames worldSize within a viewport of viewSize rows/columns
// starting at screen row viewTop, keeping focus visible.
func NewCamera(viewTop int, viewSize, worldSize, focus geom.Coord) *Camera {
	return &Camera{
		offset: geom.Coord{
			X: axisOffset(viewSize.X, worldSize.X, focus.X),
			Y: axisOffset(viewSize.Y, worldSize.Y, focus.Y),
		},
		viewTop:  viewTop,
		viewSize: viewSize,
	}
}

func axisOffset(view, world, focus int) int {
	if world <= view {
		return -(view - world) / 2
	}
	offset := focus - view/2
	if offset < 0 {
		offset = 0
	}
	if offset > world-view {
		offset = world - view
	}
	return offset
}

// WorldToScreen converts world position w to screen coordinates.
// visible is false when the position falls outside the viewport.
func (c *Camera) WorldToScreen(w geom.Coord) (sx, sy int, visible bool) {
	sx = w.X - c.offset.X
	row := c.viewSize.Y - 1 - (w.Y - c.offset.Y)
	sy = c.viewTop + row
	visible = sx >= 0 && sx < c.viewSize.X && row >= 0 && row < c.viewSize.Y
	return
}
