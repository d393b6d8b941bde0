package world

import "math"

// Viewport describes what a camera sees: the point it looks at, its per-axis
// zoom, and half the screen size in world units at zoom 1.
type Viewport struct {
	Target     Point
	Zoom       Point
	HalfExtent Point
}

// TileRange is a half-open block of tile indices, [X0, X1) x [Y0, Y1).
type TileRange struct {
	X0, X1 int
	Y0, Y1 int
}

// Empty returns true if the range covers no tiles.
func (r TileRange) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Contains returns true if (x, y) lies inside the range.
func (r TileRange) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// VisibleTileRange returns the tiles a viewport can see, clamped to the grid.
// A viewport with non-positive zoom sees nothing.
func (w *WorldGrid) VisibleTileRange(v Viewport) TileRange {
	if !(v.Zoom.X > 0) || !(v.Zoom.Y > 0) {
		return TileRange{}
	}

	left := v.Target.X - v.HalfExtent.X/v.Zoom.X
	right := v.Target.X + v.HalfExtent.X/v.Zoom.X
	top := v.Target.Y - v.HalfExtent.Y/v.Zoom.Y
	bottom := v.Target.Y + v.HalfExtent.Y/v.Zoom.Y

	x0 := clampTile(math.Floor(left/w.tileSize), w.width)
	x1 := clampTile(math.Ceil(right/w.tileSize), w.width)
	y0 := clampTile(math.Floor(top/w.tileSize), w.height)
	y1 := clampTile(math.Ceil(bottom/w.tileSize), w.height)

	return TileRange{
		X0: x0, X1: max(x0, x1),
		Y0: y0, Y1: max(y0, y1),
	}
}

// clampTile converts a tile coordinate to an index in [0, limit].
func clampTile(v float64, limit int) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= float64(limit) {
		return limit
	}
	return int(v)
}
