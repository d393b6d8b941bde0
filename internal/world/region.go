package world

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Region is a rectangular block of grid cells.
type Region struct {
	X, Y          int // Top-left cell
	Width, Height int
}

// Center returns the center cell of the region.
func (r Region) Center() Cell {
	return Cell{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the cell lies inside the region.
func (r Region) Contains(c Cell) bool {
	return c.X >= r.X && c.X < r.X+r.Width && c.Y >= r.Y && c.Y < r.Y+r.Height
}

// Area returns the number of cells in the region.
func (r Region) Area() int {
	return r.Width * r.Height
}

// Fits returns true if the region lies entirely within a width x height grid.
func (r Region) Fits(width, height int) bool {
	return r.Width > 0 && r.Height > 0 &&
		r.X >= 0 && r.Y >= 0 &&
		r.X+r.Width <= width && r.Y+r.Height <= height
}

// cellCenter converts a cell to the world-space point at its middle.
func cellCenter(c Cell, tileSize float64) Point {
	return Point{
		X: (float64(c.X) + 0.5) * tileSize,
		Y: (float64(c.Y) + 0.5) * tileSize,
	}
}
