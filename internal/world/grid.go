package world

import "math/bits"

// neighborMask is the cardinal occupancy pattern around a cell.
type neighborMask uint8

const (
	maskTop neighborMask = 1 << iota
	maskBottom
	maskLeft
	maskRight
)

// mask builds a neighborMask from four flags in top, bottom, left, right order.
func mask(top, bottom, left, right bool) neighborMask {
	var m neighborMask
	if top {
		m |= maskTop
	}
	if bottom {
		m |= maskBottom
	}
	if left {
		m |= maskLeft
	}
	if right {
		m |= maskRight
	}
	return m
}

// count returns how many neighbors are set.
func (m neighborMask) count() int {
	return bits.OnesCount8(uint8(m))
}

// cellGrid is the mutable working grid used during generation. Passes that
// classify cells read from prev, which snapshot refreshes, and write to cells.
type cellGrid struct {
	width, height int
	cells         []TileID
	prev          []TileID
}

func newCellGrid(width, height int) *cellGrid {
	return &cellGrid{
		width:  width,
		height: height,
		cells:  make([]TileID, width*height),
		prev:   make([]TileID, width*height),
	}
}

func (g *cellGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *cellGrid) at(x, y int) TileID {
	if !g.inBounds(x, y) {
		return TileID{}
	}
	return g.cells[y*g.width+x]
}

func (g *cellGrid) set(x, y int, t TileID) {
	g.cells[y*g.width+x] = t
}

// snapshot copies the current cells into the read buffer.
func (g *cellGrid) snapshot() {
	copy(g.prev, g.cells)
}

// prevAt reads the snapshot. Off-grid cells read as empty.
func (g *cellGrid) prevAt(x, y int) TileID {
	if !g.inBounds(x, y) {
		return TileID{}
	}
	return g.prev[y*g.width+x]
}

// snapshotMask computes the cardinal mask of (x, y) from the snapshot. The
// counts func decides whether a neighbor on the given side is occupied.
func (g *cellGrid) snapshotMask(x, y int, counts func(t TileID, side Direction) bool) neighborMask {
	return mask(
		counts(g.prevAt(x, y-1), DirTop),
		counts(g.prevAt(x, y+1), DirBottom),
		counts(g.prevAt(x-1, y), DirLeft),
		counts(g.prevAt(x+1, y), DirRight),
	)
}

// occupied counts any non-empty neighbor.
func occupied(t TileID, _ Direction) bool {
	return !t.IsEmpty()
}

// landCount returns the number of non-empty cells.
func (g *cellGrid) landCount() int {
	n := 0
	for _, t := range g.cells {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}
