package world

import "log/slog"

// Diagnostics summarizes boundary classification.
type Diagnostics struct {
	Edges     int
	Corners   int
	Unmatched []Cell // boundary cells whose mask has no edge assignment
}

// edgeRules is the edge precedence table; the first match wins.
var edgeRules = []struct {
	mask neighborMask
	dir  Direction
}{
	{mask(false, true, true, true), DirTop},
	{mask(false, true, false, false), DirTop},
	{mask(true, false, true, true), DirBottom},
	{mask(true, false, false, false), DirBottom},
	{mask(true, true, false, true), DirLeft},
	{mask(false, false, false, true), DirLeft},
	{mask(true, true, true, false), DirRight},
	{mask(false, false, true, false), DirRight},
	{mask(false, true, false, true), DirTopLeft},
	{mask(false, true, true, false), DirTopRight},
	{mask(true, false, false, true), DirBottomLeft},
	{mask(true, false, true, false), DirBottomRight},
}

// cornerRules maps adjusted masks to corner tiles.
var cornerRules = map[neighborMask]Direction{
	mask(false, true, false, true): DirTopLeft,
	mask(false, true, true, false): DirTopRight,
	mask(true, false, false, true): DirBottomLeft,
	mask(true, false, true, false): DirBottomRight,
}

func edgeFor(m neighborMask) (Direction, bool) {
	for _, r := range edgeRules {
		if r.mask == m {
			return r.dir, true
		}
	}
	return 0, false
}

// classify assigns edge tiles and then corner tiles to the empty cells around
// the land mass.
func classify(g *cellGrid, catalog *Catalog) Diagnostics {
	var diag Diagnostics

	g.snapshot()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.prevAt(x, y).IsEmpty() {
				continue
			}
			m := g.snapshotMask(x, y, occupied)
			if m == 0 {
				continue
			}
			dir, ok := edgeFor(m)
			if !ok {
				diag.Unmatched = append(diag.Unmatched, Cell{X: x, Y: y})
				slog.Debug("unmatched neighbor pattern",
					"kind", catalog.Kind.String(), "x", x, "y", y, "mask", uint8(m))
				continue
			}
			g.set(x, y, catalog.Edge(dir))
			diag.Edges++
		}
	}

	g.snapshot()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.prevAt(x, y).IsEmpty() {
				continue
			}
			dir, ok := cornerRules[g.snapshotMask(x, y, countsForCorner)]
			if !ok {
				continue
			}
			g.set(x, y, catalog.Corner(dir))
			diag.Corners++
		}
	}

	return diag
}

// countsForCorner treats a neighbor as occupied unless it is the edge that
// already closes the boundary on that side.
func countsForCorner(t TileID, side Direction) bool {
	if t.IsEmpty() {
		return false
	}
	switch side {
	case DirTop:
		return !t.IsEdge(DirBottom)
	case DirBottom:
		return !t.IsEdge(DirTop)
	case DirLeft:
		return !t.IsEdge(DirRight)
	case DirRight:
		return !t.IsEdge(DirLeft)
	default:
		return true
	}
}

// Classify assigns boundary tiles to the blob in place.
func (b *Blob) Classify(catalog *Catalog) Diagnostics {
	return classify(b.grid, catalog)
}
