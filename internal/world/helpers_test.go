package world

import (
	"math/rand"
	"testing"
)

// gridFromRows builds a working grid where '#' is island center land and any
// other byte is empty.
func gridFromRows(rows ...string) *cellGrid {
	g := newCellGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				g.set(x, y, CenterTile(KindIsland, 0))
			}
		}
	}
	return g
}

func islandCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog(KindIsland, 4)
	if err := c.Validate(); err != nil {
		t.Fatalf("island catalog invalid: %v", err)
	}
	return c
}

func testCatalogs() map[LayerKind]*Catalog {
	return map[LayerKind]*Catalog{
		KindOcean:  NewCatalog(KindOcean, OceanPatternSize*OceanPatternSize),
		KindIsland: NewCatalog(KindIsland, 4),
		KindGrass:  NewCatalog(KindGrass, 4),
	}
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// reachable counts non-empty cells connected to start by cardinal steps.
func reachable(width, height int, start Cell, filled func(x, y int) bool) int {
	if !filled(start.X, start.Y) {
		return 0
	}
	seen := make([]bool, width*height)
	seen[start.Y*width+start.X] = true
	queue := []Cell{start}
	count := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		count++
		for _, n := range []Cell{{c.X, c.Y - 1}, {c.X, c.Y + 1}, {c.X - 1, c.Y}, {c.X + 1, c.Y}} {
			if n.X < 0 || n.Y < 0 || n.X >= width || n.Y >= height {
				continue
			}
			if seen[n.Y*width+n.X] || !filled(n.X, n.Y) {
				continue
			}
			seen[n.Y*width+n.X] = true
			queue = append(queue, n)
		}
	}
	return count
}
