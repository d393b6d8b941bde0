package world

import "math/rand"

// closeGaps fills every empty cell that has at least three occupied cardinal
// neighbors, repeating until a pass changes nothing. Each pass reads from a
// snapshot so the result does not depend on scan order. Returns the number of
// cells filled and the number of passes run, including the final no-op pass.
func closeGaps(g *cellGrid, rng *rand.Rand, catalog *Catalog) (filled, passes int) {
	for {
		passes++
		g.snapshot()

		changed := 0
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !g.prevAt(x, y).IsEmpty() {
					continue
				}
				if g.snapshotMask(x, y, occupied).count() >= 3 {
					g.set(x, y, catalog.RandomCenter(rng))
					changed++
				}
			}
		}

		filled += changed
		if changed == 0 {
			return filled, passes
		}
	}
}

// CloseGaps runs gap filling on the blob in place.
func (b *Blob) CloseGaps(rng *rand.Rand, catalog *Catalog) (filled, passes int) {
	return closeGaps(b.grid, rng, catalog)
}
