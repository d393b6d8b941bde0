package world

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// DefaultTileSize is the width of one tile in world units.
	DefaultTileSize = 16.0

	// Sub-region bounds as a fraction of the grid, per axis.
	DefaultMinRegionFraction = 1.0 / 3.0
	DefaultMaxRegionFraction = 1.0 / 2.0

	// DefaultTolerance is the squared normalized distance a land cell may sit
	// from the seed. 1.0 keeps the blob inside the nominal ellipse.
	DefaultTolerance = 1.0
)

// GrowOptions tunes the random walk.
type GrowOptions struct {
	MinRegionFraction float64
	MaxRegionFraction float64
	Tolerance         float64
	TileSize          float64
}

// DefaultGrowOptions returns the standard island shape parameters.
func DefaultGrowOptions() GrowOptions {
	return GrowOptions{
		MinRegionFraction: DefaultMinRegionFraction,
		MaxRegionFraction: DefaultMaxRegionFraction,
		Tolerance:         DefaultTolerance,
		TileSize:          DefaultTileSize,
	}
}

// Validate checks the options for values generation cannot use.
func (o GrowOptions) Validate() error {
	// Written as !(ok) so NaN fails every check.
	if !(o.MinRegionFraction > 0 && o.MinRegionFraction <= o.MaxRegionFraction && o.MaxRegionFraction <= 1) {
		return fmt.Errorf("%w: region fractions must satisfy 0 < min <= max <= 1, got %v..%v",
			ErrInvalidConfig, o.MinRegionFraction, o.MaxRegionFraction)
	}
	if !finitePositive(o.Tolerance) {
		return fmt.Errorf("%w: containment tolerance must be positive and finite, got %v", ErrInvalidConfig, o.Tolerance)
	}
	if !finitePositive(o.TileSize) {
		return fmt.Errorf("%w: tile size must be positive and finite, got %v", ErrInvalidConfig, o.TileSize)
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// GrowStats records what the random walk did.
type GrowStats struct {
	Steps    int // step budget consumed
	Accepted int // cells turned to land, excluding the seed
	Rejected int // steps that changed nothing
}

// Blob is the result of growing one land mass.
type Blob struct {
	grid     *cellGrid
	Region   Region
	Seed     Cell
	Centroid Point
	Stats    GrowStats
}

// pickRegion draws a sub-region size and offset for a width x height grid.
func pickRegion(width, height int, opts GrowOptions, rng *rand.Rand) Region {
	w := regionSpan(width, opts, rng)
	h := regionSpan(height, opts, rng)
	return Region{
		X:      rng.Intn(width - w + 1),
		Y:      rng.Intn(height - h + 1),
		Width:  w,
		Height: h,
	}
}

// regionSpan draws one axis of the sub-region, clamped to [1, dim].
func regionSpan(dim int, opts GrowOptions, rng *rand.Rand) int {
	lo := int(math.Ceil(float64(dim) * opts.MinRegionFraction))
	hi := int(math.Floor(float64(dim) * opts.MaxRegionFraction))
	lo = max(1, min(lo, dim))
	hi = max(lo, min(hi, dim))
	return lo + rng.Intn(hi-lo+1)
}

// Grow picks a random sub-region of the grid and grows a blob inside it.
func Grow(width, height int, rng *rand.Rand, catalog *Catalog, opts GrowOptions) (*Blob, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, width, height)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	region := pickRegion(width, height, opts, rng)
	return GrowRegion(width, height, region, rng, catalog, opts)
}

// GrowRegion grows a blob from the center of region by a radius-constrained
// random walk. The walk may spill past the region by the containment
// tolerance but never leaves the grid.
func GrowRegion(width, height int, region Region, rng *rand.Rand, catalog *Catalog, opts GrowOptions) (*Blob, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, width, height)
	}
	if !region.Fits(width, height) {
		return nil, fmt.Errorf("%w: region %+v does not fit a %dx%d grid", ErrInvalidConfig, region, width, height)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	grid := newCellGrid(width, height)
	seed := region.Center()
	grid.set(seed.X, seed.Y, catalog.RandomCenter(rng))

	blob := &Blob{
		grid:     grid,
		Region:   region,
		Seed:     seed,
		Centroid: cellCenter(seed, opts.TileSize),
	}

	area := region.Area()
	budget := area/2 + rng.Intn(area-area/2+1)

	semiX := float64(region.Width) / 2
	semiY := float64(region.Height) / 2

	frontier := []Cell{seed}
	for step := 0; step < budget; step++ {
		from := frontier[rng.Intn(len(frontier))]
		next := stepCardinal(from, rng.Intn(4), width, height)

		if !grid.at(next.X, next.Y).IsEmpty() || !withinEllipse(next, seed, semiX, semiY, opts.Tolerance) {
			blob.Stats.Rejected++
			continue
		}

		grid.set(next.X, next.Y, catalog.RandomCenter(rng))
		frontier = append(frontier, next)
		blob.Stats.Accepted++
	}
	blob.Stats.Steps = budget

	return blob, nil
}

// stepCardinal moves one cell in direction dir (0..3), saturating at the
// grid boundary.
func stepCardinal(c Cell, dir, width, height int) Cell {
	switch dir {
	case 0:
		c.Y--
	case 1:
		c.Y++
	case 2:
		c.X--
	default:
		c.X++
	}
	c.X = max(0, min(c.X, width-1))
	c.Y = max(0, min(c.Y, height-1))
	return c
}

// withinEllipse reports whether c lies inside the containment ellipse around
// seed with the given semi-axes and tolerance.
func withinEllipse(c, seed Cell, semiX, semiY, tolerance float64) bool {
	dx := float64(c.X-seed.X) / semiX
	dy := float64(c.Y-seed.Y) / semiY
	return dx*dx+dy*dy <= tolerance
}

// LandCount returns the number of land cells in the blob.
func (b *Blob) LandCount() int {
	return b.grid.landCount()
}

// TileAt returns the blob's tile at (x, y).
func (b *Blob) TileAt(x, y int) (TileID, bool) {
	t := b.grid.at(x, y)
	return t, !t.IsEmpty()
}
