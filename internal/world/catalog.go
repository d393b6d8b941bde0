package world

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidConfig is returned when generation is asked to run with
// dimensions, catalogs, or layer stacks it cannot honor.
var ErrInvalidConfig = errors.New("invalid world configuration")

const (
	// OceanPatternSize is the side length of the repeating ocean tiling.
	OceanPatternSize = 4

	// MaxCenterVariants is how many centers a TileID variant can address.
	MaxCenterVariants = 256
)

// Catalog is the set of tiles one layer kind can place, partitioned by role.
type Catalog struct {
	Kind    LayerKind
	Centers []TileID
	Edges   map[Direction]TileID
	Corners map[Direction]TileID
}

// NewCatalog builds the canonical catalog for a kind with the given number of
// interchangeable center variants. Ocean catalogs have no edges or corners.
func NewCatalog(kind LayerKind, centerVariants int) *Catalog {
	c := &Catalog{
		Kind:    kind,
		Centers: make([]TileID, 0, centerVariants),
		Edges:   make(map[Direction]TileID),
		Corners: make(map[Direction]TileID),
	}
	for i := 0; i < centerVariants; i++ {
		c.Centers = append(c.Centers, CenterTile(kind, i))
	}
	if kind == KindOcean {
		return c
	}
	for _, d := range EdgeDirections {
		c.Edges[d] = EdgeTile(kind, d)
	}
	for _, d := range CornerDirections {
		c.Corners[d] = CornerTile(kind, d)
	}
	return c
}

// Validate checks that the catalog supplies every role its kind needs.
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil catalog", ErrInvalidConfig)
	}
	if len(c.Centers) == 0 {
		return fmt.Errorf("%w: %s catalog has no center tiles", ErrInvalidConfig, c.Kind)
	}
	if len(c.Centers) > MaxCenterVariants {
		return fmt.Errorf("%w: %s catalog has %d center tiles, at most %d allowed",
			ErrInvalidConfig, c.Kind, len(c.Centers), MaxCenterVariants)
	}
	for i, t := range c.Centers {
		if t.Kind != c.Kind || t.Role != RoleCenter {
			return fmt.Errorf("%w: %s catalog center %d is %s", ErrInvalidConfig, c.Kind, i, t)
		}
	}

	switch c.Kind {
	case KindOcean:
		want := OceanPatternSize * OceanPatternSize
		if len(c.Centers) != want {
			return fmt.Errorf("%w: ocean catalog needs %d pattern tiles, has %d",
				ErrInvalidConfig, want, len(c.Centers))
		}
		return nil
	case KindIsland, KindGrass:
		for _, d := range EdgeDirections {
			t, ok := c.Edges[d]
			if !ok {
				return fmt.Errorf("%w: %s catalog missing %s edge", ErrInvalidConfig, c.Kind, d)
			}
			if t.Kind != c.Kind || !t.IsEdge(d) {
				return fmt.Errorf("%w: %s catalog %s edge is %s", ErrInvalidConfig, c.Kind, d, t)
			}
		}
		for _, d := range CornerDirections {
			t, ok := c.Corners[d]
			if !ok {
				return fmt.Errorf("%w: %s catalog missing %s corner", ErrInvalidConfig, c.Kind, d)
			}
			if t.Kind != c.Kind || !t.IsCorner(d) {
				return fmt.Errorf("%w: %s catalog %s corner is %s", ErrInvalidConfig, c.Kind, d, t)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown layer kind %d", ErrInvalidConfig, c.Kind)
	}
}

// Edge returns the edge tile facing dir.
func (c *Catalog) Edge(dir Direction) TileID {
	return c.Edges[dir]
}

// Corner returns the corner tile facing dir.
func (c *Catalog) Corner(dir Direction) TileID {
	return c.Corners[dir]
}

// RandomCenter picks a center variant uniformly.
func (c *Catalog) RandomCenter(rng *rand.Rand) TileID {
	return c.Centers[rng.Intn(len(c.Centers))]
}

// IsCenter reports whether t is one of this catalog's center tiles.
func (c *Catalog) IsCenter(t TileID) bool {
	for _, center := range c.Centers {
		if center == t {
			return true
		}
	}
	return false
}
