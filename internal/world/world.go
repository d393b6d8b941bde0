package world

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/isleband/internal/telemetry"
)

const (
	// Default world dimensions, in tiles
	DefaultWidth  = 64
	DefaultHeight = 64
)

// WorldGrid is an ordered stack of equally sized layers with ocean at the
// bottom. It is immutable once built and safe for concurrent readers.
type WorldGrid struct {
	width, height int
	tileSize      float64
	layers        []*Layer
}

// NewWorldGrid stacks the given layers. Layer 0 must be ocean and every layer
// must share the same dimensions.
func NewWorldGrid(tileSize float64, layers ...*Layer) (*WorldGrid, error) {
	if !finitePositive(tileSize) {
		return nil, fmt.Errorf("%w: tile size must be positive and finite, got %v", ErrInvalidConfig, tileSize)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: world needs at least an ocean layer", ErrInvalidConfig)
	}
	if layers[0] == nil || layers[0].kind != KindOcean {
		return nil, fmt.Errorf("%w: bottom layer must be ocean", ErrInvalidConfig)
	}
	width, height := layers[0].width, layers[0].height
	for i, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("%w: layer %d is nil", ErrInvalidConfig, i)
		}
		if l.width != width || l.height != height {
			return nil, fmt.Errorf("%w: layer %d is %dx%d, world is %dx%d",
				ErrInvalidConfig, i, l.width, l.height, width, height)
		}
		if i > 0 && l.kind == KindOcean {
			return nil, fmt.Errorf("%w: ocean may only be the bottom layer", ErrInvalidConfig)
		}
	}

	return &WorldGrid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		layers:   layers,
	}, nil
}

// BuildConfig describes a world to generate.
type BuildConfig struct {
	Width  int
	Height int
	// Layers lists the generated layers above the ocean, bottom first.
	Layers []LayerKind
	Grow   GrowOptions
}

// DefaultBuildConfig returns an ocean with a single island.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Layers: []LayerKind{KindIsland},
		Grow:   DefaultGrowOptions(),
	}
}

// Build generates the ocean and every configured layer in order, drawing all
// randomness from rng.
func Build(ctx context.Context, cfg BuildConfig, catalogs map[LayerKind]*Catalog, rng *rand.Rand) (*WorldGrid, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.build")
	defer span.End()

	startTime := time.Now()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if err := cfg.Grow.Validate(); err != nil {
		return nil, err
	}

	ocean, err := NewOceanLayer(cfg.Width, cfg.Height, catalogs[KindOcean])
	if err != nil {
		return nil, fmt.Errorf("ocean layer: %w", err)
	}
	layers := []*Layer{ocean}

	grassRun := 0
	for i, kind := range cfg.Layers {
		catalog := catalogs[kind]
		if catalog == nil {
			return nil, fmt.Errorf("%w: no catalog for %s layer", ErrInvalidConfig, kind)
		}
		if catalog.Kind != kind {
			return nil, fmt.Errorf("%w: %s layer given a %s catalog", ErrInvalidConfig, kind, catalog.Kind)
		}
		layer, err := GenerateLayer(ctx, cfg.Width, cfg.Height, rng, catalog, cfg.Grow)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i+1, kind, err)
		}
		if kind == KindGrass {
			layer.altitude = grassRun
			grassRun++
		} else {
			grassRun = 0
		}
		layers = append(layers, layer)
	}

	w, err := NewWorldGrid(cfg.Grow.TileSize, layers...)
	if err != nil {
		return nil, err
	}

	spawn := w.Spawn()
	span.SetAttributes(
		attribute.Int("world.width", w.width),
		attribute.Int("world.height", w.height),
		attribute.Int("world.layer_count", len(w.layers)),
		attribute.Float64("world.spawn_x", spawn.X),
		attribute.Float64("world.spawn_y", spawn.Y),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	slog.Debug("world built",
		"width", w.width, "height", w.height, "layers", len(w.layers),
		"spawn_x", spawn.X, "spawn_y", spawn.Y)

	return w, nil
}

// Width returns the world width in tiles.
func (w *WorldGrid) Width() int { return w.width }

// Height returns the world height in tiles.
func (w *WorldGrid) Height() int { return w.height }

// TileSize returns the size of one tile in world units.
func (w *WorldGrid) TileSize() float64 { return w.tileSize }

// LayerCount returns the number of layers, ocean included.
func (w *WorldGrid) LayerCount() int { return len(w.layers) }

// Layer returns layer i, or nil if out of range.
func (w *WorldGrid) Layer(i int) *Layer {
	if i < 0 || i >= len(w.layers) {
		return nil
	}
	return w.layers[i]
}

// TileAt returns the tile of the given layer at (x, y). Out-of-range layers
// and coordinates report false, as do empty cells.
func (w *WorldGrid) TileAt(layer, x, y int) (TileID, bool) {
	l := w.Layer(layer)
	if l == nil {
		return TileID{}, false
	}
	return l.TileAt(x, y)
}

// IsBlocked reports whether a box at position with the given size overlaps
// anything impassable: a tile outside the grid, or a cell left empty by any
// layer above the ocean.
func (w *WorldGrid) IsBlocked(position, size Point) bool {
	minX := int(math.Floor(position.X / w.tileSize))
	minY := int(math.Floor(position.Y / w.tileSize))
	maxX := int(math.Floor((position.X + size.X) / w.tileSize))
	maxY := int(math.Floor((position.Y + size.Y) / w.tileSize))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x < 0 || y < 0 || x >= w.width || y >= w.height {
				return true
			}
			for _, l := range w.layers[1:] {
				if _, ok := l.TileAt(x, y); !ok {
					return true
				}
			}
		}
	}
	return false
}

// Spawn returns the centroid of the topmost generated layer, or the middle of
// the world when only the ocean exists.
func (w *WorldGrid) Spawn() Point {
	if len(w.layers) > 1 {
		return w.layers[len(w.layers)-1].centroid
	}
	return Point{
		X: float64(w.width) * w.tileSize / 2,
		Y: float64(w.height) * w.tileSize / 2,
	}
}

// TopTile returns the highest non-empty tile at (x, y) across all layers.
func (w *WorldGrid) TopTile(x, y int) (TileID, bool) {
	for i := len(w.layers) - 1; i >= 0; i-- {
		if t, ok := w.layers[i].TileAt(x, y); ok {
			return t, true
		}
	}
	return TileID{}, false
}
