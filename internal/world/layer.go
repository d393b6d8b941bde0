package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/isleband/internal/telemetry"
)

// Layer is one immutable sheet of tiles in the world stack.
type Layer struct {
	kind          LayerKind
	width, height int
	cells         []TileID
	centroid      Point
	altitude      int
	diagnostics   Diagnostics
}

// GenerateLayer grows, gap-fills and classifies one terrain layer.
func GenerateLayer(ctx context.Context, width, height int, rng *rand.Rand, catalog *Catalog, opts GrowOptions) (*Layer, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "layer.generate")
	defer span.End()

	startTime := time.Now()

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if catalog.Kind == KindOcean {
		return nil, fmt.Errorf("%w: ocean layers are not generated", ErrInvalidConfig)
	}

	blob, err := Grow(width, height, rng, catalog, opts)
	if err != nil {
		return nil, err
	}
	grown := blob.LandCount()
	filled, passes := blob.CloseGaps(rng, catalog)
	diag := blob.Classify(catalog)

	layer := &Layer{
		kind:        catalog.Kind,
		width:       width,
		height:      height,
		cells:       blob.grid.cells,
		centroid:    blob.Centroid,
		diagnostics: diag,
	}

	span.SetAttributes(
		attribute.String("layer.kind", catalog.Kind.String()),
		attribute.Int("layer.width", width),
		attribute.Int("layer.height", height),
		attribute.Int("layer.region_width", blob.Region.Width),
		attribute.Int("layer.region_height", blob.Region.Height),
		attribute.Int("layer.walk_steps", blob.Stats.Steps),
		attribute.Int("layer.land_grown", grown),
		attribute.Int("layer.gaps_filled", filled),
		attribute.Int("layer.gap_passes", passes),
		attribute.Int("layer.edges", diag.Edges),
		attribute.Int("layer.corners", diag.Corners),
		attribute.Int("layer.unmatched", len(diag.Unmatched)),
		attribute.Int64("layer.generation_ms", time.Since(startTime).Milliseconds()),
	)
	for _, c := range diag.Unmatched {
		span.AddEvent("unmatched_pattern", trace.WithAttributes(
			attribute.Int("x", c.X),
			attribute.Int("y", c.Y),
		))
	}
	recordLayerMetrics(ctx, layer)

	return layer, nil
}

// NewOceanLayer fills every cell from the repeating 4x4 ocean pattern.
func NewOceanLayer(width, height int, catalog *Catalog) (*Layer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, width, height)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if catalog.Kind != KindOcean {
		return nil, fmt.Errorf("%w: ocean layer needs an ocean catalog, got %s", ErrInvalidConfig, catalog.Kind)
	}

	cells := make([]TileID, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = catalog.Centers[(y%OceanPatternSize)*OceanPatternSize+x%OceanPatternSize]
		}
	}

	return &Layer{
		kind:   KindOcean,
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Kind returns the layer's terrain kind.
func (l *Layer) Kind() LayerKind { return l.kind }

// Width returns the layer width in tiles.
func (l *Layer) Width() int { return l.width }

// Height returns the layer height in tiles.
func (l *Layer) Height() int { return l.height }

// Centroid returns the world-space seed point of the layer's blob.
func (l *Layer) Centroid() Point { return l.centroid }

// Altitude returns how many grass layers sit beneath this one.
func (l *Layer) Altitude() int { return l.altitude }

// Diagnostics returns the classification summary for the layer.
func (l *Layer) Diagnostics() Diagnostics { return l.diagnostics }

// TileAt returns the tile at (x, y). The bool is false for empty or
// out-of-range cells.
func (l *Layer) TileAt(x, y int) (TileID, bool) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return TileID{}, false
	}
	t := l.cells[y*l.width+x]
	return t, !t.IsEmpty()
}

// LandCount returns the number of non-empty cells.
func (l *Layer) LandCount() int {
	n := 0
	for _, t := range l.cells {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}

func recordLayerMetrics(ctx context.Context, l *Layer) {
	meter := telemetry.Meter("world")
	tiles, err := meter.Int64Counter("layer.tiles",
		metric.WithDescription("Non-empty tiles placed by terrain generation"))
	if err == nil {
		tiles.Add(ctx, int64(l.LandCount()), metric.WithAttributes(attribute.String("layer.kind", l.kind.String())))
	}
	unmatched, err := meter.Int64Counter("layer.unmatched_patterns",
		metric.WithDescription("Boundary cells left empty because no edge rule matched"))
	if err == nil {
		unmatched.Add(ctx, int64(len(l.diagnostics.Unmatched)), metric.WithAttributes(attribute.String("layer.kind", l.kind.String())))
	}
}
