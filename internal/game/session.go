package game

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/isleband/internal/entity"
	"github.com/samdwyer/isleband/internal/gamedata"
	"github.com/samdwyer/isleband/internal/world"
)

// Zoom limits for the camera.
const (
	MinZoom  = 0.25
	MaxZoom  = 4.0
	zoomStep = 2.0
)

// Session is one playthrough: a generated world, the player walking it and
// the camera following them. It has no terminal dependency.
type Session struct {
	ID       string
	Seed     int64
	World    *world.WorldGrid
	Player   *entity.Player
	Zoom     float64
	Registry *gamedata.TilesetRegistry

	cfg      Config
	build    world.BuildConfig
	catalogs map[world.LayerKind]*world.Catalog
	tracer   trace.Tracer
}

// LoadRegistry returns the tileset registry named by the config, falling back
// to the embedded tilesets.
func LoadRegistry(cfg Config) (*gamedata.TilesetRegistry, error) {
	if cfg.TilesetFile == "" {
		return gamedata.LoadTilesetRegistry()
	}
	dir, name := filepath.Split(cfg.TilesetFile)
	if dir == "" {
		dir = "."
	}
	return gamedata.LoadTilesetRegistryFS(os.DirFS(dir), name)
}

// NewSession validates the config and generates the first world with seed.
func NewSession(ctx context.Context, cfg Config, registry *gamedata.TilesetRegistry, tracer trace.Tracer, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	build, err := cfg.BuildConfig()
	if err != nil {
		return nil, err
	}
	catalogs, err := registry.Catalogs()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalogs: %w", err)
	}

	s := &Session{
		ID:       uuid.NewString(),
		Zoom:     cfg.Zoom,
		Registry: registry,
		cfg:      cfg,
		build:    build,
		catalogs: catalogs,
		tracer:   tracer,
	}
	if err := s.Regenerate(ctx, seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate builds a fresh world from seed and respawns the player on it.
// On failure the current world is kept.
func (s *Session) Regenerate(ctx context.Context, seed int64) error {
	ctx, span := s.tracer.Start(ctx, "session.generate")
	defer span.End()

	w, err := world.Build(ctx, s.build, s.catalogs, rand.New(rand.NewSource(seed)))
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.Seed = seed
	s.World = w
	s.Player = entity.NewPlayer(w.Spawn())

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int64("session.seed", seed),
		attribute.Float64("player.start_x", s.Player.Pos.X),
		attribute.Float64("player.start_y", s.Player.Pos.Y),
	)
	return nil
}

// Step moves the player by whole tiles, reporting whether the move happened.
func (s *Session) Step(dx, dy int) bool {
	ts := s.World.TileSize()
	return s.Player.TryMove(s.World, float64(dx)*ts, float64(dy)*ts)
}

// ZoomIn doubles the zoom up to MaxZoom.
func (s *Session) ZoomIn() {
	s.Zoom = min(s.Zoom*zoomStep, MaxZoom)
}

// ZoomOut halves the zoom down to MinZoom.
func (s *Session) ZoomOut() {
	s.Zoom = max(s.Zoom/zoomStep, MinZoom)
}

// Viewport returns the camera for a screen of cols x rows cells, one tile
// per cell at zoom 1, centered on the player.
func (s *Session) Viewport(cols, rows int) world.Viewport {
	ts := s.World.TileSize()
	return world.Viewport{
		Target:     s.Player.Center(),
		Zoom:       world.Point{X: s.Zoom, Y: s.Zoom},
		HalfExtent: world.Point{X: float64(cols) * ts / 2, Y: float64(rows) * ts / 2},
	}
}
