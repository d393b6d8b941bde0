package game

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/isleband/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvConfigPath = "ISLEBAND_CONFIG"
	EnvSeed       = "ISLEBAND_SEED"
	EnvWidth      = "ISLEBAND_WIDTH"
	EnvHeight     = "ISLEBAND_HEIGHT"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible island generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	Width    int     `yaml:"width"`     // World width in tiles
	Height   int     `yaml:"height"`    // World height in tiles
	TileSize float64 `yaml:"tile_size"` // Tile edge in world units

	// Layers lists generated layers above the ocean, bottom first.
	Layers []string `yaml:"layers"`

	MinRegionFraction float64 `yaml:"min_region_fraction"`
	MaxRegionFraction float64 `yaml:"max_region_fraction"`
	// ContainmentTolerance bounds how far the random walk may stray from the
	// island's nominal ellipse.
	ContainmentTolerance float64 `yaml:"containment_tolerance"`

	Zoom float64 `yaml:"zoom"` // Initial camera zoom

	// TilesetFile optionally replaces the embedded tileset data.
	TilesetFile string `yaml:"tileset_file"`
}

// DefaultConfig returns the standard single-island world.
func DefaultConfig() Config {
	return Config{
		Width:                world.DefaultWidth,
		Height:               world.DefaultHeight,
		TileSize:             world.DefaultTileSize,
		Layers:               []string{"island"},
		MinRegionFraction:    world.DefaultMinRegionFraction,
		MaxRegionFraction:    world.DefaultMaxRegionFraction,
		ContainmentTolerance: world.DefaultTolerance,
		Zoom:                 1,
	}
}

// LoadConfig builds a Config from defaults, then the YAML file at path (or
// $ISLEBAND_CONFIG when path is empty), then environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides fields from environment variables that are set.
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", world.ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = seed
	}
	for _, env := range []struct {
		name  string
		field *int
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
	} {
		v := os.Getenv(env.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", world.ErrInvalidConfig, env.name, v)
		}
		*env.field = n
	}
	return nil
}

// Validate reports configuration errors before any generation runs.
func (c Config) Validate() error {
	_, err := c.BuildConfig()
	if err != nil {
		return err
	}
	if !(c.Zoom > 0) || math.IsInf(c.Zoom, 1) {
		return fmt.Errorf("%w: zoom must be positive, got %v", world.ErrInvalidConfig, c.Zoom)
	}
	return nil
}

// BuildConfig converts the game configuration into a world build request.
func (c Config) BuildConfig() (world.BuildConfig, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return world.BuildConfig{}, fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			world.ErrInvalidConfig, c.Width, c.Height)
	}

	layers := make([]world.LayerKind, 0, len(c.Layers))
	for _, name := range c.Layers {
		kind, err := world.ParseLayerKind(name)
		if err != nil {
			return world.BuildConfig{}, err
		}
		if kind == world.KindOcean {
			return world.BuildConfig{}, fmt.Errorf("%w: ocean is always the bottom layer and cannot be listed", world.ErrInvalidConfig)
		}
		layers = append(layers, kind)
	}

	bc := world.BuildConfig{
		Width:  c.Width,
		Height: c.Height,
		Layers: layers,
		Grow: world.GrowOptions{
			MinRegionFraction: c.MinRegionFraction,
			MaxRegionFraction: c.MaxRegionFraction,
			Tolerance:         c.ContainmentTolerance,
			TileSize:          c.TileSize,
		},
	}
	if err := bc.Grow.Validate(); err != nil {
		return world.BuildConfig{}, err
	}
	return bc, nil
}

// ResolveSeed returns the configured seed, or one derived from now when the
// seed is 0.
func (c Config) ResolveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
