package gamedata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samdwyer/isleband/internal/world"
)

// TilesetRegistry holds loaded tilesets keyed by layer kind.
type TilesetRegistry struct {
	atlas    AtlasDef
	tilesets map[world.LayerKind]*TilesetDef
}

// NewTilesetRegistry creates a registry from a loaded tilesets file.
func NewTilesetRegistry(file TilesetsFile) (*TilesetRegistry, error) {
	registry := &TilesetRegistry{
		atlas:    file.Atlas,
		tilesets: make(map[world.LayerKind]*TilesetDef),
	}
	for i := range file.Tilesets {
		def := &file.Tilesets[i]
		kind, err := def.LayerKind()
		if err != nil {
			return nil, err
		}
		if _, err := tileStyle(def.Color, def.Background); err != nil {
			return nil, fmt.Errorf("tileset %s: %w", def.Kind, err)
		}
		if _, dup := registry.tilesets[kind]; dup {
			return nil, fmt.Errorf("%w: duplicate %s tileset", world.ErrInvalidConfig, kind)
		}
		registry.tilesets[kind] = def
	}
	if _, ok := registry.tilesets[world.KindOcean]; !ok {
		return nil, errors.New("no ocean tileset defined")
	}
	return registry, nil
}

// LoadTilesetRegistry loads and creates a registry from the embedded tilesets.json.
func LoadTilesetRegistry() (*TilesetRegistry, error) {
	file, err := Load[TilesetsFile]("tilesets.json")
	if err != nil {
		return nil, err
	}
	return NewTilesetRegistry(file)
}

// LoadTilesetRegistryFS loads a registry from a tilesets file in fsys.
func LoadTilesetRegistryFS(fsys fs.FS, filename string) (*TilesetRegistry, error) {
	file, err := LoadFS[TilesetsFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	return NewTilesetRegistry(file)
}

// MustLoadTilesetRegistry loads the embedded registry, panicking on error.
func MustLoadTilesetRegistry() *TilesetRegistry {
	registry, err := NewTilesetRegistry(MustLoad[TilesetsFile]("tilesets.json"))
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the tileset for a layer kind, or nil if none is defined.
func (r *TilesetRegistry) Get(kind world.LayerKind) *TilesetDef {
	return r.tilesets[kind]
}

// Atlas returns the sprite sheet layout.
func (r *TilesetRegistry) Atlas() AtlasDef {
	return r.atlas
}

// Catalogs builds a world catalog for every tileset.
func (r *TilesetRegistry) Catalogs() (map[world.LayerKind]*world.Catalog, error) {
	catalogs := make(map[world.LayerKind]*world.Catalog, len(r.tilesets))
	for kind, def := range r.tilesets {
		catalog, err := def.Catalog()
		if err != nil {
			return nil, err
		}
		catalogs[kind] = catalog
	}
	return catalogs, nil
}

// SourceRect returns the sprite sheet rectangle for a tile, or false when the
// tile is empty or its kind has no sprite for it.
func (r *TilesetRegistry) SourceRect(id world.TileID) (Rect, bool) {
	def := r.tilesets[id.Kind]
	if def == nil {
		return Rect{}, false
	}
	index, ok := def.AtlasIndex(id)
	if !ok {
		return Rect{}, false
	}
	return r.atlas.Rect(index)
}

// Count returns the number of tilesets in the registry.
func (r *TilesetRegistry) Count() int {
	return len(r.tilesets)
}
