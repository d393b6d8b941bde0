package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/isleband/internal/world"
)

// AtlasDef describes the sprite sheet tiles are cut from.
type AtlasDef struct {
	Columns  int `json:"columns"`  // Tiles per sheet row
	TileSize int `json:"tileSize"` // Tile edge in pixels
}

// TilesetDef defines the sprites and preview style for one layer kind.
// Atlas indices use Tiled numbering: 1-based, 0 means no sprite.
type TilesetDef struct {
	Kind         string            `json:"kind"`       // Layer kind ("ocean", "island", "grass")
	Name         string            `json:"name"`       // Display name
	Glyph        string            `json:"glyph"`      // Terminal glyph for center tiles
	Color        string            `json:"color"`      // Foreground hex color
	Background   string            `json:"background"` // Background hex color
	Centers      []int             `json:"centers"`    // Atlas index per center variant
	Edges        map[string]int    `json:"edges,omitempty"`
	Corners      map[string]int    `json:"corners,omitempty"`
	EdgeGlyphs   map[string]string `json:"edgeGlyphs,omitempty"`
	CornerGlyphs map[string]string `json:"cornerGlyphs,omitempty"`
}

// TilesetsFile represents the structure of tilesets.json.
type TilesetsFile struct {
	Atlas    AtlasDef     `json:"atlas"`
	Tilesets []TilesetDef `json:"tilesets"`
}

// LayerKind returns the world layer kind this tileset serves.
func (d *TilesetDef) LayerKind() (world.LayerKind, error) {
	return world.ParseLayerKind(d.Kind)
}

// Catalog builds the world catalog for this tileset, checking that every role
// its kind needs has a sprite.
func (d *TilesetDef) Catalog() (*world.Catalog, error) {
	kind, err := d.LayerKind()
	if err != nil {
		return nil, err
	}
	if kind != world.KindOcean {
		for _, dir := range world.EdgeDirections {
			if d.Edges[dir.String()] == 0 {
				return nil, fmt.Errorf("%w: tileset %s has no %s edge sprite", world.ErrInvalidConfig, d.Kind, dir)
			}
		}
		for _, dir := range world.CornerDirections {
			if d.Corners[dir.String()] == 0 {
				return nil, fmt.Errorf("%w: tileset %s has no %s corner sprite", world.ErrInvalidConfig, d.Kind, dir)
			}
		}
	}

	catalog := world.NewCatalog(kind, len(d.Centers))
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("tileset %s: %w", d.Kind, err)
	}
	return catalog, nil
}

// AtlasIndex returns the sprite sheet index for a tile of this tileset.
func (d *TilesetDef) AtlasIndex(id world.TileID) (int, bool) {
	var index int
	switch id.Role {
	case world.RoleCenter:
		if int(id.Variant) >= len(d.Centers) {
			return 0, false
		}
		index = d.Centers[id.Variant]
	case world.RoleEdge:
		index = d.Edges[id.Dir.String()]
	case world.RoleCorner:
		index = d.Corners[id.Dir.String()]
	default:
		return 0, false
	}
	return index, index > 0
}

// GlyphRune returns the terminal glyph for a tile of this tileset.
func (d *TilesetDef) GlyphRune(id world.TileID) rune {
	var glyph string
	switch id.Role {
	case world.RoleEdge:
		glyph = d.EdgeGlyphs[id.Dir.String()]
	case world.RoleCorner:
		glyph = d.CornerGlyphs[id.Dir.String()]
	}
	if glyph == "" {
		glyph = d.Glyph
	}
	for _, r := range glyph {
		return r
	}
	return '?'
}

// Style returns the tcell style for this tileset's tiles. Colors that fail to
// parse fall back to the terminal default.
func (d *TilesetDef) Style() tcell.Style {
	style, err := tileStyle(d.Color, d.Background)
	if err != nil {
		return tcell.StyleDefault
	}
	return style
}

// Rect is a source rectangle in the sprite sheet, in pixels.
type Rect struct {
	X, Y, Width, Height int
}

// Rect returns the source rectangle for a 1-based atlas index. Index 0 has no
// sprite.
func (a AtlasDef) Rect(index int) (Rect, bool) {
	if index <= 0 || a.Columns <= 0 || a.TileSize <= 0 {
		return Rect{}, false
	}
	i := index - 1
	return Rect{
		X:      (i % a.Columns) * a.TileSize,
		Y:      (i / a.Columns) * a.TileSize,
		Width:  a.TileSize,
		Height: a.TileSize,
	}, true
}
