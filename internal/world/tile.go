// Package world provides island terrain generation and the layered tile grid
// that renderers and gameplay query.
package world

import "fmt"

// LayerKind identifies which kind of terrain a layer holds.
type LayerKind uint8

const (
	// KindOcean is the always-filled background layer.
	KindOcean LayerKind = iota
	// KindIsland is the sand/beach land mass.
	KindIsland
	// KindGrass is grass grown on top of the island.
	KindGrass
)

// String returns the kind's configuration name.
func (k LayerKind) String() string {
	switch k {
	case KindOcean:
		return "ocean"
	case KindIsland:
		return "island"
	case KindGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// ParseLayerKind converts a configuration name into a LayerKind.
// "beach" is accepted as an alias for the island layer.
func ParseLayerKind(name string) (LayerKind, error) {
	switch name {
	case "ocean":
		return KindOcean, nil
	case "island", "beach":
		return KindIsland, nil
	case "grass":
		return KindGrass, nil
	default:
		return 0, fmt.Errorf("%w: unknown layer kind %q", ErrInvalidConfig, name)
	}
}

// Role is the part a tile plays in a terrain blob.
type Role uint8

const (
	// RoleNone marks an empty cell.
	RoleNone Role = iota
	// RoleCenter is interchangeable filler inside the land mass.
	RoleCenter
	// RoleEdge is a boundary tile with land on one or two cardinal sides.
	RoleEdge
	// RoleCorner is a boundary tile at a diagonal transition.
	RoleCorner
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleCenter:
		return "center"
	case RoleEdge:
		return "edge"
	case RoleCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// Direction names the side of the land mass a boundary tile sits on.
type Direction uint8

const (
	DirTop Direction = iota
	DirBottom
	DirLeft
	DirRight
	DirTopLeft
	DirTopRight
	DirBottomLeft
	DirBottomRight
)

// EdgeDirections lists every direction an edge tile can face.
var EdgeDirections = []Direction{
	DirTop, DirBottom, DirLeft, DirRight,
	DirTopLeft, DirTopRight, DirBottomLeft, DirBottomRight,
}

// CornerDirections lists the diagonal directions corner tiles use.
var CornerDirections = []Direction{DirTopLeft, DirTopRight, DirBottomLeft, DirBottomRight}

// String returns the direction's configuration name.
func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTopLeft:
		return "top_left"
	case DirTopRight:
		return "top_right"
	case DirBottomLeft:
		return "bottom_left"
	case DirBottomRight:
		return "bottom_right"
	default:
		return "unknown"
	}
}

// IsDiagonal reports whether d is one of the four diagonal directions.
func (d Direction) IsDiagonal() bool {
	return d >= DirTopLeft && d <= DirBottomRight
}

// TileID identifies a sprite by layer kind and role. The zero value is the
// empty cell.
type TileID struct {
	Kind    LayerKind
	Role    Role
	Dir     Direction // meaningful for edges and corners
	Variant uint8     // index into the catalog's center set
}

// CenterTile returns the center tile of the given variant.
func CenterTile(kind LayerKind, variant int) TileID {
	return TileID{Kind: kind, Role: RoleCenter, Variant: uint8(variant)}
}

// EdgeTile returns the edge tile facing dir.
func EdgeTile(kind LayerKind, dir Direction) TileID {
	return TileID{Kind: kind, Role: RoleEdge, Dir: dir}
}

// CornerTile returns the corner tile facing dir.
func CornerTile(kind LayerKind, dir Direction) TileID {
	return TileID{Kind: kind, Role: RoleCorner, Dir: dir}
}

// IsEmpty returns true for the empty cell.
func (t TileID) IsEmpty() bool {
	return t.Role == RoleNone
}

// IsCenter returns true if the tile is center filler.
func (t TileID) IsCenter() bool {
	return t.Role == RoleCenter
}

// IsEdge returns true if the tile is an edge facing dir.
func (t TileID) IsEdge(dir Direction) bool {
	return t.Role == RoleEdge && t.Dir == dir
}

// IsCorner returns true if the tile is a corner facing dir.
func (t TileID) IsCorner(dir Direction) bool {
	return t.Role == RoleCorner && t.Dir == dir
}

// String returns a compact description such as "island/edge/top".
func (t TileID) String() string {
	switch t.Role {
	case RoleNone:
		return "empty"
	case RoleCenter:
		return fmt.Sprintf("%s/center/%d", t.Kind, t.Variant)
	default:
		return fmt.Sprintf("%s/%s/%s", t.Kind, t.Role, t.Dir)
	}
}
