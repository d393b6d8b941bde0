package world

import (
	"errors"
	"testing"
)

func TestLayerKindRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind LayerKind
	}{
		{"ocean", KindOcean},
		{"island", KindIsland},
		{"beach", KindIsland},
		{"grass", KindGrass},
	}

	for _, tt := range tests {
		got, err := ParseLayerKind(tt.name)
		if err != nil {
			t.Errorf("ParseLayerKind(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.kind {
			t.Errorf("ParseLayerKind(%q) = %v, want %v", tt.name, got, tt.kind)
		}
	}

	if _, err := ParseLayerKind("lava"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseLayerKind(lava) error = %v, want ErrInvalidConfig", err)
	}
	if LayerKind(99).String() != "unknown" {
		t.Errorf("LayerKind(99).String() = %q, want unknown", LayerKind(99).String())
	}
}

func TestTileIDPredicates(t *testing.T) {
	var empty TileID
	if !empty.IsEmpty() {
		t.Error("zero TileID should be empty")
	}

	center := CenterTile(KindGrass, 2)
	if !center.IsCenter() || center.IsEmpty() {
		t.Errorf("%s should be a non-empty center", center)
	}

	edge := EdgeTile(KindIsland, DirTop)
	if !edge.IsEdge(DirTop) || edge.IsEdge(DirBottom) || edge.IsCorner(DirTop) {
		t.Errorf("%s predicates are wrong", edge)
	}

	corner := CornerTile(KindIsland, DirBottomLeft)
	if !corner.IsCorner(DirBottomLeft) || corner.IsEdge(DirBottomLeft) {
		t.Errorf("%s predicates are wrong", corner)
	}

	if got := corner.String(); got != "island/corner/bottom_left" {
		t.Errorf("String() = %q, want island/corner/bottom_left", got)
	}
	if got := center.String(); got != "grass/center/2" {
		t.Errorf("String() = %q, want grass/center/2", got)
	}
}

func TestDirectionDiagonal(t *testing.T) {
	for _, d := range CornerDirections {
		if !d.IsDiagonal() {
			t.Errorf("%s should be diagonal", d)
		}
	}
	for _, d := range []Direction{DirTop, DirBottom, DirLeft, DirRight} {
		if d.IsDiagonal() {
			t.Errorf("%s should not be diagonal", d)
		}
	}
}
