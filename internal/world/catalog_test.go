package world

import (
	"errors"
	"testing"
)

func TestNewCatalogValid(t *testing.T) {
	for kind, c := range testCatalogs() {
		if err := c.Validate(); err != nil {
			t.Errorf("%s catalog invalid: %v", kind, err)
		}
	}
}

func TestCatalogValidateErrors(t *testing.T) {
	noCenters := NewCatalog(KindIsland, 0)

	missingEdge := NewCatalog(KindGrass, 2)
	delete(missingEdge.Edges, DirTopRight)

	wrongCorner := NewCatalog(KindIsland, 2)
	wrongCorner.Corners[DirTopLeft] = CornerTile(KindIsland, DirBottomRight)

	foreignCenter := NewCatalog(KindIsland, 1)
	foreignCenter.Centers[0] = CenterTile(KindGrass, 0)

	shortOcean := NewCatalog(KindOcean, 4)

	tooManyCenters := NewCatalog(KindGrass, MaxCenterVariants+1)

	tests := []struct {
		name    string
		catalog *Catalog
	}{
		{"nil", nil},
		{"no centers", noCenters},
		{"missing edge", missingEdge},
		{"mismatched corner", wrongCorner},
		{"foreign center", foreignCenter},
		{"short ocean pattern", shortOcean},
		{"more centers than variants", tooManyCenters},
	}

	for _, tt := range tests {
		if err := tt.catalog.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestCatalogMaxCenterVariants(t *testing.T) {
	c := NewCatalog(KindIsland, MaxCenterVariants)
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() with %d centers = %v", MaxCenterVariants, err)
	}
	last := c.Centers[MaxCenterVariants-1]
	if int(last.Variant) != MaxCenterVariants-1 {
		t.Errorf("last center variant = %d, want %d", last.Variant, MaxCenterVariants-1)
	}
}

func TestCatalogRandomCenterStaysInSet(t *testing.T) {
	c := islandCatalog(t)
	rng := seeded(7)
	for i := 0; i < 200; i++ {
		if got := c.RandomCenter(rng); !c.IsCenter(got) {
			t.Fatalf("RandomCenter returned %s, not in catalog", got)
		}
	}
	if c.IsCenter(c.Edge(DirTop)) {
		t.Error("edge tile reported as center")
	}
}
