package ui

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/isleband/internal/entity"
	"github.com/samdwyer/isleband/internal/gamedata"
	"github.com/samdwyer/isleband/internal/world"
)

// fakeCanvas records drawn cells in memory.
type fakeCanvas struct {
	width, height int
	cells         map[[2]int]rune
	shows         int
}

func newFakeCanvas(width, height int) *fakeCanvas {
	return &fakeCanvas{width: width, height: height, cells: make(map[[2]int]rune)}
}

func (c *fakeCanvas) Clear()                    { c.cells = make(map[[2]int]rune) }
func (c *fakeCanvas) Show()                     { c.shows++ }
func (c *fakeCanvas) Size() (width, height int) { return c.width, c.height }
func (c *fakeCanvas) SetContent(x, y int, r rune, _ tcell.Style) {
	c.cells[[2]int{x, y}] = r
}

func (c *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		if r, ok := c.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// viewFor centers a viewport on the player covering the canvas map area.
func viewFor(w *world.WorldGrid, canvas *fakeCanvas, player *entity.Player, zoom float64) world.Viewport {
	ts := w.TileSize()
	return world.Viewport{
		Target:     player.Center(),
		Zoom:       world.Point{X: zoom, Y: zoom},
		HalfExtent: world.Point{X: float64(canvas.width) * ts / 2, Y: float64(canvas.height-1) * ts / 2},
	}
}

func oceanWorld(t *testing.T, registry *gamedata.TilesetRegistry) *world.WorldGrid {
	t.Helper()
	catalogs, err := registry.Catalogs()
	if err != nil {
		t.Fatalf("Catalogs() error: %v", err)
	}
	ocean, err := world.NewOceanLayer(8, 6, catalogs[world.KindOcean])
	if err != nil {
		t.Fatalf("NewOceanLayer error: %v", err)
	}
	w, err := world.NewWorldGrid(16, ocean)
	if err != nil {
		t.Fatalf("NewWorldGrid error: %v", err)
	}
	return w
}

func TestRenderOceanAtZoomOne(t *testing.T) {
	registry := gamedata.MustLoadTilesetRegistry()
	w := oceanWorld(t, registry)
	player := entity.NewPlayer(world.Point{X: 64, Y: 48})
	canvas := newFakeCanvas(21, 11)

	NewRenderer(canvas).Render(w, player, registry, viewFor(w, canvas, player, 1), "hello")

	tests := []struct {
		x, y int
		want rune
	}{
		{10, 5, '@'},
		{6, 2, '~'},  // tile (0, 0)
		{13, 7, '~'}, // tile (7, 5)
		{5, 2, ' '},  // left of the world
		{14, 7, ' '}, // right of the world
		{6, 1, ' '},  // above the world
		{6, 8, ' '},  // below the world
	}
	for _, tt := range tests {
		got, ok := canvas.cells[[2]int{tt.x, tt.y}]
		if !ok {
			got = ' '
		}
		if got != tt.want {
			t.Errorf("cell (%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}

	if row := canvas.row(10); !strings.HasPrefix(row, "hello") {
		t.Errorf("status row = %q, want it to start with hello", row)
	}
	if canvas.shows != 1 {
		t.Errorf("Show called %d times, want 1", canvas.shows)
	}
}

func TestRenderZoomedIn(t *testing.T) {
	registry := gamedata.MustLoadTilesetRegistry()
	w := oceanWorld(t, registry)
	player := entity.NewPlayer(world.Point{X: 64, Y: 48})
	canvas := newFakeCanvas(21, 11)

	NewRenderer(canvas).Render(w, player, registry, viewFor(w, canvas, player, 2), "")

	if got := canvas.cells[[2]int{10, 5}]; got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := canvas.cells[[2]int{2, 5}]; got != '~' {
		t.Errorf("cell (2, 5) = %q, want '~'", got)
	}
	if _, ok := canvas.cells[[2]int{1, 5}]; ok {
		t.Error("cell (1, 5) lies left of the world and should be blank")
	}
}

func TestRenderIslandTopmost(t *testing.T) {
	registry := gamedata.MustLoadTilesetRegistry()
	catalogs, err := registry.Catalogs()
	if err != nil {
		t.Fatalf("Catalogs() error: %v", err)
	}
	cfg := world.DefaultBuildConfig()
	cfg.Width, cfg.Height = 16, 12
	w, err := world.Build(context.Background(), cfg, catalogs, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	spawn := w.Spawn()
	player := entity.NewPlayer(spawn)
	canvas := newFakeCanvas(41, 32)
	NewRenderer(canvas).Render(w, player, registry, viewFor(w, canvas, player, 1), "")

	// The spawn is a tile center, so tile (tx, ty) lands on screen cell
	// (tx-n+20, ty-m+15) where (n, m) is the spawn tile.
	n := int(spawn.X / w.TileSize())
	m := int(spawn.Y / w.TileSize())
	island := 0
	for ty := 0; ty < w.Height(); ty++ {
		for tx := 0; tx < w.Width(); tx++ {
			if tx == n && ty == m {
				continue
			}
			top, ok := w.TopTile(tx, ty)
			if !ok {
				t.Fatalf("TopTile(%d, %d) empty; ocean should always show", tx, ty)
			}
			if top.Kind == world.KindIsland {
				island++
			}
			want := registry.Get(top.Kind).GlyphRune(top)
			if got := canvas.cells[[2]int{tx - n + 20, ty - m + 15}]; got != want {
				t.Errorf("tile (%d, %d) %s drawn as %q, want %q", tx, ty, top, got, want)
			}
		}
	}
	if island == 0 {
		t.Error("expected island tiles on screen")
	}
	if got := canvas.cells[[2]int{20, 15}]; got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
}

func TestRenderTinyCanvas(t *testing.T) {
	registry := gamedata.MustLoadTilesetRegistry()
	w := oceanWorld(t, registry)
	canvas := newFakeCanvas(5, 1)

	player := entity.NewPlayer(world.Point{X: 10, Y: 10})
	NewRenderer(canvas).Render(w, player, registry, viewFor(w, canvas, player, 1), "status")

	if len(canvas.cells) != 0 {
		t.Errorf("tiny canvas drew %d cells, want 0", len(canvas.cells))
	}
}

func TestRenderZeroZoomDrawsOnlyStatus(t *testing.T) {
	registry := gamedata.MustLoadTilesetRegistry()
	w := oceanWorld(t, registry)
	player := entity.NewPlayer(world.Point{X: 64, Y: 48})
	canvas := newFakeCanvas(21, 11)

	NewRenderer(canvas).Render(w, player, registry, viewFor(w, canvas, player, 0), "hi")

	if len(canvas.cells) != 2 {
		t.Errorf("drew %d cells, want only the 2 status cells", len(canvas.cells))
	}
}

func TestViewSize(t *testing.T) {
	cols, rows := NewRenderer(newFakeCanvas(80, 24)).ViewSize()
	if cols != 80 || rows != 23 {
		t.Errorf("ViewSize() = %d, %d; want 80, 23", cols, rows)
	}
}
