package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/isleband/internal/entity"
	"github.com/samdwyer/isleband/internal/gamedata"
	"github.com/samdwyer/isleband/internal/world"
)

// Canvas is the drawing surface the renderer needs. *Screen implements it.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (width, height int)
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// ViewSize returns the cells available for the map, leaving the last row for
// the status line.
func (r *Renderer) ViewSize() (cols, rows int) {
	cols, rows = r.canvas.Size()
	return cols, rows - 1
}

// Render draws the part of the world the viewport sees, the player and a
// status line on the last row. The viewport's half extent should cover
// ViewSize cells of one tile each.
func (r *Renderer) Render(w *world.WorldGrid, player *entity.Player, tiles *gamedata.TilesetRegistry, view world.Viewport, status string) {
	r.canvas.Clear()

	cols, rows := r.ViewSize()
	if cols <= 0 || rows <= 0 {
		r.canvas.Show()
		return
	}

	visible := w.VisibleTileRange(view)
	if !visible.Empty() {
		ts := w.TileSize()
		left := view.Target.X - view.HalfExtent.X/view.Zoom.X
		top := view.Target.Y - view.HalfExtent.Y/view.Zoom.Y
		// World units per screen cell
		cellW := ts / view.Zoom.X
		cellH := ts / view.Zoom.Y

		for sy := 0; sy < rows; sy++ {
			ty := int(math.Floor((top + (float64(sy)+0.5)*cellH) / ts))
			for sx := 0; sx < cols; sx++ {
				tx := int(math.Floor((left + (float64(sx)+0.5)*cellW) / ts))
				if !visible.Contains(tx, ty) {
					continue
				}
				id, ok := w.TopTile(tx, ty)
				if !ok {
					continue
				}
				def := tiles.Get(id.Kind)
				if def == nil {
					continue
				}
				r.canvas.SetContent(sx, sy, def.GlyphRune(id), def.Style())
			}
		}

		// Draw player on top
		center := player.Center()
		px := int(math.Floor((center.X - left) / cellW))
		py := int(math.Floor((center.Y - top) / cellH))
		if px >= 0 && px < cols && py >= 0 && py < rows {
			playerStyle := tcell.StyleDefault.
				Foreground(tcell.ColorYellow).
				Bold(true)
			r.canvas.SetContent(px, py, player.Symbol, playerStyle)
		}
	}

	r.RenderMessage(status, rows)
	r.canvas.Show()
}

// RenderMessage displays a message on the given row, clipped to the width.
func (r *Renderer) RenderMessage(msg string, y int) {
	cols, _ := r.canvas.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		if x >= cols {
			break
		}
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
