// Package entity provides game entities that move through the world.
package entity

import "github.com/samdwyer/isleband/internal/world"

// Default player collision box, in world units.
const (
	DefaultPlayerWidth  = 10
	DefaultPlayerHeight = 10
)

// Player is the character walking the island.
type Player struct {
	Pos    world.Point // Top-left of the collision box
	Size   world.Point // Collision box extent
	Symbol rune        // Display symbol
}

// NewPlayer creates a player whose collision box is centered on p.
func NewPlayer(p world.Point) *Player {
	size := world.Point{X: DefaultPlayerWidth, Y: DefaultPlayerHeight}
	return &Player{
		Pos:    world.Point{X: p.X - size.X/2, Y: p.Y - size.Y/2},
		Size:   size,
		Symbol: '@',
	}
}

// Center returns the middle of the collision box.
func (p *Player) Center() world.Point {
	return world.Point{X: p.Pos.X + p.Size.X/2, Y: p.Pos.Y + p.Size.Y/2}
}

// Moved returns the box position after moving by (dx, dy).
func (p *Player) Moved(dx, dy float64) world.Point {
	return world.Point{X: p.Pos.X + dx, Y: p.Pos.Y + dy}
}

// TryMove moves the player by (dx, dy) unless the destination is blocked.
// It reports whether the move happened.
func (p *Player) TryMove(w *world.WorldGrid, dx, dy float64) bool {
	next := p.Moved(dx, dy)
	if w.IsBlocked(next, p.Size) {
		return false
	}
	p.Pos = next
	return true
}
