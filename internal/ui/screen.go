// Package ui draws the island world in a terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen adapts a tcell.Screen to the Canvas the renderer draws on and the
// event source the game loop polls.
type Screen struct {
	screen tcell.Screen
}

// NewScreen opens and initializes the terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes s. Tests pass a tcell simulation screen.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.screen.Fini() }

// PollEvent blocks for the next key or resize event.
func (s *Screen) PollEvent() tcell.Event { return s.screen.PollEvent() }

// Clear empties the back buffer.
func (s *Screen) Clear() { s.screen.Clear() }

// Show flushes the back buffer to the terminal.
func (s *Screen) Show() { s.screen.Show() }

// Sync redraws everything, e.g. after a resize.
func (s *Screen) Sync() { s.screen.Sync() }

// SetContent puts one glyph at a cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (width, height int) { return s.screen.Size() }
