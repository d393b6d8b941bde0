// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player walks the island.
	StateExplore State = iota
	// StateGenerating is shown while a new world is being built.
	StateGenerating
	// StateQuit ends the game loop.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateGenerating:
		return "generating"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
