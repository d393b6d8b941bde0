package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/isleband/internal/ui"
)

// command is a player action decoded from a key press.
type command int

const (
	cmdNone command = iota
	cmdUp
	cmdDown
	cmdLeft
	cmdRight
	cmdZoomIn
	cmdZoomOut
	cmdRegenerate
	cmdQuit
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	cfg      Config
	tracer   trace.Tracer
	state    State
	message  string
}

// New creates a new game instance. The tracer is telemetry.Tracer or
// telemetry.NoopTracer depending on whether telemetry is enabled.
func New(cfg Config, tracer trace.Tracer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		tracer:   tracer,
		state:    StateGenerating,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	// Initialize game (traced)
	ctx, initSpan := g.tracer.Start(ctx, "game.init")

	registry, err := LoadRegistry(g.cfg)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return fmt.Errorf("failed to load tilesets: %w", err)
	}

	seed := g.cfg.ResolveSeed(time.Now())
	g.session, err = NewSession(ctx, g.cfg, registry, g.tracer, seed)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.state = StateExplore

	initSpan.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.Int64("session.seed", seed),
		attribute.Int("world.width", g.session.World.Width()),
		attribute.Int("world.height", g.session.World.Height()),
		attribute.Int("world.layers", g.session.World.LayerCount()),
	)
	initSpan.End()

	// Main game loop
	for g.state != StateQuit {
		g.draw()
		g.handleInput(ctx)
	}
	return nil
}

// draw renders one frame through the session's camera.
func (g *Game) draw() {
	cols, rows := g.renderer.ViewSize()
	view := g.session.Viewport(cols, rows)
	g.renderer.Render(g.session.World, g.session.Player, g.session.Registry, view, g.status())
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, commandFor(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// commandFor decodes a key press. Arrows and WASD move, +/- zoom.
func commandFor(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyUp:
		return cmdUp
	case tcell.KeyDown:
		return cmdDown
	case tcell.KeyLeft:
		return cmdLeft
	case tcell.KeyRight:
		return cmdRight
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return cmdUp
		case 's', 'S':
			return cmdDown
		case 'a', 'A':
			return cmdLeft
		case 'd', 'D':
			return cmdRight
		case '+', '=':
			return cmdZoomIn
		case '-', '_':
			return cmdZoomOut
		case 'r', 'R':
			return cmdRegenerate
		case 'q', 'Q':
			return cmdQuit
		}
	}
	return cmdNone
}

// apply carries out a command against the current session.
func (g *Game) apply(ctx context.Context, cmd command) {
	g.message = ""

	switch cmd {
	case cmdQuit:
		g.state = StateQuit
	case cmdUp:
		g.step(0, -1)
	case cmdDown:
		g.step(0, 1)
	case cmdLeft:
		g.step(-1, 0)
	case cmdRight:
		g.step(1, 0)
	case cmdZoomIn:
		g.session.ZoomIn()
	case cmdZoomOut:
		g.session.ZoomOut()
	case cmdRegenerate:
		g.regenerate(ctx)
	}
}

func (g *Game) step(dx, dy int) {
	if !g.session.Step(dx, dy) {
		g.message = "blocked"
	}
}

// regenerate builds a new world with the next seed.
func (g *Game) regenerate(ctx context.Context) {
	g.state = StateGenerating
	defer func() { g.state = StateExplore }()

	if err := g.session.Regenerate(ctx, g.session.Seed+1); err != nil {
		g.message = err.Error()
	}
}

// status returns the text for the bottom line of the screen.
func (g *Game) status() string {
	s := g.session
	tileX := int(s.Player.Center().X / s.World.TileSize())
	tileY := int(s.Player.Center().Y / s.World.TileSize())
	line := fmt.Sprintf("seed %d  tile %d,%d  zoom %.2gx  [%s]  arrows/wasd move  +/- zoom  r new island  q quit",
		s.Seed, tileX, tileY, s.Zoom, g.state)
	if g.message != "" {
		line = g.message + "  " + line
	}
	return line
}
