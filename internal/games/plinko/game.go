// Package plinko implements a coin-drop game: a coin falls through a
// lattice of pegs into scoring gates at the bottom of the board.
//
// Session holds the rules and is driven directly by pixel renderers.
// Game wraps a Session behind the platform's Reset/Step/Render/State
// contract for the terminal.
package plinko

import (
	"github.com/vovakirdan/tui-plinko/internal/config"
	"github.com/vovakirdan/tui-plinko/internal/core"
)

// Game adapts a Session to the fixed-tick platform loop.
type Game struct {
	cfg     config.PlinkoConfig
	opts    []Option
	session *Session
	runtime core.RuntimeConfig
	view    viewport
	paused  bool
}

// New creates a game. Options are applied to every session the game creates.
func New(cfg config.PlinkoConfig, opts ...Option) *Game {
	return &Game{cfg: cfg, opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "plinko"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Plinko"
}

// Reset starts a fresh session sized for the runtime screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	opts := make([]Option, 0, len(g.opts)+2)
	opts = append(opts, g.opts...)
	opts = append(opts, WithSeed(runtime.Seed), WithTickRate(runtime.TickRate))
	if g.session != nil {
		// Keep the style the player switched to.
		opts = append(opts, WithStyle(g.session.Style()))
	}

	g.session = NewSession(g.cfg, opts...)
	g.fit()
}

// Resize refits the board to a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.fit()
}

func (g *Game) fit() {
	ds := g.session.DrawState()
	g.view = fitViewport(ds.BoardWidth, ds.BoardHeight, g.runtime.ScreenW, g.runtime.ScreenH)
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one frame of input and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	if in.Has(core.ActionRestart) {
		s.OnRestart()
		g.paused = false
	}
	if in.Has(core.ActionToggleStyle) {
		s.OnStyleToggle()
		g.paused = false
		g.fit()
	}
	if in.Has(core.ActionPause) && s.State() != StateGameOver {
		g.paused = !g.paused
	}

	if g.paused || g.view.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.PointerSet {
		s.OnAim(g.view.boardX(in.PointerCol))
	}
	if in.Has(core.ActionLeft) {
		s.AimBy(-g.cfg.Session.AimStep)
	}
	if in.Has(core.ActionRight) {
		s.AimBy(g.cfg.Session.AimStep)
	}
	if in.Has(core.ActionDrop) {
		s.OnDrop()
	}

	events := s.Tick()
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	t := g.session.Tally()
	return core.GameState{
		Score:     t.Score,
		CoinsLeft: t.CoinsLeft,
		GameOver:  g.session.State() == StateGameOver,
		Paused:    g.paused,
	}
}
