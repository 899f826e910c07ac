// Package window runs the game in a desktop window with Ebitengine.
// The board is drawn in its native units, one board unit per pixel.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-plinko/internal/audio"
	"github.com/vovakirdan/tui-plinko/internal/core"
	"github.com/vovakirdan/tui-plinko/internal/games/plinko"
)

var (
	background = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	overlay    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	white      = color.White
)

// Game is an ebiten.Game driving a plinko session.
type Game struct {
	session *plinko.Session
	player  *audio.Player
	logger  *log.Logger
	aimStep float64
	paused  bool
	cursor  core.CursorTracker
}

// New wraps a session. The player may be nil.
func New(s *plinko.Session, aimStep float64, player *audio.Player, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{session: s, player: player, logger: logger, aimStep: aimStep}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, tickRate int) error {
	ebiten.SetTPS(tickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g.resizeWindow()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (g *Game) resizeWindow() {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("Plinko - %s", g.session.Style().Preset().Title))
}

// Update handles input and advances the session one tick.
func (g *Game) Update() error {
	s := g.session

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.OnRestart()
		g.paused = false
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		s.OnStyleToggle()
		g.paused = false
		g.resizeWindow()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if s.State() != plinko.StateGameOver {
			g.paused = !g.paused
		}
	}
	if g.paused {
		return nil
	}

	// Follow the mouse only when it moves, so it doesn't fight the keyboard.
	if x, _ := ebiten.CursorPosition(); g.cursor.Moved(x) {
		s.OnAim(float64(x))
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		s.AimBy(-g.aimStep / 2)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		s.AimBy(g.aimStep / 2)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.OnDrop()
	}

	events := s.Tick()
	for _, ev := range events {
		if ev.Kind == core.EventGameOver {
			g.logger.Info("run finished", "score", ev.Value, "style", s.Style())
		}
	}
	g.player.Play(events)
	return nil
}

// Layout fixes the logical screen to the board size.
func (g *Game) Layout(_, _ int) (int, int) {
	ds := g.session.DrawState()
	return int(ds.BoardWidth), int(ds.BoardHeight)
}

// Draw renders the board.
func (g *Game) Draw(screen *ebiten.Image) {
	ds := g.session.DrawState()
	screen.Fill(background)

	g.drawGates(screen, ds)
	for _, p := range ds.Pegs {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), rgba(p.Color), true)
	}
	if ds.CoinVisible {
		c := ds.Coin
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), rgba(c.Color), true)
	}
	g.drawHUD(screen, ds)
}

// drawGates fills each gate with its color, labels it and draws the
// dividers reaching one gate height above the band.
func (g *Game) drawGates(screen *ebiten.Image, ds plinko.DrawState) {
	face := basicfont.Face7x13
	for _, gate := range ds.Gates {
		vector.DrawFilledRect(screen, float32(gate.X), float32(gate.Y), float32(gate.Width), float32(gate.Height), rgba(gate.Color), false)

		label := fmt.Sprint(gate.Value)
		x := int(gate.X+gate.Width/2) - len(label)*face.Advance/2
		y := int(gate.Y+gate.Height/2) + face.Ascent/2
		text.Draw(screen, label, face, x, y, color.Black)
	}

	top := float32(ds.BoardHeight - 2*ds.GateHeight)
	for i := 1; i < len(ds.Gates); i++ {
		x := float32(ds.Gates[i].X)
		vector.StrokeLine(screen, x, top, x, float32(ds.BoardHeight), 2, white, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, ds plinko.DrawState) {
	face := basicfont.Face7x13
	t := g.session.Tally()
	w, h := int(ds.BoardWidth), int(ds.BoardHeight)

	text.Draw(screen, fmt.Sprintf("Score: %d", t.Score), face, 10, 20, white)
	text.Draw(screen, fmt.Sprintf("Coins: %d", t.CoinsLeft), face, 10, 38, white)
	style := ds.Style.Preset().Title
	text.Draw(screen, style, face, w-len(style)*face.Advance-10, 20, white)

	var title, sub string
	switch {
	case g.paused:
		title, sub = "PAUSED", "P to resume"
	case ds.State == plinko.StateGameOver:
		title, sub = "GAME OVER", fmt.Sprintf("Final Score: %d - R to restart", t.Score)
	default:
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlay, false)
	text.Draw(screen, title, face, (w-len(title)*face.Advance)/2, h/2-10, white)
	text.Draw(screen, sub, face, (w-len(sub)*face.Advance)/2, h/2+14, white)
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xff}
}
