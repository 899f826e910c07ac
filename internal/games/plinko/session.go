package plinko

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-plinko/internal/config"
	"github.com/vovakirdan/tui-plinko/internal/core"
)

// State is the run state of a session.
type State int

const (
	StateReady    State = iota // Coin follows aim input, waiting for a drop
	StateDropping              // Physics owns the coin
	StateScored                // Drop resolved, waiting for the next coin
	StateGameOver              // Inventory exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDropping:
		return "dropping"
	case StateScored:
		return "scored"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Tally is the display counters of a run.
type Tally struct {
	Score     int
	CoinsLeft int
}

// DrawState is everything a renderer needs for one frame.
// The peg and gate slices are shared with the session and must not be
// modified; a new layout always gets new slices.
type DrawState struct {
	Style       Style
	State       State
	BoardWidth  float64
	BoardHeight float64
	GateHeight  float64
	Pegs        []Peg
	Gates       []Gate
	Coin        Coin
	CoinVisible bool
}

// resetTimer is a pending delayed reset. It only fires for the run
// generation that armed it.
type resetTimer struct {
	armed      bool
	generation uint64
	dueTick    uint64
}

func (t *resetTimer) arm(generation, dueTick uint64) {
	*t = resetTimer{armed: true, generation: generation, dueTick: dueTick}
}

func (t *resetTimer) disarm() {
	t.armed = false
}

func (t resetTimer) due(generation, tick uint64) bool {
	return t.armed && t.generation == generation && tick >= t.dueTick
}

// Session owns one game: the board, the coin, the tallies and the run state.
// It is not safe for concurrent use; the host loop must call input handlers
// and Tick from a single goroutine.
type Session struct {
	cfg      config.PlinkoConfig
	engine   Engine
	detector Detector
	rng      *rand.Rand
	logger   *log.Logger
	tickRate int

	style Style
	board Board
	coin  Coin

	score     int
	coinsLeft int
	state     State

	tick       uint64
	generation uint64
	reset      resetTimer

	events []core.Event
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the drop kick RNG. Zero uses the current time.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTickRate sets the ticks per second used to time delayed resets.
func WithTickRate(rate int) Option {
	return func(s *Session) {
		if rate > 0 {
			s.tickRate = rate
		}
	}
}

// WithStyle overrides the style named in the config.
func WithStyle(style Style) Option {
	return func(s *Session) {
		s.style = style
	}
}

// NewSession creates a session and starts the first run.
func NewSession(cfg config.PlinkoConfig, opts ...Option) *Session {
	s := &Session{
		cfg: cfg,
		engine: Engine{
			Gravity: cfg.Physics.Gravity,
			Damping: cfg.Physics.Damping,
		},
		logger:   log.New(io.Discard),
		tickRate: 60,
	}

	style, styleErr := ParseStyle(cfg.Session.Style)
	s.style = style

	for _, opt := range opts {
		opt(s)
	}
	if styleErr != nil && cfg.Session.Style != "" {
		s.logger.Warn("unknown style in config", "style", cfg.Session.Style, "using", s.style)
	}
	if s.rng == nil {
		WithSeed(0)(s)
	}

	s.OnRestart()
	return s
}

// OnAim moves the waiting coin horizontally, keeping it inside the walls.
// Ignored unless the session is ready.
func (s *Session) OnAim(x float64) bool {
	if s.state != StateReady {
		return false
	}
	s.coin.X = core.ClampF(x, s.coin.Radius, s.board.Width-s.coin.Radius)
	return true
}

// AimBy nudges the waiting coin by dx board units.
func (s *Session) AimBy(dx float64) bool {
	return s.OnAim(s.coin.X + dx)
}

// OnDrop releases the waiting coin with a small random horizontal kick.
// Ignored unless the session is ready.
func (s *Session) OnDrop() bool {
	if s.state != StateReady || s.coinsLeft <= 0 {
		return false
	}
	s.coinsLeft--
	s.state = StateDropping
	kick := s.cfg.Physics.MaxKick
	s.coin.VX = (s.rng.Float64()*2 - 1) * kick

	s.logger.Debug("coin dropped", "x", s.coin.X, "vx", s.coin.VX, "coins_left", s.coinsLeft)
	return true
}

// OnRestart starts a new run on the current style. Any pending delayed
// reset from the previous run is invalidated.
func (s *Session) OnRestart() {
	s.generation++
	s.reset.disarm()

	s.board = Generate(s.style)
	s.score = 0
	s.coinsLeft = s.cfg.Session.Coins
	s.logger.Debug("run started", "style", s.style, "generation", s.generation, "coins", s.coinsLeft)

	s.resetCoin()
}

// OnStyleToggle switches to the other board style and restarts.
func (s *Session) OnStyleToggle() {
	s.style = s.style.Next()
	s.logger.Info("style switched", "style", s.style)
	s.OnRestart()
}

// Tick advances the session by one simulation step and returns the events
// produced since the previous tick.
func (s *Session) Tick() []core.Event {
	s.tick++

	switch s.state {
	case StateDropping:
		s.stepCoin()
	case StateScored:
		if s.reset.due(s.generation, s.tick) {
			s.resetCoin()
		}
	}

	events := s.events
	s.events = nil
	return events
}

func (s *Session) stepCoin() {
	for _, c := range s.engine.Advance(&s.coin, s.board.Pegs, s.board.Width) {
		s.emit(core.EventPegHit, int(c.Speed*100))
	}

	if s.detector.Crossed(s.coin, &s.board) {
		s.resolveDrop()
	}
}

func (s *Session) resolveDrop() {
	s.state = StateScored

	out := s.detector.Resolve(s.coin, s.board.Gates)
	if out.Hit() {
		s.score += out.Points
		s.emit(core.EventGateScored, out.Points)
	} else {
		s.emit(core.EventGateMiss, 0)
	}
	s.logger.Debug("drop resolved", "x", s.coin.X, "gate", out.Gate, "points", out.Points, "score", s.score)

	policy := s.style.Preset().Reset
	if policy.Immediate() {
		s.resetCoin()
		return
	}
	s.reset.arm(s.generation, s.tick+policy.Ticks(s.tickRate))
}

// resetCoin puts up a fresh coin, or ends the run when none are left.
func (s *Session) resetCoin() {
	s.reset.disarm()

	if s.coinsLeft > 0 {
		s.coin = s.newCoin()
		s.state = StateReady
		s.emit(core.EventCoinReset, s.coinsLeft)
		return
	}

	s.state = StateGameOver
	s.emit(core.EventGameOver, s.score)
	s.logger.Info("game over", "style", s.style, "score", s.score)
}

func (s *Session) newCoin() Coin {
	return Coin{
		X:      s.board.Width / 2,
		Y:      s.cfg.Coin.StartY,
		Radius: s.cfg.Coin.Radius,
		Color:  core.ColorBrightYellow,
	}
}

func (s *Session) emit(kind core.EventKind, value int) {
	s.events = append(s.events, core.Event{Kind: kind, Value: value})
}

// DrawState returns the current frame for renderers.
func (s *Session) DrawState() DrawState {
	return DrawState{
		Style:       s.style,
		State:       s.state,
		BoardWidth:  s.board.Width,
		BoardHeight: s.board.Height,
		GateHeight:  s.board.GateHeight,
		Pegs:        s.board.Pegs,
		Gates:       s.board.Gates,
		Coin:        s.coin,
		CoinVisible: s.state != StateGameOver,
	}
}

// Tally returns the score and remaining coins.
func (s *Session) Tally() Tally {
	return Tally{Score: s.score, CoinsLeft: s.coinsLeft}
}

// State returns the run state.
func (s *Session) State() State {
	return s.state
}

// Style returns the active board style.
func (s *Session) Style() Style {
	return s.style
}

// Generation returns the run counter, bumped on every restart.
func (s *Session) Generation() uint64 {
	return s.generation
}
