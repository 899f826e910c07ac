package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-plinko/internal/config"
	"github.com/vovakirdan/tui-plinko/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Minimum spacing between peg clinks. A coin rattling between two pegs
// reports a contact every tick.
const pegGap = 45 * time.Millisecond

// Player turns session events into sound. A nil or unstarted Player is
// silent, so callers never need to check whether audio is available.
type Player struct {
	mu      sync.Mutex
	bank    Bank
	mixer   *beep.Mixer
	logger  *log.Logger
	enabled bool
	started bool

	// sink receives every effect; Start points it at the speaker mixer.
	sink    func(beep.Streamer)
	now     func() time.Time
	lastPeg time.Time
}

// NewPlayer creates a player from the audio config. Nothing is played until
// Start succeeds.
func NewPlayer(cfg config.PlinkoAudio, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		bank:    Bank{Rate: sampleRate, Volume: cfg.Volume},
		mixer:   &beep.Mixer{},
		logger:  logger,
		enabled: cfg.Enabled,
		now:     time.Now,
	}
}

// Start opens the audio device. Disabled players start as a no-op.
func (p *Player) Start() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.started {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)

	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.started = true
	p.logger.Debug("audio started", "rate", int(sampleRate), "volume", p.bank.Volume)
	return nil
}

// Play queues the effects for a batch of events.
func (p *Player) Play(events []core.Event) {
	if p == nil || len(events) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	pegPlayed := false
	for _, ev := range events {
		sound, ok := soundFor(ev)
		if !ok {
			continue
		}
		if sound == SoundPeg {
			// One clink per batch, and not too close to the previous one.
			now := p.now()
			if pegPlayed || now.Sub(p.lastPeg) < pegGap {
				continue
			}
			pegPlayed = true
			p.lastPeg = now
		}
		p.sink(p.bank.Streamer(sound, ev.Value))
	}
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
	p.sink = nil
}
