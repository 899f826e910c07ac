package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-plinko/internal/core"
)

// Sound identifies one synthesized effect.
type Sound int

const (
	SoundPeg Sound = iota
	SoundScore
	SoundMiss
	SoundGameOver
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundPeg:
		return "peg"
	case SoundScore:
		return "score"
	case SoundMiss:
		return "miss"
	case SoundGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Effect timing
const (
	pegDuration = 40 * time.Millisecond
	pegAttack   = 2 * time.Millisecond
	pegRelease  = 30 * time.Millisecond

	chimeNote    = 90 * time.Millisecond
	chimeLast    = 260 * time.Millisecond
	chimeAttack  = 5 * time.Millisecond
	chimeRelease = 60 * time.Millisecond

	missDuration = 220 * time.Millisecond
	missRelease  = 120 * time.Millisecond

	gameOverDuration = 900 * time.Millisecond
	gameOverRelease  = 400 * time.Millisecond
)

// Impact speed (x100) that plays a peg clink at full volume.
const loudPegHit = 400

// soundFor maps a session event to the effect it plays, if any.
func soundFor(ev core.Event) (Sound, bool) {
	switch ev.Kind {
	case core.EventPegHit:
		return SoundPeg, true
	case core.EventGateScored:
		return SoundScore, true
	case core.EventGateMiss:
		return SoundMiss, true
	case core.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// Bank builds effect streamers at a fixed sample rate and master volume.
type Bank struct {
	Rate   beep.SampleRate
	Volume float64
}

// Streamer returns a fresh, finite streamer for the sound. Value is the
// event value: impact speed for pegs, points for gates.
func (b Bank) Streamer(s Sound, value int) beep.Streamer {
	var fx beep.Streamer
	switch s {
	case SoundPeg:
		fx = b.clink(value)
	case SoundScore:
		fx = b.chime(value)
	case SoundMiss:
		fx = b.buzz()
	case SoundGameOver:
		fx = b.fall()
	default:
		return nil
	}
	return newVolume(fx, b.Volume)
}

// clink is a short high blip whose loudness follows the impact.
func (b Bank) clink(impact int) beep.Streamer {
	vol := float64(impact) / loudPegHit
	if vol < 0.2 {
		vol = 0.2
	}
	if vol > 1 {
		vol = 1
	}
	osc := newTone(2093, pegDuration, WaveTriangle, b.Rate) // C7
	return newVolume(newEnvelope(osc, pegDuration, pegAttack, pegRelease, b.Rate), vol*0.5)
}

// chime climbs an arpeggio; bigger gates get more notes.
func (b Bank) chime(points int) beep.Streamer {
	notes := []float64{783.99, 987.77} // G5 B5
	if points >= 100 {
		notes = append(notes, 1174.66) // D6
	}
	if points >= 200 {
		notes = append(notes, 1567.98) // G6
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for i, freq := range notes {
		d := chimeNote
		if i == len(notes)-1 {
			d = chimeLast
		}
		osc := newTone(freq, d, WaveSquare, b.Rate)
		parts = append(parts, newVolume(newEnvelope(osc, d, chimeAttack, chimeRelease, b.Rate), 0.35))
	}
	return beep.Seq(parts...)
}

// buzz is a low falling tone for a coin that missed every gate.
func (b Bank) buzz() beep.Streamer {
	osc := newSweep(220, 110, missDuration, WaveSquare, b.Rate)
	return newVolume(newEnvelope(osc, missDuration, chimeAttack, missRelease, b.Rate), 0.3)
}

// fall is a long descending sweep for the end of a run.
func (b Bank) fall() beep.Streamer {
	osc := newSweep(880, 110, gameOverDuration, WaveSine, b.Rate)
	return newVolume(newEnvelope(osc, gameOverDuration, chimeAttack, gameOverRelease, b.Rate), 0.6)
}
