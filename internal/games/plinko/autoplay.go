package plinko

import (
	"errors"
	"fmt"
)

// ErrRunStalled is returned by PlayRun when a run does not end in time.
var ErrRunStalled = errors.New("plinko: run did not finish")

// AimFunc picks the drop position for the next coin on a board of the
// given width.
type AimFunc func(width float64) float64

// PlayRun plays the session's current run to the end without a renderer,
// aiming every coin with aim. It gives up after maxTicks ticks.
func PlayRun(s *Session, aim AimFunc, maxTicks int) (Tally, error) {
	for tick := 0; s.State() != StateGameOver; tick++ {
		if tick >= maxTicks {
			return s.Tally(), fmt.Errorf("%w after %d ticks", ErrRunStalled, maxTicks)
		}
		if s.State() == StateReady {
			s.OnAim(aim(s.board.Width))
			s.OnDrop()
		}
		s.Tick()
	}
	return s.Tally(), nil
}
