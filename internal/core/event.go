package core

// EventKind identifies something that happened during a simulation tick.
type EventKind int

const (
	EventPegHit     EventKind = iota // coin touched a peg; Value is impact speed x100
	EventGateScored                  // coin landed in a gate; Value is the points
	EventGateMiss                    // coin crossed the gate line outside every gate
	EventCoinReset                   // a fresh coin is ready to aim
	EventGameOver                    // inventory exhausted; Value is the final score
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventPegHit:
		return "peg-hit"
	case EventGateScored:
		return "gate-scored"
	case EventGateMiss:
		return "gate-miss"
	case EventCoinReset:
		return "coin-reset"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is emitted by games for presentation layers such as audio.
type Event struct {
	Kind  EventKind
	Value int
}
