package core

// Action represents a semantic game action, abstracted from physical input.
// This allows games to work with high-level intents rather than raw keys or
// mouse buttons.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - nudge aim left
	ActionRight              // D, Right arrow - nudge aim right
	ActionDrop               // Space, Enter, left click - release the coin
	ActionRestart            // R - start a new run
	ActionToggleStyle        // T - switch board style (restarts the run)
	ActionPause              // P - pause/unpause
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionRestart:
		return "Restart"
	case ActionToggleStyle:
		return "ToggleStyle"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame and the
// last pointer column reported by the platform, if any.
type InputFrame struct {
	Actions map[Action]bool

	// PointerCol is the screen column of the pointer; valid when PointerSet.
	PointerCol int
	PointerSet bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Point records the pointer column for this frame. Later calls win.
func (f *InputFrame) Point(col int) {
	f.PointerCol = col
	f.PointerSet = true
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerCol = 0
	f.PointerSet = false
}

// CursorTracker turns polled cursor positions into motion. The first
// reading only sets the baseline, so a pointer that never entered the
// window does not count as a move.
type CursorTracker struct {
	x      int
	primed bool
}

// Moved records x and reports whether it differs from the previous reading.
func (t *CursorTracker) Moved(x int) bool {
	if !t.primed {
		t.x, t.primed = x, true
		return false
	}
	if x == t.x {
		return false
	}
	t.x = x
	return true
}
