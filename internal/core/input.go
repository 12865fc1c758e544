// Package core provides fundamental types for the termtris platform.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Action represents a semantic game action, abstracted from physical key
// presses. Several physical keys may map to the same action; the mapping
// lives in the platform layer.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // move piece one column left
	ActionRight            // move piece one column right
	ActionSoftDrop         // descend one row, lock on contact
	ActionHardDrop         // descend to the floor and lock
	ActionRotateCW         // rotate clockwise with wall-kick search
	ActionRotateCCW        // rotate counter-clockwise with wall-kick search
	ActionHold             // stash/swap the active piece
	ActionPause            // pause/unpause
	ActionConfirm          // Enter - start, unpause, restart
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C - terminate the session
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// KeyState is the debounced tri-state of a logical action.
type KeyState int

const (
	KeyReleased   KeyState = iota // no press registered, ready to trigger
	KeyTriggered                  // newly registered this frame
	KeyRefractory                 // held within the refractory window
)

// Debouncer converts raw key presses into per-frame input with a fixed
// refractory period per logical action. A press triggers once and then arms
// a countdown; presses (including terminal auto-repeat) arriving while the
// countdown runs are swallowed. Each action has its own independent counter;
// there is no shared retriggering state.
type Debouncer struct {
	refractory int
	cooldown   map[Action]int
	pending    map[Action]bool
	triggered  map[Action]bool
}

// NewDebouncer creates a debouncer with the given refractory window,
// measured in frames. A window of 0 passes every press through.
func NewDebouncer(refractoryFrames int) *Debouncer {
	return &Debouncer{
		refractory: refractoryFrames,
		cooldown:   make(map[Action]int),
		pending:    make(map[Action]bool),
		triggered:  make(map[Action]bool),
	}
}

// Press records a raw key press for the given action. Safe to call any
// number of times between frames.
func (d *Debouncer) Press(a Action) {
	d.pending[a] = true
}

// Frame consumes pending presses into an InputFrame and advances all
// refractory counters by one frame. Called exactly once per tick.
func (d *Debouncer) Frame() InputFrame {
	frame := NewInputFrame()
	clear(d.triggered)

	for a, c := range d.cooldown {
		if c > 0 {
			d.cooldown[a] = c - 1
		}
	}

	for a := range d.pending {
		if d.cooldown[a] == 0 {
			frame.Set(a)
			d.triggered[a] = true
			d.cooldown[a] = d.refractory
		}
	}
	clear(d.pending)

	return frame
}

// State reports the debounced tri-state of an action as of the last Frame.
func (d *Debouncer) State(a Action) KeyState {
	switch {
	case d.triggered[a]:
		return KeyTriggered
	case d.cooldown[a] > 0:
		return KeyRefractory
	default:
		return KeyReleased
	}
}
