package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game consumes actions.
type Action int

const (
	ActionNone        Action = iota
	ActionImpulse            // Space, W, Up - flap / start / resume / restart
	ActionToggleChaos        // C - toggle chaos mode
	ActionCycleCurve         // M - cycle the motion curve variant
	ActionQuit               // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionImpulse:
		return "Impulse"
	case ActionToggleChaos:
		return "ToggleChaos"
	case ActionCycleCurve:
		return "CycleCurve"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// The platform accumulates key presses into a frame and hands it to the
// game once per tick, then clears it.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
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
