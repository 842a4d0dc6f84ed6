package game

// BlackHolePhaseTicks is the length of each cinematic phase.
const BlackHolePhaseTicks = 150

// HolePhase is the black hole's animation phase.
type HolePhase string

const (
	HoleNone       HolePhase = "none"
	HolePulling    HolePhase = "pulling"
	HoleStretching HolePhase = "stretching"
)

// BlackHole is the one-shot record-break event. Breaking a previous best
// score (when one existed) freezes gameplay for a two-phase cinematic;
// afterwards the field is wiped and play waits for the next impulse.
// Triggered latches for the rest of the game so the event cannot re-fire.
type BlackHole struct {
	Active          bool
	Phase           HolePhase
	Tick            int // Ticks elapsed in the current phase
	Triggered       bool
	WaitingToResume bool
}

// Progress reports how far through its current phase the event is, in [0,1).
func (h BlackHole) Progress() float64 {
	if !h.Active {
		return 0
	}
	return float64(h.Tick) / BlackHolePhaseTicks
}

// Trigger starts the cinematic and latches the one-shot flag.
func (h *BlackHole) Trigger() {
	h.Active = true
	h.Phase = HolePulling
	h.Tick = 0
	h.Triggered = true
}

// Advance steps the cinematic by one tick. Returns true on the tick the
// event completes: the caller must then wipe the field and wait for the
// resume impulse.
func (h *BlackHole) Advance() bool {
	h.Tick++
	if h.Tick < BlackHolePhaseTicks {
		return false
	}

	h.Tick = 0
	switch h.Phase {
	case HolePulling:
		h.Phase = HoleStretching
		return false
	default:
		h.Active = false
		h.Phase = HoleNone
		h.WaitingToResume = true
		return true
	}
}

// Suspended reports whether normal gameplay updates are on hold, either
// mid-cinematic or waiting for the resume impulse.
func (h BlackHole) Suspended() bool {
	return h.Active || h.WaitingToResume
}

// ResetForGame clears everything including the one-shot latch.
// Called on restart: the event may fire once per game instance.
func (h *BlackHole) ResetForGame() {
	*h = BlackHole{Phase: HoleNone}
}
