package game

import "github.com/vovakirdan/chaosflap/internal/core"

// Laser beam timing and geometry.
const (
	LaserWarnTicks   = 240
	LaserActiveTicks = 30
	LaserFadeTicks   = 45
	LaserHeight      = 20.0
)

// LaserPhase is the beam's lifecycle state.
type LaserPhase string

const (
	LaserWarning LaserPhase = "warning"
	LaserActive  LaserPhase = "active"
	LaserFading  LaserPhase = "fading"
)

func (l LaserPhase) duration() int {
	switch l {
	case LaserActive:
		return LaserActiveTicks
	case LaserFading:
		return LaserFadeTicks
	default:
		return LaserWarnTicks
	}
}

// Laser is a horizontal beam spanning the full field width at a fixed Y.
// It telegraphs itself during the warning phase, kills during the active
// phase, then fades out and is removed. The phase clock is integral so
// transitions land on exact tick boundaries.
type Laser struct {
	Y     float64
	Phase LaserPhase
	Tick  int // Ticks elapsed in the current phase
}

// NewLaser returns a beam in the warning phase at the given height.
func NewLaser(y float64) Laser {
	return Laser{Y: y, Phase: LaserWarning}
}

// Progress reports how far through its current phase the beam is, in [0,1).
func (l Laser) Progress() float64 {
	return float64(l.Tick) / float64(l.Phase.duration())
}

// Advance steps the phase clock. Completing a phase moves to the next one
// with the clock reset; completing the fading phase removes the beam.
// Returns false once the beam should be removed.
func (l *Laser) Advance() bool {
	l.Tick++
	if l.Tick < l.Phase.duration() {
		return true
	}

	l.Tick = 0
	switch l.Phase {
	case LaserWarning:
		l.Phase = LaserActive
	case LaserActive:
		l.Phase = LaserFading
	default:
		return false
	}
	return true
}

// Band returns the beam's lethal band rectangle.
func (l Laser) Band() core.Rect {
	return core.NewRect(0, l.Y-LaserHeight/2, WorldW, LaserHeight)
}

// Lethal reports whether the bird is caught in an active beam.
// Only the active phase kills; warning and fading are visual.
func (l Laser) Lethal(bird core.Rect) bool {
	return l.Phase == LaserActive && bird.Intersects(l.Band())
}
