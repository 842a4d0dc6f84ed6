package game

import (
	"math/rand"

	"github.com/vovakirdan/chaosflap/internal/core"
)

// Pipe geometry and cadence constants, in world units.
const (
	MinPipeHeight = 80.0             // Shortest pillar either side of the gap
	PipeSpawnX    = WorldW + 50.0    // New pipes enter here, off the right edge
	PipeCullX     = -50.0            // Pipes whose trailing edge passes this are removed
	RevealDist    = 50.0             // Proximity at which a quantum pipe's nature is revealed
	electricOdds  = 0.4              // Share of new pipes electrified when the mode is on
	ghostOdds     = 0.5              // Chance a quantum pipe is a ghost
)

// Pipe is a vertical gated barrier. The gap spans [TopHeight, BottomY) with
// BottomY-TopHeight equal to the gap size at creation.
//
// Two optional modifier payloads ride along: an electrification charge
// (Charge, nil when absent) and a superposition payload (Quantum). A quantum
// pipe's Ghost bit is fixed forever at creation; Revealed flips true once
// the bird's leading edge comes within RevealDist of the pipe.
type Pipe struct {
	X         float64
	TopHeight float64
	BottomY   float64
	Width     float64
	Passed    bool

	Charge *Charge

	Quantum  bool
	Ghost    bool
	Revealed bool
}

// Tangible reports whether the pipe participates in collision testing.
// A revealed ghost is permanently passable; an unrevealed one is treated
// like any other pipe (it cannot overlap the bird before reveal anyway,
// since RevealDist exceeds any reachable overlap distance).
func (p Pipe) Tangible() bool {
	return !(p.Quantum && p.Ghost && p.Revealed)
}

// GapBand returns the rectangle covering the pipe's gap region.
func (p Pipe) GapBand() core.Rect {
	return core.NewRect(p.X, p.TopHeight, p.Width, p.BottomY-p.TopHeight)
}

// PipeManager owns the ordered pipe sequence (spawn order, left to right)
// and the RNG that decides gap placement and modifier bits.
type PipeManager struct {
	pipes []Pipe
	rng   *rand.Rand
}

// NewPipeManager creates a pipe manager seeded for deterministic spawning.
func NewPipeManager(seed int64) *PipeManager {
	pm := &PipeManager{pipes: make([]Pipe, 0, 8)}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
}

// Clear removes all pipes without touching the RNG.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
}

// Pipes returns the live pipe slice.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Spawn creates a pipe at the spawn position. The top height is uniform
// within the band that leaves room for the gap and the minimum pillar
// height above the ground clearance. Modifier payloads are attached per
// the flags: electrified pipes get a charge ~40% of the time, quantum
// pipes fix their ghost bit at 50/50.
func (pm *PipeManager) Spawn(gap, width float64, electrified, quantum bool) {
	maxTop := WorldH - GroundClearance - MinPipeHeight - gap
	top := MinPipeHeight
	if maxTop > MinPipeHeight {
		top = MinPipeHeight + pm.rng.Float64()*(maxTop-MinPipeHeight)
	}

	p := Pipe{
		X:         PipeSpawnX,
		TopHeight: top,
		BottomY:   top + gap,
		Width:     width,
	}

	if electrified && pm.rng.Float64() < electricOdds {
		p.Charge = NewCharge()
	}
	if quantum {
		p.Quantum = true
		p.Ghost = pm.rng.Float64() < ghostOdds
	}

	pm.pipes = append(pm.pipes, p)
}

// ShouldSpawn reports whether a new pipe is due. Spawning is purely
// position-triggered: it fires when there are no pipes, or once the newest
// pipe has scrolled left of WorldW-spacing.
func (pm *PipeManager) ShouldSpawn(spacing float64) bool {
	if len(pm.pipes) == 0 {
		return true
	}
	return pm.pipes[len(pm.pipes)-1].X < WorldW-spacing
}

// Advance scrolls every pipe left by speed and culls pipes whose trailing
// edge has passed PipeCullX.
func (pm *PipeManager) Advance(speed float64) {
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= speed
		if p.X+p.Width <= PipeCullX {
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
}

// AdvanceCharges steps the electrification duty cycle on every charged pipe.
func (pm *PipeManager) AdvanceCharges() {
	for i := range pm.pipes {
		if pm.pipes[i].Charge != nil {
			pm.pipes[i].Charge.Advance()
		}
	}
}

// Reveal locks in the visible nature of quantum pipes the bird has
// approached. leadingEdge is the bird's right edge in world units.
func (pm *PipeManager) Reveal(leadingEdge float64) {
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if p.Quantum && !p.Revealed && p.X-leadingEdge <= RevealDist {
			p.Revealed = true
		}
	}
}

// ScorePassed marks every not-yet-passed pipe whose trailing edge is left
// of the bird's leading edge and returns how many were marked this tick.
// Each pipe contributes at most one point, exactly once, ever.
func (pm *PipeManager) ScorePassed(leadingEdge float64) int {
	passed := 0
	for i := range pm.pipes {
		if !pm.pipes[i].Passed && pm.pipes[i].X+pm.pipes[i].Width < leadingEdge {
			pm.pipes[i].Passed = true
			passed++
		}
	}
	return passed
}

// Collides tests the bird against every tangible pipe: horizontal spans
// must overlap AND the bird must poke above the gap or below it.
func (pm *PipeManager) Collides(bird core.Rect) bool {
	for _, p := range pm.pipes {
		if !p.Tangible() {
			continue
		}
		pipeSpan := core.NewRect(p.X, 0, p.Width, WorldH)
		if !bird.OverlapsX(pipeSpan) {
			continue
		}
		if bird.Y < p.TopHeight || bird.Bottom() > p.BottomY {
			return true
		}
	}
	return false
}

// ElectricCollides tests the bird against active electrified gaps. The gap
// itself is the lethal zone while the charge is on; the pillars are not
// tested here. This inverts the usual danger: the normally safe opening
// kills during the on phase.
func (pm *PipeManager) ElectricCollides(bird core.Rect) bool {
	for _, p := range pm.pipes {
		if p.Charge == nil || !p.Charge.Active() || !p.Tangible() {
			continue
		}
		if bird.Intersects(p.GapBand()) {
			return true
		}
	}
	return false
}
