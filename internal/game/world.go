// Package game implements the chaosflap simulation core: a side-scrolling
// reflex game where a bird is flapped through pipe gaps while optional
// chaos-mode hazards rewrite the rules of motion and collision.
//
// The simulation runs in fixed world units on a 480x640 field and advances
// by discrete ticks. It is single-writer: Step and Impulse are the only
// mutating operations, and the host must not call them concurrently.
// Rendering reads an immutable Snapshot, never the live state.
package game

// World dimensions, in world units. The terminal renderer scales these to
// screen cells; the simulation itself never sees the terminal size.
const (
	WorldW = 480.0
	WorldH = 640.0

	// GroundClearance is the height of the ground band at the bottom of
	// the field. Touching GroundY is fatal.
	GroundClearance = 80.0
	GroundY         = WorldH - GroundClearance
)
