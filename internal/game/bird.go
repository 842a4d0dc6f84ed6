package game

import "github.com/vovakirdan/chaosflap/internal/core"

// Bird geometry and start position, in world units. X only moves under
// vortex pull; gameplay itself never shifts it.
const (
	BirdStartX = 80.0
	BirdStartY = 300.0
	BirdW      = 34.0
	BirdH      = 24.0
)

// Bird is the controlled actor. Velocity is a signed vertical scalar,
// negative meaning upward. TicksSinceFlap drives the time-dependent
// motion curves: it resets to zero exactly on a flap and increments by
// one every simulated tick thereafter.
type Bird struct {
	X, Y           float64
	Vel            float64
	TicksSinceFlap int
}

// NewBird returns a bird at the start position, at rest.
func NewBird() Bird {
	return Bird{X: BirdStartX, Y: BirdStartY}
}

// Advance applies one tick of physics: velocity from the motion curve,
// clamped to the terminal fall speed, then integrated into position.
func (b *Bird) Advance(gravity, maxFall float64, curve Curve, impulse float64) {
	b.Vel = NextVelocity(b.Vel, gravity, curve, b.TicksSinceFlap, impulse)
	if b.Vel > maxFall {
		b.Vel = maxFall
	}
	b.Y += b.Vel
	b.TicksSinceFlap++
}

// Flap sets the curve's initial ascent velocity and restarts the flap timer.
func (b *Bird) Flap(magnitude float64, curve Curve) {
	b.Vel = ImpulseVelocity(curve, magnitude)
	b.TicksSinceFlap = 0
}

// Rect returns the bird's collision box.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, BirdW, BirdH)
}

// Center returns the bird's center point.
func (b Bird) Center() (float64, float64) {
	return b.X + BirdW/2, b.Y + BirdH/2
}

// OutOfBounds reports whether the bird has hit the ground line or left the
// top of the play field. Either is immediately fatal.
func (b Bird) OutOfBounds() bool {
	return b.Y+BirdH >= GroundY || b.Y < 0
}
