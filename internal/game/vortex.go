package game

import "github.com/vovakirdan/chaosflap/internal/core"

// Vortex tuning. The pull rolls off linearly with distance and dies inside
// the dead zone so the bird is never pinned to the exact center.
const (
	VortexRadius   = 70.0
	VortexStrength = 0.8
	VortexDeadZone = 10.0
	VortexSpin     = 0.05 // Rotation per tick, visual only

	// The combined pull may drag the bird horizontally, but never out of
	// this band.
	VortexMinX = 20.0
	VortexMaxX = 150.0
)

// Vortex is a swirling pull field drifting left at half the world speed.
type Vortex struct {
	X, Y     float64
	Rotation float64
}

// Advance drifts the vortex and spins it. Returns false once it has
// cleared the left edge.
func (v *Vortex) Advance(speed float64) bool {
	v.X -= speed / 2
	v.Rotation += VortexSpin
	return v.X+VortexRadius > 0
}

// Force returns the pull this vortex exerts on a point. Zero outside the
// radius or inside the dead zone. The pull is radial toward the center
// with a half-strength tangential component perpendicular to it, which
// turns the straight drag into a spiral.
func (v Vortex) Force(px, py float64) (fx, fy float64) {
	d := core.Dist(px, py, v.X, v.Y)
	if d >= VortexRadius || d <= VortexDeadZone {
		return 0, 0
	}

	mag := VortexStrength * (1 - d/VortexRadius)
	ux := (v.X - px) / d
	uy := (v.Y - py) / d

	fx = mag*ux - mag/2*uy
	fy = mag*uy + mag/2*ux
	return fx, fy
}
