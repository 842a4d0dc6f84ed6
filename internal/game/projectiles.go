package game

import "github.com/vovakirdan/chaosflap/internal/core"

// Projectile tuning.
const (
	ProjectileRadius = 8.0
	ProjectileMargin = 50.0 // Removal margin beyond every screen edge
)

// Projectile is a free-moving ballistic hazard. It ignores gravity and the
// world scroll, flying on its spawn velocity until it leaves the margin.
type Projectile struct {
	X, Y   float64
	VX, VY float64
}

// Advance moves the projectile one tick. Returns false once it exits the
// removal margin beyond all four field edges.
func (p *Projectile) Advance() bool {
	p.X += p.VX
	p.Y += p.VY
	return p.X > -ProjectileMargin && p.X < WorldW+ProjectileMargin &&
		p.Y > -ProjectileMargin && p.Y < WorldH+ProjectileMargin
}

// Hits tests the projectile against the bird with a circular distance
// check: circle radius plus half the bird's smaller box dimension.
func (p Projectile) Hits(bird core.Rect) bool {
	cx, cy := bird.Center()
	reach := ProjectileRadius + core.MinF(bird.W, bird.H)/2
	return core.Dist(p.X, p.Y, cx, cy) < reach
}
