package game

// Gravity zone geometry and timing.
const (
	ZoneWidth    = 120.0
	ZoneDuration = 300 // Ticks of inverted gravity once triggered
)

// GravityZone is a horizontal trigger band that scrolls with the world.
// The instant the bird's x-position enters [X, X+Width) while no zone is
// active, the zone activates and inverts gravity for ZoneDuration ticks.
// A zone fires once; after its window elapses it is spent.
type GravityZone struct {
	X      float64
	Width  float64
	Active bool
	Spent  bool
	Tick   int // Ticks elapsed in the active window
}

// NewGravityZone returns a zone entering from the right edge.
func NewGravityZone() GravityZone {
	return GravityZone{X: WorldW, Width: ZoneWidth}
}

// Progress reports how far through its active window the zone is, in [0,1].
func (z GravityZone) Progress() float64 {
	return float64(z.Tick) / ZoneDuration
}

// Advance scrolls the zone and runs down its active window.
// Returns false once the zone has scrolled fully off-screen to the left.
func (z *GravityZone) Advance(speed float64) bool {
	z.X -= speed
	if z.Active {
		z.Tick++
		if z.Tick >= ZoneDuration {
			z.Active = false
			z.Spent = true
		}
	}
	return z.X+z.Width > 0
}

// Covers reports whether the given x-position lies inside the trigger band.
func (z GravityZone) Covers(x float64) bool {
	return x >= z.X && x < z.X+z.Width
}
