package game

// Electrification duty cycle, in ticks.
const (
	ChargeOnTicks  = 50
	ChargeOffTicks = 120
)

// Charge is the electrification payload of a pipe. The gap alternates
// lethal/safe on a fixed duty cycle: within each period the first
// OnTicks are lethal, the remaining OffTicks are safe.
type Charge struct {
	OnTicks  int
	OffTicks int
	Cycle    int // Ticks elapsed on the duty cycle clock
}

// NewCharge returns a charge with the standard duty cycle. The clock
// starts at the beginning of the off phase, so a freshly spawned pipe is
// safe until it has scrolled toward the bird.
func NewCharge() *Charge {
	return &Charge{
		OnTicks:  ChargeOnTicks,
		OffTicks: ChargeOffTicks,
		Cycle:    ChargeOnTicks,
	}
}

// Advance steps the duty cycle clock by one tick.
func (c *Charge) Advance() {
	c.Cycle++
}

// Active reports whether the gap is currently lethal: true for cycle times
// 0..OnTicks-1 within each period of OnTicks+OffTicks.
func (c *Charge) Active() bool {
	period := c.OnTicks + c.OffTicks
	if period <= 0 {
		return false
	}
	return c.Cycle%period < c.OnTicks
}
