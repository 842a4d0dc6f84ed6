package game

// Options is a partial configuration update. Nil fields are left alone;
// set fields merge into the live configuration and take effect on the
// next tick. Updates are accepted at any status.
type Options struct {
	Speed        *float64
	JumpImpulse  *float64
	Gravity      *float64
	MaxFallSpeed *float64
	MotionCurve  *string

	GapSize *float64
	Spacing *float64
	Width   *float64

	ChaosEnabled *bool
	Lasers       *bool
	GravityZones *bool
	Vortexes     *bool
	Projectiles  *bool
	Electrified  *bool
	Schrodinger  *bool
}

// UpdateConfig merges a partial option set into the live configuration.
// The hazard aggregate's enabled flag is resynchronized with the chaos
// flag so the two never diverge.
func (g *Game) UpdateConfig(o Options) {
	if o.Speed != nil {
		g.cfg.Physics.Speed = *o.Speed
	}
	if o.JumpImpulse != nil {
		g.cfg.Physics.JumpImpulse = *o.JumpImpulse
	}
	if o.Gravity != nil {
		g.cfg.Physics.Gravity = *o.Gravity
	}
	if o.MaxFallSpeed != nil {
		g.cfg.Physics.MaxFallSpeed = *o.MaxFallSpeed
	}
	if o.MotionCurve != nil {
		g.cfg.Physics.MotionCurve = string(ParseCurve(*o.MotionCurve))
	}

	if o.GapSize != nil {
		g.cfg.Obstacles.GapSize = *o.GapSize
	}
	if o.Spacing != nil {
		g.cfg.Obstacles.Spacing = *o.Spacing
	}
	if o.Width != nil {
		g.cfg.Obstacles.Width = *o.Width
	}

	if o.ChaosEnabled != nil {
		g.cfg.Chaos.Enabled = *o.ChaosEnabled
	}
	if o.Lasers != nil {
		g.cfg.Chaos.Lasers = *o.Lasers
	}
	if o.GravityZones != nil {
		g.cfg.Chaos.GravityZones = *o.GravityZones
	}
	if o.Vortexes != nil {
		g.cfg.Chaos.Vortexes = *o.Vortexes
	}
	if o.Projectiles != nil {
		g.cfg.Chaos.Projectiles = *o.Projectiles
	}
	if o.Electrified != nil {
		g.cfg.Chaos.Electrified = *o.Electrified
	}
	if o.Schrodinger != nil {
		g.cfg.Chaos.Schrodinger = *o.Schrodinger
	}

	g.cfg.Normalize()
	g.chaos.Enabled = g.cfg.Chaos.Enabled
}

// ToggleChaos flips chaos mode, keeping both enabled flags in sync.
func (g *Game) ToggleChaos() bool {
	enabled := !g.cfg.Chaos.Enabled
	g.UpdateConfig(Options{ChaosEnabled: &enabled})
	return enabled
}

// CycleCurve advances to the next motion curve variant and returns it.
func (g *Game) CycleCurve() Curve {
	order := []Curve{CurveParabolic, CurveLinear, CurveExponential, CurveSine}
	current := ParseCurve(g.cfg.Physics.MotionCurve)
	for i, c := range order {
		if c == current {
			next := string(order[(i+1)%len(order)])
			g.UpdateConfig(Options{MotionCurve: &next})
			return Curve(next)
		}
	}
	return current
}
