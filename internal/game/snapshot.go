package game

// Snapshot is an immutable copy of the full game state, published for the
// renderer and for tests. Later ticks never mutate an already-taken
// snapshot: every slice is copied and the charge payloads are re-boxed.
type Snapshot struct {
	Tick   uint64
	Status Status
	Score  int
	Best   int
	Curve  Curve

	Bird Bird

	Pipes []Pipe

	ChaosEnabled bool
	Lasers       []Laser
	Zones        []GravityZone
	Vortexes     []Vortex
	Projectiles  []Projectile

	Hole BlackHole
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]Pipe, len(g.pipes.Pipes()))
	copy(pipes, g.pipes.Pipes())
	for i := range pipes {
		if pipes[i].Charge != nil {
			charge := *pipes[i].Charge
			pipes[i].Charge = &charge
		}
	}

	lasers := make([]Laser, len(g.chaos.Lasers))
	copy(lasers, g.chaos.Lasers)
	zones := make([]GravityZone, len(g.chaos.Zones))
	copy(zones, g.chaos.Zones)
	vortexes := make([]Vortex, len(g.chaos.Vortexes))
	copy(vortexes, g.chaos.Vortexes)
	projectiles := make([]Projectile, len(g.chaos.Projectiles))
	copy(projectiles, g.chaos.Projectiles)

	return Snapshot{
		Tick:         g.tick,
		Status:       g.status,
		Score:        g.score,
		Best:         g.best,
		Curve:        ParseCurve(g.cfg.Physics.MotionCurve),
		Bird:         g.bird,
		Pipes:        pipes,
		ChaosEnabled: g.chaos.Enabled,
		Lasers:       lasers,
		Zones:        zones,
		Vortexes:     vortexes,
		Projectiles:  projectiles,
		Hole:         g.hole,
	}
}
