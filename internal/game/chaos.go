package game

import (
	"math/rand"

	"github.com/vovakirdan/chaosflap/internal/config"
	"github.com/vovakirdan/chaosflap/internal/core"
)

// Shared spawn cadence for all hazard kinds.
const (
	SpawnInterval = 400 // Ticks between spawn rolls
	SpawnChance   = 0.3
)

// spawnKind is the hazard kind drawn by the shared spawner.
type spawnKind int

const (
	spawnLaser spawnKind = iota
	spawnZone
	spawnVortex
	spawnProjectiles
)

// Chaos is the hazard aggregate: four typed entity collections, a shared
// last-spawn clock, and its own RNG so hazard draws never perturb pipe
// placement. Enabled mirrors the game-level chaos flag and is kept in
// sync by the orchestrator.
type Chaos struct {
	Enabled bool

	Lasers      []Laser
	Zones       []GravityZone
	Vortexes    []Vortex
	Projectiles []Projectile

	lastSpawn uint64
	rng       *rand.Rand
}

// NewChaos creates a hazard aggregate seeded for deterministic spawning.
func NewChaos(seed int64, enabled bool) *Chaos {
	c := &Chaos{Enabled: enabled}
	c.Reset(seed)
	return c
}

// Reset clears all entities and reseeds the RNG. The enabled flag survives.
func (c *Chaos) Reset(seed int64) {
	c.ClearEntities()
	c.lastSpawn = 0
	c.rng = rand.New(rand.NewSource(seed))
}

// ClearEntities drops every live hazard entity.
func (c *Chaos) ClearEntities() {
	c.Lasers = c.Lasers[:0]
	c.Zones = c.Zones[:0]
	c.Vortexes = c.Vortexes[:0]
	c.Projectiles = c.Projectiles[:0]
}

// Update advances every live hazard and rolls the shared spawner.
// Every SpawnInterval ticks there is a SpawnChance roll; on success one
// enabled kind is drawn uniformly and spawned. Lasers are capped at one
// concurrent instance; a projectile draw spawns two at once.
func (c *Chaos) Update(tick uint64, speed float64, cfg config.ChaosConfig) {
	c.advance(speed)

	if !c.Enabled {
		return
	}

	if tick-c.lastSpawn < SpawnInterval {
		return
	}
	c.lastSpawn = tick

	if c.rng.Float64() >= SpawnChance {
		return
	}

	var kinds []spawnKind
	if cfg.Lasers && len(c.Lasers) == 0 {
		kinds = append(kinds, spawnLaser)
	}
	if cfg.GravityZones {
		kinds = append(kinds, spawnZone)
	}
	if cfg.Vortexes {
		kinds = append(kinds, spawnVortex)
	}
	if cfg.Projectiles {
		kinds = append(kinds, spawnProjectiles)
	}
	if len(kinds) == 0 {
		return
	}

	switch kinds[c.rng.Intn(len(kinds))] {
	case spawnLaser:
		c.Lasers = append(c.Lasers, NewLaser(60+c.rng.Float64()*(GroundY-120)))
	case spawnZone:
		c.Zones = append(c.Zones, NewGravityZone())
	case spawnVortex:
		c.Vortexes = append(c.Vortexes, Vortex{
			X: WorldW + VortexRadius,
			Y: 120 + c.rng.Float64()*(GroundY-240),
		})
	case spawnProjectiles:
		c.Projectiles = append(c.Projectiles, c.newProjectile(), c.newProjectile())
	}
}

// newProjectile picks an entry edge uniformly and aims inward, fast
// horizontally with a slight vertical drift.
func (c *Chaos) newProjectile() Projectile {
	p := Projectile{
		Y:  60 + c.rng.Float64()*(GroundY-120),
		VY: (c.rng.Float64()*2 - 1) * 1.5,
	}
	vx := 2.5 + c.rng.Float64()*3.0
	if c.rng.Intn(2) == 0 {
		p.X = -ProjectileMargin + 1
		p.VX = vx
	} else {
		p.X = WorldW + ProjectileMargin - 1
		p.VX = -vx
	}
	return p
}

// advance steps every entity and culls the dead ones.
func (c *Chaos) advance(speed float64) {
	lasers := c.Lasers[:0]
	for i := range c.Lasers {
		if c.Lasers[i].Advance() {
			lasers = append(lasers, c.Lasers[i])
		}
	}
	c.Lasers = lasers

	zones := c.Zones[:0]
	for i := range c.Zones {
		if c.Zones[i].Advance(speed) {
			zones = append(zones, c.Zones[i])
		}
	}
	c.Zones = zones

	vortexes := c.Vortexes[:0]
	for i := range c.Vortexes {
		if c.Vortexes[i].Advance(speed) {
			vortexes = append(vortexes, c.Vortexes[i])
		}
	}
	c.Vortexes = vortexes

	projectiles := c.Projectiles[:0]
	for i := range c.Projectiles {
		if c.Projectiles[i].Advance() {
			projectiles = append(projectiles, c.Projectiles[i])
		}
	}
	c.Projectiles = projectiles
}

// TriggerZones activates the first unspent zone covering the bird's
// x-position, but only while no other zone is active. At most one zone is
// ever active, which is what makes the gravity multiplier well-defined.
func (c *Chaos) TriggerZones(birdX float64) {
	for i := range c.Zones {
		if c.Zones[i].Active {
			return
		}
	}
	for i := range c.Zones {
		z := &c.Zones[i]
		if !z.Spent && z.Covers(birdX) {
			z.Active = true
			return
		}
	}
}

// GravityMultiplier is -1 while a gravity zone is active, +1 otherwise.
func (c *Chaos) GravityMultiplier() float64 {
	for i := range c.Zones {
		if c.Zones[i].Active {
			return -1
		}
	}
	return 1
}

// VortexPull sums the pull of every vortex on a point.
func (c *Chaos) VortexPull(px, py float64) (fx, fy float64) {
	for i := range c.Vortexes {
		dx, dy := c.Vortexes[i].Force(px, py)
		fx += dx
		fy += dy
	}
	return fx, fy
}

// Lethal tests the bird against every beam and projectile.
func (c *Chaos) Lethal(bird core.Rect) bool {
	for i := range c.Lasers {
		if c.Lasers[i].Lethal(bird) {
			return true
		}
	}
	for i := range c.Projectiles {
		if c.Projectiles[i].Hits(bird) {
			return true
		}
	}
	return false
}
