package game

import (
	"github.com/vovakirdan/chaosflap/internal/config"
	"github.com/vovakirdan/chaosflap/internal/core"
)

// Status is the game lifecycle state. It moves ready -> playing -> over;
// only an impulse from over re-enters playing, via restart.
type Status string

const (
	StatusReady   Status = "ready"
	StatusPlaying Status = "playing"
	StatusOver    Status = "over"
)

// Game owns the authoritative state and sequences all subsystem updates in
// a fixed order each tick. It exposes exactly two mutating operations,
// Step and Impulse; the host must serialize calls (the engine assumes at
// most one in-flight tick at a time).
type Game struct {
	cfg        config.GameConfig
	difficulty *config.DifficultyManager

	bird  Bird
	pipes *PipeManager
	chaos *Chaos
	hole  BlackHole

	score  int
	best   int
	status Status
	tick   uint64

	seed  int64
	games int // Completed restarts this session, perturbs per-game seeds
}

// New creates a game with the given configuration, in the ready state.
// Call Reset with the session seed before stepping.
func New(cfg config.GameConfig) *Game {
	cfg.Normalize()
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		bird:       NewBird(),
		status:     StatusReady,
	}
	g.pipes = NewPipeManager(1)
	g.chaos = NewChaos(2, cfg.Chaos.Enabled)
	return g
}

// Reset starts a fresh session with the given seed. The best score and
// configuration survive; everything else resets and the status returns
// to ready.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.games = 0
	g.resetRound()
	g.status = StatusReady
}

// resetRound clears per-game state: bird, pipes, hazards, the black hole
// latch, score and tick counter. Best score and configuration survive.
func (g *Game) resetRound() {
	seed := g.seed + int64(g.games)
	g.bird = NewBird()
	g.pipes.Reset(seed)
	g.chaos.Reset(seed + 1)
	g.hole.ResetForGame()
	g.score = 0
	g.tick = 0
}

// Impulse is the single external command. Its meaning depends on where the
// game is: it starts play from ready, flaps during play, resumes a
// suspended black hole, and restarts from game over.
func (g *Game) Impulse() {
	switch g.status {
	case StatusReady:
		g.status = StatusPlaying
		g.flap()

	case StatusPlaying:
		if g.hole.Active {
			return // Mid-cinematic: input is swallowed
		}
		if g.hole.WaitingToResume {
			g.hole.WaitingToResume = false
		}
		g.flap()

	case StatusOver:
		g.games++
		g.resetRound()
		g.status = StatusPlaying
		g.flap()
	}
}

func (g *Game) flap() {
	g.bird.Flap(g.cfg.Physics.JumpImpulse, ParseCurve(g.cfg.Physics.MotionCurve))
}

// Step advances the simulation by one tick. No-op unless playing.
//
// Within a tick the order is fixed: black-hole cinematic (suspends all
// else) -> hazards -> bird physics under hazard-modified gravity -> vortex
// pull -> pipe scroll/spawn/modifiers -> scoring -> record-break trigger
// (pre-empts death this tick) -> collision resolution.
func (g *Game) Step() {
	if g.status != StatusPlaying {
		return
	}
	g.tick++

	if g.hole.Active {
		if g.hole.Advance() {
			// Cinematic done: wipe the field, park the bird, wait for
			// the resume impulse.
			g.pipes.Clear()
			g.chaos.ClearEntities()
			g.bird = NewBird()
		}
		return
	}
	if g.hole.WaitingToResume {
		return
	}

	curve := ParseCurve(g.cfg.Physics.MotionCurve)
	speed := g.difficulty.Speed(g.cfg.Physics.Speed, g.score, g.tick)

	// Hazards move first so the gravity multiplier and vortex pull seen by
	// the bird this tick reflect this tick's hazard state.
	g.chaos.Update(g.tick, speed, g.cfg.Chaos)
	if g.chaos.Enabled {
		g.chaos.TriggerZones(g.bird.X)
	}

	gravity := g.cfg.Physics.Gravity * g.chaos.GravityMultiplier()
	g.bird.Advance(gravity, g.cfg.Physics.MaxFallSpeed, curve, g.cfg.Physics.JumpImpulse)

	if g.chaos.Enabled {
		cx, cy := g.bird.Center()
		fx, fy := g.chaos.VortexPull(cx, cy)
		g.bird.Vel += fy
		g.bird.X = core.ClampF(g.bird.X+fx, VortexMinX, VortexMaxX)
	}

	g.pipes.Advance(speed)
	if g.pipes.ShouldSpawn(g.difficulty.Spacing(g.cfg.Obstacles.Spacing, g.score, g.tick)) {
		gap := g.difficulty.GapSize(g.cfg.Obstacles.GapSize, g.score, g.tick)
		electrified := g.chaos.Enabled && g.cfg.Chaos.Electrified
		quantum := g.chaos.Enabled && g.cfg.Chaos.Schrodinger
		g.pipes.Spawn(gap, g.cfg.Obstacles.Width, electrified, quantum)
	}
	g.pipes.AdvanceCharges()

	leading := g.bird.X + BirdW
	g.pipes.Reveal(leading)
	g.score += g.pipes.ScorePassed(leading)

	// Breaking a real previous best pre-empts everything else this tick,
	// including death: collisions are skipped outright.
	if g.score > g.best && g.best > 0 && !g.hole.Triggered {
		g.hole.Trigger()
		return
	}

	bird := g.bird.Rect()
	if g.pipes.Collides(bird) ||
		g.bird.OutOfBounds() ||
		(g.chaos.Enabled && g.chaos.Lethal(bird)) ||
		g.pipes.ElectricCollides(bird) {
		g.endGame()
	}
}

// endGame transitions to over and folds the score into the session best.
// Persisting the best is the host's job: it is a side effect the core
// never blocks on.
func (g *Game) endGame() {
	g.status = StatusOver
	if g.score > g.best {
		g.best = g.score
	}
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// BestScore returns the session best.
func (g *Game) BestScore() int {
	return g.best
}

// SetBestScore seeds the carried-over best, typically read from storage at
// session start.
func (g *Game) SetBestScore(best int) {
	g.best = best
}

// Tick returns the tick counter of the current game.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Config returns a copy of the current configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}
