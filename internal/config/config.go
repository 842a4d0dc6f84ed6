// Package config provides YAML-based game configuration loading and
// difficulty management. Range validation lives here, at the boundary:
// the simulation core trusts the values it is handed.
package config

// GameConfig contains all tunable parameters for the game.
type GameConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Chaos      ChaosConfig      `yaml:"chaos"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines motion parameters for the bird.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	Speed        float64 `yaml:"speed"`       // World scroll speed per tick
	MotionCurve  string  `yaml:"motion_curve"` // parabolic, linear, exponential, sine
}

// ObstacleConfig defines pipe geometry and cadence, in world units.
type ObstacleConfig struct {
	Width   float64 `yaml:"width"`
	Spacing float64 `yaml:"spacing"`
	GapSize float64 `yaml:"gap_size"`
}

// ChaosConfig toggles chaos mode and its individual hazard kinds.
type ChaosConfig struct {
	Enabled      bool `yaml:"enabled"`
	Lasers       bool `yaml:"lasers"`
	GravityZones bool `yaml:"gravity_zones"`
	Vortexes     bool `yaml:"vortexes"`
	Projectiles  bool `yaml:"projectiles"`
	Electrified  bool `yaml:"electrified"`
	Schrodinger  bool `yaml:"schrodinger"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     float64 `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Normalize clamps all numeric parameters to playable ranges.
// The simulation core does not re-validate; degenerate values that slip
// past this boundary produce degenerate but defined behavior.
func (c *GameConfig) Normalize() {
	c.Physics.Gravity = clampF(c.Physics.Gravity, 0.05, 2.0)
	c.Physics.JumpImpulse = clampF(c.Physics.JumpImpulse, 1.0, 20.0)
	c.Physics.MaxFallSpeed = clampF(c.Physics.MaxFallSpeed, 2.0, 30.0)
	c.Physics.Speed = clampF(c.Physics.Speed, 0.5, 10.0)
	c.Obstacles.Width = clampF(c.Obstacles.Width, 20, 120)
	c.Obstacles.Spacing = clampF(c.Obstacles.Spacing, 120, 400)
	c.Obstacles.GapSize = clampF(c.Obstacles.GapSize, 60, 400)
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
