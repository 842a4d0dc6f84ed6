package config

import (
	_ "embed"
)

//go:embed defaults/chaosflap.yaml
var defaultYAML []byte

// Default returns the default game configuration.
// Used as the last-resort fallback when the embedded YAML cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:      0.4,
			JumpImpulse:  6.5,
			MaxFallSpeed: 12.0,
			Speed:        2.5,
			MotionCurve:  "parabolic",
		},
		Obstacles: ObstacleConfig{
			Width:   60,
			Spacing: 220,
			GapSize: 160,
		},
		Chaos: ChaosConfig{
			Enabled:      false,
			Lasers:       true,
			GravityZones: true,
			Vortexes:     true,
			Projectiles:  true,
			Electrified:  true,
			Schrodinger:  true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.6,
				GapReduction:     40,
				SpacingReduction: 60,
			},
		},
	}
}
