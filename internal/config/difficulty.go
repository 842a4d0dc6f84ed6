package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
// With progression disabled it returns the base values unchanged, so the
// simulation stays on the fixed parameters the configuration names.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampUnit(level)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.IsEnabled() {
		if !d.cfg.Enabled {
			return 0
		}
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampUnit(progress)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scroll speed adjusted for the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize returns the pipe gap adjusted for the current difficulty level.
func (d *DifficultyManager) GapSize(baseGap float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	result := baseGap - level*d.cfg.Scaling.GapReduction
	if result < 60 { // Minimum playable gap
		result = 60
	}
	return result
}

// Spacing returns the obstacle spacing adjusted for the current difficulty level.
func (d *DifficultyManager) Spacing(baseSpacing float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	result := baseSpacing - level*d.cfg.Scaling.SpacingReduction
	if result < 120 { // Minimum playable spacing
		result = 120
	}
	return result
}

func clampUnit(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
