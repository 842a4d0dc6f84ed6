package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.4 {
		t.Errorf("default gravity = %v, want 0.4", cfg.Physics.Gravity)
	}
	if cfg.Physics.MotionCurve != "parabolic" {
		t.Errorf("default motion curve = %q, want parabolic", cfg.Physics.MotionCurve)
	}
	if cfg.Obstacles.GapSize != 160 {
		t.Errorf("default gap = %v, want 160", cfg.Obstacles.GapSize)
	}
	if cfg.Chaos.Enabled {
		t.Error("chaos should be disabled by default")
	}
	if !cfg.Chaos.Lasers || !cfg.Chaos.Schrodinger {
		t.Error("all chaos kinds should be enabled by default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  gravity: 0.8\n  jump_impulse: 5\n  max_fall_speed: 10\n  speed: 3\n  motion_curve: sine\nobstacles:\n  width: 60\n  spacing: 200\n  gap_size: 180\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %v, want 0.8", cfg.Physics.Gravity)
	}
	if cfg.Physics.MotionCurve != "sine" {
		t.Errorf("motion curve = %q, want sine", cfg.Physics.MotionCurve)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Default()
	cfg.Physics.Gravity = 100
	cfg.Obstacles.GapSize = -5
	cfg.Normalize()

	if cfg.Physics.Gravity != 2.0 {
		t.Errorf("gravity clamped to %v, want 2.0", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.GapSize != 60 {
		t.Errorf("gap clamped to %v, want 60", cfg.Obstacles.GapSize)
	}
}

func TestDifficultyDisabledIsNeutral(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: false})

	if got := d.Speed(2.5, 100, 10000); got != 2.5 {
		t.Errorf("disabled Speed = %v, want 2.5", got)
	}
	if got := d.GapSize(160, 100, 10000); got != 160 {
		t.Errorf("disabled GapSize = %v, want 160", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, GapReduction: 40, SpacingReduction: 60},
	})

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, want 0", got)
	}
	if got := d.Level(5, 0); got != 0.5 {
		t.Errorf("Level(5) = %v, want 0.5", got)
	}
	if got := d.Level(50, 0); got != 1.0 {
		t.Errorf("Level(50) = %v, want capped 1.0", got)
	}

	if got := d.Speed(2.0, 10, 0); got != 4.0 {
		t.Errorf("Speed at max level = %v, want 4.0", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}
