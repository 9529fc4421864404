package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/frames.
// When progression is disabled every method returns its base value unchanged.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d != nil && d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/frames.
func (d *DifficultyManager) Level(score int, frames int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(frames) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed returns the enemy speed for newly spawned enemies.
// Speed grows from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) EnemySpeed(base float64, score int, frames int) float64 {
	if !d.IsEnabled() {
		return base
	}
	return base * (1.0 + d.Level(score, frames)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the base spawn interval in milliseconds.
// It shrinks by up to intervalReduction but never below a quarter of base.
func (d *DifficultyManager) SpawnInterval(base float64, score int, frames int) float64 {
	if !d.IsEnabled() {
		return base
	}
	result := base - d.Level(score, frames)*d.cfg.Scaling.IntervalReduction
	return math.Max(result, base/4)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
