package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/steps.
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
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score and
// steps already spent.
func (d *DifficultyManager) Level(score int, stepsUsed int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "steps":
		progress = float64(stepsUsed) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// KindCount returns how many item kinds are in play, growing from minKinds
// at level 0 to maxKinds at level 1. More kinds means fewer matches.
func (d *DifficultyManager) KindCount(minKinds, maxKinds, score, stepsUsed int) int {
	if minKinds < 2 {
		minKinds = 2
	}
	if maxKinds < minKinds {
		return maxKinds
	}
	level := d.Level(score, stepsUsed)
	return minKinds + int(math.Round(level*float64(maxKinds-minKinds)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
