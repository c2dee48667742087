package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
		},
		Items: []ItemConfig{
			{ID: "apple", Name: "Apple", Glyph: "●", Color: "red", Value: 10},
			{ID: "leaf", Name: "Leaf", Glyph: "♣", Color: "green", Value: 10},
			{ID: "star", Name: "Star", Glyph: "★", Color: "yellow", Value: 15},
			{ID: "drop", Name: "Drop", Glyph: "◆", Color: "blue", Value: 15},
			{ID: "heart", Name: "Heart", Glyph: "♥", Color: "magenta", Value: 20},
			{ID: "moon", Name: "Moon", Glyph: "▲", Color: "cyan", Value: 25},
		},
		Endless: EndlessConfig{
			Steps:      30,
			StartKinds: 4,
		},
		Cascade: CascadeConfig{
			MaxBatches: 1000,
		},
		Animation: AnimationConfig{
			SwapTicks:   6,
			PopTicks:    8,
			RefillTicks: 6,
			HintTicks:   90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
		},
		StepsMultiplier: 1.0,
	}
}
