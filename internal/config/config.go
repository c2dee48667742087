// Package config provides YAML-based game configuration loading and
// difficulty management for the match-3 game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Items      []ItemConfig     `yaml:"items"`
	Endless    EndlessConfig    `yaml:"endless"`
	Cascade    CascadeConfig    `yaml:"cascade"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`

	// StepsMultiplier scales every step budget (campaign and endless).
	StepsMultiplier float64 `yaml:"steps_multiplier"`
}

// BoardConfig defines the default board size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ItemConfig defines one item kind of the catalog.
type ItemConfig struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"` // single rune
	Color string `yaml:"color"` // color name, see core.ParseColor
	Value int    `yaml:"value"`
}

// EndlessConfig defines the score attack mode.
type EndlessConfig struct {
	Steps      int `yaml:"steps"`
	StartKinds int `yaml:"start_kinds"` // kinds in play at difficulty 0
}

// CascadeConfig bounds cascades.
type CascadeConfig struct {
	MaxBatches int `yaml:"max_batches"` // <= 0 disables the cap
}

// AnimationConfig sets how many ticks each animation phase lasts.
type AnimationConfig struct {
	SwapTicks   int `yaml:"swap_ticks"`
	PopTicks    int `yaml:"pop_ticks"`
	RefillTicks int `yaml:"refill_ticks"`
	HintTicks   int `yaml:"hint_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "steps", or "none"
	MaxAt int    `yaml:"max_at"` // Score/steps used at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

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

// StepsMultiplierForPreset returns the step budget scale of a preset.
func StepsMultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ScaleSteps applies the steps multiplier, keeping at least one step.
func (c Match3Config) ScaleSteps(steps int) int {
	if c.StepsMultiplier <= 0 || steps <= 0 {
		return steps
	}
	scaled := int(float64(steps)*c.StepsMultiplier + 0.5)
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

// Validate reports every problem in the config.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", c.Board.Width, c.Board.Height))
	}
	if len(c.Items) < 2 {
		errs = append(errs, fmt.Errorf("need at least 2 items, have %d", len(c.Items)))
	}
	seen := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		switch {
		case it.ID == "":
			errs = append(errs, fmt.Errorf("item %d: missing id", i))
		case seen[it.ID]:
			errs = append(errs, fmt.Errorf("item %d: duplicate id %q", i, it.ID))
		}
		seen[it.ID] = true
		if utf8.RuneCountInString(it.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("item %q: glyph must be a single character", it.ID))
		}
		if it.Value < 0 {
			errs = append(errs, fmt.Errorf("item %q: negative value", it.ID))
		}
	}
	if c.Endless.Steps < 0 {
		errs = append(errs, fmt.Errorf("endless steps must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
