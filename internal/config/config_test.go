package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultMatch3Config().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	def := DefaultMatch3Config()
	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if len(cfg.Items) != len(def.Items) {
		t.Errorf("len(Items) = %d, expected %d", len(cfg.Items), len(def.Items))
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m3.yaml")
	data := `
board:
  width: 5
  height: 6
items:
  - {id: x, name: X, glyph: "x", color: red, value: 1}
  - {id: y, name: Y, glyph: "y", color: blue, value: 2}
  - {id: z, name: Z, glyph: "z", color: green, value: 3}
cascade:
  max_batches: 50
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if cfg.Board.Width != 5 || cfg.Board.Height != 6 {
		t.Errorf("Board = %+v, expected 5x6", cfg.Board)
	}
	if len(cfg.Items) != 3 || cfg.Items[2].ID != "z" {
		t.Errorf("Items = %+v", cfg.Items)
	}
	if cfg.Cascade.MaxBatches != 50 {
		t.Errorf("MaxBatches = %d, expected 50", cfg.Cascade.MaxBatches)
	}
	// Missing sections keep defaults
	if cfg.Animation.PopTicks != DefaultMatch3Config().Animation.PopTicks {
		t.Errorf("PopTicks = %d, expected default", cfg.Animation.PopTicks)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatch3(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board: {width: 0, height: 4}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadMatch3(invalid)
	if err == nil || !strings.Contains(err.Error(), "board size") {
		t.Errorf("expected board size error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
		want   string
	}{
		{"one item", func(c *Match3Config) { c.Items = c.Items[:1] }, "at least 2 items"},
		{"duplicate id", func(c *Match3Config) { c.Items[1].ID = c.Items[0].ID }, "duplicate id"},
		{"missing id", func(c *Match3Config) { c.Items[0].ID = "" }, "missing id"},
		{"long glyph", func(c *Match3Config) { c.Items[0].Glyph = "ab" }, "single character"},
		{"negative value", func(c *Match3Config) { c.Items[0].Value = -1 }, "negative value"},
		{"negative steps", func(c *Match3Config) { c.Endless.Steps = -3 }, "endless steps"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		multiplier float64
	}{
		{DifficultyEasy, true, 1.5},
		{DifficultyNormal, true, 1.0},
		{DifficultyHard, true, 0.75},
		{DifficultyFixed, false, 1.0},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.StepsMultiplier != tc.multiplier {
				t.Errorf("StepsMultiplier = %v, expected %v", cfg.StepsMultiplier, tc.multiplier)
			}
			if IsFixedPreset(tc.preset) == tc.enabled {
				t.Errorf("IsFixedPreset(%s) = %v", tc.preset, IsFixedPreset(tc.preset))
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestScaleSteps(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.StepsMultiplier = 0.75
	if got := cfg.ScaleSteps(20); got != 15 {
		t.Errorf("ScaleSteps(20) = %d, expected 15", got)
	}
	if got := cfg.ScaleSteps(1); got != 1 {
		t.Errorf("ScaleSteps(1) = %d, expected 1", got)
	}
	cfg.StepsMultiplier = 0
	if got := cfg.ScaleSteps(7); got != 7 {
		t.Errorf("ScaleSteps with zero multiplier = %d, expected 7", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	})

	if got := dm.Level(0, 0); !approx(got, 0.2) {
		t.Errorf("Level(0) = %v, expected 0.2", got)
	}
	if got := dm.Level(500, 0); !approx(got, 0.6) {
		t.Errorf("Level(500) = %v, expected 0.6", got)
	}
	if got := dm.Level(5000, 0); !approx(got, 1.0) {
		t.Errorf("Level(5000) = %v, expected 1.0", got)
	}

	steps := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "steps", MaxAt: 10},
	})
	if got := steps.Level(9999, 5); !approx(got, 0.5) {
		t.Errorf("steps Level = %v, expected 0.5", got)
	}

	off := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.3})
	if got := off.Level(1000, 1000); !approx(got, 0.3) {
		t.Errorf("disabled Level = %v, expected 0.3", got)
	}
}

func TestKindCount(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})
	tests := []struct {
		score, want int
	}{
		{0, 4},
		{50, 5},
		{100, 6},
		{1000, 6},
	}
	for _, tc := range tests {
		if got := dm.KindCount(4, 6, tc.score, 0); got != tc.want {
			t.Errorf("KindCount(score=%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}
	if got := dm.KindCount(1, 6, 0, 0); got != 2 {
		t.Errorf("KindCount with min 1 = %d, expected 2", got)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
