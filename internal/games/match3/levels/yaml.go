package levels

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string            `yaml:"id"`
	Name   string            `yaml:"name"`
	Size   YAMLSize          `yaml:"size"`
	Steps  int               `yaml:"steps"`
	Items  []string          `yaml:"items,omitempty"`
	Goals  []YAMLGoal        `yaml:"goals"`
	Layout []string          `yaml:"layout,omitempty"`
	Legend map[string]string `yaml:"legend,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLGoal is one collection target.
type YAMLGoal struct {
	Item  string `yaml:"item"`
	Count int    `yaml:"count"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}
	if yl.Steps <= 0 {
		return Level{}, fmt.Errorf("level %s: steps must be positive", yl.ID)
	}

	level := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  yl.Size.W,
		Height: yl.Size.H,
		Steps:  yl.Steps,
		Items:  yl.Items,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	for _, g := range yl.Goals {
		if g.Item == "" || g.Count <= 0 {
			return Level{}, fmt.Errorf("level %s: goal needs an item and a positive count", yl.ID)
		}
		level.Goals = append(level.Goals, Goal{Item: g.Item, Count: g.Count})
	}

	if len(yl.Layout) > 0 {
		layout, err := parseLayout(yl.Layout, yl.Legend)
		if err != nil {
			return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
		}
		level.Layout = layout
		level.Width = len(layout[0])
		level.Height = len(layout)
	}

	if level.Width <= 0 || level.Height <= 0 {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, match3.ErrInvalidDimensions)
	}
	// A level is cleared when every goal is collected; none would never clear.
	if len(level.Goals) == 0 {
		return Level{}, fmt.Errorf("level %s: needs at least one goal", yl.ID)
	}
	return level, nil
}

// parseLayout turns layout rows into item IDs using the legend. '.' leaves
// the tile to the random source.
func parseLayout(rows []string, legend map[string]string) ([][]string, error) {
	width := utf8.RuneCountInString(rows[0])
	out := make([][]string, len(rows))
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", match3.ErrRaggedRows, y, n, width)
		}
		out[y] = make([]string, 0, width)
		for _, r := range row {
			if r == '.' {
				out[y] = append(out[y], "")
				continue
			}
			id, ok := legend[string(r)]
			if !ok {
				return nil, fmt.Errorf("layout symbol %q missing from legend", r)
			}
			out[y] = append(out[y], id)
		}
	}
	return out, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
