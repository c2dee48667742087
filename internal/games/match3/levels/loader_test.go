package levels

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

func TestDefaultLevels(t *testing.T) {
	levels, err := Default().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i-1].ID >= levels[i].ID {
			t.Errorf("levels not sorted: %s before %s", levels[i-1].ID, levels[i].ID)
		}
	}
	for _, lvl := range levels {
		if lvl.Steps <= 0 || len(lvl.Goals) == 0 {
			t.Errorf("level %s: steps=%d goals=%d", lvl.ID, lvl.Steps, len(lvl.Goals))
		}
	}
}

func TestLayoutLevel(t *testing.T) {
	lvl, err := Default().LoadByID("03-cross")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if lvl.Width != 7 || lvl.Height != 7 {
		t.Errorf("size = %dx%d, expected 7x7", lvl.Width, lvl.Height)
	}
	if lvl.Layout[0][3] != "heart" || lvl.Layout[3][3] != "star" || lvl.Layout[0][0] != "" {
		t.Errorf("unexpected layout: %v", lvl.Layout)
	}
}

func TestLoadByIDMissing(t *testing.T) {
	if _, err := Default().LoadByID("99-nowhere"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no id", "steps: 3\nsize: {w: 3, h: 3}", "no id"},
		{"no steps", "id: x\nsize: {w: 3, h: 3}", "steps must be positive"},
		{"no size", "id: x\nsteps: 3", "dimensions"},
		{"bad goal", "id: x\nsteps: 3\nsize: {w: 3, h: 3}\ngoals: [{item: a, count: 0}]", "positive count"},
		{"no goals", "id: x\nsteps: 3\nsize: {w: 5, h: 5}\nitems: [apple, leaf, star]", "needs at least one goal"},
		{"unknown symbol", "id: x\nsteps: 3\nlayout: ['ab']\nlegend: {a: apple}", "missing from legend"},
		{"bad yaml", "id: [", "yaml unmarshal"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("ParseYAML() error = %v, expected to contain %q", err, tc.want)
			}
		})
	}
}

func TestParseYAMLRaggedLayout(t *testing.T) {
	_, err := ParseYAML([]byte("id: x\nsteps: 3\nlayout: ['..', '...']"))
	if !errors.Is(err, match3.ErrRaggedRows) {
		t.Errorf("expected ErrRaggedRows, got %v", err)
	}
	if !errors.Is(err, match3.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestLoaderFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"b.yaml":     {Data: []byte("id: b\nsteps: 5\nsize: {w: 4, h: 4}\ngoals: [{item: apple, count: 3}]")},
		"sub/a.yml":  {Data: []byte("id: a\nname: First\nsteps: 5\nsize: {w: 3, h: 5}\ngoals: [{item: apple, count: 3}]")},
		"notes.txt":  {Data: []byte("ignored")},
		"sub/c.json": {Data: []byte("{}")},
	}
	levels, err := NewLoader(fsys).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(levels) != 2 || levels[0].ID != "a" || levels[1].ID != "b" {
		t.Fatalf("unexpected levels: %+v", levels)
	}
	if levels[0].Name != "First" || levels[1].Name != "b" {
		t.Errorf("names = %q, %q", levels[0].Name, levels[1].Name)
	}
	if levels[0].FilePath != "sub/a.yml" {
		t.Errorf("FilePath = %q", levels[0].FilePath)
	}
}

func TestLoaderErrors(t *testing.T) {
	if _, err := NewLoader(fstest.MapFS{}).LoadAll(); err == nil {
		t.Error("expected error for empty directory")
	}

	dup := fstest.MapFS{
		"a.yaml": {Data: []byte("id: same\nsteps: 1\nsize: {w: 3, h: 3}\ngoals: [{item: apple, count: 3}]")},
		"b.yaml": {Data: []byte("id: same\nsteps: 1\nsize: {w: 3, h: 3}\ngoals: [{item: apple, count: 3}]")},
	}
	if _, err := NewLoader(dup).LoadAll(); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate error, got %v", err)
	}

	broken := fstest.MapFS{"a.yaml": {Data: []byte("id: [")}}
	if _, err := NewLoader(broken).LoadAll(); err == nil {
		t.Error("expected parse error")
	}
}

func TestNewDirLoader(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewDirLoader(dir).LoadAll(); err == nil {
		t.Error("expected error for empty directory")
	}
}
