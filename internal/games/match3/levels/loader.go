// Package levels provides campaign level loading for the match-3 game.
// Levels ship embedded in the binary and can be replaced by a directory.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var embedded embed.FS

// Goal asks the player to collect Count tiles of Item.
type Goal struct {
	Item  string
	Count int
}

// Level represents a complete level definition.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Steps  int
	Items  []string // item IDs in play; empty means every configured item
	Goals  []Goal
	// Layout holds starting item IDs indexed [y][x]; "" is a random tile.
	Layout   [][]string
	FilePath string
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDirLoader creates a loader over a directory on disk.
func NewDirLoader(root string) *Loader {
	return NewLoader(os.DirFS(root))
}

// Default returns a loader over the built-in level set.
func Default() *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // embed layout is fixed at compile time
	}
	return NewLoader(sub)
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Any file that
// fails to parse fails the whole load.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels: no level files found")
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	for i := 1; i < len(levels); i++ {
		if levels[i].ID == levels[i-1].ID {
			return nil, fmt.Errorf("levels: duplicate id %q", levels[i].ID)
		}
	}
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
