package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// newLogger builds the command logger. Full-screen commands log to
// ~/.arcade/match3.log so records do not tear the terminal.
// The returned func closes the log file.
func newLogger(toFile bool) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	if toFile {
		out = io.Discard
		if f, ferr := openLogFile(); ferr == nil {
			out = f
			closeLog = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "match3",
		Level:           level,
	})
	return logger, closeLog
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "match3.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig reads match3.yaml and applies the difficulty preset.
func loadConfig() (config.Match3Config, error) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyMatch3Preset(&cfg, preset)
	}
	return cfg, nil
}

// levelLoader reads the --levels directory, or the built-in set.
func levelLoader() *levels.Loader {
	if flagLevelsDir != "" {
		return levels.NewDirLoader(flagLevelsDir)
	}
	return levels.Default()
}

// loadLevels returns the campaign levels the game will play.
func loadLevels() ([]levels.Level, error) {
	return levelLoader().LoadAll()
}

// newEnv gathers what every screen needs. The store is optional: when it
// cannot be opened the game still runs without persistence. The returned
// func releases the store.
func newEnv(logger *log.Logger, withStore bool) (tui.Env, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return tui.Env{}, nil, err
	}
	lvls, err := loadLevels()
	if err != nil {
		return tui.Env{}, nil, err
	}

	env := tui.Env{
		Options: registry.Options{
			Config:    cfg,
			LevelsDir: flagLevelsDir,
			Logger:    logger,
		},
		Levels: lvls,
	}
	cleanup := func() {}

	if withStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("running without scores database", "db", flagDBPath, "err", err)
		} else {
			env.Store = store
			cleanup = func() { store.Close() }
		}
	}
	return env, cleanup, nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
