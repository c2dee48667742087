// Package match3 provides the match-3 puzzle game for the platform: a
// campaign of goal levels and an endless score attack, both driven by the
// board engine in internal/match3.
package match3

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	m3 "github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Mode IDs used by the registry and score storage.
const (
	CampaignID = "match3"
	EndlessID  = "match3_endless"
)

const (
	levelClearDuration = 120 // ~2s at 60fps
	bannerDuration     = 45
)

// Game implements the match-3 game.
type Game struct {
	mode   Mode
	cfg    config.Match3Config
	logger *log.Logger
	kinds  []m3.ItemKind
	byID   map[string]m3.ItemKind
	levels []levels.Level
	start  int // campaign level index chosen at creation

	rng  *rand.Rand
	tick uint64

	board      *m3.Board
	endless    *tieredSource // nil in campaign mode
	goals      *m3.Goals
	score      m3.Score
	rec        *recorder
	play       playback
	budget     int // steps the current board started with
	levelIndex int
	levelStart int // score when the current level started

	cursorX, cursorY int
	hint             *m3.Move
	hintTicks        int
	message          string

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
	pending         *core.LevelResult
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          CampaignID,
		Title:       "Match-3",
		Description: "Collect the goal items before the steps run out",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(ModeCampaign, opts)
	})
	registry.Register(registry.GameInfo{
		ID:          EndlessID,
		Title:       "Match-3 (Endless)",
		Description: "Score attack, more item kinds as the score climbs",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(ModeEndless, opts)
	})
}

// New creates a game in the given mode. A zero opts.Config means the
// default configuration.
func New(mode Mode, opts registry.Options) (*Game, error) {
	cfg := opts.Config
	if len(cfg.Items) == 0 {
		cfg = config.DefaultMatch3Config()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		mode:   mode,
		cfg:    cfg,
		logger: opts.Logger,
		byID:   make(map[string]m3.ItemKind, len(cfg.Items)),
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	for _, it := range cfg.Items {
		k := ItemKindFromConfig(it)
		g.kinds = append(g.kinds, k)
		g.byID[k.ID] = k
	}

	if mode == ModeCampaign {
		loader := levels.Default()
		if opts.LevelsDir != "" {
			loader = levels.NewDirLoader(opts.LevelsDir)
		}
		lvls, err := loader.LoadAll()
		if err != nil {
			return nil, err
		}
		for _, lvl := range lvls {
			if err := g.checkLevel(lvl); err != nil {
				return nil, err
			}
		}
		g.levels = lvls

		if opts.Level != "" {
			idx := g.levelIndexByID(opts.Level)
			if idx < 0 {
				return nil, fmt.Errorf("match3: unknown level %q", opts.Level)
			}
			g.start = idx
		}
	}
	return g, nil
}

// ItemKindFromConfig converts a configured item to an engine kind.
func ItemKindFromConfig(it config.ItemConfig) m3.ItemKind {
	k := m3.ItemKind{ID: it.ID, Name: it.Name, Value: it.Value, Color: it.Color}
	for _, r := range it.Glyph {
		k.Glyph = r
		break
	}
	return k
}

// checkLevel makes sure every item a level names is configured.
func (g *Game) checkLevel(lvl levels.Level) error {
	known := func(id string) error {
		if _, ok := g.byID[id]; !ok {
			return fmt.Errorf("match3: level %s: unknown item %q", lvl.ID, id)
		}
		return nil
	}
	for _, id := range lvl.Items {
		if err := known(id); err != nil {
			return err
		}
	}
	if lvl.Items != nil && len(lvl.Items) < 2 {
		return fmt.Errorf("match3: level %s: needs at least 2 items", lvl.ID)
	}
	for _, goal := range lvl.Goals {
		if err := known(goal.Item); err != nil {
			return err
		}
	}
	for _, row := range lvl.Layout {
		for _, id := range row {
			if id == "" {
				continue
			}
			if err := known(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) levelIndexByID(id string) int {
	for i, lvl := range g.levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return CampaignID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score.Reset()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.pending = nil
	g.levelIndex = g.start

	g.loadLevel()
	g.checkScreenSize()
}

// loadLevel builds a fresh board for the current level or endless run.
func (g *Game) loadLevel() {
	g.play.clear()
	g.hint = nil
	g.hintTicks = 0
	g.message = ""
	g.levelStart = g.score.Total()
	g.board = nil
	g.endless = nil

	var (
		bc  m3.Config
		src m3.KindSource
	)

	if g.mode == ModeEndless {
		g.goals = m3.NewGoals()
		bc = m3.Config{
			Width:  g.cfg.Board.Width,
			Height: g.cfg.Board.Height,
			Steps:  g.cfg.ScaleSteps(g.cfg.Endless.Steps),
		}
		g.endless = &tieredSource{
			rng:        g.rng,
			kinds:      g.kinds,
			difficulty: config.NewDifficultyManager(g.cfg.Difficulty),
			minKinds:   g.cfg.Endless.StartKinds,
			score:      g.score.Total,
			stepsUsed:  g.stepsUsed,
		}
		src = g.endless
	} else {
		lvl := g.levels[g.levelIndex]
		kinds := g.kinds
		if len(lvl.Items) > 0 {
			kinds = make([]m3.ItemKind, 0, len(lvl.Items))
			for _, id := range lvl.Items {
				kinds = append(kinds, g.byID[id])
			}
		}
		catalog, err := m3.NewCatalog(kinds, g.rng)
		if err != nil {
			g.fail(err)
			return
		}
		src = catalog

		goals := make([]m3.Goal, 0, len(lvl.Goals))
		for _, goal := range lvl.Goals {
			goals = append(goals, m3.Goal{Kind: g.byID[goal.Item], Target: goal.Count})
		}
		g.goals = m3.NewGoals(goals...)

		bc = m3.Config{
			Width:  lvl.Width,
			Height: lvl.Height,
			Steps:  g.cfg.ScaleSteps(lvl.Steps),
			Layout: g.layoutKinds(lvl.Layout),
		}
	}

	g.rec = newRecorder(g.cfg.Animation, g.goals, &g.score)
	board, err := m3.NewBoard(bc, src, g.rec.hooks(),
		m3.WithLogger(g.logger),
		m3.WithMaxCascade(g.cfg.Cascade.MaxBatches))
	if err != nil {
		g.fail(err)
		return
	}
	g.rec.grid = board.Grid()
	g.rec.take() // settling happens before the first frame is drawn

	g.board = board
	g.budget = bc.Steps
	g.cursorX = board.Grid().Width() / 2
	g.cursorY = board.Grid().Height() / 2

	g.logger.Info("level started", "mode", g.mode, "level", g.levelName(),
		"size", fmt.Sprintf("%dx%d", board.Grid().Width(), board.Grid().Height()),
		"steps", board.Steps(), "settled", len(board.InitialCascade().Batches))

	g.checkEnd()
}

func (g *Game) layoutKinds(layout [][]string) [][]m3.ItemKind {
	if layout == nil {
		return nil
	}
	out := make([][]m3.ItemKind, len(layout))
	for y, row := range layout {
		out[y] = make([]m3.ItemKind, len(row))
		for x, id := range row {
			if id != "" {
				out[y][x] = g.byID[id]
			}
		}
	}
	return out
}

func (g *Game) fail(err error) {
	g.logger.Error("cannot build board", "err", err)
	g.message = err.Error()
	g.gameOver = true
}

func (g *Game) stepsUsed() int {
	if g.board == nil {
		return 0
	}
	return g.budget - g.board.Steps()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := g.boardSize()
	minW := core.Max(w, 44)
	minH := hudHeight + h + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDuration {
			g.advanceLevel()
		}
		return g.result()
	}

	if g.gameOver || g.won {
		return g.result()
	}

	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}

	// Input is ignored while a move plays back
	wasPlaying := g.play.active()
	g.play.advance()
	if wasPlaying {
		if !g.play.active() {
			g.checkEnd()
		}
		return g.result()
	}

	g.handleInput(in)
	return g.result()
}

func (g *Game) handleInput(in core.InputFrame) {
	grid := g.board.Grid()
	switch {
	case in.Has(core.ActionUp):
		g.cursorY = core.Clamp(g.cursorY-1, 0, grid.Height()-1)
	case in.Has(core.ActionDown):
		g.cursorY = core.Clamp(g.cursorY+1, 0, grid.Height()-1)
	case in.Has(core.ActionLeft):
		g.cursorX = core.Clamp(g.cursorX-1, 0, grid.Width()-1)
	case in.Has(core.ActionRight):
		g.cursorX = core.Clamp(g.cursorX+1, 0, grid.Width()-1)
	}

	switch {
	case in.Has(core.ActionCancel):
		g.board.ClearSelection()
	case in.Has(core.ActionHint):
		if move, ok := g.board.Hint(); ok {
			g.hint = &move
			g.hintTicks = g.cfg.Animation.HintTicks
		}
	case in.Has(core.ActionConfirm):
		g.selectAtCursor()
	}
}

func (g *Game) selectAtCursor() {
	res := g.board.SelectAt(g.cursorX, g.cursorY)
	switch res.Outcome {
	case m3.OutcomeMatched, m3.OutcomeReverted:
		g.hint = nil
		g.hintTicks = 0
		g.play.load(g.rec.take(), bannerDuration)
		if res.Cascade.Capped {
			g.message = "The board is restless..."
		}
		g.logger.Debug("move resolved", "outcome", res.Outcome,
			"batches", len(res.Cascade.Batches), "points", res.Cascade.Points(), "steps", g.board.Steps())
	}
}

// Click moves the cursor to the tile under screen cell (x, y) and picks it.
func (g *Game) Click(x, y int) {
	if g.board == nil || g.tooSmall || g.paused || g.gameOver || g.won || g.levelCleared || g.play.active() {
		return
	}
	tx, ty, ok := g.tileAt(x, y)
	if !ok {
		return
	}
	g.cursorX, g.cursorY = tx, ty
	g.selectAtCursor()
}

// checkEnd decides whether the current board is finished.
func (g *Game) checkEnd() {
	if g.board == nil {
		return
	}
	switch {
	case g.mode == ModeCampaign && g.goals.Complete():
		g.levelCleared = true
		g.levelClearTicks = 0
		g.finishLevel(true)
	case g.board.Steps() == 0:
		g.gameOver = true
		g.message = "Out of steps"
		g.finishLevel(false)
	default:
		if _, ok := g.board.Hint(); !ok {
			g.gameOver = true
			g.message = "No moves left"
			g.finishLevel(false)
		}
	}
}

func (g *Game) finishLevel(cleared bool) {
	if g.mode != ModeCampaign {
		return
	}
	g.pending = &core.LevelResult{
		LevelID:   g.levels[g.levelIndex].ID,
		Score:     g.score.Total() - g.levelStart,
		StepsLeft: g.board.Steps(),
		Cleared:   cleared,
	}
	g.logger.Info("level finished", "level", g.pending.LevelID, "cleared", cleared,
		"score", g.pending.Score, "steps_left", g.pending.StepsLeft)
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.levels)-1 {
		g.won = true
		return
	}
	g.levelIndex++
	g.loadLevel()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Level: g.pending}
	g.pending = nil
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Total(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
		Won:      g.won,
	}
}

func (g *Game) levelName() string {
	if g.mode == ModeEndless {
		return "endless"
	}
	return g.levels[g.levelIndex].ID
}

// Board exposes the engine board, mainly for tests and the simulator.
func (g *Game) Board() *m3.Board {
	return g.board
}

// Idle reports whether the game waits for the player's next move.
func (g *Game) Idle() bool {
	return g.board != nil && !g.tooSmall && !g.paused && !g.gameOver && !g.won &&
		!g.levelCleared && !g.play.active()
}

// PlayMove swaps the two tiles of mv as if the player picked both.
// It returns false when the game is not idle.
func (g *Game) PlayMove(mv m3.Move) bool {
	if !g.Idle() {
		return false
	}
	g.board.ClearSelection()
	g.cursorX, g.cursorY = mv.A.X, mv.A.Y
	g.selectAtCursor()
	g.cursorX, g.cursorY = mv.B.X, mv.B.Y
	g.selectAtCursor()
	return true
}
