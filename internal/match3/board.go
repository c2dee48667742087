package match3

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// DefaultMaxCascade bounds the removal batches of a single resolution.
const DefaultMaxCascade = 1000

// Phase is the resolution loop state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingSecond
	PhaseSwapping
	PhaseEvaluating
	PhaseCascading
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAwaitingSecond:
		return "AwaitingSecond"
	case PhaseSwapping:
		return "Swapping"
	case PhaseEvaluating:
		return "Evaluating"
	case PhaseCascading:
		return "Cascading"
	default:
		return "Unknown"
	}
}

// Outcome tells the caller what a Select call did.
type Outcome int

const (
	// OutcomeIgnored: nothing changed (no steps left, duplicate pick,
	// non-adjacent second pick, or a tile from another grid).
	OutcomeIgnored Outcome = iota
	// OutcomeSelected: the tile became the first of a pair.
	OutcomeSelected
	// OutcomeReverted: the swap produced no match and was undone.
	OutcomeReverted
	// OutcomeMatched: the swap produced a match, a step was spent and the
	// cascade ran to a stable board (or the cascade cap).
	OutcomeMatched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeSelected:
		return "Selected"
	case OutcomeReverted:
		return "Reverted"
	case OutcomeMatched:
		return "Matched"
	default:
		return "Unknown"
	}
}

// Batch is one removed group.
type Batch struct {
	Kind   ItemKind
	Tiles  []Pos // group order, origin first
	Points int   // Kind.Value * len(Tiles)
}

// CascadeReport lists the batches removed by one cascade, in removal order.
type CascadeReport struct {
	Batches []Batch
	Capped  bool // stopped at the cascade cap with a match still on the board
}

// Points sums the score of every batch.
func (r CascadeReport) Points() int {
	total := 0
	for _, b := range r.Batches {
		total += b.Points
	}
	return total
}

// Removed counts the tiles removed across all batches.
func (r CascadeReport) Removed() int {
	n := 0
	for _, b := range r.Batches {
		n += len(b.Tiles)
	}
	return n
}

// Result describes a Select call.
type Result struct {
	Outcome Outcome
	Move    Move // set for Reverted and Matched
	Cascade CascadeReport
}

// Config describes a new board.
type Config struct {
	Width  int
	Height int
	Steps  int
	// Layout, when set, fixes the starting kinds as rows indexed [y][x] and
	// overrides Width and Height. Zero kinds are filled from the source.
	Layout [][]ItemKind
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for debug traces and cascade warnings.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMaxCascade caps removal batches per resolution. n <= 0 removes the cap.
func WithMaxCascade(n int) Option {
	return func(b *Board) {
		b.maxCascade = n
	}
}

// Board owns a grid and runs the resolution loop over it. It is not safe for
// concurrent use; every method runs to completion before the next may start.
type Board struct {
	grid       *Grid
	src        KindSource
	hooks      Hooks
	steps      int
	sel        Selection
	phase      Phase
	logger     *log.Logger
	maxCascade int
	initial    CascadeReport
}

// NewBoard builds a grid from cfg, fills it from src and settles it so the
// player never starts with a match on the board. Removals made while
// settling reach the hooks like any other cascade.
func NewBoard(cfg Config, src KindSource, hooks Hooks, opts ...Option) (*Board, error) {
	if src == nil {
		return nil, ErrNoKindSource
	}

	var (
		grid *Grid
		err  error
	)
	if cfg.Layout != nil {
		grid, err = NewGridFromRows(cfg.Layout)
		if err == nil {
			for _, t := range grid.tiles {
				if t.kind.IsZero() {
					t.kind = src.RandomKind()
				}
			}
		}
	} else {
		grid, err = NewGrid(cfg.Width, cfg.Height, src)
	}
	if err != nil {
		return nil, err
	}

	b, err := FromGrid(grid, src, cfg.Steps, hooks, opts...)
	if err != nil {
		return nil, err
	}
	b.initial = b.Settle()
	return b, nil
}

// FromGrid wraps an existing grid without settling it.
func FromGrid(grid *Grid, src KindSource, steps int, hooks Hooks, opts ...Option) (*Board, error) {
	if grid == nil {
		return nil, ErrInvalidDimensions
	}
	if src == nil {
		return nil, ErrNoKindSource
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}

	b := &Board{
		grid:       grid,
		src:        src,
		hooks:      hooks.withDefaults(),
		steps:      steps,
		logger:     log.New(io.Discard),
		maxCascade: DefaultMaxCascade,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.hooks.Steps.SetStepsRemaining(b.steps)
	return b, nil
}

// Grid returns the board grid. Callers must treat tile kinds as read-only.
func (b *Board) Grid() *Grid { return b.grid }

// Steps returns the remaining step budget.
func (b *Board) Steps() int { return b.steps }

// Phase returns the current loop state.
func (b *Board) Phase() Phase { return b.phase }

// Selection returns the current selection.
func (b *Board) Selection() *Selection { return &b.sel }

// InitialCascade returns what NewBoard removed while settling.
func (b *Board) InitialCascade() CascadeReport { return b.initial }

// Hint returns a swap that would produce a match.
func (b *Board) Hint() (Move, bool) { return FindMove(b.grid) }

// SelectAt selects the tile at (x, y). Out-of-bounds picks are ignored.
func (b *Board) SelectAt(x, y int) Result {
	return b.Select(b.grid.At(x, y))
}

// Select adds t to the selection and resolves the swap once two adjacent
// tiles are held. Invalid picks are ignored without changing any state.
func (b *Board) Select(t *Tile) Result {
	if b.steps == 0 || t == nil || b.grid.At(t.pos.X, t.pos.Y) != t {
		return Result{Outcome: OutcomeIgnored}
	}
	if !b.sel.add(t) {
		return Result{Outcome: OutcomeIgnored}
	}
	if b.sel.Len() < 2 {
		b.phase = PhaseAwaitingSecond
		return Result{Outcome: OutcomeSelected}
	}
	return b.resolve()
}

// ClearSelection drops a pending first pick.
func (b *Board) ClearSelection() {
	if b.phase == PhaseAwaitingSecond {
		b.sel.clear()
		b.phase = PhaseIdle
	}
}

func (b *Board) resolve() Result {
	first, second := b.sel.First(), b.sel.Second()
	move := Move{A: first.pos, B: second.pos}
	defer func() {
		b.sel.clear()
		b.phase = PhaseIdle
	}()

	b.logger.Debugf("Selected tiles at %s and %s", first.pos, second.pos)

	b.phase = PhaseSwapping
	b.swap(first, second)

	b.phase = PhaseEvaluating
	if !HasAnyMatch(b.grid) {
		b.phase = PhaseSwapping
		b.swap(first, second)
		b.logger.Debug("swap reverted", "a", first.pos, "b", second.pos)
		return Result{Outcome: OutcomeReverted, Move: move}
	}

	b.steps--
	b.hooks.Steps.SetStepsRemaining(b.steps)

	report := b.cascade()
	return Result{Outcome: OutcomeMatched, Move: move, Cascade: report}
}

// swap waits for the swap animation and then exchanges the kinds.
func (b *Board) swap(x, y *Tile) {
	b.hooks.Animator.AnimateSwap(x, y).wait()
	swapKinds(x, y)
}

// Settle runs the cascade until the board holds no match.
func (b *Board) Settle() CascadeReport {
	report := b.cascade()
	b.phase = PhaseIdle
	return report
}

// cascade removes the first row-major match, refills it in place and
// rescans from the origin until a full pass finds nothing.
func (b *Board) cascade() CascadeReport {
	b.phase = PhaseCascading

	var report CascadeReport
	for {
		group := FirstMatch(b.grid)
		if group == nil {
			return report
		}
		if b.maxCascade > 0 && len(report.Batches) >= b.maxCascade {
			report.Capped = true
			b.logger.Warn("cascade cap reached, leaving match on board",
				"batches", len(report.Batches), "at", group[0].pos)
			return report
		}
		report.Batches = append(report.Batches, b.removeGroup(group))
	}
}

func (b *Board) removeGroup(group []*Tile) Batch {
	kind := group[0].kind
	batch := Batch{
		Kind:   kind,
		Tiles:  make([]Pos, len(group)),
		Points: kind.Value * len(group),
	}
	for i, t := range group {
		batch.Tiles[i] = t.pos
	}

	removed := b.hooks.Animator.AnimateRemoval(group)
	for _, t := range group {
		b.hooks.Effects.TileRemoved(t)
		b.hooks.Goals.Notify(t.kind)
	}
	b.hooks.Effects.GroupRemoved(kind, group)
	b.hooks.Score.Add(batch.Points)
	b.logger.Debug("group removed", "kind", kind.ID, "size", len(group), "points", batch.Points)
	removed.wait()

	for _, t := range group {
		t.kind = b.src.RandomKind()
	}
	b.hooks.Animator.AnimateRefill(group).wait()
	return batch
}

// Snapshot is a comparable view of the board state.
type Snapshot struct {
	Width    int
	Height   int
	Kinds    []string // row-major kind IDs
	Steps    int
	Phase    Phase
	Selected []Pos
}

// Snapshot captures the current board state.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Width:    b.grid.width,
		Height:   b.grid.height,
		Kinds:    make([]string, len(b.grid.tiles)),
		Steps:    b.steps,
		Phase:    b.phase,
		Selected: b.sel.Positions(),
	}
	for i, t := range b.grid.tiles {
		s.Kinds[i] = t.kind.ID
	}
	return s
}
