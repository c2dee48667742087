package match3

import m3 "github.com/vovakirdan/tui-match3/internal/match3"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateAnimating    GameStateType = "animating"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick  uint64
	Mode  string // "campaign" or "endless"
	Level string // level ID, "endless" in endless mode
	Score int
	Steps int
	Board m3.Snapshot
	Goals map[string]int // remaining count per item ID
	State GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.play.active():
		state = StateAnimating
	}

	s := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Level: g.levelName(),
		Score: g.score.Total(),
		Goals: make(map[string]int),
		State: state,
	}
	if g.board != nil {
		s.Steps = g.board.Steps()
		s.Board = g.board.Snapshot()
	}
	if g.goals != nil {
		for _, e := range g.goals.Entries() {
			s.Goals[e.Kind.ID] = e.Remaining
		}
	}
	return s
}
