package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	m3 "github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagSimLevel   string
	flagSimMoves   int
	flagSimSave    bool
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [campaign|endless]",
	Short: "Let the hint bot play without a terminal",
	Long: `Play a game headless: every move is the first one the hint finds.
Useful to check that a level can be cleared and to compare seeds.

With --save, finished campaign levels are recorded in the database
under a fresh run ID, exactly like a played game.

Examples:
  match3 simulate
  match3 simulate --level 03-cross --seed 7 -v
  match3 simulate endless --moves 100
  match3 simulate --levels ./my-levels --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimLevel, "level", "", "Campaign level ID to start on")
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 1000, "Stop after this many moves")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record level results in the database")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Print every move")
}

// simResult sums up a headless game.
type simResult struct {
	Moves  int
	Ticks  int
	Levels []core.LevelResult
	Final  match3.Snapshot
}

// simulate plays g with the hint bot until the game is over or maxMoves
// moves were made. onMove may be nil.
func simulate(g *match3.Game, maxMoves int, onMove func(n int, mv m3.Move)) simResult {
	var res simResult
	idle := core.NewInputFrame()

	// Guards against a game that never goes idle.
	limit := (maxMoves + 1) * 10000
	for res.Ticks < limit {
		if g.Idle() {
			if res.Moves >= maxMoves {
				break
			}
			mv, ok := g.Board().Hint()
			if !ok {
				break
			}
			g.PlayMove(mv)
			res.Moves++
			if onMove != nil {
				onMove(res.Moves, mv)
			}
		}

		step := g.Step(idle)
		res.Ticks++
		if step.Level != nil {
			res.Levels = append(res.Levels, *step.Level)
		}
		if step.State.GameOver {
			break
		}
	}

	res.Final = g.Snapshot()
	return res
}

func runSimulate(_ *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	gameID, err := modeID(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mode := match3.ModeCampaign
	if gameID == match3.EndlessID {
		mode = match3.ModeEndless
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	env, cleanup, err := newEnv(logger, flagSimSave)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	opts := env.Options
	opts.Level = flagSimLevel
	game, err := match3.New(mode, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Large enough for any board; the bot never looks at the screen.
	game.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 80, TickRate: flagFPS, Seed: seed})

	runID := uuid.NewString()
	logger.Info("simulation started", "mode", gameID, "seed", seed, "run", runID)

	var onMove func(int, m3.Move)
	if flagSimVerbose {
		onMove = func(n int, mv m3.Move) {
			fmt.Printf("move %3d: %v <-> %v\n", n, mv.A, mv.B)
		}
	}
	res := simulate(game, flagSimMoves, onMove)

	for _, lvl := range res.Levels {
		status := "failed"
		if lvl.Cleared {
			status = "cleared"
		}
		fmt.Printf("level %-12s %-8s score %5d, %d steps left\n", lvl.LevelID, status, lvl.Score, lvl.StepsLeft)
		if env.Store != nil {
			saveSimLevel(env.Store, runID, lvl)
		}
	}
	if env.Store != nil && res.Final.State != match3.StatePlaying && res.Final.Score > 0 {
		if _, err := env.Store.SaveScore(gameID, res.Final.Score); err != nil {
			logger.Warn("score not saved", "err", err)
		}
	}

	fmt.Println()
	if b := game.Board(); b != nil {
		fmt.Println(b.Grid())
	}
	fmt.Printf("Seed: %d  |  Moves: %d  |  Ticks: %d\n", seed, res.Moves, res.Ticks)
	fmt.Printf("Final: %s on %s  |  Score: %d  |  Steps left: %d\n",
		res.Final.State, res.Final.Level, res.Final.Score, res.Final.Steps)
	ids := make([]string, 0, len(res.Final.Goals))
	for id := range res.Final.Goals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("  %s: %d to go\n", id, res.Final.Goals[id])
	}
}

func saveSimLevel(store *storage.Store, runID string, lvl core.LevelResult) {
	if _, err := store.SaveLevelResult(runID, lvl); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: level result not saved: %v\n", err)
	}
}
