package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play a mode directly",
	Long: `Start playing without the menu. The campaign runs its levels in
order; endless is a score attack that adds item kinds as the score climbs.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Pick tile (pick a neighbour to swap)
  Mouse click  - Pick the tile under the pointer
  X            - Drop selection
  H            - Hint
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back to menu (when paused or over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer item kinds at first, more steps
  normal - Default progression
  hard   - More kinds from the start, fewer steps
  fixed  - No progression

Examples:
  match3 play
  match3 play --level 02-garden
  match3 play endless --difficulty hard
  match3 play --levels ./my-levels`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"campaign", "endless"},
	Run:       runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Campaign level ID to start on")
}

// modeID maps a mode name from the command line to its registry ID.
func modeID(name string) (string, error) {
	switch name {
	case "", "campaign", match3.CampaignID:
		return match3.CampaignID, nil
	case "endless", match3.EndlessID:
		return match3.EndlessID, nil
	}
	return "", fmt.Errorf("unknown mode %q (want campaign or endless)", name)
}

func runPlay(_ *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	gameID, err := modeID(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLevel != "" && gameID != match3.CampaignID {
		fmt.Fprintln(os.Stderr, "Error: --level only applies to the campaign")
		os.Exit(1)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	env, cleanup, err := newEnv(logger, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	opts := env.Options
	opts.Level = flagLevel
	game, err := registry.Create(gameID, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	back, err := tui.Run(game, env, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return
	}
	if back {
		menuLoop(env, cfg)
	}
}
