// match3 is a terminal match-3 puzzle: a campaign of goal levels and an
// endless score attack, playable locally or over SSH.
//
// Usage:
//
//	match3 menu               - Pick a mode or level interactively
//	match3 play [mode]        - Play campaign (default) or endless
//	match3 levels             - List campaign levels and best results
//	match3 scores [mode]      - Show high scores
//	match3 serve              - Start SSH server for remote play
//	match3 simulate           - Let the hint bot play a level headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.arcade/match3.db)
//	--config <path>       - Custom match3.yaml
//	--levels <dir>        - Directory of level files replacing the built-in ones
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//
// Settings may also come from the environment or a .env file:
// MATCH3_DB, MATCH3_CONFIG, MATCH3_LEVELS and MATCH3_LOG_LEVEL.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - swap tiles, collect goals, chase cascades",
	Long: `Match-3 is a terminal puzzle game. Swap two neighbouring tiles to
line up three or more of a kind; matched tiles pop, new ones appear in
their place and the board keeps cascading until it settles.

Available commands:
  menu      - Interactive mode and level picker
  play      - Play campaign or endless directly
  levels    - List campaign levels
  scores    - View high scores
  serve     - Start SSH server for remote play
  simulate  - Run the hint bot on a level without a terminal

Examples:
  match3 menu
  match3 play
  match3 play endless --difficulty hard
  match3 play --level 03-cross
  match3 serve --ssh :2222
  match3 simulate --level 02-garden --seed 7`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		applyEnv(cmd)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/match3.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of campaign level files")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// applyEnv fills flags the user did not set from MATCH3_* variables.
func applyEnv(cmd *cobra.Command) {
	for flag, target := range map[string]*string{
		"db":        &flagDBPath,
		"config":    &flagConfig,
		"levels":    &flagLevelsDir,
		"log-level": &flagLogLevel,
	} {
		if cmd.Flags().Changed(flag) {
			continue
		}
		if v := os.Getenv(envName(flag)); v != "" {
			*target = v
		}
	}
}

// envName maps a flag name to its variable, "log-level" to MATCH3_LOG_LEVEL.
func envName(flag string) string {
	return "MATCH3_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
