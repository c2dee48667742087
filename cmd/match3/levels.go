package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [id]",
	Short: "List campaign levels",
	Long: `Shows the campaign levels in play order with their size, step
budget and goals, plus your best result when a scores database exists.
With a level ID, shows that level's items and starting layout.

Examples:
  match3 levels
  match3 levels 03-cross
  match3 levels --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		lvl, err := levelLoader().LoadByID(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'match3 levels' to see available levels.")
			os.Exit(1)
		}
		showLevel(os.Stdout, lvl)
		return
	}

	lvls, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	var best map[string]storage.LevelBest
	if store, err := storage.Open(flagDBPath); err == nil {
		best, err = store.BestLevelResults()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read level results: %v\n", err)
		}
		store.Close()
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-12s  %-5s  %-5s  %-24s  %s\n", maxIDLen, "ID", "Name", "Size", "Steps", "Goals", "Best")
	fmt.Printf("  %-*s  %-12s  %-5s  %-5s  %-24s  %s\n", maxIDLen, "--", "----", "----", "-----", "-----", "----")

	for _, l := range lvls {
		fmt.Printf("  %-*s  %-12s  %-5s  %-5d  %-24s  %s\n",
			maxIDLen, l.ID, l.Name, fmt.Sprintf("%dx%d", l.Width, l.Height), l.Steps,
			formatGoals(l.Goals), formatBest(best[l.ID]))
	}

	fmt.Println()
	fmt.Println("Run 'match3 play --level <id>' to start on a level.")
}

// showLevel prints one level; '.' marks a tile filled at random.
func showLevel(w io.Writer, lvl levels.Level) {
	fmt.Fprintf(w, "%s (%s)\n", lvl.Name, lvl.ID)
	fmt.Fprintf(w, "  Size:  %dx%d\n", lvl.Width, lvl.Height)
	fmt.Fprintf(w, "  Steps: %d\n", lvl.Steps)
	fmt.Fprintf(w, "  Goals: %s\n", formatGoals(lvl.Goals))
	items := "all"
	if len(lvl.Items) > 0 {
		items = strings.Join(lvl.Items, ", ")
	}
	fmt.Fprintf(w, "  Items: %s\n", items)

	if lvl.Layout == nil {
		return
	}
	fmt.Fprintln(w, "  Layout:")
	for _, row := range lvl.Layout {
		cells := make([]string, len(row))
		for x, id := range row {
			cells[x] = "."
			if id != "" {
				cells[x] = id[:1]
			}
		}
		fmt.Fprintf(w, "    %s\n", strings.Join(cells, " "))
	}
}

func formatGoals(goals []levels.Goal) string {
	parts := make([]string, 0, len(goals))
	for _, g := range goals {
		parts = append(parts, fmt.Sprintf("%d %s", g.Count, g.Item))
	}
	return strings.Join(parts, ", ")
}

func formatBest(b storage.LevelBest) string {
	switch {
	case b.Attempts == 0:
		return "-"
	case b.Clears == 0:
		return fmt.Sprintf("not cleared (%d tries)", b.Attempts)
	}
	return fmt.Sprintf("%d pts, %d steps left", b.BestScore, b.MostStepsLeft)
}
