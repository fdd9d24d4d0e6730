package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best recorded games in an interactive table.

Examples:
  t2048 scores
  t2048 scores --plain --limit 5
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearScores()
		if err == nil {
			fmt.Println("Score history cleared.")
		}
	case flagPlain:
		err = printScores(store, flagLimit)
	default:
		width, height := terminalSize()
		err = tui.RunScoreboard(store, flagLimit, width, height)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top scores and totals to stdout.
func printScores(store *storage.Store, limit int) error {
	scores, err := store.TopScores(limit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-7s  %s\n", "Rank", "Score", "Max Tile", "Moves", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "--------", "-----", "-------", "----")

	for i, e := range scores {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-6d  %-7s  %s\n", i+1, e.Score, e.MaxTile, e.Moves, e.Outcome, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Wins: %d  Best tile: %d\n", stats.HighScore, stats.Games, stats.Wins, stats.BestTile)
	return nil
}
