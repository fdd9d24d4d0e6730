// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                    - Play a game
//	t2048 play               - Play a game
//	t2048 scores             - Show the score history
//	t2048 scores --clear     - Delete the score history
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.t2048/config.yaml)
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.t2048/scores.db)
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 is a sliding-tile puzzle. Slide all tiles in one direction;
equal neighbours merge into their sum. Reach the 2048 tile to win.

Available commands:
  play     - Play a game (default)
  scores   - View or clear the score history

Examples:
  t2048
  t2048 --seed 42
  t2048 scores --plain
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.IntVar(&flagFPS, "fps", 30, "Tick rate (input is applied once per tick)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
