// journey is a terminal auto-runner: guide the hero across three levels of
// platforms, obstacles and power-ups to reach the Queen.
//
// Usage:
//
//	journey play             - Start a run
//	journey serve            - Start SSH server for remote play
//	journey scores           - Show high scores and run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 50)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.journey/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/journey-arcade/journey/internal/game/journey"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "journey",
	Short: "Journey To Joy - a terminal auto-runner",
	Long: `Journey To Joy is a side-scrolling auto-runner played in the terminal.
The hero runs on their own; you time the jumps, dodge obstacles, grab
power-ups, and find the Queen at the end of the third level.

Available commands:
  play     - Start a run
  serve    - Start SSH server for remote play
  scores   - View high scores and run history

Examples:
  journey play
  journey play --seed 42
  journey play --powerups enriched --distribution weighted
  journey serve --ssh :2222
  journey scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.journey/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
