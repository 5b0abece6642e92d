package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/journey-arcade/journey/internal/core"
	"github.com/journey-arcade/journey/internal/game/journey"
	"github.com/journey-arcade/journey/internal/platform/tui"
	"github.com/journey-arcade/journey/internal/registry"
	"github.com/journey-arcade/journey/internal/storage"
)

var (
	flagConfig       string
	flagPowerUps     string
	flagDistribution string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run through the three levels.

Controls:
  Space/Up/W - Jump (press again mid-air for a double jump)
  P/Esc      - Pause
  R          - Restart (after the run ends)
  Q/Ctrl+C   - Quit

Power-up options:
  --powerups baseline|enriched    - How many pickups each level gets
  --distribution uniform|weighted - How pickup kinds are drawn

Examples:
  journey play
  journey play --seed 42
  journey play --powerups enriched
  journey play --distribution weighted
  journey play --config ./my-journey.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPowerUps, "powerups", "", "Power-up density: baseline or enriched")
	playCmd.Flags().StringVar(&flagDistribution, "distribution", "", "Power-up kind distribution: uniform or weighted")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	journey.SetConfigPath(flagConfig)
	journey.SetPowerUpPolicy(flagPowerUps, flagDistribution)

	game, err := registry.Create("journey")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
