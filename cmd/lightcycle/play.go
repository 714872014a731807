package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/games/lightcycle"
	"github.com/vovakirdan/lightcycle/internal/multiplayer"
	"github.com/vovakirdan/lightcycle/internal/platform/tui"
	"github.com/vovakirdan/lightcycle/internal/registry"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a light cycle match",
	Long: `Start the game. Without --mode the in-game menu lets you pick a mode
with the 1/2/3 keys and cycle AI difficulty with D.

Controls:
  Player 1:  W/A/S/D to steer, shifted (uppercase) to steer and boost
  Player 2:  Arrow keys to steer, Shift+arrow to steer and boost
  P          - Pause / resume
  R          - Rematch (after game over)
  Esc        - Back to menu
  Q/Ctrl+C   - Quit

Examples:
  lightcycle play
  lightcycle play --mode single --difficulty hard
  lightcycle play --mode duel
  lightcycle play --mode demo --seed 42
  lightcycle play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "AI difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Skip the menu: single, duel, demo")
}

func runPlay(cmd *cobra.Command, args []string) {
	switch flagMode {
	case "", "single", "duel", "demo":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want single, duel, or demo)\n", flagMode)
		os.Exit(1)
	}
	switch flagDifficulty {
	case "", "easy", "medium", "hard":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, medium, or hard)\n", flagDifficulty)
		os.Exit(1)
	}

	// Get terminal size for the arena fit
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
	lightcycle.SetConfigPath(flagConfig)
	lightcycle.SetDifficultyPreset(flagDifficulty)
	lightcycle.SetStartMode(flagMode)

	game, err := registry.Create("lightcycle")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open match history storage
	var saver multiplayer.MatchResultSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
	} else {
		saver = store
	}

	runErr := tui.Run(game, saver, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
