// lightcycle is a TRON-style light cycle duel played in the terminal.
//
// Usage:
//
//	lightcycle play              - Play (menu with single/duel/demo modes)
//	lightcycle scores            - Show match history
//	lightcycle serve             - Start SSH server for remote play
//	lightcycle config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.lightcycle/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/lightcycle/internal/games/lightcycle"
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
	Use:   "lightcycle",
	Short: "Light Cycle - TRON-style duels in your terminal",
	Long: `Light Cycle is a terminal rendition of the classic light cycle duel:
ride a cycle that leaves a permanent trail, box your opponent in, and
don't crash into anything yourself.

Available commands:
  play     - Start the game (single player, local duel, or demo)
  scores   - View match history and statistics
  serve    - Start SSH server for remote play
  config   - Print the default configuration YAML

Examples:
  lightcycle play
  lightcycle play --mode duel
  lightcycle play --difficulty hard
  lightcycle scores --mode vs_cpu
  lightcycle serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lightcycle/matches.db", "Path to match history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
