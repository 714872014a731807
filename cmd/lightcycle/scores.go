package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightcycle/internal/platform/tui"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show match history",
	Long: `Display recent matches and per-mode statistics.

Examples:
  lightcycle scores
  lightcycle scores --mode vs_cpu
  lightcycle scores --mode local_duel --limit 25
  lightcycle scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Filter by mode: vs_cpu, local_duel, demo")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of matches to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive match history screen")
}

func runScores(cmd *cobra.Command, args []string) {
	switch flagScoresMode {
	case "", "vs_cpu", "local_duel", "demo":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want vs_cpu, local_duel, or demo)\n", flagScoresMode)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, tuiErr := tui.RunScoreboard(store, width, height); tuiErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", tuiErr)
			os.Exit(1)
		}
		return
	}

	var matches []storage.MatchRecord
	if flagScoresMode == "" {
		matches, err = store.RecentMatches(flagScoresLimit)
	} else {
		matches, err = store.MatchesByMode(flagScoresMode, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lightcycle play' to record the first match!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %-10s  %-8s  %s\n", "#", "Mode", "Winner", "Difficulty", "Ticks", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %-10s  %-8s  %s\n", "----", "----", "------", "----------", "-----", "----")

	for i, rec := range matches {
		winner := rec.Winner
		if rec.Draw {
			winner = "draw"
		}
		difficulty := rec.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-10s  %-10s  %-8d  %s\n",
			i+1, rec.Mode, winner, difficulty, rec.DurationTick, dateStr)
	}

	printStats(store)
}

// printStats shows the aggregate win/loss record per mode.
func printStats(store *storage.Store) {
	stats, err := store.AllStats()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Statistics")
	for mode, s := range stats {
		if flagScoresMode != "" && mode != flagScoresMode {
			continue
		}
		fmt.Printf("  %-12s  %d matches, P1 %d - %d P2, %d draws, longest %d ticks\n",
			mode, s.Matches, s.Player1Wins, s.Player2Wins, s.Draws, s.LongestTick)
	}
}
