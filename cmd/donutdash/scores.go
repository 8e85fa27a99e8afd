package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/donut-dash/internal/api"
	"github.com/vovakirdan/donut-dash/internal/platform/tui"
)

var (
	flagBy    string
	flagLimit int
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the leaderboard from the local database or, with --api,
from a leaderboard server. Opens an interactive table in a terminal;
use --plain (or pipe the output) for a text listing.

Examples:
  donutdash scores
  donutdash scores --by total_score --limit 25
  donutdash scores --api http://localhost:8080 --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagBy, "by", string(api.OrderHighScore), "Ranking: high_score or total_score")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", api.DefaultLimit, "Number of players to show (1-50)")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
}

func runScores(_ *cobra.Command, _ []string) {
	backend, closeBackend, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}
	defer closeBackend()

	by := api.ParseOrder(flagBy)
	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(backend, by, flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	rows, err := backend.Leaderboard(ctx, by, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving leaderboard: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Leaderboard - by %s\n", by)
	fmt.Println()

	if len(rows) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'donutdash play --user <name>' to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %-12s  %-5s  %s\n", "Rank", "Player", "Best", "Total", "Level", "Runs")
	fmt.Printf("  %-4s  %-16s  %-10s  %-12s  %-5s  %s\n", "----", "------", "----", "-----", "-----", "----")
	for i, r := range rows {
		fmt.Printf("  %-4d  %-16s  %-10d  %-12d  %-5d  %d\n", i+1, r.Username, r.HighScore, r.TotalScore, r.HighestLevel, r.Runs)
	}
}
