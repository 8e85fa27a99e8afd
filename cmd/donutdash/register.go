package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Register a player name",
	Long: `Register a player on the leaderboard. Names are 2-16 letters, digits
or underscores. Registering an existing name is harmless.

Examples:
  donutdash register alice
  donutdash register alice --api http://localhost:8080`,
	Args: cobra.ExactArgs(1),
	Run:  runRegister,
}

func runRegister(_ *cobra.Command, args []string) {
	backend, closeBackend, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}
	defer closeBackend()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := backend.RegisterUser(ctx, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeBackend()
		os.Exit(1)
	}

	fmt.Printf("Registered %s (id %s)\n", u.Username, u.ID)
	if u.Runs > 0 {
		fmt.Printf("Best %d, total %d, highest level %d over %d runs\n", u.HighScore, u.TotalScore, u.HighestLevel, u.Runs)
	}
}
