// donutdash is a 2D arcade platformer: run, jump and shoot your way to the
// unicorn, in the terminal, in a window or over SSH.
//
// Usage:
//
//	donutdash play             - Play in the terminal
//	donutdash window           - Play in a desktop window
//	donutdash ssh              - Serve terminal play over SSH
//	donutdash serve            - Run the leaderboard HTTP API
//	donutdash scores           - Show the leaderboard
//	donutdash register <name>  - Register a player name
//	donutdash config           - Show or install game tuning
//
// Global flags:
//
//	--db <path>        - Leaderboard database (default: ~/.donutdash/donutdash.db)
//	--api <url>        - Use a remote leaderboard API instead of --db
//	--config <path>    - Game tuning YAML (hot-reloaded while playing)
//	--seed <value>     - RNG seed for reproducible levels
//	--log-file <path>  - Log file for interactive front ends
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed    int64
	flagDBPath  string
	flagAPIURL  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "donutdash",
	Short: "Unicorn Donut Dash - an arcade platformer",
	Long: `Unicorn Donut Dash is a side-scrolling arcade platformer. Collect
donuts, shoot enemies and reach the unicorn to clear each level.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  ssh       - Serve terminal play over SSH
  serve     - Run the leaderboard HTTP API
  scores    - Show the leaderboard
  register  - Register a player name
  config    - Show or install game tuning

Examples:
  donutdash play --user alice
  donutdash window --seed 42
  donutdash serve --addr :8080
  donutdash play --api http://localhost:8080 --user alice
  donutdash scores --by total_score`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.donutdash/donutdash.db", "Path to leaderboard database")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api", "", "Leaderboard API base URL (overrides --db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.donutdash/donutdash.log", "Log file for interactive front ends")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(configCmd)
}
