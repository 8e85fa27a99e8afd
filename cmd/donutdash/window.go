package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/donut-dash/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Donut Dash in a desktop window. Uses the same controls as
'donutdash play'; F11 toggles fullscreen.

Examples:
  donutdash window
  donutdash window --user alice --seed 42`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagUser, "user", "", "Player name for the leaderboard")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	p := newPlayer(cfg, flagUser, logger)
	updates, stopWatch := watchConfig(logger)

	runErr := window.Run(window.NewGame(p.session, updates, logger), "Unicorn Donut Dash")
	stopWatch()
	p.finish()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
