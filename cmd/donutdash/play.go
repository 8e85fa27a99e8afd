package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/donut-dash/internal/core"
	"github.com/vovakirdan/donut-dash/internal/platform/tui"
)

var (
	flagUser string
	flagFPS  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Donut Dash in the terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump (one extra jump in the air)
  F/X              - Shoot
  P/Esc            - Pause
  R                - Regenerate the level
  1/E, 2/H         - Easy / Hard (also switches during a run)
  Enter            - Next level after a win, restart after game over
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

With --user, finished runs are recorded on the leaderboard.

Examples:
  donutdash play
  donutdash play --user alice
  donutdash play --config ./donutdash.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUser, "user", "", "Player name for the leaderboard")
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	view := core.DefaultViewport()
	view.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		view = view.Resize(w, h)
	}

	p := newPlayer(cfg, flagUser, logger)
	updates, stopWatch := watchConfig(logger)

	runErr := tui.Run(p.session, view, p.status, updates)
	stopWatch()
	p.finish()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
