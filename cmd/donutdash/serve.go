package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/donut-dash/internal/api"
	"github.com/vovakirdan/donut-dash/internal/storage"
)

var flagHTTPAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the leaderboard HTTP API",
	Long: `Serve the leaderboard JSON API backed by the --db database.

Endpoints:
  POST /api/register      {"username"}
  POST /api/submit-run    {"username","score","levelReached","difficulty","died"}
  GET  /api/leaderboard   ?by=high_score|total_score&limit=1..50

Examples:
  donutdash serve
  donutdash serve --addr :9090 --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHTTPAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := serverLogger("donutdash-api")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.NewServer(store, logger).ListenAndServe(ctx, flagHTTPAddr); err != nil {
		logger.Error("server error", "err", err)
		store.Close()
		os.Exit(1)
	}
}
