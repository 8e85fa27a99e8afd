// Command donutdash-web is the browser build of Unicorn Donut Dash.
//
//	GOOS=js GOARCH=wasm go build -o donutdash.wasm ./cmd/donutdash-web
//
// Set apiURL and player at link time to report runs to a leaderboard
// server:
//
//	-ldflags "-X main.apiURL=https://scores.example -X main.player=alice"
package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/donut-dash/internal/api"
	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/game"
	"github.com/vovakirdan/donut-dash/internal/platform/window"
)

var (
	apiURL string
	player string
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "donutdash-web"})

	opts := []game.Option{
		game.WithSeed(time.Now().UnixNano()),
		game.WithLogger(logger),
	}
	if apiURL != "" && player != "" {
		if reporter := newReporter(logger); reporter != nil {
			opts = append(opts, game.WithHooks(reporter))
		}
	}

	session := game.NewSession(config.DefaultGameConfig(), opts...)
	if err := window.Run(window.NewGame(session, nil, logger), "Unicorn Donut Dash"); err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}

func newReporter(logger *log.Logger) *api.Reporter {
	client := api.NewClient(apiURL)
	ctx, cancel := context.WithTimeout(context.Background(), api.DefaultReportTimeout)
	defer cancel()
	if _, err := client.RegisterUser(ctx, player); err != nil {
		logger.Warn("leaderboard unavailable, playing offline", "err", err)
		return nil
	}
	return api.NewReporter(client, player, logger)
}
