package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/donut-dash/internal/api"
	"github.com/vovakirdan/donut-dash/internal/config"
	"github.com/vovakirdan/donut-dash/internal/game"
	"github.com/vovakirdan/donut-dash/internal/storage"
)

// fileLogger opens the interactive log file. Terminal front ends own the
// screen, so nothing may be written to stderr while they run.
func fileLogger() (*log.Logger, func()) {
	path := config.ExpandHome(flagLogFile)
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(path), 0o755)

	var out io.Writer = io.Discard
	closeFn := func() {}
	if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "donutdash",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// serverLogger logs to stderr with timestamps.
func serverLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadGameConfig resolves tuning through the config search path.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}

// openBackend returns the leaderboard backend selected by --api / --db.
func openBackend() (api.Backend, func(), error) {
	if flagAPIURL != "" {
		return api.NewClient(flagAPIURL), func() {}, nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, func() {}, err
	}
	return store, func() { store.Close() }, nil
}

// watchConfig hot-reloads --config when set. The returned channel is nil
// when there is nothing to watch.
func watchConfig(logger *log.Logger) (<-chan config.GameConfig, func()) {
	if flagConfig == "" {
		return nil, func() {}
	}
	w, err := config.NewWatcher(config.ExpandHome(flagConfig))
	if err != nil {
		logger.Warn("config hot reload disabled", "path", flagConfig, "err", err)
		return nil, func() {}
	}
	go func() {
		for err := range w.Errors {
			logger.Warn("config reload failed", "path", w.Path(), "err", err)
		}
	}()
	logger.Info("watching config", "path", w.Path())
	return w.Updates, func() { w.Close() }
}

// player bundles a session with its optional run reporter.
type player struct {
	session  *game.Session
	reporter *api.Reporter
	status   string
	cleanup  func()
}

// newPlayer builds a session for username. Reporting is skipped with a
// warning when no name is given or the backend is unavailable.
func newPlayer(cfg config.GameConfig, username string, logger *log.Logger) *player {
	p := &player{status: "offline", cleanup: func() {}}
	opts := []game.Option{game.WithLogger(logger), game.WithSeed(flagSeed)}

	if username != "" {
		backend, closeFn, err := openBackend()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: leaderboard unavailable, runs will not be recorded: %v\n", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			u, regErr := backend.RegisterUser(ctx, username)
			cancel()
			if regErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: cannot register %q, runs will not be recorded: %v\n", username, regErr)
				closeFn()
			} else {
				p.reporter = api.NewReporter(backend, u.Username, logger)
				p.status = "player " + u.Username
				p.cleanup = closeFn
				opts = append(opts, game.WithHooks(p.reporter))
			}
		}
	}

	p.session = game.NewSession(cfg, opts...)
	return p
}

// finish waits for pending submissions and prints the latest aggregates.
func (p *player) finish() {
	if p.reporter != nil {
		p.reporter.Wait()
		if u, ok := p.reporter.Last(); ok {
			fmt.Printf("%s: best %d, total %d, highest level %d, %d runs\n",
				u.Username, u.HighScore, u.TotalScore, u.HighestLevel, u.Runs)
		}
	}
	p.cleanup()
}
