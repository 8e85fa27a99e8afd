package api

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/donut-dash/internal/game"
)

// DefaultReportTimeout bounds a single run submission.
const DefaultReportTimeout = 5 * time.Second

// Reporter is a game.Hooks that submits finished runs to a Backend.
// Submissions run in the background so the frame loop never waits on the
// network or the database.
type Reporter struct {
	backend  Backend
	username string
	timeout  time.Duration
	logger   *log.Logger

	wg   sync.WaitGroup
	mu   sync.Mutex
	last *User
}

var _ game.Hooks = (*Reporter)(nil)

// NewReporter creates a reporter submitting as username.
func NewReporter(backend Backend, username string, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{
		backend:  backend,
		username: username,
		timeout:  DefaultReportTimeout,
		logger:   logger,
	}
}

// OnRunEnd submits the run without blocking the caller.
func (r *Reporter) OnRunEnd(s game.RunSummary) error {
	run := RunSubmission{
		Username:     r.username,
		Score:        s.Score,
		LevelReached: s.LevelReached,
		Difficulty:   s.Difficulty,
		Died:         s.Died,
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		u, err := r.backend.SubmitRun(ctx, run)
		if err != nil {
			r.logger.Warn("run submission failed", "username", run.Username, "score", run.Score, "err", err)
			return
		}
		r.logger.Info("run submitted", "username", u.Username, "score", run.Score, "highScore", u.HighScore)

		r.mu.Lock()
		r.last = &u
		r.mu.Unlock()
	}()
	return nil
}

// OnWinEnd does nothing; only finished runs are reported.
func (r *Reporter) OnWinEnd() error { return nil }

// Wait blocks until every pending submission has finished.
func (r *Reporter) Wait() {
	r.wg.Wait()
}

// Last returns the user aggregates from the latest successful submission.
func (r *Reporter) Last() (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return User{}, false
	}
	return *r.last, true
}
