// Package api is the Donut Dash leaderboard: shared request and response
// types, the JSON HTTP server, an HTTP client and the run reporter that
// feeds finished runs from a game session into a backend.
package api

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/vovakirdan/donut-dash/internal/config"
)

// Validation limits for submitted runs.
const (
	MaxScore        = 10_000_000
	MaxLevel        = 9999
	DefaultLimit    = 10
	MaxLimit        = 50
	usernamePattern = `^\w{2,16}$`
)

var (
	ErrInvalidUsername = errors.New("invalid username: use 2-16 letters, digits or underscores")
	ErrInvalidScore    = errors.New("invalid score")
	ErrInvalidLevel    = errors.New("invalid level")
	ErrUserNotFound    = errors.New("user not found")
)

var usernameRe = regexp.MustCompile(usernamePattern)

// User is a registered player with aggregate run statistics.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	TotalScore   int64      `json:"total_score"`
	HighScore    int        `json:"high_score"`
	HighestLevel int        `json:"highest_level"`
	Runs         int        `json:"runs"`
	LastRunAt    *time.Time `json:"last_run_at"`
}

// RunSubmission is one finished run as reported by a client.
type RunSubmission struct {
	Username     string            `json:"username"`
	Score        int               `json:"score"`
	LevelReached int               `json:"levelReached"`
	Difficulty   config.Difficulty `json:"difficulty"`
	Died         bool              `json:"died"`
}

// LeaderboardRow is one ranked user.
type LeaderboardRow struct {
	Username     string `json:"username"`
	HighScore    int    `json:"high_score"`
	TotalScore   int64  `json:"total_score"`
	HighestLevel int    `json:"highest_level"`
	Runs         int    `json:"runs"`
}

// Order selects the leaderboard ranking column.
type Order string

const (
	OrderHighScore  Order = "high_score"
	OrderTotalScore Order = "total_score"
)

// ParseOrder maps anything other than total_score to high_score.
func ParseOrder(s string) Order {
	if Order(s) == OrderTotalScore {
		return OrderTotalScore
	}
	return OrderHighScore
}

// ClampLimit maps a requested row count into [1, MaxLimit]; zero means
// DefaultLimit.
func ClampLimit(n int) int {
	if n == 0 {
		return DefaultLimit
	}
	return max(1, min(MaxLimit, n))
}

// CleanUsername trims name and checks it against the username rules.
func CleanUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	if !usernameRe.MatchString(name) {
		return "", ErrInvalidUsername
	}
	return name, nil
}

// Normalize validates a submission and returns its canonical form.
// Any difficulty other than hard is recorded as easy.
func (r RunSubmission) Normalize() (RunSubmission, error) {
	name, err := CleanUsername(r.Username)
	if err != nil {
		return r, err
	}
	if r.Score < 0 || r.Score > MaxScore {
		return r, ErrInvalidScore
	}
	if r.LevelReached < 1 || r.LevelReached > MaxLevel {
		return r, ErrInvalidLevel
	}
	r.Username = name
	if r.Difficulty != config.DifficultyHard {
		r.Difficulty = config.DifficultyEasy
	}
	return r, nil
}

// Backend is the leaderboard contract shared by the sqlite store and the
// HTTP client.
type Backend interface {
	RegisterUser(ctx context.Context, username string) (User, error)
	SubmitRun(ctx context.Context, run RunSubmission) (User, error)
	Leaderboard(ctx context.Context, by Order, limit int) ([]LeaderboardRow, error)
}
