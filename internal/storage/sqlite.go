// Package storage provides SQLite-based persistence for the leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/donut-dash/internal/api"
)

// ErrUserNotFound is returned when a run names an unregistered user.
var ErrUserNotFound = api.ErrUserNotFound

// Store manages the SQLite database connection for users and runs.
type Store struct {
	db *sql.DB
}

// Run is a single stored run.
type Run struct {
	ID           string
	UserID       string
	Score        int
	LevelReached int
	Difficulty   string
	Died         bool
	CreatedAt    time.Time
}

var _ api.Backend = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; SSH sessions and the API share the handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			total_score INTEGER NOT NULL DEFAULT 0,
			high_score INTEGER NOT NULL DEFAULT 0,
			highest_level INTEGER NOT NULL DEFAULT 1,
			runs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_run_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_users_high ON users(high_score DESC, username);
		CREATE INDEX IF NOT EXISTS idx_users_total ON users(total_score DESC, username);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			score INTEGER NOT NULL,
			level_reached INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			died INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_user ON runs(user_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const userColumns = `id, username, total_score, high_score, highest_level, runs, last_run_at`

// RegisterUser creates the user or touches an existing one.
func (s *Store) RegisterUser(ctx context.Context, username string) (api.User, error) {
	name, err := api.CleanUsername(username)
	if err != nil {
		return api.User{}, err
	}

	row := s.db.QueryRowContext(ctx,
		`INSERT INTO users (id, username) VALUES (?, ?)
		 ON CONFLICT (username) DO UPDATE SET updated_at = CURRENT_TIMESTAMP
		 RETURNING `+userColumns,
		uuid.NewString(), name,
	)
	u, err := scanUser(row)
	if err != nil {
		return api.User{}, fmt.Errorf("storage: cannot register user: %w", err)
	}
	return u, nil
}

// User looks up a registered user by name.
func (s *Store) User(ctx context.Context, username string) (api.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`,
		username,
	)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return api.User{}, ErrUserNotFound
	}
	if err != nil {
		return api.User{}, fmt.Errorf("storage: cannot query user: %w", err)
	}
	return u, nil
}

// SubmitRun records a run and folds it into the user's aggregates.
func (s *Store) SubmitRun(ctx context.Context, run api.RunSubmission) (api.User, error) {
	run, err := run.Normalize()
	if err != nil {
		return api.User{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return api.User{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	var userID string
	err = tx.QueryRowContext(ctx, "SELECT id FROM users WHERE username = ?", run.Username).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return api.User{}, ErrUserNotFound
	}
	if err != nil {
		return api.User{}, fmt.Errorf("storage: cannot query user: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, user_id, score, level_reached, difficulty, died)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, run.Score, run.LevelReached, string(run.Difficulty), run.Died,
	)
	if err != nil {
		return api.User{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	row := tx.QueryRowContext(ctx,
		`UPDATE users
		    SET total_score = total_score + ?,
		        high_score = max(high_score, ?),
		        highest_level = max(highest_level, ?),
		        runs = runs + 1,
		        updated_at = CURRENT_TIMESTAMP,
		        last_run_at = CURRENT_TIMESTAMP
		  WHERE id = ?
		  RETURNING `+userColumns,
		run.Score, run.Score, run.LevelReached, userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return api.User{}, fmt.Errorf("storage: cannot update user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return api.User{}, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return u, nil
}

// Leaderboard ranks users by the given column, ties broken by username.
func (s *Store) Leaderboard(ctx context.Context, by api.Order, limit int) ([]api.LeaderboardRow, error) {
	by = api.ParseOrder(string(by))
	limit = api.ClampLimit(limit)

	// by is one of two fixed column names at this point.
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, high_score, total_score, highest_level, runs
		 FROM users
		 ORDER BY `+string(by)+` DESC, username ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var out []api.LeaderboardRow
	for rows.Next() {
		var r api.LeaderboardRow
		if err := rows.Scan(&r.Username, &r.HighScore, &r.TotalScore, &r.HighestLevel, &r.Runs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// RecentRuns returns a user's latest runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, username string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.user_id, r.score, r.level_reached, r.difficulty, r.died, r.created_at
		 FROM runs r JOIN users u ON u.id = r.user_id
		 WHERE u.username = ?
		 ORDER BY r.created_at DESC, r.rowid DESC
		 LIMIT ?`,
		username, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.UserID, &r.Score, &r.LevelReached, &r.Difficulty, &r.Died, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

func scanUser(row *sql.Row) (api.User, error) {
	var u api.User
	var lastRun any
	if err := row.Scan(&u.ID, &u.Username, &u.TotalScore, &u.HighScore, &u.HighestLevel, &u.Runs, &lastRun); err != nil {
		return api.User{}, err
	}
	if t := parseTime(lastRun); !t.IsZero() {
		u.LastRunAt = &t
	}
	return u, nil
}

// parseTime handles the driver returning DATETIME columns either as
// time.Time or as SQLite's text form.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(time.DateTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
