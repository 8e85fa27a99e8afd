package api_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/donut-dash/internal/api"
	"github.com/vovakirdan/donut-dash/internal/config"
)

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)
	c := api.NewClient(ts.URL + "/")

	u, err := c.RegisterUser(ctx, "alice")
	if err != nil {
		t.Fatalf("RegisterUser() failed: %v", err)
	}
	if u.Username != "alice" || u.ID == "" {
		t.Fatalf("user = %+v", u)
	}

	u, err = c.SubmitRun(ctx, api.RunSubmission{
		Username:     "alice",
		Score:        750,
		LevelReached: 4,
		Difficulty:   config.DifficultyHard,
		Died:         true,
	})
	if err != nil {
		t.Fatalf("SubmitRun() failed: %v", err)
	}
	if u.HighScore != 750 || u.Runs != 1 || u.LastRunAt == nil {
		t.Errorf("user after run = %+v", u)
	}

	rows, err := c.Leaderboard(ctx, api.OrderTotalScore, 0)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(rows) != 1 || rows[0].TotalScore != 750 {
		t.Errorf("rows = %+v", rows)
	}
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)
	c := api.NewClient(ts.URL)

	if _, err := c.RegisterUser(ctx, "x"); !errors.Is(err, api.ErrInvalidUsername) {
		t.Errorf("bad username err = %v", err)
	}
	if _, err := c.SubmitRun(ctx, api.RunSubmission{Username: "ghost", Score: 1, LevelReached: 1}); !errors.Is(err, api.ErrUserNotFound) {
		t.Errorf("unknown user err = %v", err)
	}
	if _, err := c.RegisterUser(ctx, "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitRun(ctx, api.RunSubmission{Username: "alice", Score: api.MaxScore + 1, LevelReached: 1}); !errors.Is(err, api.ErrInvalidScore) {
		t.Errorf("bad score err = %v", err)
	}

	ts.Close()
	if _, err := c.Leaderboard(ctx, api.OrderHighScore, 5); err == nil {
		t.Error("expected an error from a closed server")
	}
}
