package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/donut-dash/internal/api"
	"github.com/vovakirdan/donut-dash/internal/config"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs migrations again without error.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	u, err := store.RegisterUser(ctx, "  donut_fan ")
	if err != nil {
		t.Fatalf("RegisterUser() failed: %v", err)
	}
	if u.Username != "donut_fan" || u.ID == "" {
		t.Fatalf("user = %+v", u)
	}
	if u.Runs != 0 || u.HighestLevel != 1 || u.LastRunAt != nil {
		t.Errorf("fresh user aggregates = %+v", u)
	}

	again, err := store.RegisterUser(ctx, "donut_fan")
	if err != nil {
		t.Fatalf("second RegisterUser() failed: %v", err)
	}
	if again.ID != u.ID {
		t.Errorf("re-register changed id: %s -> %s", u.ID, again.ID)
	}
}

func TestRegisterUserRejectsBadNames(t *testing.T) {
	store := openTestStore(t)
	for _, name := range []string{"", "a", "this_name_is_too_long", "bad name", "dash-ed"} {
		if _, err := store.RegisterUser(context.Background(), name); !errors.Is(err, api.ErrInvalidUsername) {
			t.Errorf("RegisterUser(%q) err = %v, want ErrInvalidUsername", name, err)
		}
	}
}

func TestSubmitRunAggregates(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	if _, err := store.RegisterUser(ctx, "alice"); err != nil {
		t.Fatal(err)
	}

	runs := []api.RunSubmission{
		{Username: "alice", Score: 300, LevelReached: 2, Difficulty: "easy", Died: true},
		{Username: "alice", Score: 1200, LevelReached: 5, Difficulty: "hard", Died: true},
		{Username: "alice", Score: 100, LevelReached: 3, Difficulty: "nightmare", Died: false},
	}
	var u api.User
	for _, r := range runs {
		var err error
		if u, err = store.SubmitRun(ctx, r); err != nil {
			t.Fatalf("SubmitRun(%+v) failed: %v", r, err)
		}
	}

	if u.TotalScore != 1600 {
		t.Errorf("TotalScore = %d, want 1600", u.TotalScore)
	}
	if u.HighScore != 1200 {
		t.Errorf("HighScore = %d, want 1200", u.HighScore)
	}
	if u.HighestLevel != 5 {
		t.Errorf("HighestLevel = %d, want 5", u.HighestLevel)
	}
	if u.Runs != 3 {
		t.Errorf("Runs = %d, want 3", u.Runs)
	}
	if u.LastRunAt == nil {
		t.Error("LastRunAt not set")
	}

	stored, err := store.RecentRuns(ctx, "alice", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("RecentRuns() = %d runs, want 3", len(stored))
	}
	if stored[0].Score != 100 || stored[0].Difficulty != string(config.DifficultyEasy) || stored[0].Died {
		t.Errorf("newest run = %+v", stored[0])
	}
	if stored[1].Difficulty != string(config.DifficultyHard) {
		t.Errorf("hard run stored as %q", stored[1].Difficulty)
	}
}

func TestSubmitRunErrors(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	if _, err := store.RegisterUser(ctx, "bob"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		run  api.RunSubmission
		want error
	}{
		{"unknown user", api.RunSubmission{Username: "carol", Score: 1, LevelReached: 1}, ErrUserNotFound},
		{"bad username", api.RunSubmission{Username: "b", Score: 1, LevelReached: 1}, api.ErrInvalidUsername},
		{"negative score", api.RunSubmission{Username: "bob", Score: -1, LevelReached: 1}, api.ErrInvalidScore},
		{"score too high", api.RunSubmission{Username: "bob", Score: api.MaxScore + 1, LevelReached: 1}, api.ErrInvalidScore},
		{"level zero", api.RunSubmission{Username: "bob", Score: 1, LevelReached: 0}, api.ErrInvalidLevel},
		{"level too high", api.RunSubmission{Username: "bob", Score: 1, LevelReached: api.MaxLevel + 1}, api.ErrInvalidLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SubmitRun(ctx, tt.run); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	u, err := store.User(ctx, "bob")
	if err != nil {
		t.Fatalf("User() failed: %v", err)
	}
	if u.Runs != 0 {
		t.Errorf("rejected runs were counted: Runs = %d", u.Runs)
	}
	if _, err := store.User(ctx, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("User(nobody) err = %v, want ErrUserNotFound", err)
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	submit := func(name string, scores ...int) {
		t.Helper()
		if _, err := store.RegisterUser(ctx, name); err != nil {
			t.Fatal(err)
		}
		for _, s := range scores {
			if _, err := store.SubmitRun(ctx, api.RunSubmission{Username: name, Score: s, LevelReached: 1}); err != nil {
				t.Fatal(err)
			}
		}
	}
	submit("zed", 500)
	submit("amy", 500)
	submit("max", 300, 300, 300)

	high, err := store.Leaderboard(ctx, api.OrderHighScore, 10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	wantHigh := []string{"amy", "zed", "max"}
	for i, name := range wantHigh {
		if high[i].Username != name {
			t.Fatalf("high_score order = %v, want %v", usernames(high), wantHigh)
		}
	}

	total, err := store.Leaderboard(ctx, api.OrderTotalScore, 10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if total[0].Username != "max" || total[0].TotalScore != 900 || total[0].Runs != 3 {
		t.Errorf("total_score leader = %+v", total[0])
	}

	unknown, err := store.Leaderboard(ctx, api.Order("bogus"), 10)
	if err != nil {
		t.Fatal(err)
	}
	if unknown[0].Username != "amy" {
		t.Errorf("unknown order should rank by high_score, got %v", usernames(unknown))
	}

	limited, err := store.Leaderboard(ctx, api.OrderHighScore, -5)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("negative limit returned %d rows, want 1", len(limited))
	}
}

func usernames(rows []api.LeaderboardRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Username
	}
	return out
}
