package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/donut-dash/internal/api"
)

type stubBoard struct {
	rows  map[api.Order][]api.LeaderboardRow
	err   error
	calls []api.Order
}

func (b *stubBoard) RegisterUser(context.Context, string) (api.User, error) {
	return api.User{}, nil
}

func (b *stubBoard) SubmitRun(context.Context, api.RunSubmission) (api.User, error) {
	return api.User{}, nil
}

func (b *stubBoard) Leaderboard(_ context.Context, by api.Order, _ int) ([]api.LeaderboardRow, error) {
	b.calls = append(b.calls, by)
	return b.rows[by], b.err
}

// runCmd executes cmd and feeds its message back into the model.
func runCmd(t *testing.T, m ScoreboardModel, cmd tea.Cmd) ScoreboardModel {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	next, _ := m.Update(cmd())
	return next.(ScoreboardModel)
}

func TestScoreboardLoadsAndCycles(t *testing.T) {
	b := &stubBoard{rows: map[api.Order][]api.LeaderboardRow{
		api.OrderHighScore:  {{Username: "amy", HighScore: 900}, {Username: "bob", HighScore: 500}},
		api.OrderTotalScore: {{Username: "bob", TotalScore: 4000}},
	}}
	m := NewScoreboardModel(b, api.OrderHighScore, 10, 100, 30)
	m = runCmd(t, m, m.Init())

	if len(m.Rows()) != 2 || m.Rows()[0].Username != "amy" {
		t.Fatalf("rows = %+v", m.Rows())
	}
	if !strings.Contains(m.View(), "amy") {
		t.Error("view does not list the loaded rows")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = runCmd(t, next.(ScoreboardModel), cmd)
	if len(m.Rows()) != 1 || m.Rows()[0].Username != "bob" {
		t.Fatalf("total ranking rows = %+v", m.Rows())
	}
	if len(b.calls) != 2 || b.calls[1] != api.OrderTotalScore {
		t.Errorf("calls = %v", b.calls)
	}
}

func TestScoreboardIgnoresStaleResults(t *testing.T) {
	m := NewScoreboardModel(&stubBoard{}, api.OrderTotalScore, 10, 100, 30)
	next, _ := m.Update(leaderboardMsg{order: api.OrderHighScore, rows: []api.LeaderboardRow{{Username: "old"}}})
	if rows := next.(ScoreboardModel).Rows(); len(rows) != 0 {
		t.Errorf("stale rows applied: %+v", rows)
	}
}

func TestScoreboardShowsErrors(t *testing.T) {
	m := NewScoreboardModel(&stubBoard{err: errors.New("connection refused")}, api.OrderHighScore, 10, 100, 30)
	m = runCmd(t, m, m.Init())
	if !strings.Contains(m.View(), "connection refused") {
		t.Error("error not shown")
	}

	m = NewScoreboardModel(nil, api.OrderHighScore, 10, 100, 30)
	m = runCmd(t, m, m.Init())
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("missing backend not reported")
	}
}
