package game

import (
	"fmt"

	"github.com/vovakirdan/donut-dash/internal/config"
)

// RunSummary describes a run that ended in death.
type RunSummary struct {
	Score        int
	LevelReached int
	Difficulty   config.Difficulty
	Died         bool
}

// Hooks receives terminal transitions of a session. Each hook fires once
// per transition into the lost or won state. Implementations must not
// block; errors and panics are logged and otherwise ignored.
type Hooks interface {
	OnRunEnd(summary RunSummary) error
	OnWinEnd() error
}

// HookFuncs adapts plain functions to Hooks. Nil fields are skipped.
type HookFuncs struct {
	RunEnd func(RunSummary) error
	WinEnd func() error
}

func (h HookFuncs) OnRunEnd(summary RunSummary) error {
	if h.RunEnd == nil {
		return nil
	}
	return h.RunEnd(summary)
}

func (h HookFuncs) OnWinEnd() error {
	if h.WinEnd == nil {
		return nil
	}
	return h.WinEnd()
}

// MultiHooks fans each call out to every hook in order.
// The first error is returned after all hooks have run.
type MultiHooks []Hooks

func (m MultiHooks) OnRunEnd(summary RunSummary) error {
	var first error
	for _, h := range m {
		if err := safeCall(func() error { return h.OnRunEnd(summary) }); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m MultiHooks) OnWinEnd() error {
	var first error
	for _, h := range m {
		if err := safeCall(h.OnWinEnd); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// safeCall runs fn and converts a panic into an error.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("hook panic: %v", r)
		}
	}()
	return fn()
}
