// Package mocks provides shared test doubles for zcalibrate packages.
package mocks

import (
	"context"
	"sync"

	"github.com/AndreyAkinshin/zcalibrate/internal/stage"
)

// StageRunner implements pipeline.StageRunner for testing.
// Every call is recorded; exit codes are chosen per stage.
// Use NewStageRunner() to create instances with a fluent builder API.
type StageRunner struct {
	exitCodes map[stage.Name]int

	// RunFunc, when set, replaces the exit-code lookup entirely.
	RunFunc func(ctx context.Context, cmd stage.Command, opts stage.RunOptions) stage.Result

	mu    sync.Mutex
	calls []stage.Command
	opts  []stage.RunOptions
}

// NewStageRunner creates a runner whose stages all exit with status zero.
func NewStageRunner() *StageRunner {
	return &StageRunner{exitCodes: make(map[stage.Name]int)}
}

// WithExitCode makes every invocation of the named stage exit with code.
func (m *StageRunner) WithExitCode(name stage.Name, code int) *StageRunner {
	m.exitCodes[name] = code
	return m
}

// Run records cmd and returns the configured result.
func (m *StageRunner) Run(ctx context.Context, cmd stage.Command, opts stage.RunOptions) stage.Result {
	m.mu.Lock()
	m.calls = append(m.calls, cmd)
	m.opts = append(m.opts, opts)
	code := m.exitCodes[cmd.Stage]
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, cmd, opts)
	}
	return stage.Result{
		Stage:       cmd.Stage,
		Description: cmd.String(),
		ExitCode:    code,
	}
}

// Calls returns a copy of the recorded commands in call order.
func (m *StageRunner) Calls() []stage.Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]stage.Command, len(m.calls))
	copy(out, m.calls)
	return out
}

// StageOrder returns the stage names of the recorded calls.
func (m *StageRunner) StageOrder() []stage.Name {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]stage.Name, len(m.calls))
	for i, c := range m.calls {
		names[i] = c.Stage
	}
	return names
}

// Options returns the RunOptions passed with each recorded call.
func (m *StageRunner) Options() []stage.RunOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]stage.RunOptions, len(m.opts))
	copy(out, m.opts)
	return out
}
