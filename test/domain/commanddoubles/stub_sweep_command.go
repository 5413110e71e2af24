//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repodrop/internal/domain/commands"
	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// StubSweepCommand is a stub implementation of commands.Sweep.
type StubSweepCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Outcomes         []entities.Outcome
	LastSettings     *entities.Settings
	LastOpts         commands.SweepOptions
}

var _ commands.Sweep = (*StubSweepCommand)(nil)

func (s *StubSweepCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.SweepOptions,
) ([]entities.Outcome, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Outcomes, s.ExecuteErr
}
