//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repodrop/internal/domain/commands"
	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// StubCheckCommand is a stub implementation of commands.Check.
type StubCheckCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Evaluations      []entities.Evaluation
	LastSettings     *entities.Settings
	LastOpts         commands.CheckOptions
}

var _ commands.Check = (*StubCheckCommand)(nil)

func (s *StubCheckCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.CheckOptions,
) ([]entities.Evaluation, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Evaluations, s.ExecuteErr
}
