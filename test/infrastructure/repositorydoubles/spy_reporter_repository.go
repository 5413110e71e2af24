//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sync"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// SpyReporterRepository records every report and decision.
type SpyReporterRepository struct {
	mu        sync.Mutex
	Reports   []entities.Evaluation
	Decisions []entities.Outcome
	DryRuns   []bool
}

var _ repositories.ReporterRepository = (*SpyReporterRepository)(nil)

func (s *SpyReporterRepository) Report(evaluation entities.Evaluation, _ *entities.Previewer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reports = append(s.Reports, evaluation)
}

func (s *SpyReporterRepository) Decided(outcome entities.Outcome, dryRun bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Decisions = append(s.Decisions, outcome)
	s.DryRuns = append(s.DryRuns, dryRun)
}
