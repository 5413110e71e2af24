//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// SpyRemediationRepository implements repositories.RemediationRepository as a configurable spy.
type SpyRemediationRepository struct {
	IsAvailable bool
	Outcome     entities.ExitOutcome
	RunErr      error
	// OnRun simulates what the user does inside the tool.
	OnRun func(repoPath string)

	RunPaths []string
}

var _ repositories.RemediationRepository = (*SpyRemediationRepository)(nil)

// NewSpyRemediationRepository creates an available tool that exits successfully.
func NewSpyRemediationRepository() *SpyRemediationRepository {
	return &SpyRemediationRepository{
		IsAvailable: true,
		Outcome:     entities.ExitOutcome{Success: true},
	}
}

func (s *SpyRemediationRepository) Available(_ entities.RemediationTool) bool {
	return s.IsAvailable
}

func (s *SpyRemediationRepository) Run(
	_ context.Context, _ entities.RemediationTool, repoPath string,
) (entities.ExitOutcome, error) {
	s.RunPaths = append(s.RunPaths, repoPath)
	if s.OnRun != nil {
		s.OnRun(repoPath)
	}
	return s.Outcome, s.RunErr
}
