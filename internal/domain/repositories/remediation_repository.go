package repositories

import (
	"context"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// RemediationRepository runs the external interactive merge/commit tool. The tool is
// opaque: only its success or failure is observed.
type RemediationRepository interface {
	// Available reports whether the tool binary can be found.
	Available(tool entities.RemediationTool) bool

	// Run starts the tool on the repository and blocks until the user leaves it.
	Run(ctx context.Context, tool entities.RemediationTool, repoPath string) (entities.ExitOutcome, error)
}
