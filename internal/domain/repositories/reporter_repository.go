package repositories

import "github.com/rios0rios0/repodrop/internal/domain/entities"

// ReporterRepository renders verdicts and decisions for the user.
type ReporterRepository interface {
	// Report prints the summary line of an evaluation followed by the capped
	// previews of its unsafe and ignored files.
	Report(evaluation entities.Evaluation, previewer *entities.Previewer)

	// Decided prints the final decision for a path.
	Decided(outcome entities.Outcome, dryRun bool)
}
