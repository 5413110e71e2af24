package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// Check is the interface for the check command (report only).
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) ([]entities.Evaluation, error)
}

// CheckOptions holds runtime options for a check.
type CheckOptions struct {
	Paths []string
	Seed  uint64
}

// CheckCommand evaluates repositories and reports their verdicts without prompting
// or deleting anything.
type CheckCommand struct {
	evaluator   *Evaluator
	preferences repositories.PreferenceRepository
	reporter    repositories.ReporterRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	evaluator *Evaluator,
	preferences repositories.PreferenceRepository,
	reporter repositories.ReporterRepository,
) *CheckCommand {
	return &CheckCommand{evaluator: evaluator, preferences: preferences, reporter: reporter}
}

// Execute evaluates every path concurrently and reports them in input order.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) ([]entities.Evaluation, error) {
	book, err := it.preferences.Load(settings.PreferencesFile)
	if err != nil {
		return nil, err
	}

	targets := resolveTargets(opts.Paths, settings, book)
	evaluations := it.evaluator.EvaluateAll(ctx, targets, settings.RemoteAccess(), settings.Concurrency)

	previewer := entities.NewPreviewer(settings.PreviewLimit, opts.Seed)
	clean := 0
	for _, evaluation := range evaluations {
		it.reporter.Report(evaluation, previewer)
		if evaluation.IsClean() {
			clean++
		}
	}

	logger.Infof("Check complete: %d of %d repositories are safe to delete", clean, len(evaluations))
	return evaluations, nil
}
