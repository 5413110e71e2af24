package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// Sweep is the interface for the sweep command.
type Sweep interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SweepOptions) ([]entities.Outcome, error)
}

// SweepOptions holds runtime options for a single sweep.
type SweepOptions struct {
	Paths []string
	// Batch selects evaluate-then-batch-confirm: no remediation, one multi-select
	// over the clean repositories. Otherwise every repository converges one at a time.
	Batch  bool
	DryRun bool
	Seed   uint64
}

// SweepCommand evaluates every repository concurrently, then serializes the
// destructive decisions. It emits exactly one outcome per evaluated path.
type SweepCommand struct {
	evaluator   *Evaluator
	convergence *Convergence
	remediation repositories.RemediationRepository
	preferences repositories.PreferenceRepository
	prompter    repositories.PrompterRepository
	trash       repositories.TrashRepository
	reporter    repositories.ReporterRepository
}

// NewSweepCommand creates a new SweepCommand.
func NewSweepCommand(
	evaluator *Evaluator,
	convergence *Convergence,
	remediation repositories.RemediationRepository,
	preferences repositories.PreferenceRepository,
	prompter repositories.PrompterRepository,
	trash repositories.TrashRepository,
	reporter repositories.ReporterRepository,
) *SweepCommand {
	return &SweepCommand{
		evaluator:   evaluator,
		convergence: convergence,
		remediation: remediation,
		preferences: preferences,
		prompter:    prompter,
		trash:       trash,
		reporter:    reporter,
	}
}

// Execute runs the sweep. Only startup preconditions are returned as errors;
// per-repository failures are part of the outcomes.
func (it *SweepCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts SweepOptions,
) ([]entities.Outcome, error) {
	tool := settings.RemediationTool()
	if !opts.Batch && tool.Enabled() && !it.remediation.Available(tool) {
		if tool.Required {
			return nil, fmt.Errorf("%w: %q not found in PATH", entities.ErrToolMissing, tool.Command)
		}
		logger.Warnf("Remediation tool %q not found, continuing without it", tool.Command)
	}

	book, err := it.preferences.Load(settings.PreferencesFile)
	if err != nil {
		return nil, err
	}

	targets := resolveTargets(opts.Paths, settings, book)
	access := settings.RemoteAccess()
	previewer := entities.NewPreviewer(settings.PreviewLimit, opts.Seed)

	logger.Infof("Evaluating %d repositories...", len(targets))
	evaluations := it.evaluator.EvaluateAll(ctx, targets, access, settings.Concurrency)

	var outcomes []entities.Outcome
	if opts.Batch {
		outcomes = it.runBatch(evaluations, previewer, opts.DryRun)
	} else {
		outcomes = it.runSequential(ctx, evaluations, ConvergenceOptions{
			Access:    access,
			Tool:      tool,
			Previewer: previewer,
		}, opts.DryRun)
	}

	if dropped := book.ForgetTransient(); dropped > 0 {
		if saveErr := it.preferences.Save(settings.PreferencesFile, book); saveErr != nil {
			logger.Errorf("Failed to save preferences: %v", saveErr)
		} else {
			logger.Debugf("Forgot %d temporary preferences", dropped)
		}
	}

	deleted := 0
	for _, outcome := range outcomes {
		if outcome.Decision == entities.DecisionDelete && outcome.Err == nil {
			deleted++
		}
	}
	logger.Infof("Sweep complete: %d repositories evaluated, %d deleted", len(outcomes), deleted)
	return outcomes, nil
}

// runSequential converges each repository to a terminal state before the next one.
func (it *SweepCommand) runSequential(
	ctx context.Context,
	evaluations []entities.Evaluation,
	opts ConvergenceOptions,
	dryRun bool,
) []entities.Outcome {
	outcomes := make([]entities.Outcome, 0, len(evaluations))
	for i := range evaluations {
		evaluation := evaluations[i]
		session := entities.NewProcessingSession(evaluation.Path, evaluation.Preference)

		decision, err := it.convergence.Run(ctx, session, &evaluation, opts)
		outcomes = append(outcomes, it.apply(entities.Outcome{Path: evaluation.Path, Decision: decision}, dryRun))

		if err != nil {
			if isAbort(err) {
				logger.Warn("Aborted, skipping the remaining repositories")
			} else {
				logger.Errorf("[%s] %v", evaluation.Path, err)
				continue
			}
			for _, rest := range evaluations[i+1:] {
				outcomes = append(outcomes, it.apply(entities.Outcome{Path: rest.Path}, dryRun))
			}
			break
		}
	}
	return outcomes
}

// runBatch reports every verdict, then offers only the clean repositories in a single
// multi-select. Repositories that are not clean are reported, never offered.
func (it *SweepCommand) runBatch(
	evaluations []entities.Evaluation,
	previewer *entities.Previewer,
	dryRun bool,
) []entities.Outcome {
	var clean []string
	for _, evaluation := range evaluations {
		it.reporter.Report(evaluation, previewer)
		if evaluation.IsClean() {
			clean = append(clean, evaluation.Path)
		}
	}

	selected := map[string]bool{}
	if len(clean) == 0 {
		logger.Info("No clean repositories to delete")
	} else {
		chosen, err := it.prompter.MultiSelect("Select the clean repositories to delete", clean)
		if err != nil {
			logger.Warnf("Selection cancelled: %v", err)
		}
		for _, path := range chosen {
			selected[path] = true
		}
	}

	outcomes := make([]entities.Outcome, 0, len(evaluations))
	for _, evaluation := range evaluations {
		decision := entities.DecisionSkip
		if selected[evaluation.Path] && evaluation.IsClean() {
			decision = entities.DecisionDelete
		}
		outcomes = append(outcomes, it.apply(entities.Outcome{Path: evaluation.Path, Decision: decision}, dryRun))
	}
	return outcomes
}

// apply carries out a decision. Only a delete decision touches the filesystem.
func (it *SweepCommand) apply(outcome entities.Outcome, dryRun bool) entities.Outcome {
	if outcome.Decision == entities.DecisionDelete && !dryRun {
		if err := it.trash.Trash(outcome.Path); err != nil {
			outcome.Err = err
			logger.Errorf("[%s] Failed to move to trash: %v", outcome.Path, err)
		}
	}
	it.reporter.Decided(outcome, dryRun)
	return outcome
}
