package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// Target is one repository to evaluate together with its preference.
type Target struct {
	Path       string
	Preference entities.RepoPreference
	// PreferenceErr is set when the stored preference could not be decoded.
	PreferenceErr error
}

// Evaluator runs one evaluation pass: file snapshot, per-remote analysis, aggregation.
// A pass only reads repository state.
type Evaluator struct {
	factory  repositories.GitRepositoryFactory
	analyzer *RemoteSyncAnalyzer
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(factory repositories.GitRepositoryFactory, analyzer *RemoteSyncAnalyzer) *Evaluator {
	return &Evaluator{factory: factory, analyzer: analyzer}
}

// Evaluate computes the verdict of a single repository. Repositories the user
// wants left alone are not touched at all.
func (it *Evaluator) Evaluate(ctx context.Context, target Target, access entities.RemoteAccess) entities.Evaluation {
	evaluation := entities.Evaluation{Path: target.Path, Preference: target.Preference}

	if target.PreferenceErr != nil {
		evaluation.Err = target.PreferenceErr
		return evaluation
	}
	if target.Preference.LeavesAlone() {
		logger.Debugf("[%s] Left alone (%s)", target.Path, target.Preference)
		evaluation.Skipped = true
		return evaluation
	}

	repo, err := it.factory.Open(target.Path, access)
	if err != nil {
		evaluation.Err = err
		return evaluation
	}

	entries, err := repo.Status()
	if err != nil {
		evaluation.Err = asKind(entities.ErrIO, fmt.Errorf("reading status: %w", err))
		return evaluation
	}
	remotes, err := repo.Remotes()
	if err != nil {
		evaluation.Err = asKind(entities.ErrIO, fmt.Errorf("listing remotes: %w", err))
		return evaluation
	}

	files := entities.ClassifyFiles(entries)
	results := it.analyzer.AnalyzeAll(ctx, target.Path, access, remotes)
	evaluation.Cleanliness = entities.AggregateWithPolicy(files, results, target.Preference.SyncPolicy())

	logger.Debugf(
		"[%s] %d unsafe, %d ignored, %d remotes, clean=%t",
		target.Path, len(files.Unsafe), len(files.Ignored), len(remotes), evaluation.Cleanliness.IsClean(),
	)
	return evaluation
}

// EvaluateAll evaluates every target on a pool of at most concurrency workers.
// The result slice is in target order.
func (it *Evaluator) EvaluateAll(
	ctx context.Context,
	targets []Target,
	access entities.RemoteAccess,
	concurrency int,
) []entities.Evaluation {
	evaluations := make([]entities.Evaluation, len(targets))

	var group errgroup.Group
	if concurrency > 0 {
		group.SetLimit(concurrency)
	}
	for i, target := range targets {
		group.Go(func() error {
			evaluations[i] = it.Evaluate(ctx, target, access)
			return nil
		})
	}
	_ = group.Wait() // evaluations never fail, errors are part of the verdict

	return evaluations
}
