package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// ConvergenceOptions holds the per-run inputs of the convergence loop.
type ConvergenceOptions struct {
	Access    entities.RemoteAccess
	Tool      entities.RemediationTool
	Previewer *entities.Previewer
}

// Convergence drives one repository from an unknown state to a delete or skip
// decision. Remediation is offered at most once per session, and deleting a
// repository that is not clean needs a second explicit confirmation.
type Convergence struct {
	evaluator   *Evaluator
	remediation repositories.RemediationRepository
	prompter    repositories.PrompterRepository
	reporter    repositories.ReporterRepository
}

// NewConvergence creates a new Convergence.
func NewConvergence(
	evaluator *Evaluator,
	remediation repositories.RemediationRepository,
	prompter repositories.PrompterRepository,
	reporter repositories.ReporterRepository,
) *Convergence {
	return &Convergence{
		evaluator:   evaluator,
		remediation: remediation,
		prompter:    prompter,
		reporter:    reporter,
	}
}

// Run steps the session until it reaches a terminal state. When first is not nil it is
// used as the verdict of the first evaluation pass. A prompt interrupted by the user
// ends the session with a skip and returns entities.ErrAborted.
func (it *Convergence) Run(
	ctx context.Context,
	session *entities.ProcessingSession,
	first *entities.Evaluation,
	opts ConvergenceOptions,
) (entities.Decision, error) {
	if session.Preference.LeavesAlone() {
		it.reporter.Report(entities.Evaluation{
			Path:       session.Path,
			Preference: session.Preference,
			Skipped:    true,
		}, opts.Previewer)
		session.State = entities.StateTerminalSkip
		return session.Decision(), nil
	}

	for !session.State.IsTerminal() {
		var (
			next entities.ConvergenceState
			err  error
		)
		switch session.State {
		case entities.StateEvaluating:
			next = it.evaluate(ctx, session, first, opts)
			first = nil
		case entities.StateAwaitingRemediation:
			next, err = it.offerRemediation(ctx, session, opts)
		case entities.StateAwaitingConfirmation:
			next, err = it.confirm(session)
		case entities.StateAwaitingSecondConfirmation:
			next, err = it.confirmAnyway(session)
		default:
			return entities.DecisionSkip, fmt.Errorf("unexpected convergence state %s", session.State)
		}

		if err != nil {
			session.State = entities.StateTerminalSkip
			return session.Decision(), err
		}
		logger.Debugf("[%s] %s -> %s", session.Path, session.State, next)
		session.State = next
	}

	return session.Decision(), nil
}

func (it *Convergence) evaluate(
	ctx context.Context,
	session *entities.ProcessingSession,
	first *entities.Evaluation,
	opts ConvergenceOptions,
) entities.ConvergenceState {
	session.IterationCount++

	var evaluation entities.Evaluation
	if first != nil {
		evaluation = *first
	} else {
		evaluation = it.evaluator.Evaluate(ctx, Target{Path: session.Path, Preference: session.Preference}, opts.Access)
	}
	session.Verdict = &evaluation
	it.reporter.Report(evaluation, opts.Previewer)

	switch {
	case evaluation.Skipped:
		return entities.StateTerminalSkip
	case evaluation.Err != nil:
		logger.Warnf("[%s] Skipping: %v", session.Path, evaluation.Err)
		return entities.StateTerminalSkip
	case evaluation.Cleanliness.IsClean():
		return entities.StateAwaitingConfirmation
	case !session.RemediationAttempted && it.canRemediate(opts.Tool):
		return entities.StateAwaitingRemediation
	default:
		return entities.StateAwaitingConfirmation
	}
}

func (it *Convergence) canRemediate(tool entities.RemediationTool) bool {
	return tool.Enabled() && it.remediation.Available(tool)
}

func (it *Convergence) offerRemediation(
	ctx context.Context,
	session *entities.ProcessingSession,
	opts ConvergenceOptions,
) (entities.ConvergenceState, error) {
	session.RemediationAttempted = true

	accepted, err := it.prompter.Confirm(
		fmt.Sprintf("Open %s to fix %s?", opts.Tool.Command, session.Path),
		strings.Join(session.Verdict.Reasons(), ", "),
	)
	if err != nil {
		return entities.StateTerminalSkip, err
	}
	if !accepted {
		return entities.StateAwaitingConfirmation, nil
	}

	outcome, err := it.remediation.Run(ctx, opts.Tool, session.Path)
	switch {
	case err != nil:
		logger.Warnf("[%s] %s failed to start: %v", session.Path, opts.Tool.Command, err)
	case !outcome.Success:
		logger.Warnf("[%s] %s exited with code %d", session.Path, opts.Tool.Command, outcome.Code)
	}
	return entities.StateEvaluating, nil
}

func (it *Convergence) confirm(session *entities.ProcessingSession) (entities.ConvergenceState, error) {
	verdict := session.Verdict.Cleanliness
	accepted, err := it.prompter.Confirm(
		fmt.Sprintf("Delete %s?", session.Path),
		"Repository is "+verdict.Label(),
	)
	if err != nil {
		return entities.StateTerminalSkip, err
	}

	switch {
	case !accepted:
		return entities.StateTerminalSkip, nil
	case verdict.IsClean():
		return entities.StateTerminalDelete, nil
	default:
		return entities.StateAwaitingSecondConfirmation, nil
	}
}

func (it *Convergence) confirmAnyway(session *entities.ProcessingSession) (entities.ConvergenceState, error) {
	accepted, err := it.prompter.Confirm(
		"Delete anyway?",
		fmt.Sprintf("%s is NOT clean: %s", session.Path, strings.Join(session.Verdict.Reasons(), ", ")),
	)
	if err != nil {
		return entities.StateTerminalSkip, err
	}
	if accepted {
		return entities.StateTerminalDelete, nil
	}
	return entities.StateTerminalSkip, nil
}

// isAbort reports whether err means the user interrupted a prompt.
func isAbort(err error) bool {
	return errors.Is(err, entities.ErrAborted)
}
