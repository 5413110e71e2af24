//go:build unit

package commands_test

import (
	"github.com/rios0rios0/repodrop/internal/domain/commands"
	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/repodrop/test/infrastructure/repositorydoubles"
)

// harness wires the domain commands to fresh test doubles.
type harness struct {
	factory     *doubles.StubGitRepositoryFactory
	remediation *doubles.SpyRemediationRepository
	preferences *doubles.StubPreferenceRepository
	prompter    *doubles.StubPrompterRepository
	trash       *doubles.SpyTrashRepository
	reporter    *doubles.SpyReporterRepository
}

func newHarness(repos ...*doubles.StubGitRepository) *harness {
	return &harness{
		factory:     doubles.NewStubGitRepositoryFactory(repos...),
		remediation: doubles.NewSpyRemediationRepository(),
		preferences: doubles.NewStubPreferenceRepository(),
		prompter:    doubles.NewStubPrompterRepository(),
		trash:       &doubles.SpyTrashRepository{},
		reporter:    &doubles.SpyReporterRepository{},
	}
}

func (h *harness) evaluator() *commands.Evaluator {
	return commands.NewEvaluator(h.factory, commands.NewRemoteSyncAnalyzer(h.factory))
}

func (h *harness) convergence() *commands.Convergence {
	return commands.NewConvergence(h.evaluator(), h.remediation, h.prompter, h.reporter)
}

func (h *harness) sweep() *commands.SweepCommand {
	return commands.NewSweepCommand(
		h.evaluator(), h.convergence(), h.remediation, h.preferences, h.prompter, h.trash, h.reporter,
	)
}

func (h *harness) options() commands.ConvergenceOptions {
	return commands.ConvergenceOptions{
		Tool:      entitybuilders.NewSettingsBuilder().BuildSettings().RemediationTool(),
		Previewer: entities.NewPreviewer(entities.DefaultPreviewLimit, 1),
	}
}

func targetFor(path string) commands.Target {
	return commands.Target{Path: path}
}

func untracked(path string) entities.FileStatusEntry {
	return entitybuilders.NewFileStatusEntryBuilder().WithPath(path).Untracked().BuildEntry()
}

func ignored(path string) entities.FileStatusEntry {
	return entitybuilders.NewFileStatusEntryBuilder().WithPath(path).Ignored().BuildEntry()
}

// cleanRepo is a stub with one remote in sync and no changes.
func cleanRepo(path string) *doubles.StubGitRepository {
	return doubles.NewStubGitRepository(path).
		WithRemote("origin", "main", "c1").
		WithLocalTip("main", "c1")
}
