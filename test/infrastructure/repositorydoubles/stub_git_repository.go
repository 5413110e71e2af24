//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// StubGitRepository implements repositories.GitRepository with canned answers.
type StubGitRepository struct {
	mu sync.Mutex

	// --- Path ---
	RepoPath string

	// --- Status ---
	Entries   []entities.FileStatusEntry
	StatusErr error

	// --- Remotes ---
	RemoteList []entities.RemoteDescriptor
	RemotesErr error

	// --- Fetch ---
	FetchErrs    map[string]error
	FetchedNames []string

	// --- RemoteHead ---
	Heads    map[string]entities.BranchTip
	HeadErrs map[string]error

	// --- LocalTip ---
	LocalTips   map[string]entities.CommitID
	LocalTipErr error

	// --- IsDescendantOf ---
	// Descendants maps a commit to the commits it descends from.
	Descendants  map[entities.CommitID][]entities.CommitID
	AncestryErr  error
	AncestryRuns int
}

var _ repositories.GitRepository = (*StubGitRepository)(nil)

// NewStubGitRepository creates a stub for path without changes or remotes.
func NewStubGitRepository(path string) *StubGitRepository {
	return &StubGitRepository{
		RepoPath:    path,
		FetchErrs:   map[string]error{},
		Heads:       map[string]entities.BranchTip{},
		HeadErrs:    map[string]error{},
		LocalTips:   map[string]entities.CommitID{},
		Descendants: map[entities.CommitID][]entities.CommitID{},
	}
}

// WithRemote adds a connectable remote whose default branch points at commit.
func (s *StubGitRepository) WithRemote(name, branch string, commit entities.CommitID) *StubGitRepository {
	s.RemoteList = append(s.RemoteList, entities.RemoteDescriptor{
		Name:        name,
		URLs:        []string{fmt.Sprintf("https://example.com/%s.git", name)},
		Connectable: true,
	})
	s.Heads[name] = entities.BranchTip{Branch: branch, Commit: commit}
	return s
}

// WithLocalTip sets the local commit of branch.
func (s *StubGitRepository) WithLocalTip(branch string, commit entities.CommitID) *StubGitRepository {
	s.LocalTips[branch] = commit
	return s
}

// WithDescendant records that commit descends from ancestor.
func (s *StubGitRepository) WithDescendant(commit, ancestor entities.CommitID) *StubGitRepository {
	s.Descendants[commit] = append(s.Descendants[commit], ancestor)
	return s
}

// SetEntries replaces the file snapshot, e.g. after a simulated remediation.
func (s *StubGitRepository) SetEntries(entries []entities.FileStatusEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = entries
}

func (s *StubGitRepository) Path() string { return s.RepoPath }

func (s *StubGitRepository) Status() ([]entities.FileStatusEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.FileStatusEntry(nil), s.Entries...), s.StatusErr
}

func (s *StubGitRepository) Remotes() ([]entities.RemoteDescriptor, error) {
	return s.RemoteList, s.RemotesErr
}

func (s *StubGitRepository) Fetch(_ context.Context, remote entities.RemoteDescriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FetchedNames = append(s.FetchedNames, remote.Name)
	return s.FetchErrs[remote.Name]
}

func (s *StubGitRepository) RemoteHead(
	_ context.Context, remote entities.RemoteDescriptor,
) (entities.BranchTip, error) {
	if err := s.HeadErrs[remote.Name]; err != nil {
		return entities.BranchTip{}, err
	}
	tip, ok := s.Heads[remote.Name]
	if !ok {
		return entities.BranchTip{}, fmt.Errorf("no HEAD for remote %s", remote.Name)
	}
	return tip, nil
}

func (s *StubGitRepository) LocalTip(branch string) (entities.CommitID, error) {
	if s.LocalTipErr != nil {
		return "", s.LocalTipErr
	}
	commit, ok := s.LocalTips[branch]
	if !ok {
		return "", fmt.Errorf("no local branch %s", branch)
	}
	return commit, nil
}

func (s *StubGitRepository) IsDescendantOf(commit, ancestor entities.CommitID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AncestryRuns++
	if s.AncestryErr != nil {
		return false, s.AncestryErr
	}
	for _, candidate := range s.Descendants[commit] {
		if candidate == ancestor {
			return true, nil
		}
	}
	return false, nil
}

// StubGitRepositoryFactory implements repositories.GitRepositoryFactory over a set of stubs.
type StubGitRepositoryFactory struct {
	mu sync.Mutex

	Repos     map[string]*StubGitRepository
	OpenErrs  map[string]error
	OpenCount map[string]int
}

var _ repositories.GitRepositoryFactory = (*StubGitRepositoryFactory)(nil)

// NewStubGitRepositoryFactory creates a factory serving the given stubs by path.
func NewStubGitRepositoryFactory(repos ...*StubGitRepository) *StubGitRepositoryFactory {
	factory := &StubGitRepositoryFactory{
		Repos:     map[string]*StubGitRepository{},
		OpenErrs:  map[string]error{},
		OpenCount: map[string]int{},
	}
	for _, repo := range repos {
		factory.Repos[repo.RepoPath] = repo
	}
	return factory
}

func (f *StubGitRepositoryFactory) Open(
	path string, _ entities.RemoteAccess,
) (repositories.GitRepository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.OpenCount[path]++
	if err := f.OpenErrs[path]; err != nil {
		return nil, err
	}
	repo, ok := f.Repos[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrNotRepository, path)
	}
	return repo, nil
}

// Opens returns how many times path was opened.
func (f *StubGitRepositoryFactory) Opens(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.OpenCount[path]
}
