package gogit

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// preferredBranches break ties when a remote HEAD is not symbolic.
var preferredBranches = []string{"main", "master"} //nolint:gochecknoglobals // lookup table

// GitRepositoryFactory implements repositories.GitRepositoryFactory with go-git.
type GitRepositoryFactory struct {
	credentials *CredentialRegistry
}

// NewGitRepositoryFactory creates a factory that authenticates through the given registry.
func NewGitRepositoryFactory(credentials *CredentialRegistry) *GitRepositoryFactory {
	return &GitRepositoryFactory{credentials: credentials}
}

var _ repositories.GitRepositoryFactory = (*GitRepositoryFactory)(nil)

// Open opens the working copy at path. Every call returns an independent handle.
func (f *GitRepositoryFactory) Open(path string, access entities.RemoteAccess) (repositories.GitRepository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrIO, err)
	}

	repo, err := git.PlainOpen(absPath)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", entities.ErrNotRepository, absPath)
		}
		return nil, fmt.Errorf("%w: opening %s: %w", entities.ErrIO, absPath, err)
	}

	return &GitRepository{
		path:        absPath,
		repo:        repo,
		access:      access,
		credentials: f.credentials,
	}, nil
}

// GitRepository implements repositories.GitRepository on top of a go-git repository.
type GitRepository struct {
	path        string
	repo        *git.Repository
	access      entities.RemoteAccess
	credentials *CredentialRegistry
}

var _ repositories.GitRepository = (*GitRepository)(nil)

func (r *GitRepository) Path() string { return r.path }

// Remotes lists the configured remotes. Remotes without URL, and every remote of an
// offline run, are not connectable.
func (r *GitRepository) Remotes() ([]entities.RemoteDescriptor, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, err
	}

	descriptors := make([]entities.RemoteDescriptor, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		descriptors = append(descriptors, entities.RemoteDescriptor{
			Name:        cfg.Name,
			URLs:        slices.Clone(cfg.URLs),
			Connectable: len(cfg.URLs) > 0 && !r.access.Offline,
		})
	}
	slices.SortFunc(descriptors, func(a, b entities.RemoteDescriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return descriptors, nil
}

// Fetch updates the tracking references of the remote.
func (r *GitRepository) Fetch(ctx context.Context, descriptor entities.RemoteDescriptor) error {
	remote, err := r.repo.Remote(descriptor.Name)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrRefResolution, err)
	}

	auth, err := r.credentials.Resolve(firstURL(descriptor), r.access)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrConnection, err)
	}

	//nolint:exhaustruct // Minimal FetchOptions initialization with required fields only
	err = remote.FetchContext(ctx, &git.FetchOptions{
		RemoteName: descriptor.Name,
		Auth:       auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("%w: fetching %s: %w", entities.ErrConnection, descriptor.Name, err)
	}
	return nil
}

// RemoteHead resolves the default branch of the remote and its tip.
func (r *GitRepository) RemoteHead(ctx context.Context, descriptor entities.RemoteDescriptor) (entities.BranchTip, error) {
	if !descriptor.Connectable {
		return r.cachedRemoteHead(descriptor.Name)
	}

	remote, err := r.repo.Remote(descriptor.Name)
	if err != nil {
		return entities.BranchTip{}, fmt.Errorf("%w: %w", entities.ErrRefResolution, err)
	}
	auth, err := r.credentials.Resolve(firstURL(descriptor), r.access)
	if err != nil {
		return entities.BranchTip{}, fmt.Errorf("%w: %w", entities.ErrConnection, err)
	}

	//nolint:exhaustruct // Minimal ListOptions initialization with required fields only
	refs, err := remote.ListContext(ctx, &git.ListOptions{Auth: auth})
	if err != nil {
		return entities.BranchTip{}, fmt.Errorf("%w: listing %s: %w", entities.ErrConnection, descriptor.Name, err)
	}

	return advertisedHead(descriptor.Name, refs)
}

// advertisedHead finds the default branch among the references a remote advertised.
func advertisedHead(remoteName string, refs []*plumbing.Reference) (entities.BranchTip, error) {
	byName := make(map[plumbing.ReferenceName]*plumbing.Reference, len(refs))
	for _, ref := range refs {
		byName[ref.Name()] = ref
	}

	head, ok := byName[plumbing.HEAD]
	if !ok {
		return entities.BranchTip{}, fmt.Errorf("%w: remote %s has no HEAD", entities.ErrRefResolution, remoteName)
	}

	if head.Type() == plumbing.SymbolicReference {
		target, found := byName[head.Target()]
		if !found || !head.Target().IsBranch() {
			return entities.BranchTip{}, fmt.Errorf(
				"%w: remote %s HEAD points to unknown %s", entities.ErrRefResolution, remoteName, head.Target(),
			)
		}
		return entities.BranchTip{Branch: head.Target().Short(), Commit: entities.CommitID(target.Hash().String())}, nil
	}

	var candidates []string
	for _, ref := range refs {
		if ref.Name().IsBranch() && ref.Hash() == head.Hash() {
			candidates = append(candidates, ref.Name().Short())
		}
	}
	branch, err := pickBranch(remoteName, candidates)
	if err != nil {
		return entities.BranchTip{}, err
	}
	return entities.BranchTip{Branch: branch, Commit: entities.CommitID(head.Hash().String())}, nil
}

// cachedRemoteHead reads refs/remotes/<name>/HEAD without touching the network.
func (r *GitRepository) cachedRemoteHead(remoteName string) (entities.BranchTip, error) {
	prefix := "refs/remotes/" + remoteName + "/"

	head, err := r.repo.Reference(plumbing.NewRemoteHEADReferenceName(remoteName), false)
	if err == nil && head.Type() == plumbing.SymbolicReference {
		target, resolveErr := r.repo.Reference(head.Target(), true)
		if resolveErr != nil {
			return entities.BranchTip{}, fmt.Errorf("%w: %s: %w", entities.ErrRefResolution, head.Target(), resolveErr)
		}
		branch, ok := strings.CutPrefix(head.Target().String(), prefix)
		if !ok {
			return entities.BranchTip{}, fmt.Errorf(
				"%w: %s HEAD points outside the remote: %s", entities.ErrRefResolution, remoteName, head.Target(),
			)
		}
		return entities.BranchTip{Branch: branch, Commit: entities.CommitID(target.Hash().String())}, nil
	}

	tracking := make(map[string]plumbing.Hash)
	refs, err := r.repo.References()
	if err != nil {
		return entities.BranchTip{}, fmt.Errorf("%w: %w", entities.ErrRefResolution, err)
	}
	_ = refs.ForEach(func(ref *plumbing.Reference) error {
		branch, ok := strings.CutPrefix(ref.Name().String(), prefix)
		if ok && branch != "HEAD" && ref.Type() == plumbing.HashReference {
			tracking[branch] = ref.Hash()
		}
		return nil
	})

	var candidates []string
	for branch, hash := range tracking {
		if head != nil && head.Type() == plumbing.HashReference && hash != head.Hash() {
			continue
		}
		candidates = append(candidates, branch)
	}
	if head == nil {
		// without a cached HEAD only the conventional default branches are trusted
		candidates = slices.DeleteFunc(candidates, func(b string) bool {
			return !slices.Contains(preferredBranches, b)
		})
	}

	branch, err := pickBranch(remoteName, candidates)
	if err != nil {
		return entities.BranchTip{}, err
	}
	return entities.BranchTip{Branch: branch, Commit: entities.CommitID(tracking[branch].String())}, nil
}

func pickBranch(remoteName string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: cannot determine default branch of %s", entities.ErrRefResolution, remoteName)
	}
	for _, preferred := range preferredBranches {
		if slices.Contains(candidates, preferred) {
			return preferred, nil
		}
	}
	slices.Sort(candidates)
	return candidates[0], nil
}

// LocalTip resolves refs/heads/<branch>.
func (r *GitRepository) LocalTip(branch string) (entities.CommitID, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return "", fmt.Errorf("%w: local branch %s: %w", entities.ErrRefResolution, branch, err)
	}
	return entities.CommitID(ref.Hash().String()), nil
}

// IsDescendantOf reports whether ancestor is reachable from commit.
func (r *GitRepository) IsDescendantOf(commit, ancestor entities.CommitID) (bool, error) {
	descendant, err := r.commit(commit)
	if err != nil {
		return false, err
	}
	candidate, err := r.commit(ancestor)
	if err != nil {
		return false, err
	}

	isAncestor, err := candidate.IsAncestor(descendant)
	if err != nil {
		return false, fmt.Errorf("%w: walking history: %w", entities.ErrRefResolution, err)
	}
	return isAncestor, nil
}

func (r *GitRepository) commit(id entities.CommitID) (*object.Commit, error) {
	if !plumbing.IsHash(string(id)) {
		return nil, fmt.Errorf("%w: %q is not a commit hash", entities.ErrRefResolution, id)
	}
	commit, err := r.repo.CommitObject(plumbing.NewHash(string(id)))
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			logger.Debugf("[%s] commit %s missing from the object store", r.path, id)
		}
		return nil, fmt.Errorf("%w: commit %s: %w", entities.ErrRefResolution, id, err)
	}
	return commit, nil
}

func firstURL(descriptor entities.RemoteDescriptor) string {
	if len(descriptor.URLs) == 0 {
		return ""
	}
	return descriptor.URLs[0]
}
