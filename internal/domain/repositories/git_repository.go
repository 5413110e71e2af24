package repositories

import (
	"context"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// GitRepository is an open handle on one working copy. A handle is owned by a single
// goroutine for the duration of one evaluation and is never shared across tasks.
type GitRepository interface {
	// Path returns the absolute path of the working copy.
	Path() string

	// Status takes a full snapshot of the working copy, ignored files included.
	Status() ([]entities.FileStatusEntry, error)

	// Remotes lists the configured remotes.
	Remotes() ([]entities.RemoteDescriptor, error)

	// Fetch connects to the remote and updates its tracking references.
	Fetch(ctx context.Context, remote entities.RemoteDescriptor) error

	// RemoteHead resolves the remote's default branch and its tip. Connectable
	// remotes are asked over the network, others are read from cached references.
	RemoteHead(ctx context.Context, remote entities.RemoteDescriptor) (entities.BranchTip, error)

	// LocalTip resolves the tip of the local branch with the given short name.
	LocalTip(branch string) (entities.CommitID, error)

	// IsDescendantOf reports whether ancestor is reachable from commit through parent links.
	IsDescendantOf(commit, ancestor entities.CommitID) (bool, error)
}

// GitRepositoryFactory opens working copies.
type GitRepositoryFactory interface {
	// Open returns a new handle. It fails with entities.ErrNotRepository when the path
	// is not a git working copy.
	Open(path string, access entities.RemoteAccess) (GitRepository, error)
}
