package commands

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// commitGraph is the part of a repository needed to compare two tips.
type commitGraph interface {
	IsDescendantOf(commit, ancestor entities.CommitID) (bool, error)
}

// RemoteSyncAnalyzer resolves, per remote, whether the local clone is synchronized.
// Errors are scoped to the remote they happened on.
type RemoteSyncAnalyzer struct {
	factory repositories.GitRepositoryFactory
}

// NewRemoteSyncAnalyzer creates a new RemoteSyncAnalyzer.
func NewRemoteSyncAnalyzer(factory repositories.GitRepositoryFactory) *RemoteSyncAnalyzer {
	return &RemoteSyncAnalyzer{factory: factory}
}

// AnalyzeAll analyzes every remote of the repository at path concurrently. Each task
// opens its own handle. It returns only once every remote has a result, in the
// order of the given descriptors.
func (it *RemoteSyncAnalyzer) AnalyzeAll(
	ctx context.Context,
	path string,
	access entities.RemoteAccess,
	remotes []entities.RemoteDescriptor,
) []entities.RemoteResult {
	results := make([]entities.RemoteResult, len(remotes))

	var group errgroup.Group
	for i, remote := range remotes {
		group.Go(func() error {
			repo, err := it.factory.Open(path, access)
			if err != nil {
				results[i] = entities.RemoteResult{
					Remote: remote.Name,
					State:  entities.SyncUnknown,
					Err:    fmt.Errorf("%w: reopening repository: %w", entities.ErrIO, err),
				}
				return nil
			}
			results[i] = it.Analyze(ctx, repo, remote)
			return nil
		})
	}
	_ = group.Wait() // tasks never fail, errors are folded into results

	return results
}

// Analyze resolves the synchronization state of a single remote.
func (it *RemoteSyncAnalyzer) Analyze(
	ctx context.Context,
	repo repositories.GitRepository,
	remote entities.RemoteDescriptor,
) entities.RemoteResult {
	result := entities.RemoteResult{Remote: remote.Name, State: entities.SyncUnknown}
	name := result.DisplayName()

	if !utf8.ValidString(remote.Name) {
		result.Err = fmt.Errorf("%w: remote name is not a valid UTF-8 string", entities.ErrRefResolution)
		return result
	}

	if remote.Connectable {
		logger.Debugf("[%s] Fetching %s", repo.Path(), name)
		if err := repo.Fetch(ctx, remote); err != nil {
			result.State = entities.SyncConnectionFailed
			result.Err = asKind(entities.ErrConnection, err)
			return result
		}
	}

	tip, err := repo.RemoteHead(ctx, remote)
	if err != nil {
		if errors.Is(err, entities.ErrConnection) {
			result.State = entities.SyncConnectionFailed
		}
		result.Err = asKind(entities.ErrRefResolution, err)
		return result
	}

	local, err := repo.LocalTip(tip.Branch)
	if err != nil {
		result.Err = asKind(entities.ErrRefResolution, err)
		return result
	}

	result.State, result.Err = ResolveSync(repo, local, tip.Commit)
	logger.Debugf("[%s] %s/%s: %s", repo.Path(), name, tip.Branch, result.State)
	return result
}

// ResolveSync compares the local tip with the remote tip using the commit graph.
// Equal tips are up to date without walking the graph. Both-ways and neither-way
// ancestry are graph inconsistencies and are always reported as errors.
func ResolveSync(graph commitGraph, local, remote entities.CommitID) (entities.SyncState, error) {
	if local == remote {
		return entities.SyncUpToDate, nil
	}

	localIsDescendant, err := graph.IsDescendantOf(local, remote)
	if err != nil {
		return entities.SyncUnknown, asKind(entities.ErrRefResolution, err)
	}
	remoteIsDescendant, err := graph.IsDescendantOf(remote, local)
	if err != nil {
		return entities.SyncUnknown, asKind(entities.ErrRefResolution, err)
	}

	switch {
	case localIsDescendant && !remoteIsDescendant:
		return entities.SyncLocalAhead, nil
	case !localIsDescendant && remoteIsDescendant:
		return entities.SyncLocalBehind, nil
	case localIsDescendant && remoteIsDescendant:
		return entities.SyncDiverged, fmt.Errorf(
			"%w: local commit is both ahead and behind remote", entities.ErrGraphInconsistency,
		)
	default:
		return entities.SyncUnrelated, fmt.Errorf(
			"%w: local commit is neither ahead nor behind remote", entities.ErrGraphInconsistency,
		)
	}
}

// asKind wraps err with kind unless it is already classified.
func asKind(kind, err error) error {
	for _, known := range []error{
		entities.ErrConnection,
		entities.ErrRefResolution,
		entities.ErrGraphInconsistency,
		entities.ErrIO,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", kind, err)
}
