package entities

import (
	"slices"
	"strings"
)

// SyncPolicy relaxes which remote states count as synchronized.
type SyncPolicy struct {
	// TolerateBehind accepts LocalBehind as synchronized. Used for read-only
	// clones, which cannot push and lose nothing by lagging behind.
	TolerateBehind bool
}

// StrictSyncPolicy only accepts SyncUpToDate.
var StrictSyncPolicy = SyncPolicy{} //nolint:gochecknoglobals // immutable default

func (p SyncPolicy) accepts(result RemoteResult) bool {
	if !result.Ok() {
		return false
	}
	switch result.State {
	case SyncUpToDate:
		return true
	case SyncLocalBehind:
		return p.TolerateBehind
	default:
		return false
	}
}

// RepoCleanliness is the verdict of one evaluation pass.
type RepoCleanliness struct {
	FilesClean   bool
	RemotesClean bool
	UnsafeFiles  []string
	IgnoredFiles []string
	PerRemote    map[string]RemoteResult
	Policy       SyncPolicy
}

// Aggregate folds the file classification and the remote results into a verdict
// using the strict policy.
func Aggregate(files FileClassification, results []RemoteResult) RepoCleanliness {
	return AggregateWithPolicy(files, results, StrictSyncPolicy)
}

// AggregateWithPolicy is Aggregate with an explicit synchronization policy.
// With zero remotes RemotesClean is vacuously true.
func AggregateWithPolicy(files FileClassification, results []RemoteResult, policy SyncPolicy) RepoCleanliness {
	perRemote := make(map[string]RemoteResult, len(results))
	remotesClean := true
	for _, result := range results {
		perRemote[result.Remote] = result
		if !policy.accepts(result) {
			remotesClean = false
		}
	}
	return RepoCleanliness{
		FilesClean:   files.FilesClean(),
		RemotesClean: remotesClean,
		UnsafeFiles:  slices.Clone(files.Unsafe),
		IgnoredFiles: slices.Clone(files.Ignored),
		PerRemote:    perRemote,
		Policy:       policy,
	}
}

// IsClean is true only when both the files and every remote are clean.
func (c RepoCleanliness) IsClean() bool {
	return c.FilesClean && c.RemotesClean
}

// Remotes returns the per-remote results ordered by remote name.
func (c RepoCleanliness) Remotes() []RemoteResult {
	names := make([]string, 0, len(c.PerRemote))
	for name := range c.PerRemote {
		names = append(names, name)
	}
	slices.SortFunc(names, strings.Compare)

	results := make([]RemoteResult, 0, len(names))
	for _, name := range names {
		results = append(results, c.PerRemote[name])
	}
	return results
}

// Reasons lists why the clone is not clean, in a stable order.
func (c RepoCleanliness) Reasons() []string {
	var reasons []string
	if !c.FilesClean {
		reasons = append(reasons, "Dirty local index")
	}
	for _, result := range c.Remotes() {
		if reason := result.Reason(c.Policy); reason != "" {
			reasons = append(reasons, reason)
		}
	}
	return reasons
}

// Label is the short clean/not-clean label used in prompts.
func (c RepoCleanliness) Label() string {
	if c.IsClean() {
		return "clean"
	}
	return "NOT clean"
}

// Evaluation is the batch-level result for one path.
type Evaluation struct {
	Path        string
	Preference  RepoPreference
	Cleanliness RepoCleanliness
	// Err is set when no verdict could be computed at all (not a repository,
	// unreadable status). Such a path is never clean.
	Err error
	// Skipped is set when the preference told us to leave the path alone.
	Skipped bool
}

// IsClean is true only for a computed, clean verdict.
func (e Evaluation) IsClean() bool {
	return e.Err == nil && !e.Skipped && e.Cleanliness.IsClean()
}

// Reasons includes the evaluation error, if any.
func (e Evaluation) Reasons() []string {
	if e.Err != nil {
		return []string{"Error: " + e.Err.Error()}
	}
	if e.Skipped {
		return []string{"Left alone (" + e.Preference.String() + ")"}
	}
	return e.Cleanliness.Reasons()
}
