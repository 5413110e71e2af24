package entities

import (
	"fmt"
	"strings"
)

// RemoteDescriptor describes one configured remote of a working copy.
type RemoteDescriptor struct {
	Name string
	URLs []string
	// Connectable is false when the remote has no URL or the run is offline;
	// such remotes are resolved from cached tracking references.
	Connectable bool
}

// CommitID is a hex-encoded commit hash.
type CommitID string

// BranchTip is a remote's default branch and the commit it points to.
type BranchTip struct {
	Branch string // short branch name, e.g. "main"
	Commit CommitID
}

// SyncState is the synchronization state of the local clone against one remote.
// The zero value is SyncUnknown, which is never considered synchronized.
type SyncState int

const (
	SyncUnknown SyncState = iota
	SyncUpToDate
	SyncLocalAhead
	SyncLocalBehind
	SyncDiverged
	SyncUnrelated
	SyncConnectionFailed
)

func (s SyncState) String() string {
	switch s {
	case SyncUpToDate:
		return "up to date"
	case SyncLocalAhead:
		return "ahead"
	case SyncLocalBehind:
		return "behind"
	case SyncDiverged:
		return "diverged"
	case SyncUnrelated:
		return "unrelated"
	case SyncConnectionFailed:
		return "connection failed"
	default:
		return "unknown"
	}
}

// RemoteResult is the outcome of analyzing one remote. A non-nil Err makes it a
// failed entry; Diverged, Unrelated and ConnectionFailed always carry one.
type RemoteResult struct {
	// Remote is the configured remote name, byte for byte.
	Remote string
	State  SyncState
	Err    error
}

// DisplayName is the remote name with invalid UTF-8 replaced, for output only.
func (r RemoteResult) DisplayName() string {
	return strings.ToValidUTF8(r.Remote, "\uFFFD")
}

// Ok reports whether the analysis produced a state without error.
func (r RemoteResult) Ok() bool {
	return r.Err == nil
}

// Reason is the human-readable reason this remote makes the clone unsafe,
// or an empty string when it does not.
func (r RemoteResult) Reason(policy SyncPolicy) string {
	if r.Err != nil {
		return fmt.Sprintf("Error: %v", r.Err)
	}
	switch r.State {
	case SyncUpToDate:
		return ""
	case SyncLocalAhead:
		return "Ahead of " + r.DisplayName()
	case SyncLocalBehind:
		if policy.TolerateBehind {
			return ""
		}
		return "Behind " + r.DisplayName()
	default:
		return fmt.Sprintf("Unknown state for %s", r.DisplayName())
	}
}
