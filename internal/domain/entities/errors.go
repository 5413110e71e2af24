package entities

import "errors"

// Error taxonomy shared by every layer. Wrap them with fmt.Errorf("%w: ...: %w", ...)
// so that callers can classify failures with errors.Is.
var (
	// ErrConnection means the remote is unreachable or rejected the credentials.
	ErrConnection = errors.New("connection error")
	// ErrRefResolution means HEAD or the default branch is absent or undecodable.
	ErrRefResolution = errors.New("reference resolution error")
	// ErrGraphInconsistency signals corrupted or rewritten history.
	ErrGraphInconsistency = errors.New("commit graph inconsistency")
	// ErrIO covers filesystem and trash failures.
	ErrIO = errors.New("io error")
	// ErrPreferenceDecode means a persisted preference could not be parsed.
	ErrPreferenceDecode = errors.New("preference decode error")
	// ErrToolMissing means a required external binary is not installed.
	ErrToolMissing = errors.New("required tool missing")
	// ErrNotRepository means the path is not a git working copy.
	ErrNotRepository = errors.New("not a git repository")
	// ErrAborted means the user interrupted a prompt.
	ErrAborted = errors.New("aborted by user")
)
