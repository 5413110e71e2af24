package entities

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// RepoPreference is the user's persisted choice for one repository.
type RepoPreference int

const (
	PreferenceReadWrite RepoPreference = iota
	PreferenceReadOnly
	PreferenceLeaveAloneForNow
	PreferenceLeaveAloneForever
	PreferenceContinueReadWriteForNow
	PreferenceContinueReadOnlyForNow
)

var preferenceNames = map[RepoPreference]string{ //nolint:gochecknoglobals // lookup table
	PreferenceReadWrite:               "read-write",
	PreferenceReadOnly:                "read-only",
	PreferenceLeaveAloneForNow:        "leave-alone-for-now",
	PreferenceLeaveAloneForever:       "leave-alone-forever",
	PreferenceContinueReadWriteForNow: "continue-read-write-for-now",
	PreferenceContinueReadOnlyForNow:  "continue-read-only-for-now",
}

func (p RepoPreference) String() string {
	if name, ok := preferenceNames[p]; ok {
		return name
	}
	return fmt.Sprintf("preference(%d)", int(p))
}

// LeavesAlone reports whether the repository must be skipped without evaluation.
func (p RepoPreference) LeavesAlone() bool {
	return p == PreferenceLeaveAloneForNow || p == PreferenceLeaveAloneForever
}

// IsReadOnly reports whether push permission is assumed absent.
func (p RepoPreference) IsReadOnly() bool {
	return p == PreferenceReadOnly || p == PreferenceContinueReadOnlyForNow
}

// IsTransient reports whether the preference only lasts for the current run.
func (p RepoPreference) IsTransient() bool {
	return p == PreferenceLeaveAloneForNow ||
		p == PreferenceContinueReadWriteForNow ||
		p == PreferenceContinueReadOnlyForNow
}

// SyncPolicy returns the synchronization policy this preference implies.
func (p RepoPreference) SyncPolicy() SyncPolicy {
	return SyncPolicy{TolerateBehind: p.IsReadOnly()}
}

// ParsePreference decodes the on-disk name of a preference.
func ParsePreference(raw string) (RepoPreference, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for pref, name := range preferenceNames {
		if name == normalized {
			return pref, nil
		}
	}
	return PreferenceReadWrite, fmt.Errorf(
		"%w: %q is not one of %s", ErrPreferenceDecode, raw, strings.Join(PreferenceNames(), ", "),
	)
}

// PreferenceNames lists every valid on-disk name, sorted.
func PreferenceNames() []string {
	return slices.Sorted(maps.Values(preferenceNames))
}

// PreferenceBook holds the preferences of every known repository, keyed by absolute path.
// Entries that could not be decoded are kept apart so that only their repository is affected.
type PreferenceBook struct {
	Repositories map[string]RepoPreference
	Invalid      map[string]InvalidPreference
}

// InvalidPreference is a stored value that could not be decoded. Raw is kept so the
// entry survives a save unchanged until the user replaces it.
type InvalidPreference struct {
	Raw string
	Err error
}

// NewPreferenceBook returns an empty book.
func NewPreferenceBook() *PreferenceBook {
	return &PreferenceBook{
		Repositories: make(map[string]RepoPreference),
		Invalid:      make(map[string]InvalidPreference),
	}
}

// Lookup returns the stored preference, defaulting to read-write. It fails with
// ErrPreferenceDecode when the stored value for this path is malformed.
func (b *PreferenceBook) Lookup(path string) (RepoPreference, error) {
	if invalid, ok := b.Invalid[path]; ok {
		return PreferenceReadWrite, invalid.Err
	}
	if pref, ok := b.Repositories[path]; ok {
		return pref, nil
	}
	return PreferenceReadWrite, nil
}

// Set stores a preference for the path, replacing a malformed entry if there was one.
func (b *PreferenceBook) Set(path string, pref RepoPreference) {
	if b.Repositories == nil {
		b.Repositories = make(map[string]RepoPreference)
	}
	b.Repositories[path] = pref
	delete(b.Invalid, path)
}

// SetInvalid records a malformed stored value for the path.
func (b *PreferenceBook) SetInvalid(path, raw string, err error) {
	if b.Invalid == nil {
		b.Invalid = make(map[string]InvalidPreference)
	}
	b.Invalid[path] = InvalidPreference{Raw: raw, Err: err}
	delete(b.Repositories, path)
}

// ForgetTransient drops every "for now" preference and returns how many were dropped.
func (b *PreferenceBook) ForgetTransient() int {
	dropped := 0
	for path, pref := range b.Repositories {
		if pref.IsTransient() {
			delete(b.Repositories, path)
			dropped++
		}
	}
	return dropped
}
