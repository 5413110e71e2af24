//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repodrop/internal/domain/commands"
	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// StubPreferenceCommand is a stub implementation of commands.Preference.
type StubPreferenceCommand struct {
	Current entities.RepoPreference
	GetErr  error
	SetErr  error

	GetPaths []string
	SetPaths []string
	SetPrefs []entities.RepoPreference
}

var _ commands.Preference = (*StubPreferenceCommand)(nil)

func (s *StubPreferenceCommand) Get(_ *entities.Settings, path string) (entities.RepoPreference, error) {
	s.GetPaths = append(s.GetPaths, path)
	return s.Current, s.GetErr
}

func (s *StubPreferenceCommand) Set(_ *entities.Settings, path string, pref entities.RepoPreference) error {
	s.SetPaths = append(s.SetPaths, path)
	s.SetPrefs = append(s.SetPrefs, pref)
	return s.SetErr
}
