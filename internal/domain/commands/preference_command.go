package commands

import (
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// Preference is the interface for reading and writing stored preferences.
type Preference interface {
	Get(settings *entities.Settings, path string) (entities.RepoPreference, error)
	Set(settings *entities.Settings, path string, pref entities.RepoPreference) error
}

// PreferenceCommand reads and writes the preference book.
type PreferenceCommand struct {
	preferences repositories.PreferenceRepository
}

// NewPreferenceCommand creates a new PreferenceCommand.
func NewPreferenceCommand(preferences repositories.PreferenceRepository) *PreferenceCommand {
	return &PreferenceCommand{preferences: preferences}
}

// Get returns the stored preference of the repository at path.
func (it *PreferenceCommand) Get(settings *entities.Settings, path string) (entities.RepoPreference, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return entities.PreferenceReadWrite, fmt.Errorf("invalid path: %w", err)
	}

	book, err := it.preferences.Load(settings.PreferencesFile)
	if err != nil {
		return entities.PreferenceReadWrite, err
	}
	return book.Lookup(absPath)
}

// Set stores the preference of the repository at path.
func (it *PreferenceCommand) Set(settings *entities.Settings, path string, pref entities.RepoPreference) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	book, err := it.preferences.Load(settings.PreferencesFile)
	if err != nil {
		return err
	}
	book.Set(absPath, pref)

	if saveErr := it.preferences.Save(settings.PreferencesFile, book); saveErr != nil {
		return saveErr
	}
	logger.Infof("Stored preference %s for %s", pref, absPath)
	return nil
}
