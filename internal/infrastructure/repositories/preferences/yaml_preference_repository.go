package preferences

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

const (
	dirMode  = 0o755
	fileMode = 0o600
)

// preferenceFile is the on-disk layout of the preference book.
type preferenceFile struct {
	Repositories map[string]string `yaml:"repositories"`
}

// YAMLPreferenceRepository stores the preference book as a YAML file.
type YAMLPreferenceRepository struct{}

// NewYAMLPreferenceRepository creates a new YAMLPreferenceRepository.
func NewYAMLPreferenceRepository() *YAMLPreferenceRepository {
	return &YAMLPreferenceRepository{}
}

var _ repositories.PreferenceRepository = (*YAMLPreferenceRepository)(nil)

// Load reads the book. Malformed values only invalidate their own repository entry;
// a file that is not YAML at all is an error.
func (r *YAMLPreferenceRepository) Load(path string) (*entities.PreferenceBook, error) {
	book := entities.NewPreferenceBook()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("No preference file at %s", path)
			return book, nil
		}
		return nil, fmt.Errorf("%w: reading preferences %q: %w", entities.ErrIO, path, err)
	}

	var file preferenceFile
	if unmarshalErr := yaml.Unmarshal(data, &file); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %q: %w", entities.ErrPreferenceDecode, path, unmarshalErr)
	}

	for repoPath, raw := range file.Repositories {
		pref, parseErr := entities.ParsePreference(raw)
		if parseErr != nil {
			logger.Warnf("Invalid preference for %s: %v", repoPath, parseErr)
			book.SetInvalid(repoPath, raw, parseErr)
			continue
		}
		book.Repositories[repoPath] = pref
	}
	return book, nil
}

// Save writes the book. Malformed entries are written back with their raw value.
func (r *YAMLPreferenceRepository) Save(path string, book *entities.PreferenceBook) error {
	file := preferenceFile{Repositories: make(map[string]string, len(book.Repositories)+len(book.Invalid))}
	for repoPath, invalid := range book.Invalid {
		file.Repositories[repoPath] = invalid.Raw
	}
	for repoPath, pref := range book.Repositories {
		file.Repositories[repoPath] = pref.String()
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(path), dirMode); mkdirErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrIO, mkdirErr)
	}
	if writeErr := os.WriteFile(path, data, fileMode); writeErr != nil {
		return fmt.Errorf("%w: writing preferences %q: %w", entities.ErrIO, path, writeErr)
	}
	return nil
}
