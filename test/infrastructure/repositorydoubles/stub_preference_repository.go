//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// StubPreferenceRepository serves an in-memory preference book.
type StubPreferenceRepository struct {
	Book    *entities.PreferenceBook
	LoadErr error
	SaveErr error

	LoadedPaths []string
	SavedPaths  []string
	SaveCount   int
}

var _ repositories.PreferenceRepository = (*StubPreferenceRepository)(nil)

// NewStubPreferenceRepository creates a repository holding an empty book.
func NewStubPreferenceRepository() *StubPreferenceRepository {
	return &StubPreferenceRepository{Book: entities.NewPreferenceBook()}
}

func (s *StubPreferenceRepository) Load(path string) (*entities.PreferenceBook, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Book, nil
}

func (s *StubPreferenceRepository) Save(path string, book *entities.PreferenceBook) error {
	s.SavedPaths = append(s.SavedPaths, path)
	s.SaveCount++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Book = book
	return nil
}
