package repositories

import "github.com/rios0rios0/repodrop/internal/domain/entities"

// PreferenceRepository persists the per-repository preference book.
type PreferenceRepository interface {
	// Load reads the book at path. A missing file yields an empty book.
	Load(path string) (*entities.PreferenceBook, error)

	// Save writes the book at path, creating parent folders as needed.
	Save(path string, book *entities.PreferenceBook) error
}
