//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// SpyTrashRepository records trashed paths instead of moving them.
type SpyTrashRepository struct {
	TrashErrs map[string]error
	Trashed   []string
}

var _ repositories.TrashRepository = (*SpyTrashRepository)(nil)

func (s *SpyTrashRepository) Trash(path string) error {
	if err := s.TrashErrs[path]; err != nil {
		return err
	}
	s.Trashed = append(s.Trashed, path)
	return nil
}
