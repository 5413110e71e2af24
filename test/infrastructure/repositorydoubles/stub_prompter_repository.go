//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// StubPrompterRepository answers prompts from a script and records what was asked.
// Once the script runs out every confirmation is answered with "no".
type StubPrompterRepository struct {
	// --- Confirm ---
	Answers       []bool
	ConfirmErr    error
	ConfirmTitles []string
	Descriptions  []string
	// OnConfirm runs before each confirmation is answered.
	OnConfirm func(title string)

	// --- MultiSelect ---
	Selection      []string
	MultiSelectErr error
	OfferedOptions [][]string
}

var _ repositories.PrompterRepository = (*StubPrompterRepository)(nil)

// NewStubPrompterRepository creates a prompter answering with the given script.
func NewStubPrompterRepository(answers ...bool) *StubPrompterRepository {
	return &StubPrompterRepository{Answers: answers}
}

func (s *StubPrompterRepository) Confirm(title, description string) (bool, error) {
	s.ConfirmTitles = append(s.ConfirmTitles, title)
	s.Descriptions = append(s.Descriptions, description)
	if s.OnConfirm != nil {
		s.OnConfirm(title)
	}
	if s.ConfirmErr != nil {
		return false, s.ConfirmErr
	}
	if len(s.Answers) == 0 {
		return false, nil
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *StubPrompterRepository) MultiSelect(_ string, options []string) ([]string, error) {
	s.OfferedOptions = append(s.OfferedOptions, options)
	return s.Selection, s.MultiSelectErr
}
