package prompter

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// HuhPrompterRepository asks questions in the terminal with huh forms.
type HuhPrompterRepository struct{}

// NewHuhPrompterRepository creates a new HuhPrompterRepository.
func NewHuhPrompterRepository() *HuhPrompterRepository {
	return &HuhPrompterRepository{}
}

var _ repositories.PrompterRepository = (*HuhPrompterRepository)(nil)

// Confirm asks a yes/no question. The default answer is no.
func (p *HuhPrompterRepository) Confirm(title, description string) (bool, error) {
	var accepted bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&accepted).
		Run()
	if err != nil {
		return false, translate(err)
	}
	return accepted, nil
}

// MultiSelect lets the user pick any subset of options. Nothing is pre-selected.
func (p *HuhPrompterRepository) MultiSelect(title string, options []string) ([]string, error) {
	var selected []string
	err := huh.NewMultiSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&selected).
		Run()
	if err != nil {
		return nil, translate(err)
	}
	return selected, nil
}

func translate(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return entities.ErrAborted
	}
	return err
}
