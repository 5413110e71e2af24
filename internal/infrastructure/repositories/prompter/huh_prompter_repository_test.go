//go:build unit

package prompter_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/prompter"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	t.Run("should map a user abort to the domain abort", func(t *testing.T) {
		t.Parallel()

		// given
		err := fmt.Errorf("form: %w", huh.ErrUserAborted)

		// when
		result := prompter.Translate(err)

		// then
		require.ErrorIs(t, result, entities.ErrAborted)
	})

	t.Run("should keep other errors", func(t *testing.T) {
		t.Parallel()

		// given
		err := errors.New("could not open a new TTY")

		// when
		result := prompter.Translate(err)

		// then
		assert.Equal(t, err, result)
	})
}
