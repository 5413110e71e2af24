//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repodrop/internal/domain/commands"
	"github.com/rios0rios0/repodrop/test/domain/entitybuilders"
)

func TestCheckCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should report every repository without prompting or deleting", func(t *testing.T) {
		t.Parallel()

		// given
		h := newHarness(cleanRepo("/src/a"), dirtyRepo("/src/b"))
		cmd := commands.NewCheckCommand(h.evaluator(), h.preferences, h.reporter)
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		evaluations, err := cmd.Execute(
			context.Background(), settings, commands.CheckOptions{Paths: []string{"/src/a", "/src/b"}, Seed: 3},
		)

		// then
		require.NoError(t, err)
		require.Len(t, evaluations, 2)
		assert.True(t, evaluations[0].IsClean())
		assert.False(t, evaluations[1].IsClean())
		assert.Len(t, h.reporter.Reports, 2)
		assert.Empty(t, h.reporter.Decisions)
		assert.Empty(t, h.prompter.ConfirmTitles)
		assert.Empty(t, h.trash.Trashed)
	})
}
