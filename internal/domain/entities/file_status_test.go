//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/test/domain/entitybuilders"
)

func TestClassifyFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entry    entities.FileStatusEntry
		expected entities.StatusCategory
	}{
		{
			name:     "should classify an unchanged file as clean",
			entry:    entitybuilders.NewFileStatusEntryBuilder().BuildEntry(),
			expected: entities.CategoryClean,
		},
		{
			name:     "should classify an untracked file as unsafe",
			entry:    entitybuilders.NewFileStatusEntryBuilder().Untracked().BuildEntry(),
			expected: entities.CategoryUnsafeTracked,
		},
		{
			name:     "should classify a worktree modification as unsafe",
			entry:    entitybuilders.NewFileStatusEntryBuilder().Modified().BuildEntry(),
			expected: entities.CategoryUnsafeTracked,
		},
		{
			name:     "should classify a staged file as unsafe",
			entry:    entitybuilders.NewFileStatusEntryBuilder().Staged().BuildEntry(),
			expected: entities.CategoryUnsafeTracked,
		},
		{
			name:     "should classify a staged modification as unsafe",
			entry:    entitybuilders.NewFileStatusEntryBuilder().StagedModification().BuildEntry(),
			expected: entities.CategoryUnsafeTracked,
		},
		{
			name:     "should classify a conflicted file as unsafe",
			entry:    entitybuilders.NewFileStatusEntryBuilder().Conflicted().BuildEntry(),
			expected: entities.CategoryUnsafeTracked,
		},
		{
			name:     "should classify an ignored file as ignored",
			entry:    entitybuilders.NewFileStatusEntryBuilder().Ignored().BuildEntry(),
			expected: entities.CategoryIgnored,
		},
		{
			name:     "should classify an ignored untracked file as ignored",
			entry:    entitybuilders.NewFileStatusEntryBuilder().Ignored().Untracked().BuildEntry(),
			expected: entities.CategoryIgnored,
		},
		{
			name:     "should classify an ignored but modified tracked file as unsafe",
			entry:    entitybuilders.NewFileStatusEntryBuilder().Ignored().Modified().BuildEntry(),
			expected: entities.CategoryUnsafeTracked,
		},
		{
			name:     "should classify an ignored but conflicted file as unsafe",
			entry:    entitybuilders.NewFileStatusEntryBuilder().Ignored().Conflicted().BuildEntry(),
			expected: entities.CategoryUnsafeTracked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			entry := tt.entry

			// when
			category := entities.ClassifyFile(entry)

			// then
			assert.Equal(t, tt.expected, category, "got %s", category)
		})
	}
}

func TestClassifyFiles(t *testing.T) {
	t.Parallel()

	t.Run("should put every entry in exactly one sorted set", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewFileStatusEntryBuilder()
		entries := []entities.FileStatusEntry{
			builder.Clone().(*entitybuilders.FileStatusEntryBuilder).WithPath("z.txt").Untracked().BuildEntry(),
			builder.Clone().(*entitybuilders.FileStatusEntryBuilder).WithPath("a.go").Modified().BuildEntry(),
			builder.Clone().(*entitybuilders.FileStatusEntryBuilder).WithPath("build/").Ignored().BuildEntry(),
			builder.Clone().(*entitybuilders.FileStatusEntryBuilder).WithPath("go.mod").BuildEntry(),
		}

		// when
		result := entities.ClassifyFiles(entries)

		// then
		assert.Equal(t, []string{"a.go", "z.txt"}, result.Unsafe)
		assert.Equal(t, []string{"build/"}, result.Ignored)
		assert.Equal(t, []string{"go.mod"}, result.Clean)
		assert.Len(t, result.Unsafe, 2)
		assert.Equal(t, len(entries), len(result.Unsafe)+len(result.Ignored)+len(result.Clean))
		assert.False(t, result.FilesClean())
	})

	t.Run("should be files-clean when only ignored files are present", func(t *testing.T) {
		t.Parallel()

		// given
		entries := []entities.FileStatusEntry{
			entitybuilders.NewFileStatusEntryBuilder().WithPath("node_modules/").Ignored().BuildEntry(),
		}

		// when
		result := entities.ClassifyFiles(entries)

		// then
		assert.True(t, result.FilesClean())
		assert.Empty(t, result.Unsafe)
		assert.Equal(t, []string{"node_modules/"}, result.Ignored)
	})

	t.Run("should return empty non-nil sets for an empty snapshot", func(t *testing.T) {
		t.Parallel()

		// given
		var entries []entities.FileStatusEntry

		// when
		result := entities.ClassifyFiles(entries)

		// then
		assert.NotNil(t, result.Unsafe)
		assert.NotNil(t, result.Ignored)
		assert.NotNil(t, result.Clean)
		assert.True(t, result.FilesClean())
	})
}
