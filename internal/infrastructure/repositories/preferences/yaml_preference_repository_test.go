//go:build unit

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/preferences"
)

func TestYAMLPreferenceRepository(t *testing.T) {
	t.Parallel()

	t.Run("should return an empty book when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repo := preferences.NewYAMLPreferenceRepository()
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		book, err := repo.Load(path)

		// then
		require.NoError(t, err)
		assert.Empty(t, book.Repositories)
	})

	t.Run("should round-trip preferences through the file", func(t *testing.T) {
		t.Parallel()

		// given
		repo := preferences.NewYAMLPreferenceRepository()
		path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
		book := entities.NewPreferenceBook()
		book.Set("/src/app", entities.PreferenceReadOnly)
		book.Set("/src/lib", entities.PreferenceLeaveAloneForever)

		// when
		saveErr := repo.Save(path, book)
		loaded, loadErr := repo.Load(path)

		// then
		require.NoError(t, saveErr)
		require.NoError(t, loadErr)
		assert.Equal(t, book.Repositories, loaded.Repositories)
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("should keep a malformed value scoped to its repository", func(t *testing.T) {
		t.Parallel()

		// given
		repo := preferences.NewYAMLPreferenceRepository()
		path := filepath.Join(t.TempDir(), "preferences.yaml")
		content := "repositories:\n  /src/app: read-only\n  /src/odd: sometimes\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		book, err := repo.Load(path)

		// then
		require.NoError(t, err)
		pref, lookupErr := book.Lookup("/src/app")
		require.NoError(t, lookupErr)
		assert.Equal(t, entities.PreferenceReadOnly, pref)
		_, oddErr := book.Lookup("/src/odd")
		require.ErrorIs(t, oddErr, entities.ErrPreferenceDecode)
	})

	t.Run("should write a malformed value back unchanged when saving other changes", func(t *testing.T) {
		t.Parallel()

		// given
		repo := preferences.NewYAMLPreferenceRepository()
		path := filepath.Join(t.TempDir(), "preferences.yaml")
		content := "repositories:\n  /src/app: leave-alone-for-now\n  /src/odd: leave-alone-forevr\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		book, err := repo.Load(path)
		require.NoError(t, err)

		// when
		book.ForgetTransient()
		book.Set("/src/lib", entities.PreferenceReadOnly)
		saveErr := repo.Save(path, book)
		reloaded, loadErr := repo.Load(path)

		// then
		require.NoError(t, saveErr)
		require.NoError(t, loadErr)
		_, oddErr := reloaded.Lookup("/src/odd")
		require.ErrorIs(t, oddErr, entities.ErrPreferenceDecode)
		assert.Equal(t, "leave-alone-forevr", reloaded.Invalid["/src/odd"].Raw)
		assert.Equal(t, map[string]entities.RepoPreference{"/src/lib": entities.PreferenceReadOnly}, reloaded.Repositories)
	})

	t.Run("should fail on a file that is not YAML", func(t *testing.T) {
		t.Parallel()

		// given
		repo := preferences.NewYAMLPreferenceRepository()
		path := filepath.Join(t.TempDir(), "preferences.yaml")
		require.NoError(t, os.WriteFile(path, []byte("repositories: [unterminated\n"), 0o600))

		// when
		_, err := repo.Load(path)

		// then
		require.ErrorIs(t, err, entities.ErrPreferenceDecode)
	})
}
