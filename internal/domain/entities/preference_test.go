//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

func TestParsePreference(t *testing.T) {
	t.Parallel()

	t.Run("should decode every known name back to its preference", func(t *testing.T) {
		t.Parallel()

		for _, name := range entities.PreferenceNames() {
			// when
			pref, err := entities.ParsePreference(name)

			// then
			require.NoError(t, err)
			assert.Equal(t, name, pref.String())
		}
	})

	t.Run("should accept surrounding spaces and upper case", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "  Read-Only "

		// when
		pref, err := entities.ParsePreference(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.PreferenceReadOnly, pref)
	})

	t.Run("should fail with a decode error for unknown names", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "keep-it"

		// when
		_, err := entities.ParsePreference(raw)

		// then
		require.ErrorIs(t, err, entities.ErrPreferenceDecode)
		assert.Contains(t, err.Error(), "read-write")
	})
}

func TestRepoPreference(t *testing.T) {
	t.Parallel()

	t.Run("should only leave alone the leave-alone preferences", func(t *testing.T) {
		t.Parallel()

		assert.True(t, entities.PreferenceLeaveAloneForNow.LeavesAlone())
		assert.True(t, entities.PreferenceLeaveAloneForever.LeavesAlone())
		assert.False(t, entities.PreferenceReadWrite.LeavesAlone())
		assert.False(t, entities.PreferenceContinueReadOnlyForNow.LeavesAlone())
	})

	t.Run("should tolerate being behind only for read-only preferences", func(t *testing.T) {
		t.Parallel()

		assert.True(t, entities.PreferenceReadOnly.SyncPolicy().TolerateBehind)
		assert.True(t, entities.PreferenceContinueReadOnlyForNow.SyncPolicy().TolerateBehind)
		assert.False(t, entities.PreferenceReadWrite.SyncPolicy().TolerateBehind)
		assert.False(t, entities.PreferenceContinueReadWriteForNow.SyncPolicy().TolerateBehind)
	})
}

func TestPreferenceBook(t *testing.T) {
	t.Parallel()

	t.Run("should default to read-write for unknown paths", func(t *testing.T) {
		t.Parallel()

		// given
		book := entities.NewPreferenceBook()

		// when
		pref, err := book.Lookup("/src/unknown")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.PreferenceReadWrite, pref)
	})

	t.Run("should return the decode error only for the malformed path", func(t *testing.T) {
		t.Parallel()

		// given
		book := entities.NewPreferenceBook()
		_, decodeErr := entities.ParsePreference("bogus")
		book.SetInvalid("/src/broken", "bogus", decodeErr)
		book.Set("/src/fine", entities.PreferenceReadOnly)

		// when
		_, brokenErr := book.Lookup("/src/broken")
		fine, fineErr := book.Lookup("/src/fine")

		// then
		require.ErrorIs(t, brokenErr, entities.ErrPreferenceDecode)
		require.NoError(t, fineErr)
		assert.Equal(t, entities.PreferenceReadOnly, fine)
	})

	t.Run("should replace a malformed entry when set", func(t *testing.T) {
		t.Parallel()

		// given
		book := entities.NewPreferenceBook()
		book.SetInvalid("/src/broken", "bogus", entities.ErrPreferenceDecode)

		// when
		book.Set("/src/broken", entities.PreferenceLeaveAloneForever)
		pref, err := book.Lookup("/src/broken")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.PreferenceLeaveAloneForever, pref)
		assert.Empty(t, book.Invalid)
	})

	t.Run("should forget only the for-now preferences", func(t *testing.T) {
		t.Parallel()

		// given
		book := entities.NewPreferenceBook()
		book.Set("/a", entities.PreferenceLeaveAloneForNow)
		book.Set("/b", entities.PreferenceContinueReadOnlyForNow)
		book.Set("/c", entities.PreferenceContinueReadWriteForNow)
		book.Set("/d", entities.PreferenceLeaveAloneForever)
		book.Set("/e", entities.PreferenceReadOnly)

		// when
		dropped := book.ForgetTransient()

		// then
		assert.Equal(t, 3, dropped)
		assert.Equal(t, map[string]entities.RepoPreference{
			"/d": entities.PreferenceLeaveAloneForever,
			"/e": entities.PreferenceReadOnly,
		}, book.Repositories)
	})
}
