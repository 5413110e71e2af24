//go:build integration

package trash_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/trash"
)

// otherFilesystem returns a fresh folder on a different device than near, or skips.
func otherFilesystem(t *testing.T, near string) string {
	t.Helper()
	dir, err := os.MkdirTemp("/dev/shm", "repodrop-trash-")
	if err != nil {
		t.Skipf("no tmpfs at /dev/shm: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	marker := filepath.Join(dir, "marker")
	require.NoError(t, os.WriteFile(marker, nil, 0o600))
	renameErr := os.Rename(marker, filepath.Join(near, "marker"))
	if renameErr == nil {
		t.Skipf("%s and %s share a filesystem", dir, near)
	}
	require.ErrorIs(t, renameErr, syscall.EXDEV)
	return dir
}

func TestFreedesktopTrashRepositoryAcrossFilesystems(t *testing.T) {
	t.Parallel()

	t.Run("should trash a clone that lives on another filesystem than the trash", func(t *testing.T) {
		t.Parallel()

		// given
		root := filepath.Join(t.TempDir(), "Trash")
		require.NoError(t, os.MkdirAll(root, 0o700))
		volume := otherFilesystem(t, root)
		name := filepath.Base(volume)
		clone := makeClone(t, volume, name)

		top, err := trash.MountPoint(volume)
		require.NoError(t, err)
		volumeRoot, err := trash.VolumeTrashRoot(top)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = os.RemoveAll(filepath.Join(volumeRoot, "files", name))
			_ = os.Remove(filepath.Join(volumeRoot, "info", name+".trashinfo"))
		})
		repo := trash.NewFreedesktopTrashRepositoryAt(root)

		// when
		err = repo.Trash(clone)

		// then
		require.NoError(t, err)
		assert.NoDirExists(t, clone)
		inVolume := filepath.Join(volumeRoot, "files", name, "README.md")
		inHome := filepath.Join(root, "files", name, "README.md")
		_, volumeErr := os.Stat(inVolume)
		_, homeErr := os.Stat(inHome)
		assert.True(t, volumeErr == nil || homeErr == nil, "clone found in neither %s nor %s", inVolume, inHome)
	})
}
