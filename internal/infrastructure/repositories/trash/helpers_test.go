//go:build unit || integration

package trash_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeClone(t *testing.T, parent, name string) string {
	t.Helper()
	path := filepath.Join(parent, name)
	require.NoError(t, os.MkdirAll(filepath.Join(path, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "README.md"), []byte("# app\n"), 0o600))
	return path
}
