package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CopyFixtures copies the named files from srcDir into a fresh temp dir and
// returns it. With no names, every regular file of srcDir is copied.
func CopyFixtures(t *testing.T, srcDir string, names ...string) string {
	t.Helper()

	if len(names) == 0 {
		entries, err := os.ReadDir(srcDir)
		require.NoError(t, err)
		for _, e := range entries {
			if e.Type().IsRegular() {
				names = append(names, e.Name())
			}
		}
	}

	dir := t.TempDir()
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(srcDir, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}
	return dir
}
