package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.hcl", "sub/b.hcl", "sub/c.yaml"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
	a := filepath.Join(dir, "a.hcl")

	files, err := CollectFiles([]string{a, dir, filepath.Join(dir, "sub", "c.yaml")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{a, filepath.Join(dir, "sub", "b.hcl")}, files)

	_, err = CollectFiles([]string{filepath.Join(dir, "missing")}, ".hcl")
	require.ErrorContains(t, err, "error accessing path")
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}
