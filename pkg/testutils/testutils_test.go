package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTree(t *testing.T) {
	root := t.TempDir()
	WriteTree(t, root, map[string]string{
		"a.txt":       "a",
		"b/c/d.txt":   "d",
		"b/empty.txt": "",
	})

	assert.Equal(t, "a", ReadFile(t, root, "a.txt"))
	assert.Equal(t, "d", ReadFile(t, root, "b/c/d.txt"))
	assert.Equal(t, "", ReadFile(t, root, "b/empty.txt"))
}

func TestContext(t *testing.T) {
	ctx := Context(t)
	assert.NotEqual(t, zerolog.Disabled, zerolog.Ctx(ctx).GetLevel())
}

func TestLock(t *testing.T) {
	root := t.TempDir()
	WriteTree(t, root, map[string]string{"a.txt": "a"})
	path := filepath.Join(root, "a.txt")

	t.Run("locked", func(t *testing.T) {
		Lock(t, path)
		_, err := os.ReadFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrPermission)
	})

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}
