// Package testutils holds helpers shared by the package tests
package testutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Context returns a context carrying a zerolog logger that writes to the test log
func Context(t testing.TB) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

// WriteTree creates files under root. Names are slash-separated and parent
// directories are created as needed.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755), "creating parent of %s", name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0644), "writing %s", name)
	}
}

// ReadFile returns the content of a slash-separated path under root
func ReadFile(t testing.TB, root, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err, "reading %s", name)
	return string(content)
}

// Lock removes every permission bit from path until the test ends. It
// skips the test when running as root, where permission bits are not
// enforced.
func Lock(t testing.TB, path string) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.Chmod(path, 0))
	t.Cleanup(func() { _ = os.Chmod(path, info.Mode().Perm()) })
}
