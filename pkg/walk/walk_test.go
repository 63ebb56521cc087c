package walk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textswap/pkg/config"
	"github.com/walteh/textswap/pkg/filter"
	"github.com/walteh/textswap/pkg/testutils"
)

func collect(t *testing.T, ctx context.Context, w *Walker, onIgnored Ignored) ([]string, []error) {
	t.Helper()
	var files []string
	var errs []error
	for entry, err := range w.Files(ctx, onIgnored) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files = append(files, entry.RelPath)
	}
	return files, errs
}

func TestWalker_Files(t *testing.T) {
	root := t.TempDir()
	testutils.WriteTree(t, root, map[string]string{
		"a.txt":                             "Hello",
		"a.bin":                             "Hello",
		"ignore_me.txt":                     "Hello",
		"sub/b.txt":                         "Hello",
		"sub/node_modules/pkg/index.js":     "Hello",
		"node_modules/left-pad/index.js":    "Hello",
		"level1/level2/level3/deep.txt":     "Hello",
		"level1/level2/node_modules/x.txt":  "Hello",
		"level1/level2/level3/skip.bin":     "Hello",
		"level1/level2/level3/ignore_x.txt": "Hello",
	})

	f, err := filter.New(&config.Config{
		IgnoreExtensions:   []string{".bin"},
		IgnoreDirectories:  []string{"node_modules"},
		IgnoreFilePrefixes: []string{"ignore_"},
	})
	require.NoError(t, err)

	type ignored struct {
		rel    string
		isDir  bool
		reason filter.Reason
	}
	var pruned []ignored

	files, errs := collect(t, testutils.Context(t), New(root, f), func(rel string, isDir bool, reason filter.Reason) {
		pruned = append(pruned, ignored{rel, isDir, reason})
	})
	require.Empty(t, errs)

	assert.Equal(t, []string{
		"a.txt",
		"level1/level2/level3/deep.txt",
		"sub/b.txt",
	}, files)

	assert.ElementsMatch(t, []ignored{
		{"a.bin", false, filter.ByExtension},
		{"ignore_me.txt", false, filter.ByPrefix},
		{"level1/level2/level3/ignore_x.txt", false, filter.ByPrefix},
		{"level1/level2/level3/skip.bin", false, filter.ByExtension},
		{"level1/level2/node_modules", true, filter.ByDirectory},
		{"node_modules", true, filter.ByDirectory},
		{"sub/node_modules", true, filter.ByDirectory},
	}, pruned)
}

func TestWalker_EmptyRoot(t *testing.T) {
	f, err := filter.New(&config.Config{})
	require.NoError(t, err)

	files, errs := collect(t, testutils.Context(t), New(t.TempDir(), f), nil)
	assert.Empty(t, files)
	assert.Empty(t, errs)
}

func TestWalker_StopEarly(t *testing.T) {
	root := t.TempDir()
	testutils.WriteTree(t, root, map[string]string{"a.txt": "", "b.txt": "", "c.txt": ""})

	f, err := filter.New(&config.Config{})
	require.NoError(t, err)

	var seen []string
	for entry, err := range New(root, f).Files(testutils.Context(t), nil) {
		require.NoError(t, err)
		seen = append(seen, entry.RelPath)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a.txt", "b.txt"}, seen)
}

func TestWalker_Cancelled(t *testing.T) {
	root := t.TempDir()
	testutils.WriteTree(t, root, map[string]string{"a.txt": ""})

	f, err := filter.New(&config.Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(testutils.Context(t))
	cancel()

	files, errs := collect(t, ctx, New(root, f), nil)
	assert.Empty(t, files)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrAborted)
	assert.ErrorIs(t, errs[0], context.Canceled)
}

func TestWalker_Symlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	testutils.WriteTree(t, root, map[string]string{"real.txt": "x"})
	testutils.WriteTree(t, outside, map[string]string{"elsewhere/inner.txt": "x"})

	if err := os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(outside, "elsewhere"), filepath.Join(root, "linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")))

	f, err := filter.New(&config.Config{})
	require.NoError(t, err)

	files, errs := collect(t, testutils.Context(t), New(root, f), nil)
	require.Empty(t, errs)
	assert.Equal(t, []string{"link.txt", "real.txt"}, files)
}

func TestWalker_UnreadableDirectory(t *testing.T) {
	root := t.TempDir()
	testutils.WriteTree(t, root, map[string]string{"ok.txt": "", "locked/secret.txt": ""})
	testutils.Lock(t, filepath.Join(root, "locked"))

	f, err := filter.New(&config.Config{})
	require.NoError(t, err)

	files, errs := collect(t, testutils.Context(t), New(root, f), nil)
	assert.Equal(t, []string{"ok.txt"}, files)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], os.ErrPermission)
	assert.NotErrorIs(t, errs[0], ErrAborted)
}

func TestWalker_SymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	testutils.WriteTree(t, target, map[string]string{"a.txt": "Hello", "sub/b.txt": "Hello"})

	root := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(target, root); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	f, err := filter.New(&config.Config{})
	require.NoError(t, err)

	var paths, rels []string
	for entry, err := range New(root, f).Files(testutils.Context(t), nil) {
		require.NoError(t, err)
		paths = append(paths, entry.Path)
		rels = append(rels, entry.RelPath)
	}

	assert.Equal(t, []string{"a.txt", "sub/b.txt"}, rels)
	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.txt"),
	}, paths)
}
