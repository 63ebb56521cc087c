// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package walk enumerates the files of a directory tree that survive the
// ignore rules.
package walk

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/textswap/pkg/filter"
	"gitlab.com/tozd/go/errors"
)

// ErrAborted marks a walk that stopped before visiting the whole tree
var ErrAborted = errors.Base("walk aborted")

// 📄 Entry is one file yielded by the walk
type Entry struct {
	Path    string // OS path, rooted like the walk root
	RelPath string // slash-separated path relative to the walk root
}

// 🚶 Walker walks a directory tree once per call to Files
type Walker struct {
	root     string // as given, used for yielded paths
	resolved string // root with symlinks evaluated, used for the walk
	filter   *filter.Filter
}

// New creates a Walker for root. A root that is a symlink to a directory is
// walked through its target; yielded paths keep the given root.
func New(root string, f *filter.Filter) *Walker {
	root = filepath.Clean(root)
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		resolved = root
	}
	return &Walker{root: root, resolved: resolved, filter: f}
}

// Ignored is invoked for every path pruned by the filter
type Ignored func(rel string, isDir bool, reason filter.Reason)

// Files yields every non-ignored file under the root in lexical, depth-first
// order. An unreadable directory is yielded as an error for that path and
// the walk goes on; an error wrapping ErrAborted is always the last value.
// Symlinked directories are not followed.
func (w *Walker) Files(ctx context.Context, onIgnored Ignored) iter.Seq2[Entry, error] {
	logger := zerolog.Ctx(ctx)

	return func(yield func(Entry, error) bool) {
		err := filepath.WalkDir(w.resolved, func(p string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			rel := w.rel(p)
			display := w.display(rel)

			if err != nil {
				if p == w.resolved {
					return err
				}
				if !yield(Entry{Path: display, RelPath: rel}, errors.Errorf("reading %s: %w", display, err)) {
					return filepath.SkipAll
				}
				// a failed directory read is reported once, then skipped
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if p == w.resolved {
					return nil
				}
				if skip, reason := w.filter.SkipDir(rel); skip {
					logger.Debug().Str("dir", rel).Str("rule", string(reason)).Msg("pruning ignored directory")
					if onIgnored != nil {
						onIgnored(rel, true, reason)
					}
					return filepath.SkipDir
				}
				return nil
			}

			if !w.isFile(p, d) {
				logger.Debug().Str("path", rel).Msg("skipping non-regular file")
				return nil
			}

			if skip, reason := w.filter.SkipFile(rel); skip {
				logger.Debug().Str("file", rel).Str("rule", string(reason)).Msg("file ignored")
				if onIgnored != nil {
					onIgnored(rel, false, reason)
				}
				return nil
			}

			if !yield(Entry{Path: display, RelPath: rel}, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield(Entry{Path: w.root, RelPath: "."}, errors.Errorf("%w: walking %s: %w", ErrAborted, w.root, err))
		}
	}
}

// isFile accepts regular files and symlinks that resolve to regular files
func (w *Walker) isFile(p string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// display maps a relative path back under the root as given
func (w *Walker) display(rel string) string {
	if rel == "." {
		return w.root
	}
	return filepath.Join(w.root, filepath.FromSlash(rel))
}

func (w *Walker) rel(p string) string {
	rel, err := filepath.Rel(w.resolved, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
