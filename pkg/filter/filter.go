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

// Package filter decides which paths of a walk are ignored.
package filter

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/textswap/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Reason names the rule that matched a path
type Reason string

const (
	NotIgnored  Reason = ""
	ByDirectory Reason = "directory"
	ByExtension Reason = "extension"
	ByPrefix    Reason = "prefix"
	ByPattern   Reason = "pattern"
)

// 🧹 Filter holds the ignore lists of a run
type Filter struct {
	extensions  []string
	directories map[string]struct{}
	prefixes    []string
	patterns    []string
}

// New builds a Filter from the ignore lists of a config
func New(cfg *config.Config) (*Filter, error) {
	f := &Filter{
		extensions:  cfg.IgnoreExtensions,
		directories: make(map[string]struct{}, len(cfg.IgnoreDirectories)),
		prefixes:    cfg.IgnoreFilePrefixes,
	}
	for _, d := range cfg.IgnoreDirectories {
		f.directories[d] = struct{}{}
	}
	for _, p := range cfg.IgnorePatterns {
		p = strings.ReplaceAll(p, `\`, "/")
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("%w: invalid ignore pattern %q", config.ErrInvalidConfig, p)
		}
		f.patterns = append(f.patterns, p)
	}
	return f, nil
}

// SkipDir reports whether a directory, given by its slash-separated path
// relative to the walk root, must not be descended into.
func (f *Filter) SkipDir(rel string) (bool, Reason) {
	if _, ok := f.directories[path.Base(rel)]; ok {
		return true, ByDirectory
	}
	if f.matchPattern(rel) {
		return true, ByPattern
	}
	return false, NotIgnored
}

// SkipFile reports whether a file, given by its slash-separated path relative
// to the walk root, is ignored. Any single rule is enough.
func (f *Filter) SkipFile(rel string) (bool, Reason) {
	name := path.Base(rel)
	for _, ext := range f.extensions {
		if strings.HasSuffix(name, ext) {
			return true, ByExtension
		}
	}
	for _, prefix := range f.prefixes {
		if strings.HasPrefix(name, prefix) {
			return true, ByPrefix
		}
	}
	if f.matchPattern(rel) {
		return true, ByPattern
	}
	return false, NotIgnored
}

func (f *Filter) matchPattern(rel string) bool {
	for _, pattern := range f.patterns {
		// patterns are validated in New, so Match cannot fail here
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
