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

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFile is the config path used when none is given
const DefaultFile = "config.json"

var (
	// ErrInvalidConfig marks every run-level configuration failure
	ErrInvalidConfig = errors.Base("invalid config")

	// ErrMissingDictionaries is returned when the dictionaries section is absent
	ErrMissingDictionaries = errors.Errorf("%w: config must contain a 'dictionaries' object", ErrInvalidConfig)
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Pair is one find/replace mapping of a dictionary
type Pair struct {
	Key   string
	Value string
}

// 📖 Dictionary is a named, ordered set of pairs
type Dictionary struct {
	Name  string
	Pairs []Pair
}

// set appends a pair, or overwrites the value of an existing key in place
func (d *Dictionary) set(key, value string) {
	for i := range d.Pairs {
		if d.Pairs[i].Key == key {
			d.Pairs[i].Value = value
			return
		}
	}
	d.Pairs = append(d.Pairs, Pair{Key: key, Value: value})
}

// 📚 Config represents the complete configuration
type Config struct {
	Dictionaries       []Dictionary
	IgnoreExtensions   []string
	IgnoreDirectories  []string
	IgnoreFilePrefixes []string
	IgnorePatterns     []string

	location string
}

// addDictionary keeps the first position of a repeated name and the last content
func (cfg *Config) addDictionary(d Dictionary) {
	for i := range cfg.Dictionaries {
		if cfg.Dictionaries[i].Name == d.Name {
			cfg.Dictionaries[i] = d
			return
		}
	}
	cfg.Dictionaries = append(cfg.Dictionaries, d)
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 🎯 Load reads, parses and validates the configuration at path
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: could not read config file: %w", ErrInvalidConfig, err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("%w: no parser found for file: %s", ErrInvalidConfig, path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		if errors.Is(err, ErrInvalidConfig) {
			return nil, err
		}
		return nil, errors.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Str("path", path).
		Strs("dictionaries", cfg.Names()).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks the ignore lists. Dictionary contents are checked once a
// direction is known, since only the searched side must be non-empty.
func (cfg *Config) Validate() error {
	lists := []struct {
		field   string
		entries []string
	}{
		{"ignore_extensions", cfg.IgnoreExtensions},
		{"ignore_directories", cfg.IgnoreDirectories},
		{"ignore_file_prefixes", cfg.IgnoreFilePrefixes},
		{"ignore_patterns", cfg.IgnorePatterns},
	}
	for _, l := range lists {
		for i, entry := range l.entries {
			if entry == "" {
				return errors.Errorf("%w: %s[%d] is empty", ErrInvalidConfig, l.field, i)
			}
		}
	}

	for i, dir := range cfg.IgnoreDirectories {
		if strings.ContainsAny(dir, `/\`) {
			return errors.Errorf("%w: ignore_directories[%d] %q must be a single directory name", ErrInvalidConfig, i, dir)
		}
	}

	for i, pattern := range cfg.IgnorePatterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return errors.Errorf("%w: ignore_patterns[%d] %q is not a valid glob", ErrInvalidConfig, i, pattern)
		}
	}

	return nil
}

// Names lists the dictionary names in config order
func (cfg *Config) Names() []string {
	names := make([]string, 0, len(cfg.Dictionaries))
	for _, d := range cfg.Dictionaries {
		names = append(names, d.Name)
	}
	return names
}
