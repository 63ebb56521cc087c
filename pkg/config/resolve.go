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
	"strings"

	"github.com/walteh/textswap/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrAmbiguousDictionary is returned when no name is given and several dictionaries exist
var ErrAmbiguousDictionary = errors.Errorf("%w: multiple dictionaries defined, choose one by name", ErrInvalidConfig)

// Lookup returns the dictionary with the given name
func (cfg *Config) Lookup(name string) (*Dictionary, bool) {
	for i := range cfg.Dictionaries {
		if cfg.Dictionaries[i].Name == name {
			return &cfg.Dictionaries[i], true
		}
	}
	return nil, false
}

// 🎯 ResolveDictionary selects exactly one dictionary. An empty name selects
// the only dictionary when there is just one.
func (cfg *Config) ResolveDictionary(name string) (*Dictionary, error) {
	if len(cfg.Dictionaries) == 0 {
		return nil, errors.Errorf("%w: no dictionaries defined", ErrInvalidConfig)
	}

	if name == "" {
		if len(cfg.Dictionaries) > 1 {
			return nil, errors.Errorf("%w (available: %s)", ErrAmbiguousDictionary, strings.Join(cfg.Names(), ", "))
		}
		return &cfg.Dictionaries[0], nil
	}

	d, ok := cfg.Lookup(name)
	if !ok {
		return nil, errors.Errorf("%w: dictionary %q not found (available: %s)", ErrInvalidConfig, name, strings.Join(cfg.Names(), ", "))
	}
	return d, nil
}

// 🔀 Rules builds the effective rules for a direction, keeping pair order
func (d *Dictionary) Rules(direction text.Direction) ([]text.Rule, error) {
	if !direction.Valid() {
		return nil, errors.Errorf("%w: %d", text.ErrInvalidDirection, int(direction))
	}

	rules := make([]text.Rule, 0, len(d.Pairs))
	for _, p := range d.Pairs {
		rule := text.Rule{Find: p.Key, Replace: p.Value}
		if direction == text.ValuesToKeys {
			rule = text.Rule{Find: p.Value, Replace: p.Key}
		}
		if rule.Find == "" {
			return nil, errors.Errorf("%w: dictionary %q: %w for key %q in %s direction",
				ErrInvalidConfig, d.Name, text.ErrEmptyPattern, p.Key, direction)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
