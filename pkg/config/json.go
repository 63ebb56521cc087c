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
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔧 JSONParser implements the Parser interface for JSON files
type JSONParser struct{}

func init() {
	Register(&JSONParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *JSONParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".json")
}

type jsonConfig struct {
	Dictionaries       *jsonDictionaries `json:"dictionaries"`
	IgnoreExtensions   []string          `json:"ignore_extensions"`
	IgnoreDirectories  []string          `json:"ignore_directories"`
	IgnoreFilePrefixes []string          `json:"ignore_file_prefixes"`
	IgnorePatterns     []string          `json:"ignore_patterns"`
}

// jsonDictionaries keeps object key order, which encoding/json maps drop
type jsonDictionaries struct {
	list Config
}

func (d *jsonDictionaries) UnmarshalJSON(data []byte) error {
	return decodeObject(data, "dictionaries", func(name string, raw json.RawMessage) error {
		dict := Dictionary{Name: name}
		err := decodeObject(raw, "dictionary "+quote(name), func(key string, value json.RawMessage) error {
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return errors.Errorf("dictionary %q: value for %q must be a string", name, key)
			}
			dict.set(key, s)
			return nil
		})
		if err != nil {
			return err
		}
		d.list.addDictionary(dict)
		return nil
	})
}

// decodeObject walks a JSON object member by member, in document order
func decodeObject(data []byte, what string, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Errorf("reading %s: %w", what, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Errorf("%s must be an object", what)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Errorf("reading %s: %w", what, err)
		}
		key, ok := tok.(string)
		if !ok {
			return errors.Errorf("%s: unexpected token %v", what, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return errors.Errorf("reading %s: %w", what, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return errors.Errorf("reading %s: %w", what, err)
	}
	return nil
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// 📝 Parse parses the config from JSON bytes
func (p *JSONParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var raw jsonConfig
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("parsing JSON: unexpected data after config object")
	}

	if raw.Dictionaries == nil {
		return nil, ErrMissingDictionaries
	}

	cfg := &raw.Dictionaries.list
	cfg.IgnoreExtensions = raw.IgnoreExtensions
	cfg.IgnoreDirectories = raw.IgnoreDirectories
	cfg.IgnoreFilePrefixes = raw.IgnoreFilePrefixes
	cfg.IgnorePatterns = raw.IgnorePatterns

	return cfg, nil
}
