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
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// 📝 Parse parses the config from YAML. Dictionaries are read from the node
// tree so that mapping order survives.
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	type yamlConfig struct {
		Dictionaries       yaml.Node `yaml:"dictionaries"`
		IgnoreExtensions   []string  `yaml:"ignore_extensions,omitempty"`
		IgnoreDirectories  []string  `yaml:"ignore_directories,omitempty"`
		IgnoreFilePrefixes []string  `yaml:"ignore_file_prefixes,omitempty"`
		IgnorePatterns     []string  `yaml:"ignore_patterns,omitempty"`
	}

	var yamlCfg yamlConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	root := &yamlCfg.Dictionaries
	if root.Kind == 0 || (root.Kind == yaml.ScalarNode && root.Tag == "!!null") {
		return nil, ErrMissingDictionaries
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("parsing YAML: line %d: dictionaries must be a mapping", root.Line)
	}

	cfg := &Config{
		IgnoreExtensions:   yamlCfg.IgnoreExtensions,
		IgnoreDirectories:  yamlCfg.IgnoreDirectories,
		IgnoreFilePrefixes: yamlCfg.IgnoreFilePrefixes,
		IgnorePatterns:     yamlCfg.IgnorePatterns,
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		nameNode, body := root.Content[i], root.Content[i+1]
		if nameNode.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("parsing YAML: line %d: dictionary name must be a string", nameNode.Line)
		}

		dict := Dictionary{Name: nameNode.Value}
		if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
			cfg.addDictionary(dict)
			continue
		}
		if body.Kind != yaml.MappingNode {
			return nil, errors.Errorf("parsing YAML: line %d: dictionary %q must be a mapping", body.Line, dict.Name)
		}

		for j := 0; j+1 < len(body.Content); j += 2 {
			key, value := body.Content[j], body.Content[j+1]
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
				return nil, errors.Errorf("parsing YAML: line %d: dictionary %q entries must map a string to a string", key.Line, dict.Name)
			}
			dict.set(key.Value, value.Value)
		}
		cfg.addDictionary(dict)
	}

	return cfg, nil
}
