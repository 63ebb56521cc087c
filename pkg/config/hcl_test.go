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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHCLParsing(t *testing.T) {
	t.Setenv("TEXTSWAP_TEST_BRAND", "Globex")

	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "blocks_keep_order",
			config: `
dictionary "brand" {
  replace "hello" {
    with = "X"
  }
  replace "hello world" {
    with = "Y"
  }
}

dictionary "env" {
  replace "Acme" {
    with = env.TEXTSWAP_TEST_BRAND
  }
}

ignore_extensions    = [".bin"]
ignore_directories   = ["node_modules"]
ignore_file_prefixes = ["ignore_"]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"brand", "env"}, cfg.Names())
				assert.Equal(t, []Pair{
					{Key: "hello", Value: "X"},
					{Key: "hello world", Value: "Y"},
				}, cfg.Dictionaries[0].Pairs)
				assert.Equal(t, []Pair{{Key: "Acme", Value: "Globex"}}, cfg.Dictionaries[1].Pairs)
				assert.Equal(t, []string{".bin"}, cfg.IgnoreExtensions)
				assert.Equal(t, []string{"node_modules"}, cfg.IgnoreDirectories)
				assert.Equal(t, []string{"ignore_"}, cfg.IgnoreFilePrefixes)
				assert.Nil(t, cfg.IgnorePatterns)
			},
		},
		{
			name:        "no_dictionary_blocks",
			config:      `ignore_extensions = [".bin"]`,
			wantErr:     true,
			errContains: "'dictionaries'",
		},
		{
			name:        "unknown_attribute",
			config:      "dictionary \"d\" {}\nignore_files = []\n",
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "syntax_error",
			config:      `dictionary "d" {`,
			wantErr:     true,
			errContains: "parsing HCL",
		},
	}

	parser := &HCLParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
