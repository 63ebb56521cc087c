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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
//
//	dictionary "brand" {
//	  replace "Acme" { with = "Globex" }
//	}
//	ignore_directories = ["node_modules"]
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environment(),
		},
	}

	type hclConfig struct {
		Dictionaries []struct {
			Name    string `hcl:"name,label"`
			Replace []struct {
				Find string `hcl:"find,label"`
				With string `hcl:"with"`
			} `hcl:"replace,block"`
		} `hcl:"dictionary,block"`
		IgnoreExtensions   []string `hcl:"ignore_extensions,optional"`
		IgnoreDirectories  []string `hcl:"ignore_directories,optional"`
		IgnoreFilePrefixes []string `hcl:"ignore_file_prefixes,optional"`
		IgnorePatterns     []string `hcl:"ignore_patterns,optional"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	if len(hclCfg.Dictionaries) == 0 {
		return nil, ErrMissingDictionaries
	}

	cfg := &Config{
		IgnoreExtensions:   hclCfg.IgnoreExtensions,
		IgnoreDirectories:  hclCfg.IgnoreDirectories,
		IgnoreFilePrefixes: hclCfg.IgnoreFilePrefixes,
		IgnorePatterns:     hclCfg.IgnorePatterns,
	}

	for _, d := range hclCfg.Dictionaries {
		dict := Dictionary{Name: d.Name}
		for _, r := range d.Replace {
			dict.set(r.Find, r.With)
		}
		cfg.addDictionary(dict)
	}

	return cfg, nil
}

// environment exposes the process environment as the env object
func environment() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
