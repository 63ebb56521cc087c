package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/textswap/pkg/config"
	"github.com/walteh/textswap/pkg/text"
)

func ExampleLoad_json() {
	ctx := context.Background()

	configJSON := `{
		"dictionaries": {
			"brand": {"Acme": "Globex", "acme.io": "globex.io"}
		},
		"ignore_extensions": [".png"],
		"ignore_directories": [".git", "node_modules"]
	}`

	dir, err := os.MkdirTemp("", "textswap-example")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	configPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	dict, err := cfg.ResolveDictionary("")
	if err != nil {
		fmt.Printf("Error resolving dictionary: %v\n", err)
		return
	}

	rules, err := dict.Rules(text.ValuesToKeys)
	if err != nil {
		fmt.Printf("Error building rules: %v\n", err)
		return
	}

	fmt.Printf("Using dictionary: %s\n", dict.Name)
	for _, r := range rules {
		fmt.Printf("%s -> %s\n", r.Find, r.Replace)
	}
	fmt.Printf("Ignored directories: %v\n", cfg.IgnoreDirectories)

	// Output:
	// Using dictionary: brand
	// Globex -> Acme
	// globex.io -> acme.io
	// Ignored directories: [.git node_modules]
}
