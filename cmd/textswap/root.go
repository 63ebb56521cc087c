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

package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textswap/pkg/config"
	"github.com/walteh/textswap/pkg/filter"
	"github.com/walteh/textswap/pkg/log"
	"github.com/walteh/textswap/pkg/operation"
	"github.com/walteh/textswap/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 rootOpts holds the flags of the root command
type rootOpts struct {
	folder     string
	direction  int
	configFile string
	dictName   string
	dryRun     bool
	jobs       int
	noInput    bool
	debug      bool

	prompter   Prompter
	isTerminal func() bool
}

// newRootCmd creates the textswap command
func newRootCmd() *cobra.Command {
	return newRootCmdWithOpts(&rootOpts{
		prompter:   &huhPrompter{},
		isTerminal: stdinIsTerminal,
	})
}

func newRootCmdWithOpts(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textswap",
		Short: "Replace text across a folder using dictionaries from a config file",
		Long: `textswap rewrites every file under a folder, replacing each key of a named
dictionary with its value (direction 1) or each value with its key (direction 2).

Dictionaries and ignore rules are read from a JSON, YAML or HCL config file.
Files are replaced in place; use --dry-run to print unified diffs instead.`,
		Version:       GetVersionInfo().String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	addRootFlags(cmd, opts)
	return cmd
}

// addRootFlags adds the flags of the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.folder, "folder", "f", "", "folder containing the files to process")
	flags.IntVarP(&opts.direction, "direction", "d", 0, "1: replace keys with values, 2: replace values with keys")
	flags.StringVarP(&opts.configFile, "config", "c", config.DefaultFile, "config file path (.json, .yaml, .yml or .hcl)")
	flags.StringVarP(&opts.dictName, "dict-name", "n", "", "dictionary name from the config (auto-selected if only one)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "show what would be replaced without making changes")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "number of files processed at once")
	flags.BoolVar(&opts.noInput, "no-input", false, "never prompt for missing values")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// 🏃 run resolves every input before touching a file, then runs the
// replace operation and prints the report
func (o *rootOpts) run(cmd *cobra.Command) error {
	logger := setupLogging(cmd.ErrOrStderr(), o.debug)
	ctx := logger.WithContext(cmd.Context())
	console := log.New(cmd.OutOrStdout())
	interactive := !o.noInput && o.isTerminal()

	cfg, err := config.Load(ctx, o.configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	if o.folder == "" && interactive {
		if o.folder, err = o.prompter.Folder(); err != nil {
			return errors.Errorf("prompting for folder: %w", err)
		}
	}

	if !cmd.Flags().Changed("direction") {
		if !interactive {
			return errors.Errorf("%w: --direction is required", text.ErrInvalidDirection)
		}
		if o.direction, err = o.prompter.Direction(); err != nil {
			return errors.Errorf("prompting for direction: %w", err)
		}
	}
	direction, err := text.ParseDirection(o.direction)
	if err != nil {
		return err
	}

	autoSelected := o.dictName == "" && len(cfg.Dictionaries) == 1
	if o.dictName == "" && len(cfg.Dictionaries) > 1 && interactive {
		if o.dictName, err = o.prompter.Dictionary(cfg.Names()); err != nil {
			return errors.Errorf("prompting for dictionary: %w", err)
		}
	}
	dict, err := cfg.ResolveDictionary(o.dictName)
	if err != nil {
		return err
	}

	rules, err := dict.Rules(direction)
	if err != nil {
		return err
	}
	replacer, err := text.NewReplacer(rules)
	if err != nil {
		return errors.Errorf("dictionary %q: %w", dict.Name, err)
	}

	f, err := filter.New(cfg)
	if err != nil {
		return errors.Errorf("building ignore rules: %w", err)
	}

	op, err := operation.NewReplaceOperation(operation.Options{
		Root:     o.folder,
		Replacer: replacer,
		Filter:   f,
		DryRun:   o.dryRun,
		Workers:  o.jobs,
		Reporter: console,
	})
	if err != nil {
		return err
	}

	if autoSelected {
		console.UsingDictionary(ctx, dict.Name, direction, len(rules))
	} else {
		logger.Debug().Str("dictionary", dict.Name).Stringer("direction", direction).Msg("dictionary selected")
	}
	if o.dryRun {
		console.DryRunBanner(ctx)
	}

	summary, err := op.Execute(ctx)
	if summary != nil {
		console.LogSummary(ctx, summary)
	}
	return err
}
