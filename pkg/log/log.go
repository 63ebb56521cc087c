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

// Package log writes the human-readable run report to the console.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/textswap/pkg/status"
)

// 🎯 Logger prints run progress and the final summary to a console writer,
// and mirrors every event to the zerolog logger in the context
type Logger struct {
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer) *Logger {
	return &Logger{
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// 📝 DryRunBanner announces that nothing will be written
func (l *Logger) DryRunBanner(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := "Dry run mode - no files will be modified"
	pterm.Info.WithWriter(l.console).WithPrefix(pterm.Prefix{Text: "🔍"}).Println(msg)
	zerolog.Ctx(ctx).Info().Bool("dry_run", true).Msg(msg)
}

// 📝 UsingDictionary reports the dictionary the run replaces with
func (l *Logger) UsingDictionary(ctx context.Context, name string, direction fmt.Stringer, rules int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "Using dictionary: %s\n", color.New(color.Bold, color.FgCyan).Sprint(name))
	zerolog.Ctx(ctx).Info().
		Str("dictionary", name).
		Stringer("direction", direction).
		Int("rules", rules).
		Msg("dictionary selected")
}

// 📝 LogFileResult prints modified files, with their diff in dry-run mode.
// Unchanged and skipped files only reach the debug log; skips are listed in
// the summary.
func (l *Logger) LogFileResult(ctx context.Context, r *status.FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Str("file", r.Path).
		Stringer("status", r.Status).
		Int("replacements", r.Replacements).
		Bool("dry_run", r.DryRun).
		Err(r.Err).
		Msg("file processed")

	headline := l.formatter.FormatFileResult(r)
	if headline == "" {
		return
	}

	fmt.Fprintf(l.console, "%s %s\n", status.StatusSymbol(r.Status), headline)
	if r.Diff != "" {
		fmt.Fprint(l.console, status.ColorizeDiff(r.Diff))
	}
}

// 📊 LogSummary prints the end-of-run counts and the reason for every skip
func (l *Logger) LogSummary(ctx context.Context, s *status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	zerolog.Ctx(ctx).Info().
		Int("processed", s.Processed).
		Int("modified", s.Modified).
		Int("ignored", s.Ignored).
		Int("skipped", s.SkippedCount()).
		Msg("run complete")

	fmt.Fprintln(l.console)
	for _, line := range l.formatter.FormatSummary(s) {
		fmt.Fprintln(l.console, line)
	}

	if s.SkippedCount() > 0 {
		pterm.Warning.WithWriter(l.console).
			Printfln("%d files were left untouched", s.SkippedCount())
	}
}

// 📝 Error prints a fatal error
func (l *Logger) Error(ctx context.Context, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, color.New(color.FgRed).Sprint(l.formatter.FormatError(err)))
	zerolog.Ctx(ctx).Error().Err(err).Msg("run failed")
}
