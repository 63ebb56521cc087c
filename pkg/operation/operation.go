package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/textswap/pkg/filter"
	"github.com/walteh/textswap/pkg/status"
	"github.com/walteh/textswap/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidTarget marks a target folder that is missing or not a directory
var ErrInvalidTarget = errors.Base("invalid target folder")

// 📢 Reporter receives every file result as soon as it is final
type Reporter interface {
	LogFileResult(ctx context.Context, r *status.FileResult)
}

// 🔧 Options contains configuration for a replace operation
type Options struct {
	// Root is the folder to rewrite
	Root string
	// Replacer holds the rules for the selected dictionary and direction
	Replacer *text.Replacer
	// Filter decides which paths are ignored
	Filter *filter.Filter
	// Files reads and writes file content, defaults to the local disk
	Files status.FileManager
	// DryRun computes diffs instead of writing
	DryRun bool
	// Workers is the number of files transformed at once, 1 when unset
	Workers int
	// Reporter is told about each file result, may be nil
	Reporter Reporter
}

// 🎯 ReplaceOperation rewrites every eligible file under a root folder
type ReplaceOperation struct {
	root     string
	replacer *text.Replacer
	filter   *filter.Filter
	files    status.FileManager
	dryRun   bool
	workers  int
	reporter Reporter
}

// 🏭 NewReplaceOperation validates the options and the target folder
func NewReplaceOperation(opts Options) (*ReplaceOperation, error) {
	if opts.Replacer == nil {
		return nil, errors.Errorf("replacer is required")
	}
	if opts.Filter == nil {
		return nil, errors.Errorf("filter is required")
	}
	if opts.Root == "" {
		return nil, errors.Errorf("%w: no folder given", ErrInvalidTarget)
	}

	info, err := os.Stat(opts.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%w: folder %s does not exist", ErrInvalidTarget, opts.Root)
		}
		return nil, errors.Errorf("%w: %w", ErrInvalidTarget, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s is not a directory", ErrInvalidTarget, opts.Root)
	}

	files := opts.Files
	if files == nil {
		files = status.NewDiskFileManager()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	return &ReplaceOperation{
		root:     opts.Root,
		replacer: opts.Replacer,
		filter:   opts.Filter,
		files:    files,
		dryRun:   opts.DryRun,
		workers:  workers,
		reporter: opts.Reporter,
	}, nil
}

// 🏃 Execute walks the tree once and returns the run summary. Per-file
// failures are recorded as skips; only an aborted walk returns an error, and
// the summary then covers the files handled before it stopped.
func (o *ReplaceOperation) Execute(ctx context.Context) (*status.Summary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("root", o.root).
		Int("rules", len(o.replacer.Rules())).
		Bool("dry_run", o.dryRun).
		Int("workers", o.workers).
		Msg("starting replace operation")

	runner := NewRunner(o.workers)
	summary, err := runner.Run(ctx, o)
	if err != nil {
		return summary, errors.Errorf("replacing in %s: %w", o.root, err)
	}

	logger.Debug().
		Int("processed", summary.Processed).
		Int("modified", summary.Modified).
		Int("skipped", summary.SkippedCount()).
		Msg("replace operation complete")
	return summary, nil
}

// record adds a result to the summary and hands it to the reporter
func (o *ReplaceOperation) record(ctx context.Context, summary *status.Summary, r *status.FileResult) {
	summary.Add(r)
	if o.reporter != nil {
		o.reporter.LogFileResult(ctx, r)
	}
}
