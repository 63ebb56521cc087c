package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/textswap/pkg/diff"
	"github.com/walteh/textswap/pkg/status"
	"github.com/walteh/textswap/pkg/text"
	"github.com/walteh/textswap/pkg/walk"
)

// 📝 processFile reads, transforms and writes (or diffs) one file. It never
// fails the run: every failure becomes a skipped result and the file is left
// as it was.
func (o *ReplaceOperation) processFile(ctx context.Context, entry walk.Entry) *status.FileResult {
	logger := zerolog.Ctx(ctx).With().Str("file", entry.RelPath).Logger()

	result := &status.FileResult{Path: entry.Path, DryRun: o.dryRun}

	content, err := o.files.ReadFile(ctx, entry.Path)
	if err != nil {
		logger.Debug().Err(err).Msg("read failed")
		result.Status = status.Classify(err)
		result.Op = status.OpRead
		result.Err = err
		return result
	}

	replaced := o.replacer.ReplaceBytes(content)
	switch replaced.Outcome {
	case text.NotUTF8:
		result.Status = status.StatusSkippedNotUTF8
		result.Op = status.OpRead
		return result
	case text.Unchanged:
		result.Status = status.StatusUnchanged
		return result
	}

	result.Replacements = replaced.ReplacementCount

	if o.dryRun {
		d, err := diff.Unified(entry.RelPath, replaced.OriginalContent, replaced.ModifiedContent)
		if err != nil {
			logger.Warn().Err(err).Msg("diff failed")
		}
		result.Status = status.StatusModified
		result.Diff = d
		return result
	}

	if err := o.files.WriteFileAtomic(ctx, entry.Path, []byte(replaced.ModifiedContent)); err != nil {
		logger.Debug().Err(err).Msg("write failed")
		result.Status = status.Classify(err)
		result.Op = status.OpWrite
		result.Err = err
		return result
	}

	logger.Debug().Int("replacements", result.Replacements).Msg("file rewritten")
	result.Status = status.StatusModified
	return result
}
