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

package operation

import (
	"context"
	"iter"

	"github.com/walteh/textswap/pkg/filter"
	"github.com/walteh/textswap/pkg/status"
	"github.com/walteh/textswap/pkg/walk"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 OperationRunner drives a replace operation over the walk
type OperationRunner struct {
	workers int
}

// 🏗️ NewRunner creates a new runner
func NewRunner(workers int) *OperationRunner {
	if workers < 1 {
		workers = 1
	}
	return &OperationRunner{workers: workers}
}

// 🏃 Run executes an operation
func (r *OperationRunner) Run(ctx context.Context, op *ReplaceOperation) (*status.Summary, error) {
	summary := &status.Summary{}
	files := walk.New(op.root, op.filter).Files(ctx, func(string, bool, filter.Reason) {
		summary.Ignored++
	})

	if r.workers > 1 {
		return summary, r.runAsync(ctx, op, files, summary)
	}
	return summary, r.runSync(ctx, op, files, summary)
}

// 🔄 runSync processes one file fully before the next
func (r *OperationRunner) runSync(ctx context.Context, op *ReplaceOperation, files iter.Seq2[walk.Entry, error], summary *status.Summary) error {
	for entry, err := range files {
		if err != nil {
			if errors.Is(err, walk.ErrAborted) {
				return err
			}
			op.record(ctx, summary, walkFailure(entry, err))
			continue
		}
		op.record(ctx, summary, op.processFile(ctx, entry))
	}
	return nil
}

// ⚡ runAsync transforms files on a bounded pool. Every file owns one result
// slot; slots are recorded in walk order once the pool drains, so the
// summary and report match a sequential run.
func (r *OperationRunner) runAsync(ctx context.Context, op *ReplaceOperation, files iter.Seq2[walk.Entry, error], summary *status.Summary) error {
	var g errgroup.Group
	g.SetLimit(r.workers)

	var slots []*status.FileResult
	var walkErr error

	for entry, err := range files {
		if err != nil {
			if errors.Is(err, walk.ErrAborted) {
				walkErr = err
				break
			}
			slots = append(slots, walkFailure(entry, err))
			continue
		}

		slot := &status.FileResult{}
		slots = append(slots, slot)
		g.Go(func() error {
			*slot = *op.processFile(ctx, entry)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Errorf("waiting for workers: %w", err)
	}

	for _, slot := range slots {
		op.record(ctx, summary, slot)
	}
	return walkErr
}

// walkFailure turns an unreadable directory into a skip
func walkFailure(entry walk.Entry, err error) *status.FileResult {
	return &status.FileResult{
		Path:   entry.Path,
		Status: status.Classify(err),
		Op:     status.OpRead,
		Err:    err,
	}
}
