/*
Package operation implements the replace pass over a directory tree.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+      +-------------+
	|    Walk     | ---> |   Process   |
	|  (Filter)   |      |  (Replace)  |
	+-------------+      +------+------+
	                            |
	                     +------+------+
	                     |   Status    |
	                     | (Write/Diff)|
	                     +-------------+

🎯 Purpose:
- Walks the target folder, pruning ignored paths
- Applies the selected dictionary to every file
- Writes changed files atomically, or renders a diff in dry-run mode
- Accumulates a status.Summary for the final report

🔄 Flow:
1. NewReplaceOperation checks that the target is an existing directory
2. The walker yields eligible files in lexical order
3. Each file is read, checked for UTF-8, and run through the replacer
4. Changed content is written through status.FileManager (or diffed)
5. Results are reported in walk order

⚡ Failure model:
- A missing or non-directory target fails before anything is read (ErrInvalidTarget)
- Unreadable files, unreadable directories, non-UTF-8 content and failed
  writes are recorded as skips; the run continues
- Only an aborted walk (cancellation) makes Execute return an error

With Workers > 1 the per-file work runs on an errgroup bounded to that many
goroutines. The walk stays sequential and results are still reported in walk
order.

🔍 Example:

	op, err := operation.NewReplaceOperation(operation.Options{
		Root:     "./site",
		Replacer: replacer,
		Filter:   f,
		DryRun:   true,
	})
	if err != nil {
		return err
	}
	summary, err := op.Execute(ctx)
*/
package operation
