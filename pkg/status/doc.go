/*
Package status tracks per-file outcomes and owns in-place file writes.

	            +-------------+
	            |  Operation  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+-----+
	|   Files   |           | Results  |
	| (Storage) |           | (Report) |
	+-----------+           +----------+

🎯 Purpose:
- Reads files and rewrites them atomically (temp file + rename)
- Classifies read and write failures as skips
- Accumulates a Summary of processed, modified, ignored and skipped files
- Formats results for the console

📝 File states:
  - StatusUnchanged: no rule matched, never written
  - StatusModified: rewritten, or diffed in dry-run
  - StatusSkippedNotUTF8: content did not decode as UTF-8
  - StatusSkippedPermissionDenied: read or write refused
  - StatusSkippedIOError: any other read or write failure

A skipped file is left exactly as it was. Skips never fail a run.

🔍 Example:

	files := status.NewDiskFileManager()
	summary := &status.Summary{}

	content, err := files.ReadFile(ctx, path)
	if err != nil {
		summary.Add(&status.FileResult{Path: path, Status: status.Classify(err), Op: status.OpRead, Err: err})
	}

	for _, line := range status.NewDefaultFileFormatter().FormatSummary(summary) {
		fmt.Println(line)
	}
*/
package status
