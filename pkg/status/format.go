package status

import (
	"fmt"
)

// FileFormatter defines how file results and run summaries are rendered
type FileFormatter interface {
	// FormatFileResult formats the headline for one file, or "" when there is nothing to say
	FormatFileResult(r *FileResult) string

	// FormatSummary formats the end-of-run report, one entry per line
	FormatSummary(s *Summary) []string

	// FormatError formats an error message
	FormatError(err error) string
}

// skipStatuses is the order per-reason counts are listed in
var skipStatuses = []FileStatus{StatusSkippedNotUTF8, StatusSkippedPermissionDenied, StatusSkippedIOError}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileResult reports modified files; unchanged and skipped files are
// covered by the summary
func (f *DefaultFileFormatter) FormatFileResult(r *FileResult) string {
	if r == nil || r.Status != StatusModified {
		return ""
	}
	if r.DryRun {
		return fmt.Sprintf("Would modify: %s", r.Path)
	}
	return fmt.Sprintf("Modified: %s", r.Path)
}

// FormatSummary lists the counts, a count per skip reason, then one line per
// skipped file
func (f *DefaultFileFormatter) FormatSummary(s *Summary) []string {
	lines := []string{fmt.Sprintf("Processed %d files, %d modified", s.Processed, s.Modified)}
	if s.Ignored > 0 {
		lines = append(lines, fmt.Sprintf("Ignored %d paths", s.Ignored))
	}
	if len(s.Skipped) > 0 {
		lines = append(lines, fmt.Sprintf("Skipped %d files:", len(s.Skipped)))
		for _, st := range skipStatuses {
			if n := s.CountByStatus(st); n > 0 {
				lines = append(lines, fmt.Sprintf("  %s: %d", st, n))
			}
		}
		for i := range s.Skipped {
			lines = append(lines, "  "+s.Skipped[i].Reason())
		}
	}
	return lines
}

// FormatError formats an error message
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}
