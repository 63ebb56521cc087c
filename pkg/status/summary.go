package status

// 📊 Summary accumulates file results over a run
type Summary struct {
	Processed int          // Files read and transformed, skipped files excluded
	Modified  int          // Files changed (or that would change in dry-run)
	Ignored   int          // Files and directories pruned by ignore rules
	Skipped   []FileResult // Skipped files, in walk order
}

// Add records one file result
func (s *Summary) Add(r *FileResult) {
	switch {
	case r.Status.IsSkipped():
		s.Skipped = append(s.Skipped, *r)
	case r.Status == StatusModified:
		s.Processed++
		s.Modified++
	case r.Status == StatusUnchanged:
		s.Processed++
	}
}

// SkippedCount is the number of skipped files
func (s *Summary) SkippedCount() int {
	return len(s.Skipped)
}

// CountByStatus counts skipped files with the given status
func (s *Summary) CountByStatus(st FileStatus) int {
	n := 0
	for i := range s.Skipped {
		if s.Skipped[i].Status == st {
			n++
		}
	}
	return n
}
