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

package status

import (
	"fmt"
)

// 📊 FileStatus is the outcome of processing one file
type FileStatus int

const (
	StatusUnknown                 FileStatus = iota
	StatusUnchanged                          // No rule matched, file untouched
	StatusModified                           // Content changed (written, or diffed in dry-run)
	StatusSkippedNotUTF8                     // Content is not valid UTF-8
	StatusSkippedPermissionDenied            // Read or write was refused
	StatusSkippedIOError                     // Any other read or write failure
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusModified:
		return "modified"
	case StatusSkippedNotUTF8:
		return "not UTF-8"
	case StatusSkippedPermissionDenied:
		return "permission denied"
	case StatusSkippedIOError:
		return "I/O error"
	default:
		return "unknown"
	}
}

// IsSkipped reports whether the file was left alone because of a failure
func (s FileStatus) IsSkipped() bool {
	return s == StatusSkippedNotUTF8 || s == StatusSkippedPermissionDenied || s == StatusSkippedIOError
}

// Op is the file operation a skip happened in
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// 📄 FileResult describes what happened to one file
type FileResult struct {
	Path         string     // Path as shown to the user
	Status       FileStatus // Outcome
	Op           Op         // Failing operation, for skipped files
	Err          error      // Underlying error, for skipped files
	Replacements int        // Number of substitutions made
	DryRun       bool       // Whether the change was only previewed
	Diff         string     // Unified diff, dry-run only
}

// Reason is the one-line explanation printed for a skipped file
func (r *FileResult) Reason() string {
	switch r.Status {
	case StatusSkippedNotUTF8:
		return fmt.Sprintf("Skipped (not UTF-8 encoded): %s", r.Path)
	case StatusSkippedPermissionDenied:
		if r.Op == OpWrite {
			return fmt.Sprintf("Skipped (write permission denied): %s", r.Path)
		}
		return fmt.Sprintf("Skipped (permission denied): %s", r.Path)
	case StatusSkippedIOError:
		return fmt.Sprintf("Skipped (%s error): %s - %v", r.Op, r.Path, r.Err)
	default:
		return ""
	}
}
