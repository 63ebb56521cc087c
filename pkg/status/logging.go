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
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	diffIndent = 2 // spaces to indent diff lines
)

// 🎯 ColorizeDiff colors a unified diff for the terminal: additions green,
// removals red, hunk headers cyan. File headers are bold.
func ColorizeDiff(diff string) string {
	if diff == "" {
		return ""
	}

	var b strings.Builder
	indent := strings.Repeat(" ", diffIndent)
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"):
			body = color.New(color.Bold).Sprint(body)
		case strings.HasPrefix(body, "@@"):
			body = color.CyanString("%s", body)
		case strings.HasPrefix(body, "+"):
			body = color.GreenString("%s", body)
		case strings.HasPrefix(body, "-"):
			body = color.RedString("%s", body)
		case strings.HasPrefix(body, "\\"):
			body = color.HiBlackString("%s", body)
		}
		b.WriteString(indent)
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

// 🎯 StatusSymbol is the one-rune marker shown beside a file result
func StatusSymbol(s FileStatus) string {
	switch {
	case s == StatusModified:
		return color.YellowString("⟳")
	case s.IsSkipped():
		return color.RedString("✗")
	default:
		return color.HiBlackString("-")
	}
}
