package text

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// ErrEmptyPattern is returned when a rule has nothing to search for.
var ErrEmptyPattern = errors.Base("empty find pattern")

// Rule defines a single literal replacement
type Rule struct {
	// Find is the text to replace
	Find string

	// Replace is the replacement text, may be empty
	Replace string
}

// Outcome describes what happened to one piece of content
type Outcome int

const (
	Unchanged Outcome = iota
	Modified
	NotUTF8
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Modified:
		return "modified"
	case NotUTF8:
		return "not-utf8"
	default:
		return "unknown"
	}
}

// ReplacementResult contains the results of a replacement pass
type ReplacementResult struct {
	// Outcome tells whether the content changed or could not be decoded
	Outcome Outcome

	// ReplacementCount is the number of substitutions made across all rules
	ReplacementCount int

	// OriginalContent is the decoded content before replacements
	OriginalContent string

	// ModifiedContent is the content after replacements
	ModifiedContent string
}

// WasModified reports whether any replacement changed the content
func (r *ReplacementResult) WasModified() bool {
	return r.Outcome == Modified
}

// 🔄 Replacer applies an ordered rule list to text
type Replacer struct {
	rules []Rule
}

// NewReplacer validates the rules and creates a Replacer
func NewReplacer(rules []Rule) (*Replacer, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	return &Replacer{rules: rules}, nil
}

// ValidateRules checks that every rule has a find pattern
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Find == "" {
			return errors.Errorf("rule %d: %w", i, ErrEmptyPattern)
		}
	}
	return nil
}

// Rules returns the rules in application order
func (r *Replacer) Rules() []Rule {
	return r.rules
}

// ReplaceBytes decodes content as strict UTF-8 and applies the rules.
// Undecodable content is reported through the NotUTF8 outcome, not an error.
func (r *Replacer) ReplaceBytes(content []byte) *ReplacementResult {
	if !utf8.Valid(content) {
		return &ReplacementResult{Outcome: NotUTF8}
	}
	return r.ReplaceString(string(content))
}

// ReplaceString applies the rules to already decoded text
func (r *Replacer) ReplaceString(original string) *ReplacementResult {
	modified, count := Fold(original, r.rules)

	result := &ReplacementResult{
		Outcome:          Unchanged,
		ReplacementCount: count,
		OriginalContent:  original,
		ModifiedContent:  modified,
	}
	if modified != original {
		result.Outcome = Modified
	}
	return result
}

// Fold runs every rule over the output of the previous one. A later rule
// only sees text that earlier rules already substituted, so overlapping
// patterns resolve in rule order.
func Fold(content string, rules []Rule) (string, int) {
	count := 0
	for _, rule := range rules {
		if rule.Find == "" {
			continue
		}
		n := strings.Count(content, rule.Find)
		if n == 0 {
			continue
		}
		content = strings.ReplaceAll(content, rule.Find, rule.Replace)
		count += n
	}
	return content, count
}
