// Package scenario validates and classifies scenario text before it
// enters the pipeline.
package scenario

import (
	"fmt"
	"regexp"
	"strings"
)

// Patterns that suggest an injection attempt rather than a scenario.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)onerror\s*=`),
	regexp.MustCompile(`(?i)onclick\s*=`),
	regexp.MustCompile(`\$\{.*\}`),
	regexp.MustCompile(`\{\{.*\}\}`),
	regexp.MustCompile(`(?i)\bexec\b`),
	regexp.MustCompile(`(?i)\beval\b`),
}

// Validate checks scenario text against length bounds and injection
// patterns. Returns nil when the text is acceptable.
func Validate(text string, minLength, maxLength int) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("scenario cannot be empty")
	}
	if len(trimmed) < minLength {
		return fmt.Errorf("scenario too short (minimum %d characters)", minLength)
	}
	if len(trimmed) > maxLength {
		return fmt.Errorf("scenario too long (maximum %d characters)", maxLength)
	}
	for _, p := range suspiciousPatterns {
		if p.MatchString(trimmed) {
			return fmt.Errorf("scenario contains potentially unsafe content")
		}
	}
	return nil
}

var controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)
var multiSpace = regexp.MustCompile(`[ \t]+`)

// Normalize strips null bytes and control characters and collapses runs
// of spaces. Newlines are preserved.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = controlChars.ReplaceAllString(text, "")
	text = multiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Truncate shortens text for display, appending an ellipsis when cut.
func Truncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		return text[:maxLength]
	}
	return text[:maxLength-3] + "..."
}
