// Package textparse pulls structured fields out of free-form model
// output. Model output format is never guaranteed, so every function
// here is total: malformed input degrades to the caller's default or an
// empty result, never an error and never a panic. A partially parsed
// analysis is strictly more useful than a failed run.
//
// The grammar is deliberately small and centrally defined:
//
//	label: value                  scalar fields
//	SECTION HEADER:               section boundary (all-caps or colon-terminated)
//	- item                        list entries under a section
//	- Lead: ...  Field: ...       repeated labeled sub-blocks
package textparse

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	firstInt = regexp.MustCompile(`[+-]?\d+`)

	labelCacheMu sync.RWMutex
	labelCache   = make(map[string]*regexp.Regexp)
)

// labelPattern returns the compiled "label: value" pattern for a label.
// Patterns are cached; labels come from a fixed set of schema constants.
// The cache is process-wide and concurrent runs parse in parallel.
func labelPattern(label string) *regexp.Regexp {
	labelCacheMu.RLock()
	re, ok := labelCache[label]
	labelCacheMu.RUnlock()
	if ok {
		return re
	}

	labelCacheMu.Lock()
	defer labelCacheMu.Unlock()

	// Double-check after acquiring write lock.
	if re, ok := labelCache[label]; ok {
		return re
	}
	re = regexp.MustCompile(`(?im)` + regexp.QuoteMeta(label) + `[:\s]+([^\n]+)`)
	labelCache[label] = re
	return re
}

// Scalar finds the first "label: value" occurrence and returns the
// trailing text on that line, or def when the label is absent.
func Scalar(text, label, def string) string {
	m := labelPattern(label).FindStringSubmatch(text)
	if m == nil {
		return def
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return def
	}
	return v
}

// Int extracts the first integer following the label, or def when no
// integer can be parsed.
func Int(text, label string, def int) int {
	v := Scalar(text, label, "")
	if v == "" {
		return def
	}
	digits := firstInt.FindString(v)
	if digits == "" {
		return def
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return def
	}
	return n
}

// BoundedInt extracts an integer as Int does, then clamps it into
// [lo, hi]. Extracting an already-clamped value reproduces it.
func BoundedInt(text, label string, lo, hi, def int) int {
	n := Int(text, label, def)
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Enum extracts the value following label and matches it
// case-insensitively against allowed, returning def when unmatched.
// The match tolerates trailing commentary ("Severity: high - because...").
func Enum(text, label string, allowed []string, def string) string {
	v := strings.ToLower(Scalar(text, label, ""))
	if v == "" {
		return def
	}
	for _, a := range allowed {
		la := strings.ToLower(a)
		if v == la || strings.HasPrefix(v, la+" ") || strings.HasPrefix(v, la+"-") ||
			strings.HasPrefix(v, la+",") || strings.HasPrefix(v, la+".") {
			return a
		}
	}
	return def
}

// isHeader reports whether a line terminates a section: all-caps text or
// a line ending in a colon.
func isHeader(line string) bool {
	if strings.HasSuffix(line, ":") {
		return true
	}
	letters := 0
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			letters++
		}
	}
	return letters > 0
}

// List collects lines beginning with marker. When section is non-empty
// only lines after the first case-insensitive occurrence of the section
// header and before the next header are considered. Always returns a
// non-nil slice.
func List(text, marker, section string) []string {
	items := []string{}
	inSection := section == ""
	sectionLower := strings.ToLower(section)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !inSection {
			if strings.Contains(strings.ToLower(line), sectionLower) {
				inSection = true
			}
			continue
		}

		if section != "" && !strings.HasPrefix(line, marker) && isHeader(line) {
			break
		}

		if strings.HasPrefix(line, marker) {
			item := strings.TrimSpace(strings.TrimPrefix(line, marker))
			if item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// NumberedList collects "1. item" style entries from the section.
// Always returns a non-nil slice.
func NumberedList(text, section string) []string {
	items := []string{}
	body := SectionText(text, section, nil)
	if body == "" {
		return items
	}
	re := regexp.MustCompile(`(?m)^\s*\d+\.\s*([^\n]+)`)
	for _, m := range re.FindAllStringSubmatch(body, -1) {
		item := strings.TrimSpace(m[1])
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// SectionText returns the raw text between the section header and the
// first of the given terminator headers (or end of text). Empty string
// when the section is absent.
func SectionText(text, section string, terminators []string) string {
	pattern := `(?is)` + regexp.QuoteMeta(section) + `:?(.+)`
	m := regexp.MustCompile(pattern).FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	body := m[1]
	cut := len(body)
	for _, t := range terminators {
		idx := strings.Index(strings.ToUpper(body), strings.ToUpper(t))
		if idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(body[:cut])
}

// BlockRecords splits the named section into repeated sub-blocks, one
// per occurrence of "- leadLabel:", and extracts each fieldLabel from
// its sub-block. The lead label's value is the first line of the block.
// Malformed sub-blocks are skipped; the result is always non-nil.
func BlockRecords(text, section, leadLabel string, fieldLabels []string) []map[string]string {
	records := []map[string]string{}
	body := SectionText(text, section, nil)
	if body == "" {
		return records
	}

	splitRe := regexp.MustCompile(`(?i)\n-\s*` + regexp.QuoteMeta(leadLabel) + `:`)
	blocks := splitRe.Split("\n"+body, -1)
	if len(blocks) < 2 {
		return records
	}

	for _, block := range blocks[1:] {
		lead := firstLine(block)
		if lead == "" {
			continue
		}
		rec := map[string]string{leadLabel: lead}
		for _, fl := range fieldLabels {
			rec[fl] = Scalar(block, fl, "")
		}
		records = append(records, rec)
	}
	return records
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// SplitCSV splits a comma-separated value into trimmed non-empty parts.
// Always returns a non-nil slice.
func SplitCSV(s string) []string {
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
