package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// Context is the append-only accumulator of stage results. Results are
// added once, in stage order, and never overwritten; every stage reads
// the subset its definition allows.
type Context struct {
	results map[string]*Result
	order   []string
}

// NewContext returns an empty accumulator.
func NewContext() *Context {
	return &Context{results: make(map[string]*Result)}
}

// Add appends a stage result. Adding the same stage twice is a
// programming error and is rejected rather than silently overwritten.
func (c *Context) Add(r *Result) error {
	if r == nil {
		return fmt.Errorf("nil result")
	}
	if _, exists := c.results[r.Stage]; exists {
		return fmt.Errorf("result for stage %q already recorded", r.Stage)
	}
	c.results[r.Stage] = r
	c.order = append(c.order, r.Stage)
	return nil
}

// Get returns the result for a stage, or nil when not yet recorded.
func (c *Context) Get(stage string) *Result {
	return c.results[stage]
}

// Order returns the stages in the order they were recorded.
func (c *Context) Order() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Results returns the accumulated results keyed by stage.
func (c *Context) Results() map[string]*Result {
	out := make(map[string]*Result, len(c.results))
	for k, v := range c.results {
		out[k] = v
	}
	return out
}

// Format renders the accumulated results as prompt context, restricted
// to the stages in include (nil means all recorded stages). Failed
// markers and raw completions are skipped: a later stage sees only the
// structured fields of the stages that actually succeeded.
func (c *Context) Format(include []string) string {
	stages := include
	if stages == nil {
		stages = c.order
	}

	var b strings.Builder
	wrote := false

	for _, name := range stages {
		r, ok := c.results[name]
		if !ok || r.Failed() {
			continue
		}

		if !wrote {
			b.WriteString("PREVIOUS ANALYSIS RESULTS:\n")
			b.WriteString(strings.Repeat("=", 80))
			b.WriteString("\n\n")
			wrote = true
		}

		b.WriteString(strings.ToUpper(name))
		b.WriteString(":\n")
		b.WriteString(strings.Repeat("-", 40))
		b.WriteString("\n")

		for _, k := range sortedKeys(r.Scores) {
			fmt.Fprintf(&b, "  %s: %d\n", k, r.Scores[k])
		}
		for _, k := range sortedKeys(r.Labels) {
			if r.Labels[k] != "" {
				fmt.Fprintf(&b, "  %s: %s\n", k, r.Labels[k])
			}
		}
		for _, k := range sortedKeys(r.Lists) {
			items := r.Lists[k]
			if len(items) == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %s:\n", k)
			for _, item := range items {
				fmt.Fprintf(&b, "    - %s\n", item)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
