// Package export writes pipeline aggregates to disk and renders the
// console summary. Three formats are produced per run: the full JSON
// aggregate, a plain-text report, and a Markdown report.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"counsel/internal/logging"
	"counsel/internal/pipeline"
)

// Exporter writes run results under a base directory.
type Exporter struct {
	dir string
}

// New returns an exporter rooted at dir.
func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Write persists the aggregate in all three formats and returns the
// paths written, JSON first.
func (e *Exporter) Write(agg *pipeline.Aggregate) ([]string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	stamp := agg.StartedAt.Format("20060102_150405")
	base := filepath.Join(e.dir, fmt.Sprintf("%s_%s", stamp, shortID(agg.CaseID)))

	jsonPath := base + ".json"
	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal aggregate: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", jsonPath, err)
	}

	textPath := base + ".txt"
	if err := os.WriteFile(textPath, []byte(Report(agg, false)), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", textPath, err)
	}

	mdPath := base + ".md"
	if err := os.WriteFile(mdPath, []byte(Report(agg, true)), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", mdPath, err)
	}

	logging.Get(logging.CategoryExport).Info("run %s exported to %s.{json,txt,md}", agg.CaseID, base)
	return []string{jsonPath, textPath, mdPath}, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Summary renders the short console summary of a finished run.
func Summary(agg *pipeline.Aggregate) string {
	decision, confidence := agg.FinalDecision()

	var b strings.Builder
	fmt.Fprintf(&b, "Case %s (%s)\n", shortID(agg.CaseID), agg.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "Decision: %s (confidence %s)\n", decision, confidence)
	if !agg.GatePassed {
		b.WriteString("Warning: alignment fell below the advisory threshold\n")
	}

	failed := failedStages(agg)
	if len(failed) > 0 {
		fmt.Fprintf(&b, "Failed stages: %s\n", strings.Join(failed, ", "))
	}

	if align := agg.Results[pipeline.StageAlign]; !align.Failed() {
		fmt.Fprintf(&b, "Alignment: %d\n", align.Score("alignment_score", 0))
	}
	if ctx := agg.Results[pipeline.StageContext]; !ctx.Failed() && ctx.Mode == pipeline.ModeDual {
		fmt.Fprintf(&b, "Perspective divergence: %d (%s)\n",
			ctx.Score("bias_delta", 0), ctx.Label("divergence_level", "unknown"))
	}
	return b.String()
}

func failedStages(agg *pipeline.Aggregate) []string {
	var failed []string
	for _, name := range agg.Order {
		if agg.Results[name].Failed() {
			failed = append(failed, name)
		}
	}
	return failed
}

// Report renders the full run report, in Markdown or plain text.
func Report(agg *pipeline.Aggregate, markdown bool) string {
	decision, confidence := agg.FinalDecision()

	var b strings.Builder
	h := func(level int, s string) {
		if markdown {
			b.WriteString(strings.Repeat("#", level) + " " + s + "\n\n")
		} else {
			b.WriteString(strings.ToUpper(s) + "\n" + strings.Repeat("=", len(s)) + "\n\n")
		}
	}

	h(1, "Scenario Counsel Report")
	fmt.Fprintf(&b, "Case: %s\n", agg.CaseID)
	fmt.Fprintf(&b, "Started: %s\n", agg.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Duration: %s\n", agg.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "Decision: %s (confidence %s)\n", decision, confidence)
	fmt.Fprintf(&b, "Advisory gate passed: %v\n\n", agg.GatePassed)

	h(2, "Scenario")
	b.WriteString(agg.Scenario + "\n\n")

	for _, name := range agg.Order {
		r := agg.Results[name]
		h(2, "Stage: "+name)

		if r.Failed() {
			fmt.Fprintf(&b, "FAILED: %s\n\n", r.Err)
			continue
		}
		if r.Mode != "" {
			fmt.Fprintf(&b, "Mode: %s\n", r.Mode)
		}
		for _, k := range sortedKeys(r.Scores) {
			fmt.Fprintf(&b, "%s: %d\n", k, r.Scores[k])
		}
		for _, k := range sortedKeys(r.Labels) {
			if r.Labels[k] != "" {
				fmt.Fprintf(&b, "%s: %s\n", k, r.Labels[k])
			}
		}
		for _, k := range sortedKeys(r.Lists) {
			if len(r.Lists[k]) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n%s:\n", k)
			for _, item := range r.Lists[k] {
				fmt.Fprintf(&b, "- %s\n", item)
			}
		}
		for _, k := range sortedKeys(r.Texts) {
			if r.Texts[k] == "" {
				continue
			}
			fmt.Fprintf(&b, "\n%s:\n%s\n", k, r.Texts[k])
		}
		b.WriteString("\n")
	}

	if len(agg.Models) > 0 {
		h(2, "Models Used")
		for _, k := range sortedKeys(agg.Models) {
			fmt.Fprintf(&b, "%s: %s\n", k, agg.Models[k])
		}
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
