// Package pipeline runs a scenario through ten sequential analytical
// stages, accumulating each stage's structured result into the context
// offered to later stages. A stage that fails is recorded as a failed
// marker and the pipeline continues; the run as a whole never halts on
// a single stage.
package pipeline

import "fmt"

// Status marks whether a stage produced a usable result.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Analysis modes for the context stage.
const (
	ModeSimple = "simple"
	ModeDual   = "dual"
)

// Result is the structured outcome of one stage. All stages share this
// shape; the stage's schema decides which keys are populated. Failed
// stages carry Status failed and an Err message, with every collection
// left empty.
type Result struct {
	Stage  string `json:"stage"`
	Status Status `json:"status"`
	Mode   string `json:"mode,omitempty"`

	Scores  map[string]int                 `json:"scores,omitempty"`
	Labels  map[string]string              `json:"labels,omitempty"`
	Lists   map[string][]string            `json:"lists,omitempty"`
	Texts   map[string]string              `json:"texts,omitempty"`
	Records map[string][]map[string]string `json:"records,omitempty"`

	Raw string `json:"raw,omitempty"`
	Err string `json:"error,omitempty"`
}

// NewResult returns an empty successful result for a stage.
func NewResult(stage string) *Result {
	return &Result{
		Stage:   stage,
		Status:  StatusOK,
		Scores:  make(map[string]int),
		Labels:  make(map[string]string),
		Lists:   make(map[string][]string),
		Texts:   make(map[string]string),
		Records: make(map[string][]map[string]string),
	}
}

// FailedResult returns the failed marker recorded when a stage cannot
// produce analysis. Later stages see the marker and skip it.
func FailedResult(stage string, err error) *Result {
	return &Result{
		Stage:  stage,
		Status: StatusFailed,
		Err:    fmt.Sprintf("%v", err),
	}
}

// Failed reports whether this is a failed marker.
func (r *Result) Failed() bool {
	return r == nil || r.Status == StatusFailed
}

// Score returns a score value, or def when absent.
func (r *Result) Score(key string, def int) int {
	if r == nil || r.Scores == nil {
		return def
	}
	if v, ok := r.Scores[key]; ok {
		return v
	}
	return def
}

// Label returns a label value, or def when absent.
func (r *Result) Label(key, def string) string {
	if r == nil || r.Labels == nil {
		return def
	}
	if v, ok := r.Labels[key]; ok && v != "" {
		return v
	}
	return def
}
