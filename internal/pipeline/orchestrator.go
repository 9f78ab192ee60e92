package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"counsel/internal/config"
	"counsel/internal/logging"
	"counsel/internal/provider"
	"counsel/internal/scenario"
)

// Invoker is the completion surface the pipeline calls through. The
// provider router satisfies it; tests substitute scripted fakes.
type Invoker interface {
	Invoke(ctx context.Context, name provider.Name, req provider.Request) (string, provider.CallRecord, error)
}

// Pipeline runs scenarios through the ten analytical stages.
type Pipeline struct {
	invoker Invoker
	cfg     *config.Config
	stages  []Stage
}

// New builds a pipeline over a completion invoker.
func New(invoker Invoker, cfg *config.Config) *Pipeline {
	return &Pipeline{
		invoker: invoker,
		cfg:     cfg,
		stages:  Stages(),
	}
}

// Aggregate is the complete outcome of one pipeline run.
type Aggregate struct {
	CaseID    string        `json:"case_id"`
	Scenario  string        `json:"scenario"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	// GatePassed records the advisory alignment gate outcome. A failed
	// gate never stops the run.
	GatePassed bool `json:"gate_passed"`

	// Models maps each stage (plus the dual-perspective sub-calls) to
	// the provider/model that served it, fallbacks included. Failed
	// stages carry the provider/model that was attempted.
	Models map[string]string `json:"models"`

	Results map[string]*Result `json:"results"`
	Order   []string           `json:"order"`
}

// FinalDecision returns the decision stage's verdict, defaulting to
// CONDITIONAL_GO when the stage failed.
func (a *Aggregate) FinalDecision() (decision, confidence string) {
	r := a.Results[StageDecision]
	return r.Label("decision", "CONDITIONAL_GO"), r.Label("confidence", "medium")
}

// runState carries per-run bookkeeping so concurrent runs of the same
// Pipeline never share mutable state.
type runState struct {
	models map[string]string
}

func (rs *runState) record(key string, rec provider.CallRecord) {
	rs.models[key] = fmt.Sprintf("%s/%s", rec.Provider, rec.Model)
}

// Run processes a scenario through all ten stages sequentially. Stage
// failures become failed markers and the run continues; only an invalid
// scenario or context cancellation ends a run early.
func (p *Pipeline) Run(ctx context.Context, text string) (*Aggregate, error) {
	text = scenario.Normalize(text)
	if err := scenario.Validate(text, p.cfg.Scenario.MinLength, p.cfg.Scenario.MaxLength); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	agg := &Aggregate{
		CaseID:     uuid.New().String(),
		Scenario:   text,
		StartedAt:  time.Now(),
		GatePassed: true,
		Models:     make(map[string]string),
		Results:    make(map[string]*Result),
	}
	rs := &runState{models: agg.Models}
	pctx := NewContext()

	logging.Pipeline("run %s started (%d chars)", agg.CaseID, len(text))

	for _, st := range p.stages {
		if err := ctx.Err(); err != nil {
			agg.Duration = time.Since(agg.StartedAt)
			p.collect(agg, pctx)
			return agg, err
		}

		timer := logging.StartTimer(logging.CategoryPipeline, "stage "+st.Name)
		result := p.runStage(ctx, st, text, pctx, rs)
		timer.Stop()

		if err := pctx.Add(result); err != nil {
			// Unreachable with distinct stage names; recorded rather
			// than dropped if it ever happens.
			logging.PipelineWarn("run %s: %v", agg.CaseID, err)
			continue
		}

		if result.Failed() {
			logging.PipelineWarn("run %s: stage %s failed: %s", agg.CaseID, st.Name, result.Err)
			continue
		}

		if st.Name == StageAlign {
			score := result.Score("alignment_score", 50)
			if score < gateThreshold {
				agg.GatePassed = false
				logging.PipelineWarn("run %s: alignment %d below gate %d, continuing under advisory warning",
					agg.CaseID, score, gateThreshold)
			}
		}
	}

	agg.Duration = time.Since(agg.StartedAt)
	p.collect(agg, pctx)

	decision, confidence := agg.FinalDecision()
	logging.Pipeline("run %s finished in %v: decision=%s confidence=%s",
		agg.CaseID, agg.Duration, decision, confidence)

	return agg, nil
}

func (p *Pipeline) collect(agg *Aggregate, pctx *Context) {
	agg.Results = pctx.Results()
	agg.Order = pctx.Order()
}

// runStage executes one stage with failure isolation: provider errors,
// parse surprises, and panics all degrade to a failed marker.
func (p *Pipeline) runStage(ctx context.Context, st Stage, text string, pctx *Context, rs *runState) (result *Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = FailedResult(st.Name, fmt.Errorf("stage panicked: %v", rec))
		}
	}()

	if st.Name == StageContext {
		if r := p.maybeDualContext(ctx, text, pctx, rs); r != nil {
			return r
		}
	}

	raw, rec, err := p.invoker.Invoke(ctx, st.Provider, provider.Request{
		Prompt:      st.Prompt(text, st.contextBlock(pctx), pctx),
		Model:       p.cfg.ModelFor(st.Name),
		Temperature: defaultTemperature,
	})
	// Failed attempts are recorded too; every stage has a models entry.
	rs.record(st.Name, rec)
	if err != nil {
		return FailedResult(st.Name, err)
	}

	result = ParseSchema(st.Name, raw, st.Schema)
	if st.Finalize != nil {
		st.Finalize(result)
	}
	return result
}

// maybeDualContext runs the dual-perspective sub-pipeline when the
// scenario's geopolitical signal warrants it. A nil return means the
// caller proceeds with the single-perspective stage; dual-mode failures
// fall back the same way rather than failing the stage.
func (p *Pipeline) maybeDualContext(ctx context.Context, text string, pctx *Context, rs *runState) *Result {
	sig := scenario.DetectGeopolitical(text, p.cfg.Divergence.ActivationThreshold, p.cfg.Divergence.MinKeywords)
	if !sig.Detected {
		logging.Divergence("not activated: score=%.2f keywords=%d", sig.Score, len(sig.Keywords))
		return nil
	}

	logging.Divergence("activated: score=%.2f keywords=%v", sig.Score, sig.Keywords)
	r, err := p.runDualContext(ctx, text, pctx, rs)
	if err != nil {
		logging.DivergenceWarn("dual-perspective analysis failed, falling back to single perspective: %v", err)
		return nil
	}
	return r
}
