package pipeline

import "counsel/internal/provider"

// defaultTemperature is used for every stage call.
const defaultTemperature = 0.7

// Stage declares one analytical pass: which prior results it may read,
// which provider family serves it, how its prompt is built, and the
// schema its output is parsed against. Stage values are data; the
// orchestrator runs them all through the same machinery.
type Stage struct {
	// Name is the stage identifier used in results and model config.
	Name string

	// Includes lists the prior stages whose results this stage may
	// read. Empty means the stage sees only the scenario. IncludeAll
	// overrides the list and grants the full accumulated context.
	Includes   []string
	IncludeAll bool

	// Provider is the provider family the stage prefers. The router
	// may still fall back when it is unavailable.
	Provider provider.Name

	// Prompt builds the stage prompt. contextBlock is the rendering of
	// the stages this one is allowed to see; pctx is available for the
	// rare stage that reads a specific upstream field directly.
	Prompt func(scenario, contextBlock string, pctx *Context) string

	// Schema declares the structured fields of the stage output.
	Schema []FieldSpec

	// Finalize, when set, runs after parsing to derive fields that
	// depend on other extracted values.
	Finalize func(r *Result)
}

// contextBlock renders the context slice this stage is allowed to see.
func (s Stage) contextBlock(pctx *Context) string {
	if pctx == nil {
		return ""
	}
	if s.IncludeAll {
		return pctx.Format(nil)
	}
	if len(s.Includes) == 0 {
		return ""
	}
	return pctx.Format(s.Includes)
}
