package pipeline

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"counsel/internal/logging"
	"counsel/internal/provider"
	"counsel/internal/textparse"
)

// Divergence tier boundaries.
const (
	divergenceMediumFloor = 40
	divergenceHighFloor   = 60
)

// blindSpotLimit caps the blind spots carried per perspective.
const blindSpotLimit = 6

// Divergence scores how far apart two concern lists sit, on a 0-100
// scale, with the matching tier. Concerns sharing at least two
// lowercase tokens count as similar; the score is the dissimilar share
// of the larger list. Two empty lists carry no signal and score the
// neutral 50/"medium".
func Divergence(a, b []string) (int, string) {
	if len(a) == 0 || len(b) == 0 {
		return 50, "medium"
	}

	similar := 0
	for _, ca := range a {
		for _, cb := range b {
			if tokenOverlap(ca, cb) >= 2 {
				similar++
				break
			}
		}
	}

	total := len(a)
	if len(b) > total {
		total = len(b)
	}
	similarity := float64(similar) / float64(total)
	delta := int((1 - similarity) * 100)

	switch {
	case delta >= divergenceHighFloor:
		return delta, "high"
	case delta >= divergenceMediumFloor:
		return delta, "medium"
	default:
		return delta, "low"
	}
}

// Convergence finds points both concern lists agree on: pairs sharing
// at least three tokens, plus universal triggers for poverty and
// suffering language. At most five points are returned, deduplicated
// in discovery order.
func Convergence(a, b []string) []string {
	points := []string{}
	seen := make(map[string]bool)

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			points = append(points, p)
		}
	}

	for _, ca := range a {
		for _, cb := range b {
			if tokenOverlap(ca, cb) >= 3 {
				add("Both perspectives recognize: " + clip(ca, 100))
				break
			}
		}
	}

	all := append(append([]string{}, a...), b...)
	for _, c := range all {
		lc := strings.ToLower(c)
		if strings.Contains(lc, "poverty") || strings.Contains(lc, "poor") {
			add("Universal agreement: Poverty reduction is valuable")
			break
		}
	}
	for _, c := range all {
		lc := strings.ToLower(c)
		if strings.Contains(lc, "suffering") || strings.Contains(lc, "harm") {
			add("Universal agreement: Reducing suffering matters")
			break
		}
	}

	if len(points) > 5 {
		points = points[:5]
	}
	return points
}

// tokenOverlap counts distinct lowercase words two phrases share.
func tokenOverlap(a, b string) int {
	aw := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(a)) {
		aw[w] = true
	}
	count := 0
	seen := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(b)) {
		if aw[w] && !seen[w] {
			seen[w] = true
			count++
		}
	}
	return count
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// perspectiveLens returns the framing instruction for one side of the
// dual analysis.
func perspectiveLens(perspective string) string {
	if perspective == "Western" {
		return `PERSPECTIVE: Analyze from a WESTERN civilizational lens
- Emphasis on individual rights, liberty, universal values
- Liberal democratic frameworks
- Secular humanist ethics
- Post-Enlightenment philosophy`
	}
	return `PERSPECTIVE: Analyze from an EASTERN civilizational lens
- Emphasis on collective harmony, duty, contextual values
- Confucian/Asian value frameworks
- Social stability and order
- Community over individualism`
}

// perspectivePrompt builds the framed analysis prompt for one side.
func perspectivePrompt(scenario, contextBlock, perspective string) string {
	return fmt.Sprintf(`You are performing a multi-civilizational understanding analysis.

%s

%s
SCENARIO:
%s

YOUR TASK:
Analyze this scenario from your assigned civilizational perspective:

1. PRIMARY CONCERNS: what matters most from this perspective?
2. BLIND SPOTS: what does THIS perspective miss? What assumptions are embedded?
3. RISKS PERCEIVED: what dangers does this perspective see?
4. OPPORTUNITIES PERCEIVED: what benefits does this perspective see?
5. MORAL FRAMING: how is this framed ethically?

OUTPUT FORMAT:
primary_concerns:
- [Concern 1]
- [Concern 2]

blind_spots:
- [Blind spot 1 of THIS perspective]
- [Blind spot 2 of THIS perspective]

risks_perceived:
- [Risk 1]

opportunities_perceived:
- [Opportunity 1]

moral_framing:
[How this perspective frames the ethical question]

ANALYSIS:
[Detailed analysis from this civilizational lens]`, perspectiveLens(perspective), contextBlock, scenario)
}

// synthesisPrompt asks for the third-path synthesis over both framings.
func synthesisPrompt(scenario string, westBlinds, eastBlinds, convergence []string) string {
	return fmt.Sprintf(`You are synthesizing two civilizational perspectives on a scenario.

SCENARIO:
%s

WESTERN BLIND SPOTS (what the Western perspective misses):
%s

EASTERN BLIND SPOTS (what the Eastern perspective misses):
%s

UNIVERSAL CONVERGENCE (what both agree on):
%s

YOUR TASK:
Generate a TRANSCENDENT SYNTHESIS that:
1. Acknowledges both perspectives' valid concerns
2. Identifies a third path that addresses blind spots of both
3. Builds on universal convergence
4. Offers a novel approach neither perspective alone would see

Keep the response to 150-200 words. Be specific and actionable.

TRANSCENDENT SYNTHESIS:`, scenario, bullets(firstN(westBlinds, 4)), bullets(firstN(eastBlinds, 4)), bullets(convergence))
}

func bullets(items []string) string {
	if len(items) == 0 {
		return "- (none identified)"
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// runDualContext runs the dual-perspective form of the context stage:
// two opposing framings of the same scenario, a divergence measurement
// between their stated concerns, and a synthesis call over both. The
// framing calls run concurrently. Any failure here is returned to the
// caller, which falls back to the single-perspective stage.
func (p *Pipeline) runDualContext(ctx context.Context, scenario string, pctx *Context, rs *runState) (*Result, error) {
	contextBlock := pctx.Format([]string{StageAlign, StageInsight})

	var westRaw, eastRaw string
	var westRec, eastRec provider.CallRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, rec, err := p.invoker.Invoke(gctx, provider.Gemini, provider.Request{
			Prompt:      perspectivePrompt(scenario, contextBlock, "Western"),
			Model:       p.cfg.ModelFor(StageContext),
			Temperature: defaultTemperature,
		})
		if err != nil {
			return fmt.Errorf("western perspective: %w", err)
		}
		westRaw, westRec = text, rec
		return nil
	})
	g.Go(func() error {
		text, rec, err := p.invoker.Invoke(gctx, provider.DeepSeek, provider.Request{
			Prompt:      perspectivePrompt(scenario, contextBlock, "Eastern"),
			Model:       p.cfg.ModelFor("context_east"),
			Temperature: defaultTemperature,
		})
		if err != nil {
			return fmt.Errorf("eastern perspective: %w", err)
		}
		eastRaw, eastRec = text, rec
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	westConcerns := textparse.List(westRaw, "-", "primary_concerns")
	eastConcerns := textparse.List(eastRaw, "-", "primary_concerns")
	westBlinds := textparse.List(westRaw, "-", "blind_spots")
	eastBlinds := textparse.List(eastRaw, "-", "blind_spots")

	delta, tier := Divergence(westConcerns, eastConcerns)
	convergence := Convergence(westConcerns, eastConcerns)

	logging.Divergence("delta=%d tier=%s blind_spots=%d convergence=%d",
		delta, tier, len(westBlinds)+len(eastBlinds), len(convergence))

	synthesis, synthRec, err := p.invoker.Invoke(ctx, provider.Anthropic, provider.Request{
		Prompt:      synthesisPrompt(scenario, westBlinds, eastBlinds, convergence),
		Model:       p.cfg.ModelFor(StageDecision),
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesis: %w", err)
	}

	r := NewResult(StageContext)
	r.Mode = ModeDual
	// Dual mode is inherently deep analysis.
	r.Scores["depth_score"] = 90
	r.Scores["bias_delta"] = delta
	r.Scores["blind_spots_detected"] = len(westBlinds) + len(eastBlinds)
	r.Scores["convergence_points"] = len(convergence)
	r.Labels["divergence_level"] = tier
	r.Lists["west_blind_spots"] = firstN(westBlinds, blindSpotLimit)
	r.Lists["east_blind_spots"] = firstN(eastBlinds, blindSpotLimit)
	r.Lists["universal_convergence"] = convergence
	r.Lists["western_priority"] = firstN(westConcerns, 3)
	r.Lists["eastern_priority"] = firstN(eastConcerns, 3)
	r.Lists["contextual_factors"] = []string{
		"Multi-civilizational value divergence",
		"Geopolitical tension present",
		"Cultural assumptions embedded",
	}
	r.Texts["synthesis"] = strings.TrimSpace(synthesis)
	r.Raw = fmt.Sprintf("=== WESTERN PERSPECTIVE ===\n%s\n\n=== EASTERN PERSPECTIVE ===\n%s", westRaw, eastRaw)

	rs.record(StageContext, westRec)
	rs.record(StageContext+"_east", eastRec)
	rs.record(StageContext+"_synthesis", synthRec)

	return r, nil
}
