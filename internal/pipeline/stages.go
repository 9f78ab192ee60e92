package pipeline

import (
	"fmt"

	"counsel/internal/provider"
)

// Stage names, in pipeline order.
const (
	StageAlign       = "align"
	StageInsight     = "insight"
	StageContext     = "context"
	StageOpportunity = "opportunity"
	StageRisk        = "risk"
	StageBalance     = "balance"
	StageStrategy    = "strategy"
	StageOutreach    = "outreach"
	StageCoherence   = "coherence"
	StageDecision    = "decision"
)

// gateThreshold is the advisory alignment bar checked after the first
// stage. Falling below it logs a warning; the pipeline continues.
const gateThreshold = 60

// Closed vocabularies shared across stage schemas.
var (
	severityLevels   = []string{"none", "low", "medium", "high", "critical"}
	qualityLevels    = []string{"poor", "acceptable", "good", "excellent"}
	clarityLevels    = []string{"unclear", "developing", "clear", "compelling"}
	strengthLevels   = []string{"weak", "moderate", "strong", "robust"}
	coherenceLevels  = []string{"aligned", "partial", "conflicting"}
	decisionValues   = []string{"GO", "NO_GO", "CONDITIONAL_GO"}
	confidenceLevels = []string{"low", "medium", "high", "very_high"}
	yesNo            = []string{"yes", "no"}
)

// Stages returns the ten stage definitions in execution order. The
// context stage defined here is the single-perspective form; the
// orchestrator substitutes the dual-perspective sub-pipeline when the
// scenario warrants it.
func Stages() []Stage {
	return []Stage{
		alignStage(),
		insightStage(),
		contextStage(),
		opportunityStage(),
		riskStage(),
		balanceStage(),
		strategyStage(),
		outreachStage(),
		coherenceStage(),
		decisionStage(),
	}
}

func alignStage() Stage {
	return Stage{
		Name:     StageAlign,
		Provider: provider.Gemini,
		Prompt: func(scenario, _ string, _ *Context) string {
			return fmt.Sprintf(`You are the ALIGNMENT analyst, the first of ten passes in a structured scenario counsel pipeline.

Your role is SCOPE DEFINITION and ETHICAL VALIDATION.

SCENARIO TO EVALUATE:
%s

YOUR TASK:
Evaluate this scenario across the following dimensions:

1. ETHICAL ALIGNMENT (0-100):
   - Is the intent constructive rather than destructive?
   - Does it consider collective welfare alongside individual rights?

2. INTEGRITY CONCERNS:
   Identify any ethical concerns present:
   - Deception: intent to mislead or hide consequences
   - Exploitation: using others as means without consent
   - Harm maximization: primary goal is suffering
   - Inequity: deliberately unfair distribution of benefits or burdens
   - Irreversibility without consent: forcing permanent changes

   For each concern found, assess severity: low, medium, high, critical

3. DIMENSIONAL SCORING (-10 to +10):
   - Justice: fair distribution of benefits and burdens
   - Compassion: reduces suffering and promotes wellbeing
   - Wisdom: based on knowledge and careful consideration
   - Sustainability: long-term viability and non-harm
   - Dignity: respects autonomy and worth of all affected

4. VIABILITY:
   - Is this proposal worth carrying into the world?

5. THRESHOLD:
   - Does alignment meet the minimum bar (60) to continue analysis?

REQUIRED OUTPUT FORMAT:
alignment_score: [0-100]
integrity_severity: [none/low/medium/high/critical]
viable: [yes/no]
proceed: [yes/no]

DIMENSION SCORES:
- Justice: [score]
- Compassion: [score]
- Wisdom: [score]
- Sustainability: [score]
- Dignity: [score]

CONCERNS DETECTED:
- Type: [concern type]
  Severity: [severity level]
  Description: [brief explanation]

ANALYSIS:
[Your detailed ethical analysis explaining the scores]

Be rigorous. If you detect genuine harm maximization, state it clearly.`, scenario)
		},
		Schema: []FieldSpec{
			Percent("alignment_score", "alignment_score", 50),
			Enum("integrity_severity", "integrity_severity", severityLevels, "low"),
			Enum("viable", "viable", yesNo, ""),
			Enum("proceed", "proceed", yesNo, ""),
			Score("justice", "Justice", -10, 10, 0),
			Score("compassion", "Compassion", -10, 10, 0),
			Score("wisdom", "Wisdom", -10, 10, 0),
			Score("sustainability", "Sustainability", -10, 10, 0),
			Score("dignity", "Dignity", -10, 10, 0),
			Records("concerns", "CONCERNS DETECTED", "Type", "Severity", "Description"),
			Text("analysis", "ANALYSIS"),
		},
		Finalize: func(r *Result) {
			// When the model omits the yes/no fields, derive them from
			// the alignment score as the threshold rule specifies.
			derived := "no"
			if r.Score("alignment_score", 50) >= gateThreshold {
				derived = "yes"
			}
			if r.Labels["viable"] == "" {
				r.Labels["viable"] = derived
			}
			if r.Labels["proceed"] == "" {
				r.Labels["proceed"] = derived
			}
		},
	}
}

func insightStage() Stage {
	return Stage{
		Name:     StageInsight,
		Includes: []string{StageAlign},
		Provider: provider.Anthropic,
		Prompt: func(scenario, contextBlock string, _ *Context) string {
			return fmt.Sprintf(`You are the INSIGHT analyst, the second of ten passes in a structured scenario counsel pipeline.

Your role is WISDOM ANALYSIS through pattern recognition and historical insight.

%s
SCENARIO:
%s

YOUR TASK:
Analyze this scenario with wisdom and insight:

1. CONFIDENCE (0-100): how confident are you in analyzing this scenario?
2. EPISTEMIC HUMILITY (0-100): what don't we know? Higher means more uncertainty.
3. INSIGHT DEPTH (0-100): quality of understanding versus surface analysis.

4. PATTERNS IDENTIFIED:
   - Recurring historical, psychological, economic, social patterns
   - List at least 3-5 significant patterns

5. HISTORICAL PRECEDENTS:
   For each precedent:
   - Name and year
   - Outcome (success/failure/mixed)
   - Relevance to the current scenario

6. HIDDEN INSIGHTS:
   - Non-obvious insights, second-order effects, counterintuitive implications

7. PARADOXES:
   - Contradictions and tensions where competing values collide

REQUIRED OUTPUT FORMAT:
confidence_level: [0-100]
humility_ratio: [0-100]
depth_score: [0-100]

PATTERNS IDENTIFIED:
- [Pattern 1]
- [Pattern 2]

HISTORICAL PRECEDENTS:
- Name: [precedent name]
  Year: [year or range]
  Outcome: [outcome description]
  Relevance: [why it matters]

HIDDEN INSIGHTS:
- [Insight 1]

PARADOXES:
- [Paradox 1]

WISDOM ANALYSIS:
[Your deep analytical synthesis]

Emphasize quality of insight over quantity. Acknowledge what you don't know.`, contextBlock, scenario)
		},
		Schema: []FieldSpec{
			Percent("confidence_level", "confidence_level", 70),
			Percent("humility_ratio", "humility_ratio", 50),
			Percent("depth_score", "depth_score", 70),
			List("patterns", "PATTERNS IDENTIFIED"),
			Records("precedents", "HISTORICAL PRECEDENTS", "Name", "Year", "Outcome", "Relevance"),
			List("hidden_insights", "HIDDEN INSIGHTS"),
			List("paradoxes", "PARADOXES"),
			Text("analysis", "WISDOM ANALYSIS"),
		},
	}
}

func contextStage() Stage {
	return Stage{
		Name:     StageContext,
		Includes: []string{StageAlign, StageInsight},
		Provider: provider.Gemini,
		Prompt: func(scenario, contextBlock string, _ *Context) string {
			return fmt.Sprintf(`You are the CONTEXT analyst, the third of ten passes in a structured scenario counsel pipeline.

Your role is DEEP CONTEXTUAL UNDERSTANDING.

%s
SCENARIO:
%s

YOUR TASK:
Provide deep contextual analysis:

1. CONTEXTUAL DEPTH (0-100):
   - Cultural, historical, social, economic layers analyzed

2. STAKEHOLDER ANALYSIS:
   - Who benefits? Who is harmed? Who is overlooked?

3. ETHICAL TENSIONS:
   - What values are in conflict? Where do competing interests collide?

4. CONTEXTUAL FACTORS:
   - Historical, cultural, economic, political context

REQUIRED OUTPUT FORMAT:
depth_score: [0-100]

STAKEHOLDER ANALYSIS:
Beneficiaries:
- [Group 1]

Harmed:
- [Group 1]

Overlooked:
- [Group 1]

ETHICAL TENSIONS:
- [Tension 1]

CONTEXTUAL FACTORS:
- [Factor 1]

UNDERSTANDING ANALYSIS:
[Your deep contextual analysis]`, contextBlock, scenario)
		},
		Schema: []FieldSpec{
			Percent("depth_score", "depth_score", 70),
			List("beneficiaries", "Beneficiaries"),
			List("harmed", "Harmed"),
			List("overlooked", "Overlooked"),
			List("ethical_tensions", "ETHICAL TENSIONS"),
			List("contextual_factors", "CONTEXTUAL FACTORS"),
			Text("analysis", "UNDERSTANDING ANALYSIS"),
		},
		Finalize: func(r *Result) {
			r.Mode = ModeSimple
		},
	}
}

func opportunityStage() Stage {
	return Stage{
		Name:     StageOpportunity,
		Includes: []string{StageAlign, StageInsight, StageContext},
		Provider: provider.Gemini,
		Prompt: func(scenario, contextBlock string, _ *Context) string {
			return fmt.Sprintf(`You are the OPPORTUNITY analyst, the fourth of ten passes in a structured scenario counsel pipeline.

Your role is to identify OPPORTUNITIES and POSITIVE POTENTIAL.

%s
SCENARIO:
%s

YOUR TASK:
1. EXPANSION POTENTIAL (0-100): how much positive growth is possible?
2. GENEROSITY SCORE (0-100): how generous or beneficial is this proposal?

3. OPPORTUNITIES (list 3-5):
   For each:
   - Description
   - Potential impact: low/medium/high/transformative
   - Beneficiaries: who benefits
   - Confidence: 0-100

4. LONG-TERM BENEFITS (list 3-5)
5. POSITIVE EXTERNALITIES (unintended benefits)

OUTPUT FORMAT:
expansion_potential: [0-100]
generosity_score: [0-100]

OPPORTUNITIES:
- Description: [opportunity]
  Impact: [level]
  Beneficiaries: [list]
  Confidence: [0-100]

LONG-TERM BENEFITS:
- [benefit 1]

POSITIVE EXTERNALITIES:
- [externality 1]

OPPORTUNITY ANALYSIS:
[Your analysis]`, contextBlock, scenario)
		},
		Schema: []FieldSpec{
			Percent("expansion_potential", "expansion_potential", 60),
			Percent("generosity_score", "generosity_score", 60),
			Records("opportunities", "OPPORTUNITIES", "Description", "Impact", "Beneficiaries", "Confidence"),
			List("long_term_benefits", "LONG-TERM BENEFITS"),
			List("positive_externalities", "POSITIVE EXTERNALITIES"),
			Text("analysis", "OPPORTUNITY ANALYSIS"),
		},
	}
}

func riskStage() Stage {
	return Stage{
		Name:     StageRisk,
		Includes: []string{StageAlign, StageOpportunity},
		Provider: provider.Gemini,
		Prompt: func(scenario, contextBlock string, _ *Context) string {
			return fmt.Sprintf(`You are the RISK analyst, the fifth of ten passes in a structured scenario counsel pipeline.

Your role is to assess RISKS and CONSTRAINTS.

%s
SCENARIO:
%s

YOUR TASK:
1. CONSTRAINT STRENGTH (0-100): how strong are the constraints and limitations?
2. RISK SEVERITY: none/low/medium/high/critical

3. RISKS (list 3-5):
   For each:
   - Description
   - Severity: low/medium/high/critical
   - Probability: unlikely/possible/likely/certain
   - Affected parties: who is harmed
   - Mitigation: how to reduce risk

4. BOUNDARIES (what limits exist)
5. NEGATIVE EXTERNALITIES (unintended harms)
6. IRREVERSIBLE CONSEQUENCES (cannot be undone)

OUTPUT FORMAT:
constraint_strength: [0-100]
risk_severity: [level]

RISKS:
- Description: [risk]
  Severity: [level]
  Probability: [level]
  Affected Parties: [list]
  Mitigation: [strategy]

BOUNDARIES:
- [boundary 1]

NEGATIVE EXTERNALITIES:
- [externality 1]

IRREVERSIBLE CONSEQUENCES:
- [consequence 1]

RISK ANALYSIS:
[Your analysis]`, contextBlock, scenario)
		},
		Schema: []FieldSpec{
			Percent("constraint_strength", "constraint_strength", 50),
			Enum("risk_severity", "risk_severity", severityLevels, "medium"),
			Records("risks", "RISKS", "Description", "Severity", "Probability", "Affected Parties", "Mitigation"),
			List("boundaries", "BOUNDARIES"),
			List("negative_externalities", "NEGATIVE EXTERNALITIES"),
			List("irreversible_consequences", "IRREVERSIBLE CONSEQUENCES"),
			Text("analysis", "RISK ANALYSIS"),
		},
	}
}

func balanceStage() Stage {
	return Stage{
		Name:     StageBalance,
		Includes: []string{StageOpportunity, StageRisk},
		Provider: provider.Anthropic,
		Prompt: func(scenario, contextBlock string, _ *Context) string {
			return fmt.Sprintf(`You are the BALANCE analyst, the sixth of ten passes in a structured scenario counsel pipeline.

Your role is to create SYNTHESIS and BALANCE between opportunity and risk.

%s
SCENARIO:
%s

YOUR TASK:
Balance the expansion potential against the identified risks:

1. HARMONY SCORE (0-100): how harmonious is the overall proposal?
2. BALANCE QUALITY: poor/acceptable/good/excellent

3. SYNTHESIS STATEMENT: integrate opportunities and risks into a coherent vision.
4. OPPORTUNITY-RISK BALANCE: is expansion matched by appropriate constraint?
5. KEY TRADEOFFS: what must be sacrificed for what gain?
6. RECOMMENDED APPROACH: a path that honors both sides.

OUTPUT FORMAT:
harmony_score: [0-100]
balance_quality: [quality]

SYNTHESIS STATEMENT:
[Your integrated vision]

OPPORTUNITY-RISK BALANCE:
[Analysis of balance]

KEY TRADEOFFS:
- [Tradeoff 1]

RECOMMENDED APPROACH:
[Your recommendation]

SYNTHESIS ANALYSIS:
[Detailed analysis]`, contextBlock, scenario)
		},
		Schema: []FieldSpec{
			Percent("harmony_score", "harmony_score", 65),
			Enum("balance_quality", "balance_quality", qualityLevels, "acceptable"),
			Text("synthesis_statement", "SYNTHESIS STATEMENT", "OPPORTUNITY-RISK BALANCE", "KEY TRADEOFFS"),
			Text("opportunity_risk_balance", "OPPORTUNITY-RISK BALANCE", "KEY TRADEOFFS", "RECOMMENDED APPROACH"),
			List("key_tradeoffs", "KEY TRADEOFFS"),
			Text("recommended_approach", "RECOMMENDED APPROACH", "SYNTHESIS ANALYSIS"),
			Text("analysis", "SYNTHESIS ANALYSIS"),
		},
	}
}

func strategyStage() Stage {
	return Stage{
		Name:     StageStrategy,
		Includes: []string{StageBalance},
		Provider: provider.Gemini,
		Prompt: func(scenario, contextBlock string, _ *Context) string {
			return fmt.Sprintf(`You are the STRATEGY analyst, the seventh of ten passes in a structured scenario counsel pipeline.

Your role is STRATEGY FORMATION.

%s
SCENARIO:
%s

YOUR TASK:
Develop strategic approaches:

1. PERSISTENCE SCORE (0-100): how sustainable is implementation?
2. STRATEGIC CLARITY: unclear/developing/clear/compelling

3. STRATEGIES (list 3-5):
   For each:
   - Name
   - Description
   - Priority: low/medium/high/critical
   - Timeline: when to implement
   - Resources required

4. CRITICAL SUCCESS FACTORS (what must go right)
5. POTENTIAL OBSTACLES (what could block success)
6. LONG-TERM VISION (ultimate goal)

OUTPUT FORMAT:
persistence_score: [0-100]
strategic_clarity: [level]

STRATEGIES:
- Name: [strategy name]
  Description: [description]
  Priority: [level]
  Timeline: [timeframe]
  Resources: [resource 1], [resource 2]

CRITICAL SUCCESS FACTORS:
- [factor 1]

POTENTIAL OBSTACLES:
- [obstacle 1]

LONG-TERM VISION:
[Vision statement]

STRATEGY ANALYSIS:
[Analysis]`, contextBlock, scenario)
		},
		Schema: []FieldSpec{
			Percent("persistence_score", "persistence_score", 60),
			Enum("strategic_clarity", "strategic_clarity", clarityLevels, "developing"),
			Records("strategies", "STRATEGIES", "Name", "Description", "Priority", "Timeline", "Resources"),
			List("critical_success_factors", "CRITICAL SUCCESS FACTORS"),
			List("potential_obstacles", "POTENTIAL OBSTACLES"),
			Text("long_term_vision", "LONG-TERM VISION", "STRATEGY ANALYSIS"),
			Text("analysis", "STRATEGY ANALYSIS"),
		},
	}
}

func outreachStage() Stage {
	return Stage{
		Name:     StageOutreach,
		Includes: []string{StageStrategy},
		Provider: provider.Gemini,
		Prompt: func(scenario, contextBlock string, _ *Context) string {
			return fmt.Sprintf(`You are the OUTREACH analyst, the eighth of ten passes in a structured scenario counsel pipeline.

Your role is COMMUNICATION DESIGN.

%s
SCENARIO:
%s

YOUR TASK:
Design communication strategies:

1. CLARITY SCORE (0-100): how clear can messaging be?
2. COMMUNICATION QUALITY: poor/acceptable/good/excellent

3. COMMUNICATION CHANNELS (list 3-5):
   For each audience:
   - Audience: who
   - Key messages: what to communicate
   - Tone: how to communicate
   - Medium: channels to use

4. STAKEHOLDER MESSAGING: specific messages for different groups
5. TRANSPARENCY REQUIREMENTS: what must be disclosed

OUTPUT FORMAT:
clarity_score: [0-100]
communication_quality: [quality]

COMMUNICATION CHANNELS:
- Audience: [audience name]
  Key Messages: [message 1], [message 2]
  Tone: [tone description]
  Medium: [medium 1], [medium 2]

STAKEHOLDER MESSAGING:
[Group 1]: [specific message]

TRANSPARENCY REQUIREMENTS:
- [requirement 1]

COMMUNICATION ANALYSIS:
[Analysis]`, contextBlock, scenario)
		},
		Schema: []FieldSpec{
			Percent("clarity_score", "clarity_score", 70),
			Enum("communication_quality", "communication_quality", qualityLevels, "acceptable"),
			Records("channels", "COMMUNICATION CHANNELS", "Audience", "Key Messages", "Tone", "Medium"),
			Text("stakeholder_messaging", "STAKEHOLDER MESSAGING", "TRANSPARENCY REQUIREMENTS", "COMMUNICATION ANALYSIS"),
			List("transparency_requirements", "TRANSPARENCY REQUIREMENTS"),
			Text("analysis", "COMMUNICATION ANALYSIS"),
		},
	}
}

func coherenceStage() Stage {
	return Stage{
		Name:       StageCoherence,
		IncludeAll: true,
		Provider:   provider.Anthropic,
		Prompt: func(scenario, contextBlock string, _ *Context) string {
			return fmt.Sprintf(`You are the COHERENCE analyst, the ninth of ten passes in a structured scenario counsel pipeline.

Your role is INTEGRATION and COHERENCE VALIDATION.

You have received the results of every previous pass.

%s
SCENARIO:
%s

YOUR TASK:
Integrate and validate coherence across the whole analysis:

1. READINESS SCORE (0-100): how ready for execution?
2. INTEGRATION QUALITY: poor/acceptable/good/excellent
3. FOUNDATION STRENGTH: weak/moderate/strong/robust

4. COHERENCE ANALYSIS:
   Check alignment between the passes:
   - Ethical alignment versus final synthesis
   - Insight versus strategy
   - Context versus communication
   - Opportunity versus risk balance
   - Overall coherence status: aligned/partial/conflicting

5. GAPS IDENTIFIED:
   For each gap:
   - Gap description
   - Severity: minor/moderate/significant/critical
   - Area: which pass
   - Recommendation to address

6. GO/NO-GO RECOMMENDATION:
   - Decision: GO / NO_GO / CONDITIONAL_GO
   - Confidence: low/medium/high/very_high
   - Rationale and conditions (if CONDITIONAL_GO)

OUTPUT FORMAT:
readiness_score: [0-100]
integration_quality: [quality]
foundation_strength: [strength]

OVERALL COHERENCE:
Status: [aligned/partial/conflicting]
Details: [explanation]

GAPS IDENTIFIED:
- Gap: [description]
  Severity: [level]
  Area: [pass name]
  Recommendation: [how to address]

GO/NO-GO RECOMMENDATION:
Decision: [GO/NO_GO/CONDITIONAL_GO]
Confidence: [level]
Rationale: [explanation]
Conditions (if applicable):
- [Condition 1]

INTEGRATION SUMMARY:
[Your comprehensive summary]`, contextBlock, scenario)
		},
		Schema: []FieldSpec{
			Percent("readiness_score", "readiness_score", 60),
			Enum("integration_quality", "integration_quality", qualityLevels, "acceptable"),
			Enum("foundation_strength", "foundation_strength", strengthLevels, "moderate"),
			Enum("coherence_status", "Status", coherenceLevels, "partial"),
			Records("gaps", "GAPS IDENTIFIED", "Gap", "Severity", "Area", "Recommendation"),
			Enum("recommendation", "Decision", decisionValues, "CONDITIONAL_GO"),
			Enum("recommendation_confidence", "Confidence", confidenceLevels, "medium"),
			Text("rationale", "Rationale", "Conditions", "INTEGRATION SUMMARY"),
			List("conditions", "Conditions"),
			Text("summary", "INTEGRATION SUMMARY"),
		},
	}
}

func decisionStage() Stage {
	return Stage{
		Name:     StageDecision,
		Includes: []string{StageCoherence},
		Provider: provider.Anthropic,
		Prompt: func(scenario, contextBlock string, pctx *Context) string {
			recommendation := "CONDITIONAL_GO"
			if c := pctx.Get(StageCoherence); !c.Failed() {
				recommendation = c.Label("recommendation", recommendation)
			}
			return fmt.Sprintf(`You are the DECISION analyst, the tenth and final pass in a structured scenario counsel pipeline.

Your role is converting analysis into action.

UPSTREAM RECOMMENDATION: %s

%s
SCENARIO:
%s

YOUR TASK:
Make the final decision:

1. EXECUTION QUALITY: poor/acceptable/good/excellent
   - How well can this be carried out in reality?

2. FINAL DECISION: GO / NO_GO / CONDITIONAL_GO
   - GO: proceed with implementation
   - NO_GO: do not implement
   - CONDITIONAL_GO: proceed only if conditions are met

3. CONFIDENCE: low/medium/high/very_high

4. DECISION RATIONALE: clear explanation referencing the full analysis.
5. IMPLEMENTATION STEPS (if GO or CONDITIONAL_GO): 5-10 ordered, concrete steps.
6. CONDITIONS (if CONDITIONAL_GO): specific and verifiable.
7. SUCCESS METRICS: 3-5 measurable indicators.
8. MONITORING REQUIREMENTS: what to track, warning signs, correction triggers.
9. FINAL SUMMARY: the last word on this scenario.

OUTPUT FORMAT:
execution_quality: [quality]
decision: [GO/NO_GO/CONDITIONAL_GO]
confidence: [level]

DECISION RATIONALE:
[Detailed explanation drawing on the full analysis]

IMPLEMENTATION STEPS:
1. [Step 1]
2. [Step 2]

CONDITIONS (if CONDITIONAL_GO):
- [Condition 1]

SUCCESS METRICS:
- [Metric 1]

MONITORING REQUIREMENTS:
- [Requirement 1]

FINAL SUMMARY:
[Your conclusive assessment]`, recommendation, contextBlock, scenario)
		},
		Schema: []FieldSpec{
			Enum("execution_quality", "execution_quality", qualityLevels, "acceptable"),
			Enum("decision", "decision", decisionValues, "CONDITIONAL_GO"),
			Enum("confidence", "confidence", confidenceLevels, "medium"),
			Text("rationale", "DECISION RATIONALE", "IMPLEMENTATION STEPS", "CONDITIONS"),
			NumberedList("implementation_steps", "IMPLEMENTATION STEPS"),
			List("conditions", "CONDITIONS"),
			List("success_metrics", "SUCCESS METRICS"),
			List("monitoring_requirements", "MONITORING REQUIREMENTS"),
			Text("final_summary", "FINAL SUMMARY"),
		},
	}
}
