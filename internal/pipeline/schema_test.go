package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const alignResponse = `alignment_score: 85
integrity_severity: low
viable: yes
proceed: yes

DIMENSION SCORES:
- Justice: 7
- Compassion: 8
- Wisdom: 6
- Sustainability: 5
- Dignity: 9

CONCERNS DETECTED:
- Type: Inequity
  Severity: low
  Description: benefits skew toward early adopters

ANALYSIS:
The proposal is constructive with minor distributional concerns.
`

func TestParseSchemaAlign(t *testing.T) {
	st := alignStage()
	r := ParseSchema(st.Name, alignResponse, st.Schema)
	st.Finalize(r)

	if r.Failed() {
		t.Fatal("well-formed response parsed as failed")
	}
	if got := r.Score("alignment_score", 0); got != 85 {
		t.Errorf("alignment_score = %d, want 85", got)
	}
	if got := r.Label("integrity_severity", ""); got != "low" {
		t.Errorf("integrity_severity = %q", got)
	}
	if got := r.Label("proceed", ""); got != "yes" {
		t.Errorf("proceed = %q", got)
	}
	wantDims := map[string]int{"justice": 7, "compassion": 8, "wisdom": 6, "sustainability": 5, "dignity": 9}
	for k, want := range wantDims {
		if got := r.Score(k, -99); got != want {
			t.Errorf("%s = %d, want %d", k, got, want)
		}
	}
	if len(r.Records["concerns"]) != 1 {
		t.Fatalf("concerns = %v", r.Records["concerns"])
	}
	want := map[string]string{
		"Type":        "Inequity",
		"Severity":    "low",
		"Description": "benefits skew toward early adopters",
	}
	if diff := cmp.Diff(want, r.Records["concerns"][0]); diff != "" {
		t.Errorf("concern record mismatch (-want +got):\n%s", diff)
	}
	if r.Texts["analysis"] == "" {
		t.Error("analysis text not captured")
	}
}

// Every stage schema must degrade to its defaults on garbage input
// instead of failing.
func TestParseSchemaGarbageYieldsDefaults(t *testing.T) {
	garbage := "I cannot comply with the requested format. Here are my thoughts instead..."

	for _, st := range Stages() {
		r := ParseSchema(st.Name, garbage, st.Schema)
		if st.Finalize != nil {
			st.Finalize(r)
		}
		if r.Failed() {
			t.Errorf("stage %s: garbage input marked failed", st.Name)
		}
		for _, f := range st.Schema {
			switch f.Kind {
			case KindScore:
				if got := r.Scores[f.Key]; got != f.Default {
					t.Errorf("stage %s: %s = %d, want default %d", st.Name, f.Key, got, f.Default)
				}
			case KindList, KindNumberedList:
				if r.Lists[f.Key] == nil {
					t.Errorf("stage %s: list %s is nil, want empty", st.Name, f.Key)
				}
			case KindRecords:
				if r.Records[f.Key] == nil {
					t.Errorf("stage %s: records %s is nil, want empty", st.Name, f.Key)
				}
			}
		}
	}
}

func TestParseSchemaAlignDefaultsDeriveGate(t *testing.T) {
	st := alignStage()
	r := ParseSchema(st.Name, "nothing usable here", st.Schema)
	st.Finalize(r)

	if got := r.Score("alignment_score", 0); got != 50 {
		t.Errorf("alignment_score default = %d, want 50", got)
	}
	// Default score 50 sits below the advisory bar, so the derived
	// yes/no fields must come out negative.
	if r.Labels["proceed"] != "no" || r.Labels["viable"] != "no" {
		t.Errorf("derived labels = proceed:%q viable:%q, want no/no",
			r.Labels["proceed"], r.Labels["viable"])
	}
}

const decisionResponse = `execution_quality: good
decision: GO
confidence: high

DECISION RATIONALE:
The analysis is internally consistent and the risks are mitigable.

IMPLEMENTATION STEPS:
1. Secure regional partnerships
2. Run a six month pilot
3. Review pilot metrics against targets

SUCCESS METRICS:
- pilot adoption rate
- stakeholder satisfaction

MONITORING REQUIREMENTS:
- monthly risk review

FINAL SUMMARY:
Proceed with the phased rollout.
`

func TestParseSchemaDecision(t *testing.T) {
	st := decisionStage()
	r := ParseSchema(st.Name, decisionResponse, st.Schema)

	if got := r.Label("decision", ""); got != "GO" {
		t.Errorf("decision = %q, want GO", got)
	}
	if got := r.Label("confidence", ""); got != "high" {
		t.Errorf("confidence = %q, want high", got)
	}
	if got := r.Label("execution_quality", ""); got != "good" {
		t.Errorf("execution_quality = %q, want good", got)
	}
	steps := r.Lists["implementation_steps"]
	if len(steps) != 3 || steps[0] != "Secure regional partnerships" {
		t.Errorf("implementation_steps = %v", steps)
	}
	if len(r.Lists["success_metrics"]) != 2 {
		t.Errorf("success_metrics = %v", r.Lists["success_metrics"])
	}
	if r.Texts["final_summary"] != "Proceed with the phased rollout." {
		t.Errorf("final_summary = %q", r.Texts["final_summary"])
	}
}

func TestParseSchemaDecisionDefaults(t *testing.T) {
	st := decisionStage()
	r := ParseSchema(st.Name, "no structure at all", st.Schema)

	if got := r.Label("decision", ""); got != "CONDITIONAL_GO" {
		t.Errorf("decision default = %q, want CONDITIONAL_GO", got)
	}
	if got := r.Label("confidence", ""); got != "medium" {
		t.Errorf("confidence default = %q, want medium", got)
	}
}
