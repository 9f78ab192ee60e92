package textparse

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScalar(t *testing.T) {
	text := "Alignment Score: 85\nReasoning: strong mission fit\n"

	if got := Scalar(text, "Alignment Score", "0"); got != "85" {
		t.Errorf("Scalar = %q, want %q", got, "85")
	}
	if got := Scalar(text, "Reasoning", ""); got != "strong mission fit" {
		t.Errorf("Scalar = %q, want %q", got, "strong mission fit")
	}
	if got := Scalar(text, "Missing Label", "fallback"); got != "fallback" {
		t.Errorf("Scalar missing label = %q, want default", got)
	}
	if got := Scalar("", "Anything", "d"); got != "d" {
		t.Errorf("Scalar on empty input = %q, want default", got)
	}
}

// Parsers run from concurrent pipeline runs and share the compiled
// pattern cache. Distinct labels per goroutine force cache writes from
// every one of them.
func TestScalarConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				label := fmt.Sprintf("metric_%d_%d", g, i)
				text := label + ": 42\nother: noise"
				if got := Scalar(text, label, ""); got != "42" {
					t.Errorf("Scalar(%s) = %q, want 42", label, got)
				}
				if got := Int(text, label, 0); got != 42 {
					t.Errorf("Int(%s) = %d, want 42", label, got)
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestScalarCaseInsensitive(t *testing.T) {
	if got := Scalar("alignment score: 42", "Alignment Score", ""); got != "42" {
		t.Errorf("Scalar = %q, want %q", got, "42")
	}
}

func TestInt(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"Score: 73", 73},
		{"Score: 73/100", 73},
		{"Score: approximately 73 out of 100", 73},
		{"Score: -5", -5},
		{"Score: none given", 42},
		{"no score at all", 42},
	}
	for _, tc := range cases {
		if got := Int(tc.text, "Score", 42); got != tc.want {
			t.Errorf("Int(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestBoundedIntClamps(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"Impact: 15", 10},
		{"Impact: -15", -10},
		{"Impact: 7", 7},
		{"Impact: garbled", 0},
	}
	for _, tc := range cases {
		if got := BoundedInt(tc.text, "Impact", -10, 10, 0); got != tc.want {
			t.Errorf("BoundedInt(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

// Clamping is idempotent: extracting a value already inside the bounds
// reproduces it exactly.
func TestBoundedIntIdempotent(t *testing.T) {
	for n := -10; n <= 10; n++ {
		text := "Impact: " + itoa(n)
		if got := BoundedInt(text, "Impact", -10, 10, 0); got != n {
			t.Fatalf("BoundedInt round trip: got %d, want %d", got, n)
		}
	}
}

func itoa(n int) string {
	if n < 0 {
		return "-" + itoa(-n)
	}
	if n < 10 {
		return string(rune('0' + n))
	}
	return itoa(n/10) + itoa(n%10)
}

func TestEnum(t *testing.T) {
	allowed := []string{"low", "medium", "high", "critical"}

	cases := []struct {
		text string
		want string
	}{
		{"Severity: HIGH", "high"},
		{"Severity: Medium", "medium"},
		{"Severity: high - supply chain exposure", "high"},
		{"Severity: highly unusual", "medium"},
		{"Severity: unknown", "medium"},
		{"nothing here", "medium"},
	}
	for _, tc := range cases {
		if got := Enum(tc.text, "Severity", allowed, "medium"); got != tc.want {
			t.Errorf("Enum(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestList(t *testing.T) {
	text := `KEY OPPORTUNITIES:
- Expand into adjacent markets
- Partner with local distributors

RISKS:
- Regulatory uncertainty
`
	got := List(text, "-", "KEY OPPORTUNITIES")
	want := []string{"Expand into adjacent markets", "Partner with local distributors"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestListAbsentSectionReturnsEmpty(t *testing.T) {
	got := List("no such content", "-", "KEY OPPORTUNITIES")
	if got == nil {
		t.Fatal("List returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("List = %v, want empty", got)
	}
}

func TestListStopsAtNextHeader(t *testing.T) {
	text := `CONCERNS:
- first concern
NEXT SECTION:
- should not appear
`
	got := List(text, "-", "CONCERNS")
	if len(got) != 1 || got[0] != "first concern" {
		t.Errorf("List = %v, want only the first concern", got)
	}
}

func TestNumberedList(t *testing.T) {
	text := `ACTION SEQUENCE:
1. Secure funding
2. Hire a regional lead
3. Launch pilot

SUCCESS METRICS:
- pilot conversion rate
`
	got := NumberedList(text, "ACTION SEQUENCE")
	want := []string{"Secure funding", "Hire a regional lead", "Launch pilot"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NumberedList mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionText(t *testing.T) {
	text := `SYNTHESIS STATEMENT:
Both framings agree the venture is viable
when local partners lead.

INTEGRATED RECOMMENDATIONS:
- proceed
`
	got := SectionText(text, "SYNTHESIS STATEMENT", []string{"INTEGRATED RECOMMENDATIONS"})
	want := "Both framings agree the venture is viable\nwhen local partners lead."
	if got != want {
		t.Errorf("SectionText = %q, want %q", got, want)
	}

	if got := SectionText(text, "NO SUCH SECTION", nil); got != "" {
		t.Errorf("SectionText absent = %q, want empty", got)
	}
}

func TestBlockRecords(t *testing.T) {
	text := `IDENTIFIED RISKS:
- Risk: Regulatory shift
  Severity: high
  Mitigation: engage counsel early
- Risk: Funding gap
  Severity: medium
  Mitigation: stage the rollout

OVERALL ASSESSMENT:
`
	got := BlockRecords(text, "IDENTIFIED RISKS", "Risk", []string{"Severity", "Mitigation"})
	want := []map[string]string{
		{"Risk": "Regulatory shift", "Severity": "high", "Mitigation": "engage counsel early"},
		{"Risk": "Funding gap", "Severity": "medium", "Mitigation": "stage the rollout"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BlockRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockRecordsSkipsMalformed(t *testing.T) {
	text := `IDENTIFIED RISKS:
- Risk:
  Severity: high
- Risk: Valid entry
  Severity: low
`
	got := BlockRecords(text, "IDENTIFIED RISKS", "Risk", []string{"Severity"})
	if len(got) != 1 {
		t.Fatalf("BlockRecords = %d records, want 1", len(got))
	}
	if got[0]["Risk"] != "Valid entry" {
		t.Errorf("kept record = %v", got[0])
	}
}

func TestBlockRecordsAbsentSection(t *testing.T) {
	got := BlockRecords("nothing", "IDENTIFIED RISKS", "Risk", nil)
	if got == nil || len(got) != 0 {
		t.Errorf("BlockRecords = %v, want empty non-nil", got)
	}
}

func TestSplitCSV(t *testing.T) {
	got := SplitCSV("alpha, beta , ,gamma")
	want := []string{"alpha", "beta", "gamma"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitCSV mismatch (-want +got):\n%s", diff)
	}
	if got := SplitCSV(""); got == nil || len(got) != 0 {
		t.Errorf("SplitCSV empty = %v, want empty non-nil", got)
	}
}
