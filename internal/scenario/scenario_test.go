package scenario

import (
	"strings"
	"testing"
)

const validScenario = "A municipal library wants to extend opening hours using volunteer staff on weekends."

func TestValidateAcceptsReasonableText(t *testing.T) {
	if err := Validate(validScenario, 50, 50000); err != nil {
		t.Fatalf("valid scenario rejected: %v", err)
	}
}

func TestValidateLengthBounds(t *testing.T) {
	if err := Validate("", 50, 50000); err == nil {
		t.Error("empty scenario accepted")
	}
	if err := Validate("too short", 50, 50000); err == nil {
		t.Error("short scenario accepted")
	}
	if err := Validate(strings.Repeat("a", 101), 50, 100); err == nil {
		t.Error("oversized scenario accepted")
	}
}

func TestValidateRejectsInjection(t *testing.T) {
	cases := []string{
		validScenario + " <script>alert(1)</script>",
		validScenario + " javascript:void(0)",
		validScenario + " ${jndi:ldap://x}",
		validScenario + " {{template}}",
		validScenario + " then eval the result",
	}
	for _, tc := range cases {
		if err := Validate(tc, 50, 50000); err == nil {
			t.Errorf("suspicious scenario accepted: %q", tc)
		}
	}
}

func TestNormalize(t *testing.T) {
	in := "line one\x00 with\tnull\x07 bytes   and   runs\nline two"
	got := Normalize(in)
	if strings.ContainsRune(got, 0) {
		t.Error("null byte survived")
	}
	if strings.Contains(got, "   ") {
		t.Errorf("space runs survived: %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("newline was stripped: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
	got := Truncate(strings.Repeat("x", 50), 10)
	if len(got) != 10 || !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate = %q", got)
	}
}

func TestDetectGeopoliticalByKeywordCount(t *testing.T) {
	text := strings.Repeat("An ordinary business paragraph about logistics and staffing. ", 20) +
		"China, NATO and BRICS discuss sovereignty and a military treaty."

	sig := DetectGeopolitical(text, 0.15, 3)
	if !sig.Detected {
		t.Fatalf("geopolitical text not detected: score=%.2f keywords=%v", sig.Score, sig.Keywords)
	}
	if len(sig.Keywords) < 3 {
		t.Errorf("keywords = %v, want at least 3", sig.Keywords)
	}
}

func TestDetectGeopoliticalByDensity(t *testing.T) {
	// Two keywords in a short text: the per-100-words density trips the
	// threshold even below the keyword-count rule.
	sig := DetectGeopolitical("sanctions and tariff pressure", 0.15, 3)
	if !sig.Detected {
		t.Fatalf("dense text not detected: score=%.2f", sig.Score)
	}
	if sig.Score <= 0.15 {
		t.Errorf("score = %.2f, want above threshold", sig.Score)
	}
}

func TestDetectGeopoliticalNegative(t *testing.T) {
	sig := DetectGeopolitical(validScenario, 0.15, 3)
	if sig.Detected {
		t.Errorf("neutral scenario flagged: keywords=%v", sig.Keywords)
	}
	if len(sig.Keywords) != 0 {
		t.Errorf("unexpected keywords: %v", sig.Keywords)
	}
}
