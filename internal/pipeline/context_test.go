package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestContextRejectsOverwrite(t *testing.T) {
	pctx := NewContext()
	r := NewResult(StageAlign)
	r.Scores["alignment_score"] = 80

	if err := pctx.Add(r); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := pctx.Add(NewResult(StageAlign)); err == nil {
		t.Fatal("second add for the same stage succeeded")
	}
	if got := pctx.Get(StageAlign).Score("alignment_score", 0); got != 80 {
		t.Errorf("original result was disturbed: %d", got)
	}
}

func TestContextFormatSkipsFailedAndRaw(t *testing.T) {
	pctx := NewContext()

	ok := NewResult(StageAlign)
	ok.Scores["alignment_score"] = 72
	ok.Labels["integrity_severity"] = "low"
	ok.Raw = "SECRET RAW COMPLETION"
	if err := pctx.Add(ok); err != nil {
		t.Fatal(err)
	}
	if err := pctx.Add(FailedResult(StageInsight, errors.New("provider down"))); err != nil {
		t.Fatal(err)
	}

	out := pctx.Format(nil)
	if !strings.Contains(out, "ALIGN") {
		t.Errorf("align section missing:\n%s", out)
	}
	if !strings.Contains(out, "alignment_score: 72") {
		t.Errorf("score missing:\n%s", out)
	}
	if strings.Contains(out, "INSIGHT") {
		t.Errorf("failed stage leaked into context:\n%s", out)
	}
	if strings.Contains(out, "SECRET RAW COMPLETION") {
		t.Errorf("raw completion leaked into context:\n%s", out)
	}
}

func TestContextFormatRestrictsToInclude(t *testing.T) {
	pctx := NewContext()
	a := NewResult(StageAlign)
	a.Scores["alignment_score"] = 70
	b := NewResult(StageInsight)
	b.Scores["depth_score"] = 80
	if err := pctx.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := pctx.Add(b); err != nil {
		t.Fatal(err)
	}

	out := pctx.Format([]string{StageAlign})
	if strings.Contains(out, "INSIGHT") {
		t.Errorf("excluded stage present:\n%s", out)
	}
}

func TestContextFormatEmptyWhenNothingVisible(t *testing.T) {
	pctx := NewContext()
	if err := pctx.Add(FailedResult(StageAlign, errors.New("x"))); err != nil {
		t.Fatal(err)
	}
	if out := pctx.Format(nil); out != "" {
		t.Errorf("expected empty context, got:\n%s", out)
	}
}
