package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDivergenceEmptyListsAreNeutral(t *testing.T) {
	delta, tier := Divergence(nil, []string{"stability"})
	if delta != 50 || tier != "medium" {
		t.Errorf("Divergence = %d/%s, want 50/medium", delta, tier)
	}
	delta, tier = Divergence([]string{"liberty"}, nil)
	if delta != 50 || tier != "medium" {
		t.Errorf("Divergence = %d/%s, want 50/medium", delta, tier)
	}
}

func TestDivergenceIdenticalConcerns(t *testing.T) {
	concerns := []string{
		"protection of individual rights",
		"long term economic stability",
	}
	delta, tier := Divergence(concerns, concerns)
	if delta != 0 || tier != "low" {
		t.Errorf("Divergence of identical lists = %d/%s, want 0/low", delta, tier)
	}
}

func TestDivergenceDisjointConcerns(t *testing.T) {
	west := []string{"individual liberty above all"}
	east := []string{"collective harmony and social order"}
	delta, tier := Divergence(west, east)
	if delta != 100 || tier != "high" {
		t.Errorf("Divergence of disjoint lists = %d/%s, want 100/high", delta, tier)
	}
}

func TestDivergenceSymmetric(t *testing.T) {
	a := []string{"economic growth for the region", "national security concerns"}
	b := []string{"regional economic growth priorities", "cultural preservation"}

	da, _ := Divergence(a, b)
	db, _ := Divergence(b, a)
	if da != db {
		t.Errorf("Divergence not symmetric: %d vs %d", da, db)
	}
}

func TestDivergenceTiers(t *testing.T) {
	// Four concerns with a controlled number of similar pairs give
	// exact quarter steps: delta = (1 - similar/4) * 100.
	mk := func(similar int) ([]string, []string) {
		a := make([]string, 4)
		b := make([]string, 4)
		for i := 0; i < 4; i++ {
			suffix := string(rune('a' + i))
			if i < similar {
				a[i] = "shared topic alpha " + suffix
				b[i] = "shared topic beta " + suffix
			} else {
				a[i] = "only west item " + suffix
				b[i] = "just east entry " + suffix
			}
		}
		return a, b
	}

	cases := []struct {
		similar int
		delta   int
		tier    string
	}{
		{similar: 0, delta: 100, tier: "high"},
		{similar: 1, delta: 75, tier: "high"},
		{similar: 2, delta: 50, tier: "medium"},
		{similar: 3, delta: 25, tier: "low"},
		{similar: 4, delta: 0, tier: "low"},
	}
	for _, tc := range cases {
		a, b := mk(tc.similar)
		delta, tier := Divergence(a, b)
		if delta != tc.delta || tier != tc.tier {
			t.Errorf("similar=%d: Divergence = %d/%s, want %d/%s",
				tc.similar, delta, tier, tc.delta, tc.tier)
		}
	}
}

func TestConvergenceStrongOverlap(t *testing.T) {
	west := []string{"reducing poverty in rural areas matters"}
	east := []string{"poverty in rural areas must be addressed"}

	got := Convergence(west, east)
	want := []string{
		"Both perspectives recognize: reducing poverty in rural areas matters",
		"Universal agreement: Poverty reduction is valuable",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convergence mismatch (-want +got):\n%s", diff)
	}
}

func TestConvergenceUniversalTriggers(t *testing.T) {
	west := []string{"minimizing harm to civilians"}
	east := []string{"maintaining state control"}

	got := Convergence(west, east)
	found := false
	for _, p := range got {
		if p == "Universal agreement: Reducing suffering matters" {
			found = true
		}
	}
	if !found {
		t.Errorf("harm language did not trigger suffering convergence: %v", got)
	}
}

func TestConvergenceEmptyInputs(t *testing.T) {
	got := Convergence(nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Convergence(nil, nil) = %v, want empty non-nil", got)
	}
}

func TestConvergenceCapsAtFive(t *testing.T) {
	var west, east []string
	for i := 0; i < 8; i++ {
		c := "common theme number item " + string(rune('a'+i))
		west = append(west, c)
		east = append(east, c)
	}
	got := Convergence(west, east)
	if len(got) > 5 {
		t.Errorf("Convergence returned %d points, cap is 5", len(got))
	}
}
