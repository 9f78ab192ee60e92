package provider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeClient scripts a sequence of responses for a provider.
type fakeClient struct {
	name  Name
	calls int
	// script[i] is returned for call i; past the end the last entry repeats.
	script []fakeResult
	seen   []Request
}

type fakeResult struct {
	text string
	err  error
}

func (f *fakeClient) Complete(_ context.Context, req Request) (string, error) {
	f.seen = append(f.seen, req)
	i := f.calls
	if i >= len(f.script) {
		i = len(f.script) - 1
	}
	f.calls++
	r := f.script[i]
	return r.text, r.err
}

func (f *fakeClient) Name() Name { return f.name }

func newTestRouter(clients map[Name]Client) *Router {
	r := NewRouterWithClients(clients, Gemini, map[Name]string{
		Gemini:    "gemini-default",
		Anthropic: "claude-default",
	}, 3)
	r.jitter = false
	r.sleep = func(time.Duration) {}
	return r
}

func TestInvokeSuccessFirstAttempt(t *testing.T) {
	g := &fakeClient{name: Gemini, script: []fakeResult{{text: "ok"}}}
	r := newTestRouter(map[Name]Client{Gemini: g})

	text, rec, err := r.Invoke(context.Background(), Gemini, Request{Model: "m", Prompt: "p"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if text != "ok" {
		t.Errorf("text = %q", text)
	}
	if rec.Attempts != 1 || rec.FellBack || rec.Provider != Gemini {
		t.Errorf("record = %+v", rec)
	}
}

func TestInvokeRetriesTransientErrors(t *testing.T) {
	g := &fakeClient{name: Gemini, script: []fakeResult{
		{err: errors.New("503")},
		{err: errors.New("timeout")},
		{text: "third time"},
	}}
	r := newTestRouter(map[Name]Client{Gemini: g})

	text, rec, err := r.Invoke(context.Background(), Gemini, Request{Model: "m"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if text != "third time" || rec.Attempts != 3 {
		t.Errorf("text=%q rec=%+v", text, rec)
	}
}

func TestInvokeFallsBackAfterExhaustingPrimary(t *testing.T) {
	a := &fakeClient{name: Anthropic, script: []fakeResult{{err: errors.New("overloaded")}}}
	g := &fakeClient{name: Gemini, script: []fakeResult{{text: "fallback answer"}}}
	r := newTestRouter(map[Name]Client{Anthropic: a, Gemini: g})

	text, rec, err := r.Invoke(context.Background(), Anthropic, Request{Model: "claude-custom"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if text != "fallback answer" {
		t.Errorf("text = %q", text)
	}
	if !rec.FellBack || rec.Provider != Gemini {
		t.Errorf("record = %+v", rec)
	}
	if a.calls != 3 {
		t.Errorf("primary attempts = %d, want 3", a.calls)
	}
	// The fallback provider must not be asked for the primary's model.
	if got := g.seen[0].Model; got != "gemini-default" {
		t.Errorf("fallback model = %q, want gemini-default", got)
	}
}

func TestInvokeAuthErrorSkipsRetries(t *testing.T) {
	a := &fakeClient{name: Anthropic, script: []fakeResult{{err: authError(Anthropic, "status 401")}}}
	g := &fakeClient{name: Gemini, script: []fakeResult{{text: "served"}}}
	r := newTestRouter(map[Name]Client{Anthropic: a, Gemini: g})

	_, rec, err := r.Invoke(context.Background(), Anthropic, Request{Model: "m"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if a.calls != 1 {
		t.Errorf("auth failure retried: %d calls", a.calls)
	}
	if !rec.FellBack {
		t.Errorf("record = %+v", rec)
	}
}

func TestInvokeUnavailableProviderUsesDefault(t *testing.T) {
	g := &fakeClient{name: Gemini, script: []fakeResult{{text: "ok"}}}
	r := newTestRouter(map[Name]Client{Gemini: g})

	_, rec, err := r.Invoke(context.Background(), Anthropic, Request{Model: "claude-x"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if !rec.FellBack || rec.Provider != Gemini || rec.Model != "gemini-default" {
		t.Errorf("record = %+v", rec)
	}
}

func TestInvokeExhausted(t *testing.T) {
	g := &fakeClient{name: Gemini, script: []fakeResult{{err: errors.New("down")}}}
	r := newTestRouter(map[Name]Client{Gemini: g})

	_, rec, err := r.Invoke(context.Background(), Gemini, Request{Model: "m"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsExhausted(err) {
		t.Errorf("error not exhausted: %v", err)
	}
	if rec.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", rec.Attempts)
	}
	var ex *ExhaustedError
	if errors.As(err, &ex) && len(ex.Chain) != 1 {
		t.Errorf("chain = %v", ex.Chain)
	}
}

func TestInvokeContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := &fakeClient{name: Gemini, script: []fakeResult{{err: errors.New("slow")}}}
	r := newTestRouter(map[Name]Client{Gemini: g})
	r.sleep = func(time.Duration) { cancel() }

	_, _, err := r.Invoke(ctx, Gemini, Request{Model: "m"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBackoffCap(t *testing.T) {
	r := newTestRouter(map[Name]Client{Gemini: &fakeClient{name: Gemini, script: []fakeResult{{}}}})
	if d := r.backoff(1); d != 2*time.Second {
		t.Errorf("backoff(1) = %v", d)
	}
	if d := r.backoff(2); d != 4*time.Second {
		t.Errorf("backoff(2) = %v", d)
	}
	if d := r.backoff(5); d != 10*time.Second {
		t.Errorf("backoff(5) = %v, want capped at 10s", d)
	}
}
