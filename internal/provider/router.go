package provider

import (
	"context"
	"math/rand"
	"time"

	"counsel/internal/logging"
)

const (
	backoffBase = 2 * time.Second
	backoffCap  = 10 * time.Second
)

// CallRecord describes how a completion was actually served: which
// provider answered, with which model, after how many attempts, and
// whether the request fell back from the provider originally asked for.
type CallRecord struct {
	Provider Name
	Model    string
	Attempts int
	FellBack bool
	Latency  time.Duration
}

// Router dispatches completion requests to provider clients with
// per-provider retry and cross-provider fallback. Availability is fixed
// at construction: a provider without a credential is simply absent from
// the clients map and requests for it route to the default chain.
type Router struct {
	clients      map[Name]Client
	defaultName  Name
	defaultModel map[Name]string
	maxAttempts  int
	jitter       bool

	// sleep is swappable so retry timing is testable.
	sleep func(time.Duration)
}

// NewRouterWithClients builds a router over pre-constructed clients.
// defaultName must be present in clients.
func NewRouterWithClients(clients map[Name]Client, defaultName Name, defaultModel map[Name]string, maxAttempts int) *Router {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Router{
		clients:      clients,
		defaultName:  defaultName,
		defaultModel: defaultModel,
		maxAttempts:  maxAttempts,
		jitter:       true,
		sleep:        time.Sleep,
	}
}

// Available reports whether a credentialed client exists for name.
func (r *Router) Available(name Name) bool {
	_, ok := r.clients[name]
	return ok
}

// DefaultProvider returns the provider requests fall back to.
func (r *Router) DefaultProvider() Name { return r.defaultName }

// chain returns the ordered providers to try for a request: the one
// asked for (when available), then the default.
func (r *Router) chain(name Name) []Name {
	if name == r.defaultName || !r.Available(name) {
		return []Name{r.defaultName}
	}
	return []Name{name, r.defaultName}
}

// backoff returns the wait before retry attempt n (1-based), with
// exponential growth and an optional jitter of up to 25%.
func (r *Router) backoff(attempt int) time.Duration {
	d := backoffBase << (attempt - 1)
	if d > backoffCap {
		d = backoffCap
	}
	if r.jitter {
		d += time.Duration(rand.Int63n(int64(d) / 4))
	}
	return d
}

// Invoke runs the request through the fallback chain. Each provider
// gets up to maxAttempts tries with exponential backoff; auth errors
// skip remaining attempts and move on immediately. When every provider
// in the chain fails the returned error is an *ExhaustedError.
func (r *Router) Invoke(ctx context.Context, name Name, req Request) (string, CallRecord, error) {
	start := time.Now()
	chain := r.chain(name)

	rec := CallRecord{Provider: name, Model: req.Model}
	var lastErr error

	for _, target := range chain {
		client, ok := r.clients[target]
		if !ok {
			continue
		}

		callReq := req
		if target != name {
			// Serving from a different provider means the original
			// model identifier no longer applies.
			if m, ok := r.defaultModel[target]; ok {
				callReq.Model = m
			}
			rec.FellBack = true
			logging.ProviderWarn("falling back from %s to %s (model %s)", name, target, callReq.Model)
		}

		for attempt := 1; attempt <= r.maxAttempts; attempt++ {
			rec.Attempts++

			text, err := client.Complete(ctx, callReq)
			if err == nil {
				rec.Provider = target
				rec.Model = callReq.Model
				rec.Latency = time.Since(start)
				logging.Provider("%s/%s completed in %v (attempt %d)", target, callReq.Model, rec.Latency, attempt)
				return text, rec, nil
			}

			lastErr = err
			if ctx.Err() != nil {
				rec.Latency = time.Since(start)
				return "", rec, ctx.Err()
			}
			if IsFatal(err) {
				logging.ProviderWarn("%s auth failure, skipping retries: %v", target, err)
				break
			}

			logging.ProviderWarn("%s/%s attempt %d/%d failed: %v", target, callReq.Model, attempt, r.maxAttempts, err)
			if attempt < r.maxAttempts {
				select {
				case <-ctx.Done():
					rec.Latency = time.Since(start)
					return "", rec, ctx.Err()
				default:
				}
				r.sleep(r.backoff(attempt))
			}
		}
	}

	rec.Latency = time.Since(start)
	return "", rec, &ExhaustedError{Chain: chain, Last: lastErr}
}
