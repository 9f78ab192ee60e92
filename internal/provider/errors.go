package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAuth marks credential failures (401/403 or a missing key). Auth
// errors are never retried against the same provider; the request moves
// straight to fallback.
var ErrAuth = errors.New("provider authentication failed")

// ErrNoProviders is returned by the factory when no provider has a
// usable credential for the default chain.
var ErrNoProviders = errors.New("no provider credentials configured")

// authError wraps a provider-specific detail under ErrAuth.
func authError(provider Name, detail string) error {
	return fmt.Errorf("%w: %s: %s", ErrAuth, provider, detail)
}

// IsFatal reports whether an error must not be retried.
func IsFatal(err error) bool {
	return errors.Is(err, ErrAuth)
}

// ExhaustedError is the terminal error after every provider in the
// fallback chain has failed. It records the chain in order so callers
// can report which providers were attempted.
type ExhaustedError struct {
	Chain []Name
	Last  error
}

func (e *ExhaustedError) Error() string {
	names := make([]string, len(e.Chain))
	for i, n := range e.Chain {
		names[i] = string(n)
	}
	return fmt.Sprintf("all providers exhausted (%s): %v", strings.Join(names, " -> "), e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// IsExhausted reports whether err is a provider-exhausted terminal error.
func IsExhausted(err error) bool {
	var ex *ExhaustedError
	return errors.As(err, &ex)
}
