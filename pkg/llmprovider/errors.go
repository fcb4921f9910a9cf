package llmprovider

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrProviderTimeout       = errors.New("provider timeout")
)

// ProviderError records which provider produced the last failure of a chain.
type ProviderError struct {
	Provider string
	Model    string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (%s) after %d attempt(s): %v", e.Provider, e.Model, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classify tags deadline errors with ErrProviderTimeout.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrProviderTimeout) {
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return err
}

// retryable reports whether another attempt on the same provider is worth it.
// Errors that say otherwise through a Retryable method, and cancellations, are not.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var r interface{ Retryable() bool }
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return true
}
