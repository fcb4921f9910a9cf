package llmprovider

import (
	"context"
	"fmt"
	"time"

	"timesheet-assistant/pkg/log"
)

const logPrefixGenerate = "pkg.llmprovider.Manager.GenerateContent"

// Manager walks the configured providers in priority order. Each provider gets
// up to RetryAttempts tries; the next one is used only when FallbackEnabled.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole chain, retries included.
	MaxTotalTimeout time.Duration
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{providers: providers, config: config, logger: logger}
}

// Providers returns the chain in the order it is tried.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent returns the first successful response of the chain. The
// error of a failed chain wraps ErrAllProvidersFailed and a *ProviderError
// for the last provider tried.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var last *ProviderError
	for _, p := range m.providers {
		if err := ctx.Err(); err != nil {
			if last == nil {
				last = &ProviderError{Provider: p.Name(), Model: p.Model()}
			}
			last.Err = classify(err)
			break
		}

		resp, attempts, err := m.try(ctx, p, req)
		if err == nil {
			m.logger.Infof(ctx, "%s: provider=%s model=%s attempts=%d tokens_in=%d tokens_out=%d structured=%t",
				logPrefixGenerate, p.Name(), p.Model(), attempts,
				resp.Usage.InputTokens, resp.Usage.OutputTokens, req.ResponseSchema != nil)
			return resp, nil
		}

		m.logger.Warnf(ctx, "%s: provider=%s model=%s attempts=%d: %v",
			logPrefixGenerate, p.Name(), p.Model(), attempts, err)
		last = &ProviderError{Provider: p.Name(), Model: p.Model(), Attempts: attempts, Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, last)
}

// try calls p until it succeeds, runs out of attempts, or fails with an error
// that another attempt cannot fix. Waits grow linearly with RetryDelay.
func (m *Manager) try(ctx context.Context, p Provider, req *Request) (*Response, int, error) {
	var err error
	for attempt := 1; attempt <= m.config.RetryAttempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(time.Duration(attempt-1) * m.config.RetryDelay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, attempt - 1, classify(ctx.Err())
			}
		}

		var resp *Response
		resp, err = p.GenerateContent(ctx, req)
		if err == nil {
			if resp.Usage == nil {
				resp.Usage = &Usage{}
			}
			return resp, attempt, nil
		}

		err = classify(err)
		if !retryable(err) {
			return nil, attempt, err
		}
	}
	return nil, m.config.RetryAttempts, err
}
