package llmprovider

import (
	"context"
	"fmt"
	"time"

	"office-assistant/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Models returns the model names served by the configured providers, in
// priority order.
func (m *Manager) Models() []string {
	models := make([]string, 0, len(m.providers))
	for _, p := range m.providers {
		models = append(models, p.Model())
	}
	return models
}

// HasModel reports whether any configured provider serves the model.
func (m *Manager) HasModel(model string) bool {
	for _, p := range m.providers {
		if p.Model() == model {
			return true
		}
	}
	return false
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	return m.generate(ctx, m.providers, req)
}

// GenerateWithModel prefers providers serving the named model, then
// falls back through the remaining providers in priority order. An
// empty model behaves like GenerateContent.
func (m *Manager) GenerateWithModel(ctx context.Context, model string, req *Request) (*Response, error) {
	if model == "" {
		return m.generate(ctx, m.providers, req)
	}

	preferred := make([]Provider, 0, len(m.providers))
	rest := make([]Provider, 0, len(m.providers))
	for _, p := range m.providers {
		if p.Model() == model {
			preferred = append(preferred, p)
		} else {
			rest = append(rest, p)
		}
	}

	return m.generate(ctx, append(preferred, rest...), req)
}

func (m *Manager) generate(ctx context.Context, providers []Provider, req *Request) (*Response, error) {
	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Global timeout covers the entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(providers), ctx.Err())
		default:
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry implements retry with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), in, out)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
