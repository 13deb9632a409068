package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoice-assistant/pkg/log"
)

// Manager runs single-attempt generations against one provider.
// There is no retry and no fallback chain: the caller owns the fallback answer.
type Manager struct {
	provider Provider
	logger   log.Logger
}

// NewManager creates a new Manager around provider
func NewManager(provider Provider, logger log.Logger) *Manager {
	return &Manager{
		provider: provider,
		logger:   logger,
	}
}

// GenerateContent makes exactly one call to the provider
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (resp *Response, err error) {
	if m.provider == nil {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil {
		return nil, ErrInvalidRequest
	}

	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("%w: %v", ErrProviderPanic, r)
		}
		if err != nil {
			err = &ProviderError{Provider: m.provider.Name(), Err: err}
			m.logFailure(ctx, err)
			return
		}
		m.logSuccess(ctx, resp)
	}()

	resp, err = m.provider.GenerateContent(ctx, req)
	if err == nil && resp.Text() == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		resp = nil
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", ErrProviderTimeout, err)
		}
	}
	return resp, err
}

// Generate sends prompt and returns the trimmed text. A positive timeout bounds the whole call.
// Blank text is reported as ErrEmptyResponse.
func (m *Manager) Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := m.GenerateContent(ctx, &Request{Prompt: prompt})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		m.provider.Name(), m.provider.Model(), in, out)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		m.provider.Name(), m.provider.Model(), err)
}
