package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	err       error
	response  *Response
	delay     time.Duration
	panicWith any
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestGenerate_Success(t *testing.T) {
	provider := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: &Response{Content: "  Invoice F123 is paid.\n", Usage: &Usage{InputTokens: 10, OutputTokens: 5}},
	}
	logger := &mockLogger{}
	manager := NewManager(provider, logger)

	text, err := manager.Generate(context.Background(), "prompt", time.Second)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "Invoice F123 is paid." {
		t.Errorf("Expected trimmed text, got %q", text)
	}
	if provider.callCount != 1 {
		t.Errorf("Expected 1 call, got %d", provider.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected one success log, got info=%d warn=%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		provider *mockProvider
		timeout  time.Duration
		wantErr  error
	}{
		{
			name:     "provider error",
			provider: &mockProvider{name: "p", err: errors.New("status 500")},
		},
		{
			name:     "blank text",
			provider: &mockProvider{name: "p", response: &Response{Content: " \n\t"}},
			wantErr:  ErrEmptyResponse,
		},
		{
			name:     "nil response",
			provider: &mockProvider{name: "p"},
			wantErr:  ErrEmptyResponse,
		},
		{
			name:     "timeout",
			provider: &mockProvider{name: "p", delay: time.Second, response: &Response{Content: "late"}},
			timeout:  20 * time.Millisecond,
			wantErr:  ErrProviderTimeout,
		},
		{
			name:     "panic",
			provider: &mockProvider{name: "p", panicWith: "boom"},
			wantErr:  ErrProviderPanic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			manager := NewManager(tt.provider, logger)

			text, err := manager.Generate(context.Background(), "prompt", tt.timeout)
			if err == nil {
				t.Fatalf("Expected error, got text %q", text)
			}
			if text != "" {
				t.Errorf("Expected empty text on failure, got %q", text)
			}
			var perr *ProviderError
			if !errors.As(err, &perr) || perr.Provider != "p" {
				t.Errorf("Expected ProviderError for p, got %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if tt.provider.callCount != 1 {
				t.Errorf("Expected exactly 1 attempt, got %d", tt.provider.callCount)
			}
			if len(logger.warnMessages) != 1 {
				t.Errorf("Expected one failure log, got %d", len(logger.warnMessages))
			}
		})
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), &Request{Prompt: "x"}); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_NilRequest(t *testing.T) {
	manager := NewManager(&mockProvider{name: "p"}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got %v", err)
	}
}
