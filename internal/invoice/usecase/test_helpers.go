package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	repo "invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock invoice repository for testing
type mockRepository struct {
	invoices []model.Invoice
	err      error
	calls    []string
}

func (m *mockRepository) GetOneInvoice(ctx context.Context, opt repo.GetOneInvoiceOptions) (model.Invoice, error) {
	m.calls = append(m.calls, fmt.Sprintf("one:%d:%s", opt.ID, opt.Number))
	if m.err != nil {
		return model.Invoice{}, m.err
	}
	for _, inv := range m.invoices {
		if opt.ID != 0 && inv.ID != opt.ID {
			continue
		}
		if opt.Number != "" && (inv.Number == nil || *inv.Number != opt.Number) {
			continue
		}
		return inv, nil
	}
	return model.Invoice{}, nil
}

func (m *mockRepository) FindInvoiceByNumberLike(ctx context.Context, fragment string) (model.Invoice, error) {
	m.calls = append(m.calls, "like:"+fragment)
	if m.err != nil {
		return model.Invoice{}, m.err
	}
	for _, inv := range m.invoices {
		if inv.Number != nil && strings.Contains(strings.ToLower(*inv.Number), strings.ToLower(fragment)) {
			return inv, nil
		}
	}
	return model.Invoice{}, nil
}

// Mock generator for testing
type mockGenerator struct {
	text      string
	err       error
	delay     time.Duration // ignores ctx while sleeping
	panicWith any

	mu      sync.Mutex
	prompts []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.panicWith != nil {
		panic(m.panicWith)
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return m.text, m.err
}

func (m *mockGenerator) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// Mock observer for testing
type mockObserver struct {
	succeeded int
	failed    []error
}

func (m *mockObserver) GenerationSucceeded(ctx context.Context, elapsed time.Duration) {
	m.succeeded++
}

func (m *mockObserver) GenerationFailed(ctx context.Context, err error, elapsed time.Duration) {
	m.failed = append(m.failed, err)
}
