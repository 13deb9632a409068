package usecase

import (
	"context"
	"time"

	"invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/invoice/template"
	pkgLog "invoice-assistant/pkg/log"
)

// Generator is the generative service boundary: one bounded attempt per call.
type Generator interface {
	Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error)
}

// Options tunes the use case. Zero values take the package defaults.
type Options struct {
	GenerationTimeout time.Duration
	Currency          string
	MinMessageLength  int
	// Observer is told about every generative attempt; defaults to logging.
	Observer Observer
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	generator Generator
	composer  template.Composer
	observer  Observer

	currency         string
	timeout          time.Duration
	minMessageLength int
}

// New creates a new invoice UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, generator Generator, opt Options) *implUseCase {
	if opt.GenerationTimeout <= 0 {
		opt.GenerationTimeout = DefaultGenerationTimeout
	}
	if opt.MinMessageLength <= 0 {
		opt.MinMessageLength = DefaultMinMessageLength
	}
	if opt.Currency == "" {
		opt.Currency = template.DefaultCurrency
	}
	if opt.Observer == nil {
		opt.Observer = NewLogObserver(l)
	}

	return &implUseCase{
		l:                l,
		repo:             repo,
		generator:        generator,
		composer:         template.New(opt.Currency),
		observer:         opt.Observer,
		currency:         opt.Currency,
		timeout:          opt.GenerationTimeout,
		minMessageLength: opt.MinMessageLength,
	}
}
