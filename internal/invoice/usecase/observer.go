package usecase

import (
	"context"
	"time"

	pkgLog "invoice-assistant/pkg/log"
)

// Observer receives the outcome of each generative attempt.
type Observer interface {
	GenerationSucceeded(ctx context.Context, elapsed time.Duration)
	GenerationFailed(ctx context.Context, err error, elapsed time.Duration)
}

type logObserver struct {
	l pkgLog.Logger
}

// NewLogObserver reports generation outcomes through l.
func NewLogObserver(l pkgLog.Logger) Observer {
	return logObserver{l: l}
}

func (o logObserver) GenerationSucceeded(ctx context.Context, elapsed time.Duration) {
	o.l.Debugf(ctx, "%s generation succeeded in %s", LogPrefixGenerate, elapsed)
}

func (o logObserver) GenerationFailed(ctx context.Context, err error, elapsed time.Duration) {
	o.l.Warnf(ctx, "%s generation failed after %s, using fallback: %v", LogPrefixGenerate, elapsed, err)
}
