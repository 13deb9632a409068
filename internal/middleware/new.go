package middleware

import (
	"invoice-assistant/pkg/log"
)

// Config tunes the middlewares. A zero RateLimitPerMin disables rate limiting.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
