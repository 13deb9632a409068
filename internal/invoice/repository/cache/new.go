package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/model"
)

// Options sizes the lookup cache.
type Options struct {
	Size int
	TTL  time.Duration
}

type implRepository struct {
	next    repository.Repository
	entries *expirable.LRU[string, model.Invoice]
}

// New wraps next with an expiring LRU of lookup results, misses included.
// A non-positive Size returns next unchanged.
func New(next repository.Repository, opt Options) repository.Repository {
	if opt.Size <= 0 {
		return next
	}
	return &implRepository{
		next:    next,
		entries: expirable.NewLRU[string, model.Invoice](opt.Size, nil, opt.TTL),
	}
}
