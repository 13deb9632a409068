package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"invoice-assistant/internal/model"
	"invoice-assistant/pkg/log"
)

// Options configures the YAML-backed store.
type Options struct {
	SeedPath string
	// Watch reloads the seed file whenever it changes on disk.
	Watch bool
}

type implRepository struct {
	l    log.Logger
	path string

	mu       sync.RWMutex
	byNumber map[string]model.Invoice
	byID     map[int64]model.Invoice
	ordered  []model.Invoice

	watcher *fsnotify.Watcher
}

// New loads opt.SeedPath and, when opt.Watch is set, keeps it in sync until ctx is done or Close is called.
func New(ctx context.Context, l log.Logger, opt Options) (*implRepository, error) {
	if opt.SeedPath == "" {
		return nil, fmt.Errorf("invoice/repository/memory: seed path is required")
	}

	r := &implRepository{l: l, path: opt.SeedPath}
	if err := r.Reload(ctx); err != nil {
		return nil, err
	}

	if opt.Watch {
		if err := r.watch(ctx); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Close stops the file watcher, if any.
func (r *implRepository) Close() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("invoice/repository/memory.%s", method)
}
