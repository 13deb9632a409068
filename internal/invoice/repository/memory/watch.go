package memory

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch follows the seed file's directory, not the file: a rename-on-save
// would drop a watch held on the file itself.
func (r *implRepository) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", r.dsn("watch"), err)
	}

	target := filepath.Clean(r.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", r.dsn("watch"), err)
	}
	r.watcher = w

	go func() {
		for {
			select {
			case <-ctx.Done():
				w.Close()
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := r.Reload(ctx); err != nil {
					r.l.Warnf(ctx, "%s: keeping previous invoices: %v", r.dsn("watch"), err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				r.l.Warnf(ctx, "%s: %v", r.dsn("watch"), err)
			}
		}
	}()

	return nil
}
