package cache

import (
	"context"
	"fmt"

	repo "invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/model"
)

func (r *implRepository) GetOneInvoice(ctx context.Context, opt repo.GetOneInvoiceOptions) (model.Invoice, error) {
	key := fmt.Sprintf("one:%d:%s", opt.ID, opt.Number)
	return r.cached(key, func() (model.Invoice, error) {
		return r.next.GetOneInvoice(ctx, opt)
	})
}

func (r *implRepository) FindInvoiceByNumberLike(ctx context.Context, fragment string) (model.Invoice, error) {
	return r.cached("like:"+fragment, func() (model.Invoice, error) {
		return r.next.FindInvoiceByNumberLike(ctx, fragment)
	})
}

// cached stores successful lookups only; errors always reach the caller.
func (r *implRepository) cached(key string, load func() (model.Invoice, error)) (model.Invoice, error) {
	if inv, ok := r.entries.Get(key); ok {
		return inv, nil
	}
	inv, err := load()
	if err != nil {
		return model.Invoice{}, err
	}
	r.entries.Add(key, inv)
	return inv, nil
}
