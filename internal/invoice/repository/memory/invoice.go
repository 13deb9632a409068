package memory

import (
	"context"
	"strings"

	repo "invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/model"
)

// GetOneInvoice retrieves a single Invoice by the provided filters (AND condition).
// Returns the zero Invoice when not found.
func (r *implRepository) GetOneInvoice(ctx context.Context, opt repo.GetOneInvoiceOptions) (model.Invoice, error) {
	if opt.IsEmpty() {
		return model.Invoice{}, repo.ErrEmptyFilter
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		inv model.Invoice
		ok  bool
	)
	if opt.ID != 0 {
		inv, ok = r.byID[opt.ID]
		if ok && opt.Number != "" && (inv.Number == nil || *inv.Number != opt.Number) {
			ok = false
		}
	} else {
		inv, ok = r.byNumber[opt.Number]
	}
	if !ok {
		return model.Invoice{}, nil
	}
	return inv, nil
}

// FindInvoiceByNumberLike returns the lowest-id Invoice whose number contains fragment, ignoring case.
func (r *implRepository) FindInvoiceByNumberLike(ctx context.Context, fragment string) (model.Invoice, error) {
	if fragment == "" {
		return model.Invoice{}, nil
	}
	needle := strings.ToLower(fragment)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inv := range r.ordered {
		if inv.Number != nil && strings.Contains(strings.ToLower(*inv.Number), needle) {
			return inv, nil
		}
	}
	return model.Invoice{}, nil
}
