package usecase

import (
	"context"
	"strconv"

	repo "invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/model"
)

// resolveInvoice tries, in order: exact number, numeric id (digits only), number substring.
// A repository error ends the search and counts as not found.
func (uc *implUseCase) resolveInvoice(ctx context.Context, identifier string) (model.Invoice, bool) {
	inv, err := uc.repo.GetOneInvoice(ctx, repo.GetOneInvoiceOptions{Number: identifier})
	if err != nil {
		uc.l.Errorf(ctx, "%s GetOneInvoice by number %q: %v", LogPrefixResolve, identifier, err)
		return model.Invoice{}, false
	}
	if !inv.IsZero() {
		return inv, true
	}

	if id, ok := parseID(identifier); ok {
		inv, err = uc.repo.GetOneInvoice(ctx, repo.GetOneInvoiceOptions{ID: id})
		if err != nil {
			uc.l.Errorf(ctx, "%s GetOneInvoice by id %d: %v", LogPrefixResolve, id, err)
			return model.Invoice{}, false
		}
		if !inv.IsZero() {
			return inv, true
		}
	}

	inv, err = uc.repo.FindInvoiceByNumberLike(ctx, identifier)
	if err != nil {
		uc.l.Errorf(ctx, "%s FindInvoiceByNumberLike %q: %v", LogPrefixResolve, identifier, err)
		return model.Invoice{}, false
	}
	return inv, !inv.IsZero()
}

// parseID accepts ASCII digits only; signs and spaces are rejected.
func parseID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
