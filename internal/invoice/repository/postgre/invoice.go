package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	repo "invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/model"
)

// GetOneInvoice retrieves a single Invoice by the provided filters (AND condition).
// Returns the zero Invoice when not found.
func (r *implRepository) GetOneInvoice(ctx context.Context, opt repo.GetOneInvoiceOptions) (model.Invoice, error) {
	if opt.IsEmpty() {
		return model.Invoice{}, repo.ErrEmptyFilter
	}

	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM factures WHERE %s LIMIT 1", invoiceColumns, mods)

	return r.getOne(ctx, "GetOneInvoice", query, args...)
}

// FindInvoiceByNumberLike returns the first Invoice whose number contains fragment.
func (r *implRepository) FindInvoiceByNumberLike(ctx context.Context, fragment string) (model.Invoice, error) {
	if fragment == "" {
		return model.Invoice{}, nil
	}

	mods, args := r.buildNumberLikeQuery(fragment)
	query := fmt.Sprintf("SELECT %s FROM factures WHERE %s", invoiceColumns, mods)

	return r.getOne(ctx, "FindInvoiceByNumberLike", query, args...)
}

func (r *implRepository) getOne(ctx context.Context, method, query string, args ...any) (model.Invoice, error) {
	var row invoiceRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Invoice{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.Invoice{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}
