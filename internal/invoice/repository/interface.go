package repository

import (
	"context"

	"invoice-assistant/internal/model"
)

// Repository is the read-only invoice store consulted to resolve identifiers.
// A miss returns the zero Invoice and a nil error.
type Repository interface {
	InvoiceRepository
}

// InvoiceRepository defines the lookups the answer pipeline needs.
type InvoiceRepository interface {
	GetOneInvoice(ctx context.Context, opt GetOneInvoiceOptions) (model.Invoice, error)
	FindInvoiceByNumberLike(ctx context.Context, fragment string) (model.Invoice, error)
}
