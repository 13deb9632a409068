package repository

// GetOneInvoiceOptions holds filter parameters for fetching a single Invoice.
// All non-empty fields are applied as AND conditions.
type GetOneInvoiceOptions struct {
	ID     int64
	Number string
}

// IsEmpty reports whether no filter is set.
func (o GetOneInvoiceOptions) IsEmpty() bool {
	return o.ID == 0 && o.Number == ""
}
