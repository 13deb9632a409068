package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the read-only view of a row of the factures table.
// Every field except ID may be absent.
type Invoice struct {
	ID           int64
	Number       *string
	Status       *string
	DueDate      *time.Time
	EntryDate    *time.Time
	DiscountDate *time.Time
	UnpaidDate   *time.Time
	TotalAmount  decimal.NullDecimal
	PaymentMode  *string
	Service      *string
}

// DisplayNumber is the number shown to the user, or the numeric id when the invoice has none.
func (i Invoice) DisplayNumber() string {
	if i.Number != nil && *i.Number != "" {
		return *i.Number
	}
	return strconv.FormatInt(i.ID, 10)
}

// IsZero reports whether i is the zero value returned for a lookup miss.
func (i Invoice) IsZero() bool {
	return i.ID == 0 && i.Number == nil
}
