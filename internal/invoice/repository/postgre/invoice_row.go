package postgre

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"invoice-assistant/internal/model"
)

const invoiceColumns = `"idFacture", "NumeroFacture", "Statut", "DateEcheance", "DateEntree",
	"DateRemise", "DateImpaye", "MontantTotal", "ModeReglement", "Service"`

type invoiceRow struct {
	ID           int64               `db:"idFacture"`
	Number       sql.NullString      `db:"NumeroFacture"`
	Status       sql.NullString      `db:"Statut"`
	DueDate      sql.NullTime        `db:"DateEcheance"`
	EntryDate    sql.NullTime        `db:"DateEntree"`
	DiscountDate sql.NullTime        `db:"DateRemise"`
	UnpaidDate   sql.NullTime        `db:"DateImpaye"`
	TotalAmount  decimal.NullDecimal `db:"MontantTotal"`
	PaymentMode  sql.NullString      `db:"ModeReglement"`
	Service      sql.NullString      `db:"Service"`
}

func (row invoiceRow) toModel() model.Invoice {
	return model.Invoice{
		ID:           row.ID,
		Number:       nullString(row.Number),
		Status:       nullString(row.Status),
		DueDate:      nullTime(row.DueDate),
		EntryDate:    nullTime(row.EntryDate),
		DiscountDate: nullTime(row.DiscountDate),
		UnpaidDate:   nullTime(row.UnpaidDate),
		TotalAmount:  row.TotalAmount,
		PaymentMode:  nullString(row.PaymentMode),
		Service:      nullString(row.Service),
	}
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
