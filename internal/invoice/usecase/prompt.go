package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"invoice-assistant/internal/invoice"
	"invoice-assistant/internal/model"
	"invoice-assistant/internal/nlu"
)

const generalPromptTemplate = `You are a friendly assistant for an invoice dashboard. If the user greets you or asks for help, respond briefly (one short sentence) in the user's language, explaining what you can do: check invoice status, due date, amount, and payment status when provided an invoice number (e.g., #F123). Invite them to ask a question.

User message: %s`

const dataPromptTemplate = `You are a helpful assistant for an invoice dashboard. Answer concisely in one short sentence, in the language of the user.
- Only use the provided data; do not hallucinate.
- Prefer format like: "Invoice #<number> is <status> and due on <date>." or "Le montant de la facture <num> est de <montant> %s."

User question: %s
Data: %s`

type promptContext struct {
	Found      bool           `json:"found"`
	Identifier string         `json:"identifier,omitempty"`
	Invoice    *promptInvoice `json:"invoice,omitempty"`
	Intent     nlu.Intent     `json:"intent"`
}

type promptInvoice struct {
	ID           int64   `json:"id"`
	Number       *string `json:"number"`
	Status       *string `json:"status"`
	DueDate      *string `json:"due_date"`
	EntryDate    *string `json:"entry_date"`
	DiscountDate *string `json:"discount_date"`
	UnpaidDate   *string `json:"unpaid_date"`
	TotalAmount  *string `json:"total_amount"`
	PaymentMode  *string `json:"payment_mode"`
	Service      *string `json:"service"`
}

func buildGeneralPrompt(message string) string {
	return fmt.Sprintf(generalPromptTemplate, message)
}

func (uc *implUseCase) buildDataPrompt(message string, actx invoice.AnswerContext) (string, error) {
	data, err := marshalContext(actx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(dataPromptTemplate, uc.currency, message, data), nil
}

// marshalContext renders actx as compact JSON, leaving non-ASCII text and slashes readable.
func marshalContext(actx invoice.AnswerContext) (string, error) {
	pc := promptContext{
		Found:      actx.Found,
		Identifier: actx.Identifier,
		Intent:     actx.Intent,
	}
	if actx.Found && actx.Invoice != nil {
		pc.Invoice = newPromptInvoice(*actx.Invoice)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pc); err != nil {
		return "", fmt.Errorf("marshal prompt context: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func newPromptInvoice(inv model.Invoice) *promptInvoice {
	p := &promptInvoice{
		ID:           inv.ID,
		Number:       inv.Number,
		Status:       inv.Status,
		DueDate:      formatDate(inv.DueDate),
		EntryDate:    formatDate(inv.EntryDate),
		DiscountDate: formatDate(inv.DiscountDate),
		UnpaidDate:   formatDate(inv.UnpaidDate),
		PaymentMode:  inv.PaymentMode,
		Service:      inv.Service,
	}
	if inv.TotalAmount.Valid {
		amount := inv.TotalAmount.Decimal.String()
		p.TotalAmount = &amount
	}
	return p
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(promptDateFormat)
	return &s
}
