package template

import (
	"fmt"
	"strings"

	"invoice-assistant/internal/invoice"
	"invoice-assistant/internal/model"
	"invoice-assistant/internal/nlu"
)

const (
	DefaultCurrency = "DH"
	DateFormat      = "2006-01-02"
)

// Composer renders the deterministic answer used whenever generation fails.
// It does no I/O and holds no mutable state.
type Composer struct {
	Currency string
}

// New returns a Composer labelling amounts with currency, DefaultCurrency when empty.
func New(currency string) Composer {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Composer{Currency: currency}
}

// Greeting is the answer to a message that references no invoice.
func (c Composer) Greeting(lang nlu.Language) string {
	return messagesFor(lang).greeting
}

// Compose renders actx in lang. It never returns an empty string.
func (c Composer) Compose(actx invoice.AnswerContext, lang nlu.Language) string {
	msg := messagesFor(lang)

	if !actx.Found || actx.Invoice == nil {
		if actx.Identifier != "" {
			return fmt.Sprintf(msg.notFoundWithID, actx.Identifier)
		}
		return msg.notFound
	}

	inv := *actx.Invoice
	num := inv.DisplayNumber()
	status := msg.unknownStatus
	if inv.Status != nil && *inv.Status != "" {
		status = *inv.Status
	}

	switch actx.Intent {
	case nlu.IntentStatusDue, nlu.IntentStatus:
		if inv.DueDate != nil {
			return fmt.Sprintf(msg.statusDue, num, status, inv.DueDate.Format(DateFormat))
		}
		return fmt.Sprintf(msg.status, num, status)

	case nlu.IntentDueDate:
		if inv.DueDate != nil {
			return fmt.Sprintf(msg.dueDate, num, inv.DueDate.Format(DateFormat))
		}
		return fmt.Sprintf(msg.noDueDate, num)

	case nlu.IntentAmount:
		if inv.TotalAmount.Valid {
			return fmt.Sprintf(msg.amount, num, formatAmount(inv), c.currency())
		}
		return fmt.Sprintf(msg.noAmount, num)

	case nlu.IntentPaymentStatus:
		return fmt.Sprintf(msg.paymentStatus, num, status)

	default:
		return c.summary(msg, inv, num, status)
	}
}

func (c Composer) summary(msg messages, inv model.Invoice, num, status string) string {
	parts := []string{fmt.Sprintf(msg.summaryStatus, status)}
	if inv.DueDate != nil {
		parts = append(parts, fmt.Sprintf(msg.summaryDue, inv.DueDate.Format(DateFormat)))
	}
	if inv.TotalAmount.Valid {
		parts = append(parts, fmt.Sprintf(msg.summaryAmount, formatAmount(inv), c.currency()))
	}
	return fmt.Sprintf(msg.summary, num, strings.Join(parts, ", "))
}

func (c Composer) currency() string {
	if c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}

// formatAmount drops insignificant trailing zeros: 350.00 renders as 350.
func formatAmount(inv model.Invoice) string {
	return inv.TotalAmount.Decimal.String()
}
