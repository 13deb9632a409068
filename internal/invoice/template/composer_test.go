package template

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"invoice-assistant/internal/invoice"
	"invoice-assistant/internal/model"
	"invoice-assistant/internal/nlu"
)

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func found(inv model.Invoice, intent nlu.Intent) invoice.AnswerContext {
	return invoice.AnswerContext{Found: true, Identifier: inv.DisplayNumber(), Invoice: &inv, Intent: intent}
}

func TestCompose_Scenarios(t *testing.T) {
	c := New("")

	tests := []struct {
		name string
		actx invoice.AnswerContext
		lang nlu.Language
		want string
	}{
		{
			name: "status without due date",
			actx: found(model.Invoice{ID: 1, Number: strPtr("F123"), Status: strPtr("payée")}, nlu.IntentStatus),
			lang: nlu.LanguageFR,
			want: "La facture F123 est payée.",
		},
		{
			name: "status with due date",
			actx: found(model.Invoice{ID: 1, Number: strPtr("F123"), Status: strPtr("payée"), DueDate: datePtr(2024, 3, 1)}, nlu.IntentStatusDue),
			lang: nlu.LanguageFR,
			want: "La facture F123 est payée et échéance le 2024-03-01.",
		},
		{
			name: "due date",
			actx: found(model.Invoice{ID: 456, DueDate: datePtr(2024, 3, 1)}, nlu.IntentDueDate),
			lang: nlu.LanguageFR,
			want: "La facture 456 est due le 2024-03-01.",
		},
		{
			name: "amount drops trailing zeros",
			actx: found(model.Invoice{ID: 12, TotalAmount: amount("350.00")}, nlu.IntentAmount),
			lang: nlu.LanguageFR,
			want: "Le montant de la facture 12 est de 350 DH.",
		},
		{
			name: "not found with identifier",
			actx: invoice.AnswerContext{Identifier: "INV-789", Intent: nlu.IntentAmount},
			lang: nlu.LanguageEN,
			want: "I couldn’t find an invoice for identifier INV-789. You can ask: ‘Status invoice #F123’, ‘Due date invoice 456’, or ‘Amount invoice #INV-789’.",
		},
		{
			name: "not found without identifier",
			actx: invoice.AnswerContext{Intent: nlu.IntentGeneral},
			lang: nlu.LanguageFR,
			want: "Je n’ai pas trouvé cette facture. Essayez avec un numéro, par ex.: ‘Statut facture #F123’.",
		},
		{
			name: "english status with due date",
			actx: found(model.Invoice{ID: 3, Number: strPtr("F3"), Status: strPtr("paid"), DueDate: datePtr(2025, 1, 31)}, nlu.IntentStatus),
			lang: nlu.LanguageEN,
			want: "Invoice F3 is paid and due on 2025-01-31.",
		},
		{
			name: "missing status",
			actx: found(model.Invoice{ID: 3}, nlu.IntentPaymentStatus),
			lang: nlu.LanguageEN,
			want: "Payment status of invoice 3: unknown.",
		},
		{
			name: "french summary",
			actx: found(model.Invoice{ID: 8, Number: strPtr("F8"), Status: strPtr("impayée"), DueDate: datePtr(2024, 6, 30), TotalAmount: amount("1200.50")}, nlu.IntentGeneral),
			lang: nlu.LanguageFR,
			want: "Facture F8: statut: impayée, échéance: 2024-06-30, montant: 1200.5 DH.",
		},
		{
			name: "english summary with status only",
			actx: found(model.Invoice{ID: 8}, nlu.IntentGeneral),
			lang: nlu.LanguageEN,
			want: "Invoice 8: status: unknown.",
		},
		{
			name: "no amount",
			actx: found(model.Invoice{ID: 5}, nlu.IntentAmount),
			lang: nlu.LanguageFR,
			want: "Le montant de la facture 5 n’est pas disponible.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Compose(tt.actx, tt.lang); got != tt.want {
				t.Errorf("Compose() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestCompose_CustomCurrency(t *testing.T) {
	c := New("EUR")
	got := c.Compose(found(model.Invoice{ID: 2, TotalAmount: amount("10")}, nlu.IntentAmount), nlu.LanguageEN)
	if got != "Invoice 2 amount is 10 EUR." {
		t.Errorf("got %q", got)
	}

	var zero Composer
	got = zero.Compose(found(model.Invoice{ID: 2, TotalAmount: amount("10")}, nlu.IntentAmount), nlu.LanguageEN)
	if !strings.HasSuffix(got, " DH.") {
		t.Errorf("zero Composer should default to DH, got %q", got)
	}
}

func TestCompose_Total(t *testing.T) {
	c := New("DH")
	intents := []nlu.Intent{
		nlu.IntentStatusDue, nlu.IntentStatus, nlu.IntentDueDate,
		nlu.IntentAmount, nlu.IntentPaymentStatus, nlu.IntentGeneral, nlu.Intent("other"),
	}
	langs := []nlu.Language{nlu.LanguageFR, nlu.LanguageEN, nlu.Language("de")}

	// Bit i of mask toggles one optional field.
	build := func(mask int) model.Invoice {
		inv := model.Invoice{ID: int64(mask + 1)}
		if mask&1 != 0 {
			inv.Number = strPtr("F1")
		}
		if mask&2 != 0 {
			inv.Status = strPtr("payée")
		}
		if mask&4 != 0 {
			inv.DueDate = datePtr(2024, 3, 1)
		}
		if mask&8 != 0 {
			inv.TotalAmount = amount("0")
		}
		return inv
	}

	for _, lang := range langs {
		for _, intent := range intents {
			for _, id := range []string{"", "F1"} {
				if got := c.Compose(invoice.AnswerContext{Identifier: id, Intent: intent}, lang); got == "" {
					t.Errorf("not found, id=%q intent=%s lang=%s: empty answer", id, intent, lang)
				}
			}
			for mask := 0; mask < 16; mask++ {
				inv := build(mask)
				if got := c.Compose(found(inv, intent), lang); got == "" {
					t.Errorf("found, mask=%d intent=%s lang=%s: empty answer", mask, intent, lang)
				}
			}
			// Found flag set without an invoice is treated as a miss.
			if got := c.Compose(invoice.AnswerContext{Found: true, Intent: intent}, lang); got == "" {
				t.Errorf("found without invoice, intent=%s lang=%s: empty answer", intent, lang)
			}
		}
	}
}

func TestCompose_Idempotent(t *testing.T) {
	c := New("DH")
	actx := found(model.Invoice{ID: 8, Number: strPtr("F8"), Status: strPtr("payée"), DueDate: datePtr(2024, 6, 30), TotalAmount: amount("99.90")}, nlu.IntentGeneral)

	first := c.Compose(actx, nlu.LanguageFR)
	if second := c.Compose(actx, nlu.LanguageFR); first != second {
		t.Errorf("Compose is not idempotent: %q vs %q", first, second)
	}
}

func TestGreeting(t *testing.T) {
	c := New("")
	if got := c.Greeting(nlu.LanguageFR); !strings.HasPrefix(got, "Bonjour !") {
		t.Errorf("french greeting = %q", got)
	}
	if got := c.Greeting(nlu.LanguageEN); !strings.HasPrefix(got, "Hi!") {
		t.Errorf("english greeting = %q", got)
	}
}
