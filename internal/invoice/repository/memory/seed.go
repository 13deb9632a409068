package memory

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	repo "invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/model"
)

const seedDateFormat = "2006-01-02"

type seedFile struct {
	Invoices []seedInvoice `yaml:"invoices"`
}

type seedInvoice struct {
	ID           int64   `yaml:"id"`
	Number       *string `yaml:"number"`
	Status       *string `yaml:"status"`
	DueDate      string  `yaml:"due_date"`
	EntryDate    string  `yaml:"entry_date"`
	DiscountDate string  `yaml:"discount_date"`
	UnpaidDate   string  `yaml:"unpaid_date"`
	TotalAmount  string  `yaml:"total_amount"`
	PaymentMode  *string `yaml:"payment_mode"`
	Service      *string `yaml:"service"`
}

// Reload re-reads the seed file. On error the previous snapshot stays in place.
func (r *implRepository) Reload(ctx context.Context) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Reload"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}

	invoices, err := parseSeed(data)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Reload"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}

	byNumber := make(map[string]model.Invoice, len(invoices))
	byID := make(map[int64]model.Invoice, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
		if inv.Number != nil && *inv.Number != "" {
			if _, dup := byNumber[*inv.Number]; !dup {
				byNumber[*inv.Number] = inv
			}
		}
	}

	r.mu.Lock()
	r.byNumber = byNumber
	r.byID = byID
	r.ordered = invoices
	r.mu.Unlock()

	r.l.Infof(ctx, "%s: %d invoices loaded from %s", r.dsn("Reload"), len(invoices), r.path)
	return nil
}

// parseSeed decodes the YAML seed and returns the invoices ordered by id.
func parseSeed(data []byte) ([]model.Invoice, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	seen := make(map[int64]bool, len(f.Invoices))
	invoices := make([]model.Invoice, 0, len(f.Invoices))
	for i, s := range f.Invoices {
		if s.ID <= 0 {
			return nil, fmt.Errorf("invoice #%d: id must be positive", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("invoice #%d: duplicate id %d", i, s.ID)
		}
		seen[s.ID] = true

		inv, err := s.toModel()
		if err != nil {
			return nil, fmt.Errorf("invoice %d: %w", s.ID, err)
		}
		invoices = append(invoices, inv)
	}

	sort.Slice(invoices, func(i, j int) bool { return invoices[i].ID < invoices[j].ID })
	return invoices, nil
}

func (s seedInvoice) toModel() (model.Invoice, error) {
	inv := model.Invoice{
		ID:          s.ID,
		Number:      s.Number,
		Status:      s.Status,
		PaymentMode: s.PaymentMode,
		Service:     s.Service,
	}

	dates := []struct {
		name string
		raw  string
		dst  **time.Time
	}{
		{"due_date", s.DueDate, &inv.DueDate},
		{"entry_date", s.EntryDate, &inv.EntryDate},
		{"discount_date", s.DiscountDate, &inv.DiscountDate},
		{"unpaid_date", s.UnpaidDate, &inv.UnpaidDate},
	}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		t, err := time.Parse(seedDateFormat, d.raw)
		if err != nil {
			return model.Invoice{}, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = &t
	}

	if s.TotalAmount != "" {
		amount, err := decimal.NewFromString(s.TotalAmount)
		if err != nil {
			return model.Invoice{}, fmt.Errorf("total_amount: %w", err)
		}
		inv.TotalAmount = decimal.NewNullDecimal(amount)
	}

	return inv, nil
}
