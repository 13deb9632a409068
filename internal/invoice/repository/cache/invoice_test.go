package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	repo "invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/model"
)

type countingRepo struct {
	getCalls  int
	likeCalls int
	err       error
}

func (c *countingRepo) GetOneInvoice(ctx context.Context, opt repo.GetOneInvoiceOptions) (model.Invoice, error) {
	c.getCalls++
	if c.err != nil {
		return model.Invoice{}, c.err
	}
	if opt.ID == 1 {
		return model.Invoice{ID: 1}, nil
	}
	return model.Invoice{}, nil
}

func (c *countingRepo) FindInvoiceByNumberLike(ctx context.Context, fragment string) (model.Invoice, error) {
	c.likeCalls++
	return model.Invoice{ID: 2}, c.err
}

func TestCache_HitsAndMisses(t *testing.T) {
	next := &countingRepo{}
	r := New(next, Options{Size: 8, TTL: time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		inv, err := r.GetOneInvoice(ctx, repo.GetOneInvoiceOptions{ID: 1})
		if err != nil || inv.ID != 1 {
			t.Fatalf("GetOneInvoice = (%v, %v)", inv, err)
		}
		if inv, _ := r.GetOneInvoice(ctx, repo.GetOneInvoiceOptions{ID: 9}); !inv.IsZero() {
			t.Fatalf("expected miss, got %v", inv)
		}
		if inv, _ := r.FindInvoiceByNumberLike(ctx, "12"); inv.ID != 2 {
			t.Fatalf("FindInvoiceByNumberLike ID = %d", inv.ID)
		}
	}

	if next.getCalls != 2 {
		t.Errorf("getCalls = %d, want 2", next.getCalls)
	}
	if next.likeCalls != 1 {
		t.Errorf("likeCalls = %d, want 1", next.likeCalls)
	}
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	next := &countingRepo{err: errors.New("db down")}
	r := New(next, Options{Size: 8, TTL: time.Minute})

	for i := 0; i < 2; i++ {
		if _, err := r.GetOneInvoice(context.Background(), repo.GetOneInvoiceOptions{ID: 1}); err == nil {
			t.Fatal("expected error")
		}
	}
	if next.getCalls != 2 {
		t.Errorf("getCalls = %d, want 2", next.getCalls)
	}
}

func TestCache_Disabled(t *testing.T) {
	next := &countingRepo{}
	if r := New(next, Options{}); r != next {
		t.Error("zero size should return the wrapped repository")
	}
}
