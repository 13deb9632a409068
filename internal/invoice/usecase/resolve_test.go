package usecase

import (
	"context"
	"reflect"
	"testing"

	"invoice-assistant/internal/model"
)

func TestResolveInvoice_Order(t *testing.T) {
	invoices := []model.Invoice{
		{ID: 1, Number: strPtr("F123")},
		{ID: 456},
		{ID: 2, Number: strPtr("INV-7890")},
		{ID: 77, Number: strPtr("77")},
	}

	tests := []struct {
		name       string
		identifier string
		wantID     int64
		wantFound  bool
		wantCalls  []string
	}{
		{"exact number", "F123", 1, true, []string{"one:0:F123"}},
		{"number beats id", "77", 77, true, []string{"one:0:77"}},
		{"numeric id", "456", 456, true, []string{"one:0:456", "one:456:"}},
		{"substring after id miss", "789", 2, true, []string{"one:0:789", "one:789:", "like:789"}},
		{"non digits skip id", "INV", 2, true, []string{"one:0:INV", "like:INV"}},
		{"nothing", "ZZ-99", 0, false, []string{"one:0:ZZ-99", "like:ZZ-99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{invoices: invoices}
			uc := newTestUseCase(repo, nil, &mockObserver{})

			inv, found := uc.resolveInvoice(context.Background(), tt.identifier)
			if found != tt.wantFound || inv.ID != tt.wantID {
				t.Errorf("resolveInvoice(%q) = (%d, %t), want (%d, %t)", tt.identifier, inv.ID, found, tt.wantID, tt.wantFound)
			}
			if !reflect.DeepEqual(repo.calls, tt.wantCalls) {
				t.Errorf("calls = %v, want %v", repo.calls, tt.wantCalls)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"456", 456, true},
		{"007", 7, true},
		{"0", 0, false},
		{"", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"12a", 0, false},
		{"٣", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseID(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseID(%q) = (%d, %t), want (%d, %t)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
