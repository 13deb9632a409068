package model

import "testing"

func TestInvoiceDisplayNumber(t *testing.T) {
	num := "F123"
	empty := ""

	tests := []struct {
		name string
		inv  Invoice
		want string
	}{
		{"number", Invoice{ID: 7, Number: &num}, "F123"},
		{"nil number falls back to id", Invoice{ID: 456}, "456"},
		{"empty number falls back to id", Invoice{ID: 12, Number: &empty}, "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.DisplayNumber(); got != tt.want {
				t.Errorf("DisplayNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvoiceIsZero(t *testing.T) {
	if !(Invoice{}).IsZero() {
		t.Error("zero Invoice should report IsZero")
	}
	if (Invoice{ID: 1}).IsZero() {
		t.Error("Invoice with id should not report IsZero")
	}
}
