package postgre

import (
	"reflect"
	"testing"

	repo "invoice-assistant/internal/invoice/repository"
)

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.GetOneInvoiceOptions
		wantMods string
		wantArgs []any
	}{
		{"number", repo.GetOneInvoiceOptions{Number: "F123"}, `"NumeroFacture" = $1`, []any{"F123"}},
		{"id", repo.GetOneInvoiceOptions{ID: 456}, `"idFacture" = $1`, []any{int64(456)}},
		{"both", repo.GetOneInvoiceOptions{ID: 7, Number: "F7"}, `"idFacture" = $1 AND "NumeroFacture" = $2`, []any{int64(7), "F7"}},
		{"none", repo.GetOneInvoiceOptions{}, "1=1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildGetOneQuery(tt.opt)
			if mods != tt.wantMods {
				t.Errorf("mods = %q, want %q", mods, tt.wantMods)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildNumberLikeQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		fragment string
		want     string
	}{
		{"123", "%123%"},
		{"INV-7", "%INV-7%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			mods, args := r.buildNumberLikeQuery(tt.fragment)
			if mods == "" {
				t.Fatal("expected a WHERE clause")
			}
			if len(args) != 1 || args[0] != tt.want {
				t.Errorf("args = %v, want [%s]", args, tt.want)
			}
		})
	}
}
