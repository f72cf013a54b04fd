package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/cart"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return v
}

func TestClampQty(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"3", "3"},
		{"2.5", "2.5"},
		{"1", "1"},
		{"0", "1"},
		{"-5", "1"},
		{"abc", "1"},
		{"", "1"},
		{"  4 ", "4"},
		{"0.25", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := cart.ClampQty(tt.raw)
			if !got.Equal(d(t, tt.want)) {
				t.Errorf("ClampQty(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAmountKeepsFullPrecision(t *testing.T) {
	got := cart.Amount(d(t, "3"), d(t, "3.335"))
	if !got.Equal(d(t, "10.005")) {
		t.Errorf("Amount(3, 3.335) = %s, want 10.005", got)
	}
}

func TestVATAmount(t *testing.T) {
	tests := []struct {
		amount string
		vatPct string
		want   string
	}{
		{"10", "5", "0.5"},
		{"25", "5", "1.25"},
		{"10.005", "5", "0.5"},   // 0.50025 rounds down
		{"10.10", "5", "0.51"},   // 0.505 rounds half up
		{"0", "5", "0"},
		{"100", "0", "0"},
	}
	for _, tt := range tests {
		got := cart.VATAmount(d(t, tt.amount), d(t, tt.vatPct))
		if !got.Equal(d(t, tt.want)) {
			t.Errorf("VATAmount(%s, %s) = %s, want %s", tt.amount, tt.vatPct, got, tt.want)
		}
	}
}
