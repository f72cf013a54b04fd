package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/cart"
	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
)

var vatRate = decimal.RequireFromString("0.05")

func TestTotalsSumBeforeRounding(t *testing.T) {
	// Two lines at 10.005 each. Per-line rounding would give
	// 10.01 + 10.01 = 20.02; the subtotal must round the raw sum.
	lines := []entity.LineItem{
		{Amount: decimal.RequireFromString("10.005")},
		{Amount: decimal.RequireFromString("10.005")},
	}
	calc := cart.NewCalculator(vatRate, nil)
	got := calc.Totals(lines)

	if !got.Subtotal.Equal(decimal.RequireFromString("20.01")) {
		t.Errorf("subtotal = %s, want 20.01", got.Subtotal)
	}
	if !got.VAT.Equal(decimal.RequireFromString("1.00")) {
		t.Errorf("vat = %s, want 1.00", got.VAT)
	}
	if !got.GrandTotal.Equal(decimal.RequireFromString("21.01")) {
		t.Errorf("grandTotal = %s, want 21.01", got.GrandTotal)
	}
}

func TestTotalsScenario(t *testing.T) {
	l := cart.NewLedger(decimal.NewFromInt(5))
	l.AddLine(menuItem("1", "BRG", "Burger", "12.50"), qty(2))
	l.AddLine(menuItem("2", "COL", "Cola", "3.00"), qty(3))

	calc := cart.NewCalculator(vatRate, nil)
	got := calc.Totals(l.Lines())

	if !got.Subtotal.Equal(decimal.RequireFromString("34.00")) {
		t.Errorf("subtotal = %s, want 34.00", got.Subtotal)
	}
	if !got.VAT.Equal(decimal.RequireFromString("1.70")) {
		t.Errorf("vat = %s, want 1.70", got.VAT)
	}
	if !got.Discount.IsZero() {
		t.Errorf("discount = %s, want 0", got.Discount)
	}
	if !got.GrandTotal.Equal(decimal.RequireFromString("35.70")) {
		t.Errorf("grandTotal = %s, want 35.70", got.GrandTotal)
	}
}

func TestTotalsIdempotent(t *testing.T) {
	l := cart.NewLedger(decimal.NewFromInt(5))
	l.AddLine(menuItem("1", "BRG", "Burger", "3.335"), qty(3))

	calc := cart.NewCalculator(vatRate, nil)
	first := calc.Totals(l.Lines())
	second := calc.Totals(l.Lines())

	if !first.Subtotal.Equal(second.Subtotal) || !first.VAT.Equal(second.VAT) ||
		!first.GrandTotal.Equal(second.GrandTotal) {
		t.Errorf("totals drifted between reads: %+v vs %+v", first, second)
	}
	if !first.Subtotal.Equal(decimal.RequireFromString("10.01")) {
		t.Errorf("subtotal = %s, want 10.01", first.Subtotal)
	}
}

func TestFixedDiscount(t *testing.T) {
	lines := []entity.LineItem{{Amount: decimal.RequireFromString("100.00")}}
	calc := cart.NewCalculator(vatRate, cart.FixedDiscount(decimal.RequireFromString("4.00")))
	got := calc.Totals(lines)

	if !got.Discount.Equal(decimal.RequireFromString("4.00")) {
		t.Errorf("discount = %s, want 4.00", got.Discount)
	}
	if !got.GrandTotal.Equal(decimal.RequireFromString("101.00")) {
		t.Errorf("grandTotal = %s, want 101.00", got.GrandTotal)
	}
}

func TestVATPct(t *testing.T) {
	calc := cart.NewCalculator(vatRate, nil)
	if got := calc.VATPct(); !got.Equal(decimal.NewFromInt(5)) {
		t.Errorf("VATPct = %s, want 5", got)
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	calc := cart.NewCalculator(vatRate, nil)
	got := calc.Totals(nil)
	if !got.Subtotal.IsZero() || !got.VAT.IsZero() || !got.GrandTotal.IsZero() {
		t.Errorf("empty cart totals non-zero: %+v", got)
	}
}
