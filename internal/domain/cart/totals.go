package cart

import (
	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
)

// DiscountPolicy computes the order discount from the current cart lines.
// The authoritative discount rule is still an open product question, so it
// is injected rather than hard-coded.
type DiscountPolicy func(lines []entity.LineItem) decimal.Decimal

// NoDiscount is the default policy.
func NoDiscount([]entity.LineItem) decimal.Decimal { return decimal.Zero }

// FixedDiscount applies a flat amount regardless of cart contents.
func FixedDiscount(amount decimal.Decimal) DiscountPolicy {
	return func([]entity.LineItem) decimal.Decimal { return amount }
}

// Calculator derives order totals from cart lines. VATRate is a fraction
// (0.05 for 5%). Totals are a pure function of the lines and are
// recomputed on every read.
type Calculator struct {
	VATRate  decimal.Decimal
	Discount DiscountPolicy
}

// NewCalculator builds a calculator; a nil discount policy means no
// discount.
func NewCalculator(vatRate decimal.Decimal, discount DiscountPolicy) Calculator {
	if discount == nil {
		discount = NoDiscount
	}
	return Calculator{VATRate: vatRate, Discount: discount}
}

// VATPct returns the rate as a line tax percentage (0.05 → 5).
func (c Calculator) VATPct() decimal.Decimal {
	return c.VATRate.Mul(hundred)
}

// Totals computes subtotal, VAT, discount and grand total. Raw per-line
// amounts are summed before the subtotal rounds, and VAT is taken off the
// rounded subtotal, never off a sum of already-rounded per-line VATs.
func (c Calculator) Totals(lines []entity.LineItem) entity.OrderTotals {
	sum := decimal.Zero
	for _, li := range lines {
		sum = sum.Add(li.Amount)
	}
	subtotal := sum.Round(2)
	vat := subtotal.Mul(c.VATRate).Round(2)
	discount := c.Discount(lines).Round(2)
	return entity.OrderTotals{
		Subtotal:   subtotal,
		VAT:        vat,
		Discount:   discount,
		GrandTotal: subtotal.Add(vat).Sub(discount).Round(2),
	}
}
