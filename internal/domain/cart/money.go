package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Amount returns qty × rate at full precision. Amounts are not rounded;
// only VAT figures and order totals round to 2 decimal places.
func Amount(qty, rate decimal.Decimal) decimal.Decimal {
	return qty.Mul(rate)
}

// VATAmount returns amount × vatPct / 100 rounded half-up to 2 decimals.
func VATAmount(amount, vatPct decimal.Decimal) decimal.Decimal {
	return amount.Mul(vatPct).Div(hundred).Round(2)
}

// ClampQty coerces raw operator input into a valid quantity. Anything that
// does not parse as a number becomes 1, and values below 1 are floored
// to 1. A zero, negative or garbage quantity never persists; invalid
// input is normalized, not rejected.
func ClampQty(raw string) decimal.Decimal {
	q, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || q.LessThan(one) {
		return one
	}
	return q
}
