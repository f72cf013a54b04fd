package entity

import "github.com/shopspring/decimal"

// LineItem is one row of the order being built. Amount and VATAmt are
// derived: amount == qty × rate and vatAmt == round2(amount × vat/100)
// hold after every mutation; they are never set independently.
type LineItem struct {
	ItemID   string          `json:"itemId"`
	SlNo     int             `json:"slNo"`
	ItemCode string          `json:"itemCode"`
	ItemName string          `json:"itemName"`
	Qty      decimal.Decimal `json:"qty"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
	Cost     decimal.Decimal `json:"cost"`
	VATPct   decimal.Decimal `json:"vat"`
	VATAmt   decimal.Decimal `json:"vatAmt"`

	// OriginalQty preserves the quantity at which a persisted line was
	// last saved. Zero means the line has never been edited since it was
	// persisted (qty is always >= 1, so zero is a safe sentinel).
	OriginalQty decimal.Decimal `json:"originalQty"`

	// Pass-through attributes forwarded verbatim to the submission
	// payload; not used in any arithmetic.
	TaxLedger string `json:"taxLedger"`
	Arabic    string `json:"arabic"`
	Notes     string `json:"notes"`

	// IsNew marks lines added in this session, as opposed to lines
	// rehydrated from a held order.
	IsNew bool `json:"isNew"`
}

// OrderTotals is derived from the cart on every read and never stored.
// All values are rounded to 2 decimal places.
type OrderTotals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	VAT        decimal.Decimal `json:"vat"`
	Discount   decimal.Decimal `json:"discount"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}
