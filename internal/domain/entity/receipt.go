package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the restaurant header printed at the top of a receipt.
type ReceiptHeader struct {
	Name    string `json:"name"`
	TRN     string `json:"trn,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ReceiptItem represents a single printed line. OldQty is set only on KOT
// tickets for lines whose quantity changed since the order was held.
type ReceiptItem struct {
	SlNo   int             `json:"slNo"`
	Name   string          `json:"name"`
	Qty    decimal.Decimal `json:"qty"`
	OldQty decimal.Decimal `json:"oldQty,omitempty"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// Receipt is a value object composed from the cart and order form at print
// time. It is not persisted anywhere; the SPA renders it when no thermal
// printer is attached.
type Receipt struct {
	Header    ReceiptHeader `json:"header"`
	OrderNo   string        `json:"orderNo"`
	TokenNo   int           `json:"tokenNo"`
	OrderType string        `json:"orderType"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	TableNo   string        `json:"tableNo,omitempty"`
	Seats     string        `json:"seats,omitempty"`
	Customer  string        `json:"customer,omitempty"`
	Contact   string        `json:"contact,omitempty"`
	Address   string        `json:"address,omitempty"`
	Staff     string        `json:"staff,omitempty"`
	Remarks   string        `json:"remarks,omitempty"`
	Currency  string        `json:"currency"`
	Items     []ReceiptItem `json:"items"`
	Totals    OrderTotals   `json:"totals"`

	// KOT marks a kitchen ticket: only new and quantity-changed lines are
	// printed and totals are omitted from the hardware output.
	KOT bool `json:"kot"`
}
