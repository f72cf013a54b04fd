package entity

import (
	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/enum"
)

// HeldOrderLine is a persisted line item of a held (pending/KOT) order,
// exactly as the upstream backend stored it. The figures are trusted
// verbatim on rehydration and never recomputed.
type HeldOrderLine struct {
	SlNo      int             `json:"slNo"`
	ItemCode  string          `json:"itemCode"`
	ItemName  string          `json:"itemName"`
	Qty       decimal.Decimal `json:"qty"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	Cost      decimal.Decimal `json:"cost"`
	VATAmt    decimal.Decimal `json:"vatAmt"`
	TaxLedger string          `json:"taxLedger"`
	Notes     string          `json:"notes"`
}

// HeldOrder is a saved-but-not-finalized order an operator can resume.
type HeldOrder struct {
	OrderNo       string          `json:"orderNo"`
	CustID        string          `json:"custId"`
	CustName      string          `json:"custName"`
	Flat          string          `json:"flat"`
	Address       string          `json:"address"`
	Contact       string          `json:"contact"`
	DeliveryBoyID string          `json:"deliveryBoyId"`
	TableID       string          `json:"tableId"`
	TableNo       string          `json:"tableNo"`
	Option        enum.OrderType  `json:"option"`
	Prefix        string          `json:"prefix"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Remarks       string          `json:"remarks"`
	Total         decimal.Decimal `json:"total"`
	Lines         []HeldOrderLine `json:"lines"`
	Seats         []Seat          `json:"seats"`
}

// OccupiedSeatNames returns the names of the seats bound to this order.
func (o HeldOrder) OccupiedSeatNames() []string {
	names := make([]string, 0, len(o.Seats))
	for _, s := range o.Seats {
		if s.Status == 1 {
			names = append(names, s.Name)
		}
	}
	return names
}

// SubmissionLine is one serialized cart line in the order submission
// payload. Field names match the upstream POST /orders contract.
type SubmissionLine struct {
	SlNo        int             `json:"slNo"`
	ItemCode    string          `json:"itemCode"`
	ItemName    string          `json:"itemName"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Cost        decimal.Decimal `json:"cost"`
	VAT         decimal.Decimal `json:"vat"`
	VATAmt      decimal.Decimal `json:"vatAmt"`
	TaxLedger   string          `json:"taxLedger"`
	Arabic      string          `json:"arabic"`
	Notes       string          `json:"notes"`
	OriginalQty decimal.Decimal `json:"originalQty"`
}

// OrderSubmission is the POST /orders request body.
type OrderSubmission struct {
	OrderNo       string            `json:"orderNo"`
	Status        enum.SubmitStatus `json:"status"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Option        int               `json:"option"`
	CustID        string            `json:"custId"`
	CustName      string            `json:"custName"`
	FlatNo        string            `json:"flatNo"`
	Address       string            `json:"address"`
	Contact       string            `json:"contact"`
	DeliveryBoyID string            `json:"deliveryBoyId"`
	TableID       string            `json:"tableId"`
	TableNo       string            `json:"tableNo"`
	SelectedSeats []string          `json:"selectedSeats"`
	Remarks       string            `json:"remarks"`
	Total         decimal.Decimal   `json:"total"`
	Prefix        string            `json:"prefix"`
	Items         []SubmissionLine  `json:"items"`
	HoldedOrder   string            `json:"holdedOrder"`
	TokenNo       int               `json:"tokenNo"`
}
