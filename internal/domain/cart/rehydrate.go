package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
)

// Rehydrate reconstructs a ledger from a held order's persisted lines.
// The server's figures (qty, rate, amount, vatAmt) are trusted verbatim
// and not recomputed; the persisted quantity becomes the originalQty
// baseline for edit tracking. The result has empty new/updated views and
// is bound to the held order number so emptying the cart later releases
// the hold.
func Rehydrate(order *entity.HeldOrder, vatPct decimal.Decimal) *Ledger {
	l := NewLedger(vatPct)
	l.heldOrderNo = order.OrderNo
	l.lines = make([]entity.LineItem, 0, len(order.Lines))
	for i, d := range order.Lines {
		itemID := d.ItemCode
		if itemID == "" {
			// The server may omit the item code; synthesize a stable key.
			itemID = fmt.Sprintf("temp-%d", i)
		}
		taxLedger := d.TaxLedger
		if taxLedger == "" {
			taxLedger = "0"
		}
		l.lines = append(l.lines, entity.LineItem{
			ItemID:      itemID,
			SlNo:        d.SlNo,
			ItemCode:    d.ItemCode,
			ItemName:    d.ItemName,
			Qty:         d.Qty,
			Rate:        d.Rate,
			Amount:      d.Amount,
			Cost:        d.Cost,
			VATPct:      vatPct,
			VATAmt:      d.VATAmt,
			OriginalQty: d.Qty,
			TaxLedger:   taxLedger,
			Notes:       d.Notes,
			IsNew:       false,
		})
	}
	return l
}
