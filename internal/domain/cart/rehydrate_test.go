package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/cart"
	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
)

func heldShawarma() *entity.HeldOrder {
	return &entity.HeldOrder{
		OrderNo: "ORD-118",
		Lines: []entity.HeldOrderLine{
			{
				SlNo:     1,
				ItemCode: "X1",
				ItemName: "Shawarma",
				Qty:      decimal.NewFromInt(4),
				Rate:     decimal.RequireFromString("2.50"),
				Amount:   decimal.RequireFromString("10.00"),
				VATAmt:   decimal.RequireFromString("0.50"),
			},
		},
	}
}

func TestRehydrateTrustsServerFigures(t *testing.T) {
	l := cart.Rehydrate(heldShawarma(), vatPct)

	if l.HeldOrderNo() != "ORD-118" {
		t.Errorf("heldOrderNo = %s, want ORD-118", l.HeldOrderNo())
	}
	if len(l.NewLines()) != 0 || len(l.UpdatedLines()) != 0 {
		t.Error("rehydrated ledger starts with non-empty delta views")
	}

	li, ok := l.Line("X1")
	if !ok {
		t.Fatal("line X1 missing")
	}
	if !li.Qty.Equal(decimal.NewFromInt(4)) || !li.OriginalQty.Equal(decimal.NewFromInt(4)) {
		t.Errorf("qty=%s originalQty=%s, want 4 and 4", li.Qty, li.OriginalQty)
	}
	if !li.Amount.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("amount = %s, want the server's 10.00 untouched", li.Amount)
	}
	if !li.VATAmt.Equal(decimal.RequireFromString("0.50")) {
		t.Errorf("vatAmt = %s, want the server's 0.50 untouched", li.VATAmt)
	}
	if li.IsNew {
		t.Error("rehydrated line flagged as session-new")
	}
}

func TestRehydrateThenEditTracksUpdate(t *testing.T) {
	l := cart.Rehydrate(heldShawarma(), vatPct)
	l.UpdateQty("X1", "6")

	li, _ := l.Line("X1")
	if !li.Qty.Equal(decimal.NewFromInt(6)) {
		t.Errorf("qty = %s, want 6", li.Qty)
	}
	if !li.Amount.Equal(decimal.RequireFromString("15.00")) {
		t.Errorf("amount = %s, want 15.00", li.Amount)
	}
	if !li.OriginalQty.Equal(decimal.NewFromInt(4)) {
		t.Errorf("originalQty = %s, want 4", li.OriginalQty)
	}

	upd := l.UpdatedLines()
	if len(upd) != 1 {
		t.Fatalf("updatedLines length = %d, want 1", len(upd))
	}
	if upd[0].ItemID != "X1" || !upd[0].Qty.Equal(decimal.NewFromInt(6)) ||
		!upd[0].OriginalQty.Equal(decimal.NewFromInt(4)) {
		t.Errorf("updatedLines entry = %+v, want X1 qty 6 originalQty 4", upd[0])
	}
	if len(l.NewLines()) != 0 {
		t.Errorf("newLines = %+v, want empty", l.NewLines())
	}
}

func TestRehydrateSynthesizesMissingItemCode(t *testing.T) {
	held := &entity.HeldOrder{
		OrderNo: "5",
		Lines: []entity.HeldOrderLine{
			{SlNo: 1, ItemName: "Special", Qty: decimal.NewFromInt(1),
				Rate: decimal.NewFromInt(9), Amount: decimal.NewFromInt(9)},
			{SlNo: 2, ItemName: "Special 2", Qty: decimal.NewFromInt(1),
				Rate: decimal.NewFromInt(7), Amount: decimal.NewFromInt(7)},
		},
	}
	l := cart.Rehydrate(held, vatPct)

	lines := l.Lines()
	if lines[0].ItemID == lines[1].ItemID {
		t.Errorf("synthesized item ids collide: %s", lines[0].ItemID)
	}
	if lines[0].TaxLedger != "0" {
		t.Errorf("taxLedger = %q, want default %q", lines[0].TaxLedger, "0")
	}
}

func TestRehydrateThenAddNewLine(t *testing.T) {
	l := cart.Rehydrate(heldShawarma(), vatPct)
	l.AddLine(menuItem("55", "COL", "Cola", "2.00"), qty(1))

	if l.Len() != 2 {
		t.Fatalf("cart length = %d, want 2", l.Len())
	}
	if got := l.NewLines(); len(got) != 1 || got[0].ItemID != "55" {
		t.Errorf("newLines = %+v, want only the cola", got)
	}
	if len(l.UpdatedLines()) != 0 {
		t.Errorf("updatedLines = %+v, want empty", l.UpdatedLines())
	}
	lines := l.Lines()
	if lines[1].SlNo != 2 {
		t.Errorf("appended line slNo = %d, want 2", lines[1].SlNo)
	}
}
