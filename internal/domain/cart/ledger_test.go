package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/cart"
	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
)

var vatPct = decimal.NewFromInt(5)

func menuItem(id, code, name, rate string) entity.CatalogItem {
	return entity.CatalogItem{
		ID:   id,
		Code: code,
		Name: name,
		Rate: decimal.RequireFromString(rate),
	}
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestAddLineAppends(t *testing.T) {
	l := cart.NewLedger(vatPct)
	l.AddLine(menuItem("1", "BRG", "Burger", "5.00"), qty(2))

	lines := l.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	li := lines[0]
	if li.ItemID != "1" || li.SlNo != 1 {
		t.Errorf("unexpected identity: itemId=%s slNo=%d", li.ItemID, li.SlNo)
	}
	if !li.Qty.Equal(qty(2)) || !li.Amount.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("qty=%s amount=%s, want 2 and 10.00", li.Qty, li.Amount)
	}
	if !li.VATAmt.Equal(decimal.RequireFromString("0.50")) {
		t.Errorf("vatAmt=%s, want 0.50", li.VATAmt)
	}
}

func TestAddLineMergesDuplicates(t *testing.T) {
	l := cart.NewLedger(vatPct)
	item := menuItem("1", "BRG", "Burger", "5.00")
	l.AddLine(item, qty(2))
	l.AddLine(item, qty(3))

	if l.Len() != 1 {
		t.Fatalf("cart length changed on merge: got %d", l.Len())
	}
	li := l.Lines()[0]
	if !li.Qty.Equal(qty(5)) {
		t.Errorf("qty=%s, want 5", li.Qty)
	}
	if !li.Amount.Equal(decimal.RequireFromString("25.00")) {
		t.Errorf("amount=%s, want 25.00", li.Amount)
	}
	if li.SlNo != 1 {
		t.Errorf("slNo moved on merge: %d", li.SlNo)
	}

	// The new-lines mirror must agree on the final quantity.
	newLines := l.NewLines()
	if len(newLines) != 1 || !newLines[0].Qty.Equal(qty(5)) {
		t.Errorf("newLines disagree with cart: %+v", newLines)
	}
}

func TestUpdateQtyFloorsInvalidInput(t *testing.T) {
	for _, raw := range []string{"0", "-5", "abc"} {
		t.Run(raw, func(t *testing.T) {
			l := cart.NewLedger(vatPct)
			l.AddLine(menuItem("1", "BRG", "Burger", "5.00"), qty(5))
			l.UpdateQty("1", raw)

			li, ok := l.Line("1")
			if !ok {
				t.Fatal("line disappeared")
			}
			if !li.Qty.Equal(qty(1)) {
				t.Errorf("qty=%s, want 1", li.Qty)
			}
			if !li.Amount.Equal(decimal.RequireFromString("5.00")) {
				t.Errorf("amount=%s, want 5.00", li.Amount)
			}
		})
	}
}

func TestUpdateQtyOnNewLineStaysInNewLines(t *testing.T) {
	l := cart.NewLedger(vatPct)
	l.AddLine(menuItem("1", "BRG", "Burger", "5.00"), qty(2))
	l.UpdateQty("1", "7")

	if got := l.NewLines(); len(got) != 1 || !got[0].Qty.Equal(qty(7)) {
		t.Errorf("newLines = %+v, want single line with qty 7", got)
	}
	if got := l.UpdatedLines(); len(got) != 0 {
		t.Errorf("session-new line leaked into updatedLines: %+v", got)
	}
	if li, _ := l.Line("1"); !li.OriginalQty.IsZero() {
		t.Errorf("originalQty set on a session-new line: %s", li.OriginalQty)
	}
}

func TestUpdateQtyUnknownItemIsNoOp(t *testing.T) {
	l := cart.NewLedger(vatPct)
	l.AddLine(menuItem("1", "BRG", "Burger", "5.00"), qty(2))
	l.UpdateQty("nope", "9")
	l.RemoveLine("nope")

	if l.Len() != 1 {
		t.Fatalf("ledger mutated by unknown itemId")
	}
	if li, _ := l.Line("1"); !li.Qty.Equal(qty(2)) {
		t.Errorf("qty=%s, want 2", li.Qty)
	}
}

func TestRemoveLineRenumbersContiguously(t *testing.T) {
	l := cart.NewLedger(vatPct)
	l.AddLine(menuItem("1", "BRG", "Burger", "5.00"), qty(1))
	l.AddLine(menuItem("2", "PIZ", "Pizza", "8.00"), qty(1))
	l.AddLine(menuItem("3", "COL", "Cola", "2.00"), qty(1))

	l.RemoveLine("1")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for i, li := range lines {
		if li.SlNo != i+1 {
			t.Errorf("slNo[%d] = %d, want %d", i, li.SlNo, i+1)
		}
	}
	if lines[0].ItemID != "2" || lines[1].ItemID != "3" {
		t.Errorf("relative order changed: %s, %s", lines[0].ItemID, lines[1].ItemID)
	}
	if got := l.NewLines(); len(got) != 2 || got[0].SlNo != 1 || got[1].SlNo != 2 {
		t.Errorf("newLines not renumbered independently: %+v", got)
	}
}

func TestRemoveLastLineReleasesHeldOrder(t *testing.T) {
	held := &entity.HeldOrder{
		OrderNo: "42",
		Lines: []entity.HeldOrderLine{
			{SlNo: 1, ItemCode: "X1", ItemName: "Shawarma", Qty: qty(4),
				Rate: decimal.RequireFromString("2.50"), Amount: decimal.RequireFromString("10.00"),
				VATAmt: decimal.RequireFromString("0.50")},
		},
	}
	l := cart.Rehydrate(held, vatPct)

	if released := l.RemoveLine("X1"); released != "42" {
		t.Errorf("released = %q, want 42", released)
	}
	if l.HeldOrderNo() != cart.NoHeldOrder {
		t.Errorf("held binding not cleared: %s", l.HeldOrderNo())
	}
}

func TestClearReleasesHeldOrder(t *testing.T) {
	held := &entity.HeldOrder{
		OrderNo: "7",
		Lines: []entity.HeldOrderLine{
			{SlNo: 1, ItemCode: "X1", Qty: qty(1), Rate: qty(1), Amount: qty(1)},
		},
	}
	l := cart.Rehydrate(held, vatPct)
	l.AddLine(menuItem("1", "BRG", "Burger", "5.00"), qty(2))

	if released := l.Clear(); released != "7" {
		t.Errorf("released = %q, want 7", released)
	}
	if !l.Empty() || len(l.NewLines()) != 0 || len(l.UpdatedLines()) != 0 {
		t.Error("clear left residual lines")
	}
}

func TestNewAndUpdatedAreDisjoint(t *testing.T) {
	held := &entity.HeldOrder{
		OrderNo: "9",
		Lines: []entity.HeldOrderLine{
			{SlNo: 1, ItemCode: "X1", ItemName: "Shawarma", Qty: qty(4),
				Rate: decimal.RequireFromString("2.50"), Amount: decimal.RequireFromString("10.00"),
				VATAmt: decimal.RequireFromString("0.50")},
		},
	}
	l := cart.Rehydrate(held, vatPct)
	l.AddLine(menuItem("55", "COL", "Cola", "2.00"), qty(1))

	// Edit both the persisted line and the session-new line.
	l.UpdateQty("X1", "6")
	l.UpdateQty("55", "3")

	inNew := map[string]bool{}
	for _, li := range l.NewLines() {
		inNew[li.ItemID] = true
	}
	for _, li := range l.UpdatedLines() {
		if inNew[li.ItemID] {
			t.Errorf("item %s present in both newLines and updatedLines", li.ItemID)
		}
	}
	if len(l.UpdatedLines()) != 1 || l.UpdatedLines()[0].ItemID != "X1" {
		t.Errorf("updatedLines = %+v, want only X1", l.UpdatedLines())
	}
}

func TestUpdateQtyRecordsOriginalQtyOnce(t *testing.T) {
	held := &entity.HeldOrder{
		OrderNo: "9",
		Lines: []entity.HeldOrderLine{
			{SlNo: 1, ItemCode: "X1", ItemName: "Shawarma", Qty: qty(4),
				Rate: decimal.RequireFromString("2.50"), Amount: decimal.RequireFromString("10.00"),
				VATAmt: decimal.RequireFromString("0.50")},
		},
	}
	l := cart.Rehydrate(held, vatPct)

	l.UpdateQty("X1", "6")
	l.UpdateQty("X1", "2")

	li, _ := l.Line("X1")
	if !li.OriginalQty.Equal(qty(4)) {
		t.Errorf("originalQty = %s, want 4 (never overwritten)", li.OriginalQty)
	}
	upd := l.UpdatedLines()
	if len(upd) != 1 {
		t.Fatalf("updatedLines length = %d, want 1 (upsert, not append)", len(upd))
	}
	if !upd[0].Qty.Equal(qty(2)) || !upd[0].OriginalQty.Equal(qty(4)) {
		t.Errorf("updatedLines entry qty=%s originalQty=%s, want 2 and 4", upd[0].Qty, upd[0].OriginalQty)
	}
	if !li.Amount.Equal(decimal.RequireFromString("5.00")) {
		t.Errorf("amount=%s, want 5.00", li.Amount)
	}
}

func TestMarkPersistedRebaselines(t *testing.T) {
	l := cart.NewLedger(vatPct)
	l.AddLine(menuItem("1", "BRG", "Burger", "5.00"), qty(2))
	l.AddLine(menuItem("2", "PIZ", "Pizza", "8.00"), qty(1))

	l.MarkPersisted("101")

	if l.HeldOrderNo() != "101" {
		t.Errorf("heldOrderNo = %s, want 101", l.HeldOrderNo())
	}
	if len(l.NewLines()) != 0 || len(l.UpdatedLines()) != 0 {
		t.Error("delta views not reset")
	}
	for _, li := range l.Lines() {
		if li.IsNew {
			t.Errorf("line %s still marked new", li.ItemID)
		}
		if !li.OriginalQty.Equal(li.Qty) {
			t.Errorf("line %s originalQty=%s qty=%s", li.ItemID, li.OriginalQty, li.Qty)
		}
	}

	// A subsequent edit now tracks as an update, not a new line.
	l.UpdateQty("1", "5")
	if len(l.UpdatedLines()) != 1 || len(l.NewLines()) != 0 {
		t.Errorf("post-KOT edit tracked wrong: new=%d updated=%d", len(l.NewLines()), len(l.UpdatedLines()))
	}
}
