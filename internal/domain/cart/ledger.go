// Package cart implements the order cart engine: line-item aggregation,
// quantity edits with new/updated delta tracking, order totals and
// rehydration of held orders. It is pure data transformation with no I/O.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
)

// NoHeldOrder is the held-order binding value of a ledger that is not
// resuming a held order.
const NoHeldOrder = "0"

// Ledger owns three parallel views over the order being built, all keyed
// by itemId:
//
//	lines        - canonical current state of every line (drives totals
//	               and the submitted order)
//	newLines     - lines added since the order was opened
//	updatedLines - previously persisted lines whose quantity changed
//
// A line is never in newLines and updatedLines at the same time: edits to
// a session-new line always route back into newLines.
type Ledger struct {
	vatPct       decimal.Decimal
	lines        []entity.LineItem
	newLines     []entity.LineItem
	updatedLines []entity.LineItem
	heldOrderNo  string
}

// NewLedger creates an empty ledger. vatPct is the line tax percentage
// (5 for a 5% VAT deployment).
func NewLedger(vatPct decimal.Decimal) *Ledger {
	return &Ledger{vatPct: vatPct, heldOrderNo: NoHeldOrder}
}

// AddLine merges qty of a catalog item into the cart. An existing line
// keeps its position and has the quantity summed; otherwise a new line is
// appended with the next slNo. The same merge-or-append is mirrored into
// newLines with its own independent slNo sequence.
func (l *Ledger) AddLine(item entity.CatalogItem, qty decimal.Decimal) {
	if qty.LessThan(one) {
		qty = one
	}
	if i := indexOf(l.lines, item.ID); i >= 0 {
		applyQty(&l.lines[i], l.lines[i].Qty.Add(qty))
	} else {
		l.lines = append(l.lines, l.buildLine(item, qty, len(l.lines)+1))
	}
	if i := indexOf(l.newLines, item.ID); i >= 0 {
		applyQty(&l.newLines[i], l.newLines[i].Qty.Add(qty))
	} else {
		l.newLines = append(l.newLines, l.buildLine(item, qty, len(l.newLines)+1))
	}
}

// UpdateQty sets (not adds) the quantity of an existing line. Raw input is
// clamped via ClampQty. Edits to a session-new line are mirrored into
// newLines; edits to a persisted line record originalQty on first touch
// and upsert the line into updatedLines. Unknown itemIDs are a silent
// no-op.
func (l *Ledger) UpdateQty(itemID string, rawQty string) {
	i := indexOf(l.lines, itemID)
	if i < 0 {
		return
	}
	qty := ClampQty(rawQty)
	isNew := indexOf(l.newLines, itemID) >= 0

	if !isNew && l.lines[i].OriginalQty.IsZero() {
		// First edit of a persisted line: remember the saved quantity.
		l.lines[i].OriginalQty = l.lines[i].Qty
	}
	applyQty(&l.lines[i], qty)

	if isNew {
		j := indexOf(l.newLines, itemID)
		applyQty(&l.newLines[j], qty)
		return
	}

	if j := indexOf(l.updatedLines, itemID); j >= 0 {
		applyQty(&l.updatedLines[j], qty)
	} else {
		cp := l.lines[i]
		cp.SlNo = len(l.updatedLines) + 1
		l.updatedLines = append(l.updatedLines, cp)
	}
}

// RemoveLine deletes itemID from every view and renumbers each slNo
// sequence contiguously from 1. When the removal empties a cart bound to
// a held order, the binding is released and the released order number
// returned; otherwise the result is empty. Unknown itemIDs are a silent
// no-op.
func (l *Ledger) RemoveLine(itemID string) (released string) {
	l.lines = removeAndRenumber(l.lines, itemID)
	l.newLines = removeAndRenumber(l.newLines, itemID)
	l.updatedLines = removeAndRenumber(l.updatedLines, itemID)
	return l.releaseIfEmpty()
}

// Clear empties all three views, releasing any held-order binding.
func (l *Ledger) Clear() (released string) {
	l.lines = nil
	l.newLines = nil
	l.updatedLines = nil
	return l.releaseIfEmpty()
}

// MarkPersisted re-baselines the ledger after a KOT submission: every
// current line becomes the persisted state (originalQty = qty), the
// new/updated views reset, and the ledger binds to orderNo so the next
// save goes out as an update.
func (l *Ledger) MarkPersisted(orderNo string) {
	for i := range l.lines {
		l.lines[i].OriginalQty = l.lines[i].Qty
		l.lines[i].IsNew = false
	}
	l.newLines = nil
	l.updatedLines = nil
	l.heldOrderNo = orderNo
}

// Lines returns a copy of the canonical cart lines.
func (l *Ledger) Lines() []entity.LineItem { return copyLines(l.lines) }

// NewLines returns a copy of the lines added this session.
func (l *Ledger) NewLines() []entity.LineItem { return copyLines(l.newLines) }

// UpdatedLines returns a copy of the persisted lines edited this session.
func (l *Ledger) UpdatedLines() []entity.LineItem { return copyLines(l.updatedLines) }

// Len returns the number of cart lines.
func (l *Ledger) Len() int { return len(l.lines) }

// Empty reports whether the cart has no lines.
func (l *Ledger) Empty() bool { return len(l.lines) == 0 }

// HeldOrderNo returns the bound held order number, or NoHeldOrder.
func (l *Ledger) HeldOrderNo() string { return l.heldOrderNo }

// Line returns the cart line for itemID.
func (l *Ledger) Line(itemID string) (entity.LineItem, bool) {
	if i := indexOf(l.lines, itemID); i >= 0 {
		return l.lines[i], true
	}
	return entity.LineItem{}, false
}

func (l *Ledger) buildLine(item entity.CatalogItem, qty decimal.Decimal, slNo int) entity.LineItem {
	amount := Amount(qty, item.Rate)
	return entity.LineItem{
		ItemID:    item.ID,
		SlNo:      slNo,
		ItemCode:  item.Code,
		ItemName:  item.Name,
		Qty:       qty,
		Rate:      item.Rate,
		Amount:    amount,
		Cost:      decimal.Zero,
		VATPct:    l.vatPct,
		VATAmt:    VATAmount(amount, l.vatPct),
		TaxLedger: "0",
		IsNew:     true,
	}
}

func (l *Ledger) releaseIfEmpty() (released string) {
	if len(l.lines) == 0 && l.heldOrderNo != NoHeldOrder {
		released = l.heldOrderNo
		l.heldOrderNo = NoHeldOrder
	}
	return released
}

// applyQty sets the quantity and recomputes the derived amount and VAT so
// the line invariants hold after every mutation.
func applyQty(li *entity.LineItem, qty decimal.Decimal) {
	li.Qty = qty
	li.Amount = Amount(qty, li.Rate)
	li.VATAmt = VATAmount(li.Amount, li.VATPct)
}

func indexOf(lines []entity.LineItem, itemID string) int {
	for i := range lines {
		if lines[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

func removeAndRenumber(lines []entity.LineItem, itemID string) []entity.LineItem {
	out := lines[:0]
	for _, li := range lines {
		if li.ItemID != itemID {
			out = append(out, li)
		}
	}
	for i := range out {
		out[i].SlNo = i + 1
	}
	return out
}

func copyLines(lines []entity.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, len(lines))
	copy(out, lines)
	return out
}
