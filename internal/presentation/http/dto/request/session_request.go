package request

import (
	"bytes"
	"encoding/json"
)

// RawQty accepts a quantity as either a JSON string or a number. The cart
// engine owns the coercion rules (non-numeric and sub-1 values clamp to 1),
// so the wire layer only preserves whatever the client typed.
type RawQty string

func (q *RawQty) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = RawQty(s)
		return nil
	}
	*q = RawQty(data)
	return nil
}

// AddItemRequest adds a catalog item to the cart. Qty defaults to 1.
type AddItemRequest struct {
	ItemID string  `json:"itemId" binding:"required"`
	Qty    float64 `json:"qty"`
}

// UpdateQtyRequest overwrites the quantity of a cart line.
type UpdateQtyRequest struct {
	Qty RawQty `json:"qty"`
}

// OrderTypeRequest switches the active order type.
type OrderTypeRequest struct {
	OrderType string `json:"orderType" binding:"required,oneof=Delivery Dine-In Takeaway"`
}

// SelectCustomerRequest picks a customer from the directory.
type SelectCustomerRequest struct {
	CustCode string `json:"custCode" binding:"required"`
}

// CustomerInfoRequest sets free-form customer details on the order form.
type CustomerInfoRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Flat    string `json:"flat"`
	Address string `json:"address"`
}

// DeliveryBoyRequest assigns a delivery boy by employee code.
type DeliveryBoyRequest struct {
	Code string `json:"code"`
}

// RemarksRequest sets the order remarks.
type RemarksRequest struct {
	Remarks string `json:"remarks"`
}

// ChooseTableRequest selects a dining table and its seats.
type ChooseTableRequest struct {
	TableID string   `json:"tableId" binding:"required"`
	Seats   []string `json:"seats"`
}

// ResumeOrderRequest reopens a held order into the cart.
type ResumeOrderRequest struct {
	OrderNo string `json:"orderNo" binding:"required"`
}

// SubmitRequest saves the order. KOT holds the order open on the kitchen
// ticket instead of settling it.
type SubmitRequest struct {
	KOT bool `json:"kot"`
}
