package entity

import "github.com/shopspring/decimal"

// CatalogItem is a menu item as presented to the cart engine. The upstream
// wire shape (ItemId/ItemCode/Rate server casing) is mapped into this
// canonical form at the client boundary; wire casing never reaches the
// engine.
type CatalogItem struct {
	ID      string          `json:"id"`
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Rate    decimal.Decimal `json:"rate"`
	GroupID string          `json:"grpId"`
}

// Category is a menu group used to filter the item list.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Employee is a staff member selectable as a delivery boy.
type Employee struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Customer is a directory entry selectable for delivery orders.
type Customer struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	ContactNo string `json:"contactNo"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	Address3  string `json:"address3"`
}

// Address returns the first non-empty address line.
func (c Customer) Address() string {
	for _, a := range []string{c.Address1, c.Address2, c.Address3} {
		if a != "" {
			return a
		}
	}
	return ""
}

// Seat belongs to a table. Status 1 means occupied.
type Seat struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

// Table is a dining table with its seats and occupancy status.
type Table struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Status   string `json:"status"`
	Capacity int    `json:"capacity"`
	Seats    []Seat `json:"seats"`
}

// Occupied reports whether the table is currently held by an open order.
func (t Table) Occupied() bool {
	return t.Status == "OCCUPIED"
}

// TokenCount is the next ticket number for one order type.
type TokenCount struct {
	NextToken int `json:"nextToken"`
}
