package enum

import "encoding/json"

// OrderType represents the service option of an order. The wire values
// match the upstream backend's Options column: Delivery=1, Dine-In=2,
// Takeaway=3.
type OrderType int

const (
	OrderTypeDelivery OrderType = 1
	OrderTypeDineIn   OrderType = 2
	OrderTypeTakeaway OrderType = 3
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeDelivery:
		return "Delivery"
	case OrderTypeDineIn:
		return "Dine-In"
	case OrderTypeTakeaway:
		return "Takeaway"
	}
	return "Dine-In"
}

// OrderTypeFromName maps a display name back to its wire value.
// Unknown names default to Dine-In.
func OrderTypeFromName(name string) OrderType {
	switch name {
	case "Delivery":
		return OrderTypeDelivery
	case "Takeaway":
		return OrderTypeTakeaway
	case "Dine-In":
		return OrderTypeDineIn
	}
	return OrderTypeDineIn
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = OrderType(i)
		return nil
	}
	*t = OrderTypeFromName(str)
	return nil
}
