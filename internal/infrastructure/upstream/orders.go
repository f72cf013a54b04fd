package upstream

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
	"github.com/majidkambarath/restaurant-pos/internal/domain/enum"
)

type wireOrderLine struct {
	SlNo             flexInt         `json:"SlNo"`
	ItemCode         string          `json:"ItemCode"`
	ItemName         string          `json:"ItemName"`
	Qty              decimal.Decimal `json:"Qty"`
	Rate             decimal.Decimal `json:"Rate"`
	Amount           decimal.Decimal `json:"Amount"`
	Cost             decimal.Decimal `json:"Cost"`
	VatAmt           decimal.Decimal `json:"VatAmt"`
	TaxLedger        string          `json:"TaxLedger"`
	OrderDetailNotes string          `json:"OrderDetailNotes"`
}

type wireTableInfo struct {
	TableID   flexString `json:"TableId"`
	TableCode string     `json:"TableCode"`
	Seats     []wireSeat `json:"seats"`
}

type wireHeldOrder struct {
	OrderNo      flexString      `json:"OrderNo"`
	CustID       flexString      `json:"CustId"`
	CustName     string          `json:"CustName"`
	Flat         string          `json:"Flat"`
	Address      string          `json:"Address"`
	Contact      string          `json:"Contact"`
	DelBoy       flexString      `json:"DelBoy"`
	TableNo      flexString      `json:"TableNo"`
	Options      flexInt         `json:"Options"`
	Status       string          `json:"Status"`
	Prefix       string          `json:"Prefix"`
	EDate        string          `json:"EDate"`
	Time         string          `json:"Time"`
	OrderRemarks string          `json:"OrderRemarks"`
	Total        decimal.Decimal `json:"Total"`
	OrderDetails []wireOrderLine `json:"orderDetails"`
	TableInfo    *wireTableInfo  `json:"tableInfo"`
}

type wireLatestOrder struct {
	OrderNo flexString `json:"orderNo"`
}

type wireTokenCount struct {
	NextToken flexInt `json:"nextToken"`
}

// LatestOrderNo returns the most recently issued order number; "0" when
// the backend has none yet
func (c *Client) LatestOrderNo(ctx context.Context) (string, error) {
	var raw wireLatestOrder
	if err := c.get(ctx, "/order/latest", nil, &raw); err != nil {
		return "", err
	}
	if raw.OrderNo == "" {
		return "0", nil
	}
	return raw.OrderNo.String(), nil
}

// PendingOrders fetches held orders awaiting settlement
func (c *Client) PendingOrders(ctx context.Context) ([]entity.HeldOrder, error) {
	var raw []wireHeldOrder
	if err := c.get(ctx, "/pending", nil, &raw); err != nil {
		return nil, err
	}

	orders := make([]entity.HeldOrder, 0, len(raw))
	for _, w := range raw {
		orders = append(orders, mapHeldOrder(w))
	}
	return orders, nil
}

// TokenCounts fetches the next kitchen token number per order type name
func (c *Client) TokenCounts(ctx context.Context) (map[string]entity.TokenCount, error) {
	var raw map[string]wireTokenCount
	if err := c.get(ctx, "/token-counts", nil, &raw); err != nil {
		return nil, err
	}

	counts := make(map[string]entity.TokenCount, len(raw))
	for name, w := range raw {
		counts[name] = entity.TokenCount{NextToken: int(w.NextToken)}
	}
	return counts, nil
}

// Submit persists an order and returns the backend's message
func (c *Client) Submit(ctx context.Context, sub *entity.OrderSubmission) (string, error) {
	var message string
	if err := c.post(ctx, "/orders", sub, nil, &message); err != nil {
		return "", err
	}
	return message, nil
}

// orderOption resolves the order type from the numeric Options column,
// falling back to the legacy Status name when Options is absent
func orderOption(w wireHeldOrder) enum.OrderType {
	if w.Options >= 1 && w.Options <= 3 {
		return enum.OrderType(int(w.Options))
	}
	return enum.OrderTypeFromName(w.Status)
}

func mapHeldOrder(w wireHeldOrder) entity.HeldOrder {
	lines := make([]entity.HeldOrderLine, 0, len(w.OrderDetails))
	for _, d := range w.OrderDetails {
		lines = append(lines, entity.HeldOrderLine{
			SlNo:      int(d.SlNo),
			ItemCode:  d.ItemCode,
			ItemName:  d.ItemName,
			Qty:       d.Qty,
			Rate:      d.Rate,
			Amount:    d.Amount,
			Cost:      d.Cost,
			VATAmt:    d.VatAmt,
			TaxLedger: d.TaxLedger,
			Notes:     d.OrderDetailNotes,
		})
	}

	order := entity.HeldOrder{
		OrderNo:       w.OrderNo.String(),
		CustID:        w.CustID.String(),
		CustName:      w.CustName,
		Flat:          w.Flat,
		Address:       w.Address,
		Contact:       w.Contact,
		DeliveryBoyID: w.DelBoy.String(),
		TableNo:       w.TableNo.String(),
		Option:        orderOption(w),
		Prefix:        w.Prefix,
		Date:          w.EDate,
		Time:          w.Time,
		Remarks:       w.OrderRemarks,
		Total:         w.Total,
		Lines:         lines,
	}
	if order.DeliveryBoyID == "" {
		order.DeliveryBoyID = "0"
	}
	if w.TableInfo != nil {
		order.TableID = w.TableInfo.TableID.String()
		if w.TableInfo.TableCode != "" {
			order.TableNo = w.TableInfo.TableCode
		}
		seats := make([]entity.Seat, 0, len(w.TableInfo.Seats))
		for _, s := range w.TableInfo.Seats {
			seats = append(seats, entity.Seat{
				ID:     s.SeatID.String(),
				Name:   s.SeatName,
				Status: int(s.Status),
			})
		}
		order.Seats = seats
	}
	if order.TableID == "" {
		order.TableID = "0"
	}
	return order
}
