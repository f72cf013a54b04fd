package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
)

type wireEmployee struct {
	Code    flexString `json:"Code"`
	EmpName string     `json:"EmpName"`
}

type wireCustomer struct {
	CustCode  flexString `json:"CustCode"`
	CustName  string     `json:"CustName"`
	ContactNo string     `json:"ContactNo"`
	Add1      string     `json:"Add1"`
	Add2      string     `json:"Add2"`
	Add3      string     `json:"Add3"`
}

type wireSeat struct {
	SeatID   flexString `json:"SeatId"`
	SeatName string     `json:"SeatName"`
	Status   flexInt    `json:"Status"`
}

type wireTable struct {
	TableID   flexString `json:"TableId"`
	TableCode string     `json:"TableCode"`
	Status    string     `json:"Status"`
	Capacity  flexInt    `json:"Capacity"`
	Seats     []wireSeat `json:"seats"`
}

// Employees fetches the staff list used for delivery boy selection
func (c *Client) Employees(ctx context.Context) ([]entity.Employee, error) {
	var raw []wireEmployee
	if err := c.get(ctx, "/employees", nil, &raw); err != nil {
		return nil, err
	}

	emps := make([]entity.Employee, 0, len(raw))
	for _, w := range raw {
		emps = append(emps, entity.Employee{
			Code: w.Code.String(),
			Name: w.EmpName,
		})
	}
	return emps, nil
}

// Customers searches the customer directory
func (c *Client) Customers(ctx context.Context, search string) ([]entity.Customer, error) {
	params := url.Values{}
	params.Set("search", search)
	params.Set("limit", strconv.Itoa(defaultPageSize))
	params.Set("offset", "0")

	var raw []wireCustomer
	if err := c.get(ctx, "/customers", params, &raw); err != nil {
		return nil, err
	}

	custs := make([]entity.Customer, 0, len(raw))
	for _, w := range raw {
		custs = append(custs, entity.Customer{
			Code:      w.CustCode.String(),
			Name:      w.CustName,
			ContactNo: w.ContactNo,
			Address1:  w.Add1,
			Address2:  w.Add2,
			Address3:  w.Add3,
		})
	}
	return custs, nil
}

// TablesAndSeats fetches the dining tables with their seat occupancy
func (c *Client) TablesAndSeats(ctx context.Context) ([]entity.Table, error) {
	var raw []wireTable
	if err := c.get(ctx, "/tables-seats", nil, &raw); err != nil {
		return nil, err
	}

	tables := make([]entity.Table, 0, len(raw))
	for _, w := range raw {
		tables = append(tables, mapTable(w))
	}
	return tables, nil
}

func mapTable(w wireTable) entity.Table {
	seats := make([]entity.Seat, 0, len(w.Seats))
	for _, s := range w.Seats {
		seats = append(seats, entity.Seat{
			ID:     s.SeatID.String(),
			Name:   s.SeatName,
			Status: int(s.Status),
		})
	}
	return entity.Table{
		ID:       w.TableID.String(),
		Code:     w.TableCode,
		Status:   w.Status,
		Capacity: int(w.Capacity),
		Seats:    seats,
	}
}
