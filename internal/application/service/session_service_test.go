package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
	"github.com/majidkambarath/restaurant-pos/internal/domain/enum"
	"github.com/majidkambarath/restaurant-pos/internal/domain/repository"
	"github.com/majidkambarath/restaurant-pos/pkg/apperror"
)

type fakeBackend struct {
	items     []entity.CatalogItem
	tables    []entity.Table
	pending   []entity.HeldOrder
	latest    string
	submitted []*entity.OrderSubmission
	submitErr error
}

func (f *fakeBackend) Items(ctx context.Context, q repository.ItemQuery) ([]entity.CatalogItem, error) {
	return f.items, nil
}

func (f *fakeBackend) Categories(ctx context.Context) ([]entity.Category, error) {
	return []entity.Category{{ID: "1", Name: "Grills"}}, nil
}

func (f *fakeBackend) Employees(ctx context.Context) ([]entity.Employee, error) {
	return []entity.Employee{{Code: "E1", Name: "Rashid"}}, nil
}

func (f *fakeBackend) Customers(ctx context.Context, search string) ([]entity.Customer, error) {
	return []entity.Customer{{Code: "C5", Name: "Aisha", ContactNo: "0501234567", Address1: "Flat 2"}}, nil
}

func (f *fakeBackend) TablesAndSeats(ctx context.Context) ([]entity.Table, error) {
	return f.tables, nil
}

func (f *fakeBackend) LatestOrderNo(ctx context.Context) (string, error) {
	return f.latest, nil
}

func (f *fakeBackend) PendingOrders(ctx context.Context) ([]entity.HeldOrder, error) {
	return f.pending, nil
}

func (f *fakeBackend) TokenCounts(ctx context.Context) (map[string]entity.TokenCount, error) {
	return map[string]entity.TokenCount{"Dine-In": {NextToken: 7}}, nil
}

func (f *fakeBackend) Submit(ctx context.Context, sub *entity.OrderSubmission) (string, error) {
	if f.submitErr != nil {
		return "", f.submitErr
	}
	f.submitted = append(f.submitted, sub)
	return "Order saved", nil
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		latest: "117",
		items: []entity.CatalogItem{
			{ID: "1", Code: "BRG", Name: "Burger", Rate: decimal.RequireFromString("12.50")},
			{ID: "2", Code: "COL", Name: "Cola", Rate: decimal.RequireFromString("3.00")},
		},
		tables: []entity.Table{
			{ID: "3", Code: "T3", Status: "FREE", Seats: []entity.Seat{
				{ID: "9", Name: "S1", Status: 0},
				{ID: "10", Name: "S2", Status: 0},
			}},
			{ID: "4", Code: "T4", Status: "OCCUPIED", Seats: []entity.Seat{
				{ID: "11", Name: "S1", Status: 1},
			}},
		},
		pending: []entity.HeldOrder{
			{
				OrderNo: "110", Option: enum.OrderTypeDineIn, Prefix: "ORD",
				TableID: "4", TableNo: "T4",
				Seats: []entity.Seat{{Name: "S1", Status: 1}},
				Lines: []entity.HeldOrderLine{
					{SlNo: 1, ItemCode: "X1", ItemName: "Shawarma",
						Qty: decimal.NewFromInt(4), Rate: decimal.RequireFromString("2.50"),
						Amount: decimal.RequireFromString("10.00"), VATAmt: decimal.RequireFromString("0.50")},
				},
			},
		},
	}
}

func newTestSessionService(f *fakeBackend) *SessionService {
	return NewSessionService(f, f, f, decimal.RequireFromString("0.05"), nil, "ORD")
}

func openSession(t *testing.T, s *SessionService) string {
	t.Helper()
	const terminal = "TERM-1"
	if _, err := s.Open(context.Background(), terminal); err != nil {
		t.Fatal(err)
	}
	return terminal
}

func TestOpenSeedsOrderNoFromLatest(t *testing.T) {
	s := newTestSessionService(newFakeBackend())
	view, err := s.Open(context.Background(), "TERM-1")
	if err != nil {
		t.Fatal(err)
	}
	if view.Form.OrderNo != "118" {
		t.Errorf("orderNo = %s, want 118 (latest 117 + 1)", view.Form.OrderNo)
	}
	if view.Form.OrderType != enum.OrderTypeDineIn {
		t.Errorf("default order type = %v, want Dine-In", view.Form.OrderType)
	}
	if view.Form.CustID == "" || view.Form.CustID == "0" {
		t.Errorf("walk-in custId not generated: %q", view.Form.CustID)
	}
	if view.TokenNo != 7 {
		t.Errorf("tokenNo = %d, want 7", view.TokenNo)
	}
}

func TestAddItemAndTotals(t *testing.T) {
	s := newTestSessionService(newFakeBackend())
	term := openSession(t, s)

	if _, err := s.AddItem(context.Background(), term, "1", decimal.NewFromInt(2)); err != nil {
		t.Fatal(err)
	}
	view, err := s.AddItem(context.Background(), term, "2", decimal.NewFromInt(3))
	if err != nil {
		t.Fatal(err)
	}

	if len(view.Cart) != 2 {
		t.Fatalf("cart length = %d, want 2", len(view.Cart))
	}
	if !view.Totals.Subtotal.Equal(decimal.RequireFromString("34.00")) {
		t.Errorf("subtotal = %s, want 34.00", view.Totals.Subtotal)
	}
	if !view.Totals.GrandTotal.Equal(decimal.RequireFromString("35.70")) {
		t.Errorf("grandTotal = %s, want 35.70", view.Totals.GrandTotal)
	}
}

func TestAddItemUnknown(t *testing.T) {
	s := newTestSessionService(newFakeBackend())
	term := openSession(t, s)

	if _, err := s.AddItem(context.Background(), term, "nope", decimal.NewFromInt(1)); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestSubmitEmptyCartRejectedLocally(t *testing.T) {
	f := newFakeBackend()
	s := newTestSessionService(f)
	term := openSession(t, s)

	_, err := s.Submit(context.Background(), term, false)
	if err != apperror.ErrEmptyCart {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
	if len(f.submitted) != 0 {
		t.Error("empty cart still reached the backend")
	}
}

func TestSubmitDineInWithoutSeatsRejectedLocally(t *testing.T) {
	f := newFakeBackend()
	s := newTestSessionService(f)
	term := openSession(t, s)

	if _, err := s.AddItem(context.Background(), term, "1", decimal.NewFromInt(1)); err != nil {
		t.Fatal(err)
	}
	_, err := s.Submit(context.Background(), term, false)
	if err != apperror.ErrNoSeatsSelected {
		t.Fatalf("err = %v, want ErrNoSeatsSelected", err)
	}
	if len(f.submitted) != 0 {
		t.Error("invalid order still reached the backend")
	}
}

func TestSubmitNewOrder(t *testing.T) {
	f := newFakeBackend()
	s := newTestSessionService(f)
	term := openSession(t, s)

	if _, err := s.AddItem(context.Background(), term, "1", decimal.NewFromInt(2)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ChooseTable(term, "3", []string{"S1"}); err != nil {
		t.Fatal(err)
	}

	res, err := s.Submit(context.Background(), term, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Message != "Order saved" {
		t.Errorf("message = %q", res.Message)
	}

	if len(f.submitted) != 1 {
		t.Fatalf("submissions = %d, want 1", len(f.submitted))
	}
	sub := f.submitted[0]
	if sub.Status != enum.SubmitStatusNew {
		t.Errorf("status = %s, want NEW", sub.Status)
	}
	if sub.HoldedOrder != "0" {
		t.Errorf("holdedOrder = %s, want 0", sub.HoldedOrder)
	}
	if sub.Option != 2 {
		t.Errorf("option = %d, want 2 (Dine-In)", sub.Option)
	}
	if sub.TokenNo != 7 {
		t.Errorf("tokenNo = %d, want 7", sub.TokenNo)
	}
	if len(sub.Items) != 1 || !sub.Items[0].OriginalQty.Equal(decimal.NewFromInt(2)) {
		t.Errorf("items = %+v, want originalQty falling back to qty", sub.Items)
	}
	if !sub.Total.Equal(decimal.RequireFromString("26.25")) {
		t.Errorf("total = %s, want 26.25", sub.Total)
	}

	// Session resets for the next order.
	if !res.View.Totals.Subtotal.IsZero() || len(res.View.Cart) != 0 {
		t.Error("cart not cleared after save")
	}
	if res.View.Form.OrderNo != "118" {
		t.Errorf("next orderNo = %s, want 118 (reseeded from latest)", res.View.Form.OrderNo)
	}
}

func TestSubmitTakeawayBlanksCustomerFields(t *testing.T) {
	f := newFakeBackend()
	s := newTestSessionService(f)
	term := openSession(t, s)

	if _, err := s.SetOrderType(term, "Takeaway"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetCustomerInfo(term, "Aisha", "0501234567", "Flat 2", "Marina"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddItem(context.Background(), term, "1", decimal.NewFromInt(1)); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Submit(context.Background(), term, false); err != nil {
		t.Fatal(err)
	}
	sub := f.submitted[0]
	if sub.CustID != "0" || sub.CustName != "" || sub.FlatNo != "" || sub.Address != "" || sub.Contact != "" {
		t.Errorf("takeaway customer fields not blanked: %+v", sub)
	}
	if sub.Option != 3 {
		t.Errorf("option = %d, want 3 (Takeaway)", sub.Option)
	}
}

func TestSubmitFailureLeavesLedgerIntact(t *testing.T) {
	f := newFakeBackend()
	f.submitErr = apperror.ErrUpstream
	s := newTestSessionService(f)
	term := openSession(t, s)

	if _, err := s.AddItem(context.Background(), term, "1", decimal.NewFromInt(2)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ChooseTable(term, "3", []string{"S1"}); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Submit(context.Background(), term, false); err == nil {
		t.Fatal("expected upstream error")
	}

	view, err := s.Open(context.Background(), term)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Cart) != 1 || !view.Cart[0].Qty.Equal(decimal.NewFromInt(2)) {
		t.Errorf("ledger mutated after failed submit: %+v", view.Cart)
	}
}

func TestResumeAndSubmitUpdated(t *testing.T) {
	f := newFakeBackend()
	s := newTestSessionService(f)
	term := openSession(t, s)

	view, err := s.ResumeHeldOrder(term, "110")
	if err != nil {
		t.Fatal(err)
	}
	if view.HeldOrderNo != "110" || view.Form.OrderNo != "110" {
		t.Errorf("resume did not bind the held order: %+v", view.Form)
	}
	if len(view.Cart) != 1 || !view.Cart[0].OriginalQty.Equal(decimal.NewFromInt(4)) {
		t.Errorf("rehydrated cart wrong: %+v", view.Cart)
	}
	if view.Form.SelectedSeats[0] != "S1" {
		t.Errorf("seats = %v, want [S1]", view.Form.SelectedSeats)
	}

	if _, err := s.UpdateQty(term, "X1", "6"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(context.Background(), term, false); err != nil {
		t.Fatal(err)
	}

	sub := f.submitted[0]
	if sub.Status != enum.SubmitStatusUpdated {
		t.Errorf("status = %s, want UPDATED", sub.Status)
	}
	if sub.HoldedOrder != "110" {
		t.Errorf("holdedOrder = %s, want 110", sub.HoldedOrder)
	}
	if !sub.Items[0].OriginalQty.Equal(decimal.NewFromInt(4)) {
		t.Errorf("originalQty = %s, want the persisted 4", sub.Items[0].OriginalQty)
	}
}

func TestSubmitKOTKeepsOrderOpen(t *testing.T) {
	f := newFakeBackend()
	s := newTestSessionService(f)
	term := openSession(t, s)

	if _, err := s.AddItem(context.Background(), term, "1", decimal.NewFromInt(2)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ChooseTable(term, "3", []string{"S1"}); err != nil {
		t.Fatal(err)
	}

	res, err := s.Submit(context.Background(), term, true)
	if err != nil {
		t.Fatal(err)
	}
	if f.submitted[0].Status != enum.SubmitStatusKOT {
		t.Errorf("status = %s, want KOT", f.submitted[0].Status)
	}
	if !res.Receipt.KOT {
		t.Error("receipt not marked as kitchen ticket")
	}

	// The cart stays, re-baselined as persisted lines.
	if len(res.View.Cart) != 1 {
		t.Fatalf("cart cleared by KOT save")
	}
	if res.View.HeldOrderNo != "118" {
		t.Errorf("heldOrder = %s, want 118", res.View.HeldOrderNo)
	}
	if res.View.Cart[0].IsNew || !res.View.Cart[0].OriginalQty.Equal(decimal.NewFromInt(2)) {
		t.Errorf("KOT baseline wrong: %+v", res.View.Cart[0])
	}
}

func TestChooseTableOccupiedRejected(t *testing.T) {
	s := newTestSessionService(newFakeBackend())
	term := openSession(t, s)

	if _, err := s.ChooseTable(term, "4", []string{"S1"}); err != apperror.ErrTableOccupied {
		t.Fatalf("err = %v, want ErrTableOccupied", err)
	}

	// Resuming the order that holds the table makes it selectable again.
	if _, err := s.ResumeHeldOrder(term, "110"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ChooseTable(term, "4", []string{"S1"}); err != nil {
		t.Errorf("occupied table rejected while resuming its order: %v", err)
	}
}

func TestSelectCustomerFillsForm(t *testing.T) {
	s := newTestSessionService(newFakeBackend())
	term := openSession(t, s)

	view, err := s.SelectCustomer(term, "C5")
	if err != nil {
		t.Fatal(err)
	}
	if view.Form.CustID != "C5" || view.Form.CustName != "Aisha" || view.Form.Contact != "0501234567" {
		t.Errorf("customer fields = %+v", view.Form)
	}
	if view.Form.Flat != "Flat 2" || view.Form.Address != "Flat 2" {
		t.Errorf("address fields = flat %q address %q", view.Form.Flat, view.Form.Address)
	}
}

func TestRemoveLastLineReleasesHeldOrderFromPending(t *testing.T) {
	s := newTestSessionService(newFakeBackend())
	term := openSession(t, s)

	if _, err := s.ResumeHeldOrder(term, "110"); err != nil {
		t.Fatal(err)
	}
	view, err := s.RemoveLine(term, "X1")
	if err != nil {
		t.Fatal(err)
	}
	if view.HeldOrderNo != "0" {
		t.Errorf("held binding not released: %s", view.HeldOrderNo)
	}
	for _, o := range view.Pending {
		if o.OrderNo == "110" {
			t.Error("released order still cached as pending")
		}
	}
}
