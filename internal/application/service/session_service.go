package service

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/cart"
	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
	"github.com/majidkambarath/restaurant-pos/internal/domain/enum"
	"github.com/majidkambarath/restaurant-pos/internal/domain/repository"
	"github.com/majidkambarath/restaurant-pos/pkg/apperror"
)

const (
	dateLayout = "02-Jan-2006"
	timeLayout = "15:04"
)

// OrderForm holds the header fields of the order being built, the
// counterpart of the cart ledger. One form per terminal session.
type OrderForm struct {
	OrderNo       string         `json:"orderNo"`
	OrderType     enum.OrderType `json:"orderType"`
	CustID        string         `json:"custId"`
	CustName      string         `json:"custName"`
	Flat          string         `json:"flat"`
	Address       string         `json:"address"`
	Contact       string         `json:"contact"`
	DeliveryBoyID string         `json:"deliveryBoyId"`
	TableID       string         `json:"tableId"`
	TableNo       string         `json:"tableNo"`
	SelectedSeats []string       `json:"selectedSeats"`
	Remarks       string         `json:"remarks"`
	Prefix        string         `json:"prefix"`
	Date          string         `json:"date"`
	Time          string         `json:"time"`
}

// session is the per-terminal state: the cart ledger, the order form and
// the cached reference data the operator works against. HTTP handlers run
// concurrently, so every access goes through mu.
type session struct {
	mu sync.Mutex

	ledger *cart.Ledger
	form   OrderForm

	items       []entity.CatalogItem
	categories  []entity.Category
	employees   []entity.Employee
	customers   []entity.Customer
	tables      []entity.Table
	pending     []entity.HeldOrder
	tokenCounts map[string]entity.TokenCount

	lastReceipt *entity.Receipt
}

// SessionView is the snapshot returned to the SPA after every operation.
type SessionView struct {
	Form         OrderForm           `json:"form"`
	Cart         []entity.LineItem   `json:"cart"`
	NewItems     []entity.LineItem   `json:"newItems"`
	UpdatedItems []entity.LineItem   `json:"updatedItems"`
	Totals       entity.OrderTotals  `json:"totals"`
	HeldOrderNo  string              `json:"heldOrder"`
	Pending      []entity.HeldOrder  `json:"pendingOrders"`
	Tables       []entity.Table      `json:"tables"`
	Employees    []entity.Employee   `json:"employees"`
	Categories   []entity.Category   `json:"categories"`
	TokenNo      int                 `json:"tokenNo"`
}

// SessionService orchestrates one cart session per terminal against the
// order backend.
type SessionService struct {
	catalog repository.CatalogGateway
	lookup  repository.LookupGateway
	orders  repository.OrderGateway

	calc   cart.Calculator
	prefix string

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionService creates a new session service. vatRate is a fraction
// (0.05 for 5%); a nil discount policy means no discount.
func NewSessionService(
	catalog repository.CatalogGateway,
	lookup repository.LookupGateway,
	orders repository.OrderGateway,
	vatRate decimal.Decimal,
	discount cart.DiscountPolicy,
	orderPrefix string,
) *SessionService {
	if orderPrefix == "" {
		orderPrefix = "ORD"
	}
	return &SessionService{
		catalog:  catalog,
		lookup:   lookup,
		orders:   orders,
		calc:     cart.NewCalculator(vatRate, discount),
		prefix:   orderPrefix,
		sessions: make(map[string]*session),
	}
}

// Open returns the terminal's session, creating and loading it on first
// use. Reference data is fetched in parallel; individual lookup failures
// degrade to empty lists so the terminal still comes up.
func (s *SessionService) Open(ctx context.Context, terminalID string) (*SessionView, error) {
	s.mu.Lock()
	sess, ok := s.sessions[terminalID]
	if !ok {
		sess = &session{
			ledger:      cart.NewLedger(s.calc.VATPct()),
			tokenCounts: map[string]entity.TokenCount{},
		}
		s.sessions[terminalID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !ok {
		s.loadInitialData(ctx, sess)
		sess.form = s.freshForm(sess.form.OrderNo)
	}
	return s.viewLocked(sess), nil
}

// AddItem adds qty of a cached menu item to the cart, merging with an
// existing line for the same item.
func (s *SessionService) AddItem(ctx context.Context, terminalID, itemID string, qty decimal.Decimal) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	item, found := findItem(sess.items, itemID)
	if !found {
		// The terminal may be adding from a search the session cache
		// missed; refetch once before giving up.
		if items, ferr := s.catalog.Items(ctx, repository.ItemQuery{}); ferr == nil {
			sess.items = items
			item, found = findItem(sess.items, itemID)
		}
	}
	if !found {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if qty.LessThan(decimal.New(1, 0)) {
		qty = decimal.New(1, 0)
	}
	sess.ledger.AddLine(item, qty)
	return s.viewLocked(sess), nil
}

// UpdateQty sets a cart line's quantity from raw operator input. Invalid
// input clamps to 1 inside the ledger.
func (s *SessionService) UpdateQty(terminalID, itemID, rawQty string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.ledger.UpdateQty(itemID, rawQty)
	return s.viewLocked(sess), nil
}

// RemoveLine deletes a cart line. If that empties a resumed order's cart
// the held binding is released and the order reappears as resumable.
func (s *SessionService) RemoveLine(terminalID, itemID string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if released := sess.ledger.RemoveLine(itemID); released != "" {
		s.releaseHeldLocked(sess, released)
	}
	return s.viewLocked(sess), nil
}

// ClearCart empties the cart and resets the order form for a new order.
func (s *SessionService) ClearCart(terminalID string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if released := sess.ledger.Clear(); released != "" {
		s.releaseHeldLocked(sess, released)
	}
	sess.form = s.freshForm(sess.form.OrderNo)
	return s.viewLocked(sess), nil
}

// SetOrderType switches the service option. Every type except Takeaway
// gets a fresh walk-in customer ID; Takeaway keeps the form but its
// customer fields are blanked at submission.
func (s *SessionService) SetOrderType(terminalID, name string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.form.OrderType = enum.OrderTypeFromName(name)
	if sess.form.OrderType != enum.OrderTypeTakeaway {
		sess.form.CustID = walkInCustomerID()
	}
	return s.viewLocked(sess), nil
}

// SelectCustomer fills the customer fields from a directory entry.
func (s *SessionService) SelectCustomer(terminalID, custCode string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	for _, c := range sess.customers {
		if c.Code == custCode {
			sess.form.CustID = c.Code
			sess.form.CustName = c.Name
			sess.form.Contact = c.ContactNo
			if c.Address1 != "" {
				sess.form.Flat = c.Address1
			} else {
				sess.form.Flat = c.Address2
			}
			sess.form.Address = c.Address()
			return s.viewLocked(sess), nil
		}
	}
	return nil, apperror.NewNotFoundError("Customer")
}

// SetCustomerInfo sets free-form customer fields for delivery orders.
func (s *SessionService) SetCustomerInfo(terminalID, name, contact, flat, address string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.form.CustName = name
	sess.form.Contact = contact
	sess.form.Flat = flat
	sess.form.Address = address
	return s.viewLocked(sess), nil
}

// SetDeliveryBoy assigns the delivery staff member by code.
func (s *SessionService) SetDeliveryBoy(terminalID, code string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if code == "" {
		code = "0"
	}
	sess.form.DeliveryBoyID = code
	return s.viewLocked(sess), nil
}

// SetRemarks sets the order remarks.
func (s *SessionService) SetRemarks(terminalID, remarks string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.form.Remarks = remarks
	return s.viewLocked(sess), nil
}

// ChooseTable binds a dine-in order to a table and its selected seats.
// Occupied tables and seats are rejected unless the session is resuming
// the order that occupies them.
func (s *SessionService) ChooseTable(terminalID, tableID string, seatNames []string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	table, found := findTable(sess.tables, tableID)
	if !found {
		return nil, apperror.NewNotFoundError("Table")
	}

	resuming := sess.ledger.HeldOrderNo() != cart.NoHeldOrder
	if table.Occupied() && !resuming {
		return nil, apperror.ErrTableOccupied
	}
	if len(seatNames) == 0 {
		return nil, apperror.ErrNoSeatsSelected
	}

	for _, name := range seatNames {
		for _, seat := range table.Seats {
			if seat.Name == name && seat.Status == 1 && !resuming {
				return nil, apperror.NewAppError(409, "Seat "+name+" is already occupied")
			}
		}
	}

	sess.form.TableID = table.ID
	sess.form.TableNo = table.Code
	sess.form.SelectedSeats = seatNames
	return s.viewLocked(sess), nil
}

// ResumeHeldOrder rehydrates the cart from a pending order and populates
// the form from its header. Any in-progress cart is replaced wholesale.
func (s *SessionService) ResumeHeldOrder(terminalID, orderNo string) (*SessionView, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var held *entity.HeldOrder
	for i := range sess.pending {
		if sess.pending[i].OrderNo == orderNo {
			held = &sess.pending[i]
			break
		}
	}
	if held == nil {
		return nil, apperror.NewNotFoundError("Pending order")
	}

	sess.ledger = cart.Rehydrate(held, s.calc.VATPct())

	prefix := held.Prefix
	if prefix == "" {
		prefix = s.prefix
	}
	sess.form = OrderForm{
		OrderNo:       held.OrderNo,
		OrderType:     held.Option,
		CustID:        held.CustID,
		CustName:      held.CustName,
		Flat:          held.Flat,
		Address:       held.Address,
		Contact:       held.Contact,
		DeliveryBoyID: held.DeliveryBoyID,
		TableID:       held.TableID,
		TableNo:       held.TableNo,
		SelectedSeats: held.OccupiedSeatNames(),
		Remarks:       held.Remarks,
		Prefix:        prefix,
		Date:          held.Date,
		Time:          held.Time,
	}
	return s.viewLocked(sess), nil
}

// SubmitResult carries the backend's message and the printable receipt of
// a successful submission.
type SubmitResult struct {
	Message string          `json:"message"`
	Receipt *entity.Receipt `json:"receipt"`
	View    *SessionView    `json:"session"`
}

// Submit saves the order. kot persists the items as a kitchen ticket and
// keeps the order open; otherwise the order goes out as NEW (unheld) or
// UPDATED (resumed) and the session resets for the next order. Validation
// failures and upstream errors leave the ledger untouched.
func (s *SessionService) Submit(ctx context.Context, terminalID string, kot bool) (*SubmitResult, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.ledger.Empty() {
		return nil, apperror.ErrEmptyCart
	}
	if sess.form.OrderType == enum.OrderTypeDineIn && len(sess.form.SelectedSeats) == 0 {
		return nil, apperror.ErrNoSeatsSelected
	}

	sub := s.buildSubmission(sess, kot)
	message, err := s.orders.Submit(ctx, sub)
	if err != nil {
		return nil, err
	}

	receipt := s.buildReceipt(sess, sub, kot)
	sess.lastReceipt = receipt

	if kot {
		sess.ledger.MarkPersisted(sess.form.OrderNo)
		s.refreshAfterSubmit(ctx, sess, false)
	} else {
		sess.ledger = cart.NewLedger(s.calc.VATPct())
		s.refreshAfterSubmit(ctx, sess, true)
		sess.form = s.freshForm(sess.form.OrderNo)
	}

	return &SubmitResult{
		Message: message,
		Receipt: receipt,
		View:    s.viewLocked(sess),
	}, nil
}

// LastReceipt returns the receipt of the terminal's most recent
// successful submission.
func (s *SessionService) LastReceipt(terminalID string) (*entity.Receipt, error) {
	sess, err := s.get(terminalID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.lastReceipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return sess.lastReceipt, nil
}

// RefreshItems replaces the session's cached menu list. Used by the
// catalog search flow.
func (s *SessionService) RefreshItems(terminalID string, items []entity.CatalogItem) {
	sess, err := s.get(terminalID)
	if err != nil {
		return
	}
	sess.mu.Lock()
	sess.items = items
	sess.mu.Unlock()
}

// RefreshCustomers replaces the session's cached customer list.
func (s *SessionService) RefreshCustomers(terminalID string, customers []entity.Customer) {
	sess, err := s.get(terminalID)
	if err != nil {
		return
	}
	sess.mu.Lock()
	sess.customers = customers
	sess.mu.Unlock()
}

func (s *SessionService) get(terminalID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[terminalID]
	if !ok {
		return nil, apperror.NewNotFoundError("Session")
	}
	return sess, nil
}

// loadInitialData performs the startup fetches in parallel. Each failure
// degrades to empty data; the order number seed falls back to "0".
func (s *SessionService) loadInitialData(ctx context.Context, sess *session) {
	var wg sync.WaitGroup
	var latest string

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() {
		n, err := s.orders.LatestOrderNo(ctx)
		if err != nil {
			log.Printf("session: latest order fetch failed: %v", err)
			n = "0"
		}
		latest = n
	})
	run(func() {
		items, err := s.catalog.Items(ctx, repository.ItemQuery{})
		if err != nil {
			log.Printf("session: items fetch failed: %v", err)
		}
		sess.items = items
	})
	run(func() {
		cats, err := s.catalog.Categories(ctx)
		if err != nil {
			log.Printf("session: categories fetch failed: %v", err)
		}
		sess.categories = cats
	})
	run(func() {
		emps, err := s.lookup.Employees(ctx)
		if err != nil {
			log.Printf("session: employees fetch failed: %v", err)
		}
		sess.employees = emps
	})
	run(func() {
		custs, err := s.lookup.Customers(ctx, "")
		if err != nil {
			log.Printf("session: customers fetch failed: %v", err)
		}
		sess.customers = custs
	})
	run(func() {
		tables, err := s.lookup.TablesAndSeats(ctx)
		if err != nil {
			log.Printf("session: tables fetch failed: %v", err)
		}
		sess.tables = tables
	})
	run(func() {
		pending, err := s.orders.PendingOrders(ctx)
		if err != nil {
			log.Printf("session: pending orders fetch failed: %v", err)
		}
		sess.pending = pending
	})
	run(func() {
		counts, err := s.orders.TokenCounts(ctx)
		if err != nil {
			log.Printf("session: token counts fetch failed: %v", err)
			counts = map[string]entity.TokenCount{}
		}
		sess.tokenCounts = counts
	})

	wg.Wait()
	sess.form.OrderNo = nextOrderNo(latest)
}

// refreshAfterSubmit re-reads the server state that a save changes. When
// seedOrderNo is set the form's order number is reseeded from the
// backend's latest.
func (s *SessionService) refreshAfterSubmit(ctx context.Context, sess *session, seedOrderNo bool) {
	var wg sync.WaitGroup
	var latest string

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	if seedOrderNo {
		run(func() {
			n, err := s.orders.LatestOrderNo(ctx)
			if err != nil {
				log.Printf("session: latest order refresh failed: %v", err)
				n = sess.form.OrderNo
			}
			latest = n
		})
	}
	run(func() {
		custs, err := s.lookup.Customers(ctx, "")
		if err != nil {
			log.Printf("session: customers refresh failed: %v", err)
			return
		}
		sess.customers = custs
	})
	run(func() {
		pending, err := s.orders.PendingOrders(ctx)
		if err != nil {
			log.Printf("session: pending refresh failed: %v", err)
			return
		}
		sess.pending = pending
	})
	run(func() {
		counts, err := s.orders.TokenCounts(ctx)
		if err != nil {
			log.Printf("session: token counts refresh failed: %v", err)
			return
		}
		sess.tokenCounts = counts
	})
	run(func() {
		tables, err := s.lookup.TablesAndSeats(ctx)
		if err != nil {
			log.Printf("session: tables refresh failed: %v", err)
			return
		}
		sess.tables = tables
	})

	wg.Wait()
	if seedOrderNo {
		sess.form.OrderNo = nextOrderNo(latest)
	}
}

func (s *SessionService) buildSubmission(sess *session, kot bool) *entity.OrderSubmission {
	form := sess.form
	takeaway := form.OrderType == enum.OrderTypeTakeaway

	status := enum.SubmitStatusNew
	if kot {
		status = enum.SubmitStatusKOT
	} else if sess.ledger.HeldOrderNo() != cart.NoHeldOrder {
		status = enum.SubmitStatusUpdated
	}

	lines := sess.ledger.Lines()
	items := make([]entity.SubmissionLine, 0, len(lines))
	for _, li := range lines {
		originalQty := li.OriginalQty
		if originalQty.IsZero() {
			originalQty = li.Qty
		}
		items = append(items, entity.SubmissionLine{
			SlNo:        li.SlNo,
			ItemCode:    li.ItemCode,
			ItemName:    li.ItemName,
			Qty:         li.Qty,
			Rate:        li.Rate,
			Amount:      li.Amount,
			Cost:        li.Cost,
			VAT:         li.VATPct,
			VATAmt:      li.VATAmt,
			TaxLedger:   li.TaxLedger,
			Arabic:      li.Arabic,
			Notes:       li.Notes,
			OriginalQty: originalQty,
		})
	}

	sub := &entity.OrderSubmission{
		OrderNo:       form.OrderNo,
		Status:        status,
		Date:          form.Date,
		Time:          form.Time,
		Option:        int(form.OrderType),
		CustID:        orDefault(form.CustID, "0"),
		CustName:      form.CustName,
		FlatNo:        form.Flat,
		Address:       form.Address,
		Contact:       form.Contact,
		DeliveryBoyID: orDefault(form.DeliveryBoyID, "0"),
		TableID:       orDefault(form.TableID, "0"),
		TableNo:       form.TableNo,
		SelectedSeats: form.SelectedSeats,
		Remarks:       form.Remarks,
		Total:         s.calc.Totals(lines).GrandTotal,
		Prefix:        form.Prefix,
		Items:         items,
		HoldedOrder:   sess.ledger.HeldOrderNo(),
		TokenNo:       s.tokenNoLocked(sess),
	}
	if sub.SelectedSeats == nil {
		sub.SelectedSeats = []string{}
	}
	if takeaway {
		sub.CustID = "0"
		sub.CustName = ""
		sub.FlatNo = ""
		sub.Address = ""
		sub.Contact = ""
	}
	return sub
}

// buildReceipt snapshots the submission into a printable value object.
// KOT receipts list only new and quantity-changed lines.
func (s *SessionService) buildReceipt(sess *session, sub *entity.OrderSubmission, kot bool) *entity.Receipt {
	r := &entity.Receipt{
		OrderNo:   sub.Prefix + sub.OrderNo,
		TokenNo:   sub.TokenNo,
		OrderType: sess.form.OrderType.String(),
		Date:      sub.Date,
		Time:      sub.Time,
		TableNo:   sess.form.TableNo,
		Customer:  sess.form.CustName,
		Contact:   sess.form.Contact,
		Address:   sess.form.Address,
		Remarks:   sub.Remarks,
		Totals:    s.calc.Totals(sess.ledger.Lines()),
		KOT:       kot,
	}
	if len(sess.form.SelectedSeats) > 0 {
		r.Seats = strings.Join(sess.form.SelectedSeats, ", ")
	}
	if name, ok := findEmployee(sess.employees, sess.form.DeliveryBoyID); ok {
		r.Staff = name
	}

	if kot {
		for _, li := range sess.ledger.NewLines() {
			r.Items = append(r.Items, entity.ReceiptItem{
				SlNo: li.SlNo, Name: li.ItemName, Qty: li.Qty,
				Rate: li.Rate, Amount: li.Amount,
			})
		}
		for _, li := range sess.ledger.UpdatedLines() {
			r.Items = append(r.Items, entity.ReceiptItem{
				SlNo: li.SlNo, Name: li.ItemName, Qty: li.Qty,
				OldQty: li.OriginalQty, Rate: li.Rate, Amount: li.Amount,
			})
		}
		return r
	}

	for _, li := range sess.ledger.Lines() {
		r.Items = append(r.Items, entity.ReceiptItem{
			SlNo: li.SlNo, Name: li.ItemName, Qty: li.Qty,
			Rate: li.Rate, Amount: li.Amount,
		})
	}
	return r
}

// freshForm resets the order form, keeping the already-seeded order
// number.
func (s *SessionService) freshForm(orderNo string) OrderForm {
	now := time.Now()
	return OrderForm{
		OrderNo:       orderNo,
		OrderType:     enum.OrderTypeDineIn,
		CustID:        walkInCustomerID(),
		DeliveryBoyID: "0",
		TableID:       "0",
		SelectedSeats: []string{},
		Prefix:        s.prefix,
		Date:          now.Format(dateLayout),
		Time:          now.Format(timeLayout),
	}
}

// releaseHeldLocked drops a released order from the cached pending list
// so it shows as resumable data consistent with the backend.
func (s *SessionService) releaseHeldLocked(sess *session, orderNo string) {
	kept := sess.pending[:0]
	for _, o := range sess.pending {
		if o.OrderNo != orderNo {
			kept = append(kept, o)
		}
	}
	sess.pending = kept
}

func (s *SessionService) tokenNoLocked(sess *session) int {
	if tc, ok := sess.tokenCounts[sess.form.OrderType.String()]; ok && tc.NextToken > 0 {
		return tc.NextToken
	}
	return 1
}

func (s *SessionService) viewLocked(sess *session) *SessionView {
	return &SessionView{
		Form:         sess.form,
		Cart:         sess.ledger.Lines(),
		NewItems:     sess.ledger.NewLines(),
		UpdatedItems: sess.ledger.UpdatedLines(),
		Totals:       s.calc.Totals(sess.ledger.Lines()),
		HeldOrderNo:  sess.ledger.HeldOrderNo(),
		Pending:      sess.pending,
		Tables:       sess.tables,
		Employees:    sess.employees,
		Categories:   sess.categories,
		TokenNo:      s.tokenNoLocked(sess),
	}
}

// nextOrderNo increments a numeric order number string; non-numeric input
// seeds from zero.
func nextOrderNo(latest string) string {
	n, err := strconv.Atoi(latest)
	if err != nil {
		n = 0
	}
	return strconv.Itoa(n + 1)
}

// walkInCustomerID generates the random five digit customer ID used for
// orders without a registered customer.
func walkInCustomerID() string {
	return strconv.Itoa(10000 + rand.Intn(90000))
}

func findItem(items []entity.CatalogItem, itemID string) (entity.CatalogItem, bool) {
	for _, it := range items {
		if it.ID == itemID {
			return it, true
		}
	}
	return entity.CatalogItem{}, false
}

func findTable(tables []entity.Table, tableID string) (entity.Table, bool) {
	for _, t := range tables {
		if t.ID == tableID {
			return t, true
		}
	}
	return entity.Table{}, false
}

func findEmployee(employees []entity.Employee, code string) (string, bool) {
	if code == "" || code == "0" {
		return "", false
	}
	for _, e := range employees {
		if e.Code == code {
			return e.Name, true
		}
	}
	return "", false
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
