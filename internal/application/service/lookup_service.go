package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
	"github.com/majidkambarath/restaurant-pos/internal/domain/repository"
	"github.com/majidkambarath/restaurant-pos/pkg/debounce"
)

// LookupService proxies reference data from the order backend. Read
// failures always degrade to empty lists so the terminal keeps working.
type LookupService struct {
	gateway repository.LookupGateway
	orders  repository.OrderGateway
	wait    time.Duration

	mu        sync.Mutex
	terminals map[string]*searchState[entity.Customer]
}

// NewLookupService creates a lookup service with the given customer
// search debounce interval.
func NewLookupService(gateway repository.LookupGateway, orders repository.OrderGateway, searchDebounce time.Duration) *LookupService {
	return &LookupService{
		gateway:   gateway,
		orders:    orders,
		wait:      searchDebounce,
		terminals: make(map[string]*searchState[entity.Customer]),
	}
}

// Employees fetches the staff list.
func (s *LookupService) Employees(ctx context.Context) []entity.Employee {
	emps, err := s.gateway.Employees(ctx)
	if err != nil {
		log.Printf("lookup: employees fetch failed: %v", err)
		return []entity.Employee{}
	}
	return emps
}

// TablesAndSeats fetches the dining tables with seat occupancy.
func (s *LookupService) TablesAndSeats(ctx context.Context) []entity.Table {
	tables, err := s.gateway.TablesAndSeats(ctx)
	if err != nil {
		log.Printf("lookup: tables fetch failed: %v", err)
		return []entity.Table{}
	}
	return tables
}

// PendingOrders fetches held orders awaiting settlement.
func (s *LookupService) PendingOrders(ctx context.Context) []entity.HeldOrder {
	pending, err := s.orders.PendingOrders(ctx)
	if err != nil {
		log.Printf("lookup: pending orders fetch failed: %v", err)
		return []entity.HeldOrder{}
	}
	return pending
}

// TokenCounts fetches the next kitchen token numbers.
func (s *LookupService) TokenCounts(ctx context.Context) map[string]entity.TokenCount {
	counts, err := s.orders.TokenCounts(ctx)
	if err != nil {
		log.Printf("lookup: token counts fetch failed: %v", err)
		return map[string]entity.TokenCount{}
	}
	return counts
}

// SearchCustomers runs a debounced customer directory search for the
// terminal, same coalescing rules as the menu search.
func (s *LookupService) SearchCustomers(ctx context.Context, terminalID, query string) []entity.Customer {
	st := s.state(terminalID)
	return st.search(ctx, s.wait, func() ([]entity.Customer, error) {
		return s.gateway.Customers(context.WithoutCancel(ctx), query)
	})
}

func (s *LookupService) state(terminalID string) *searchState[entity.Customer] {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.terminals[terminalID]
	if !ok {
		st = &searchState[entity.Customer]{deb: debounce.New(s.wait)}
		s.terminals[terminalID] = st
	}
	return st
}
