package repository

import (
	"context"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
)

// ItemQuery narrows a menu item fetch. Zero value fetches everything.
type ItemQuery struct {
	GroupID string
	Search  string
}

// CatalogGateway fetches the menu from the order backend
type CatalogGateway interface {
	Items(ctx context.Context, q ItemQuery) ([]entity.CatalogItem, error)
	Categories(ctx context.Context) ([]entity.Category, error)
}

// LookupGateway fetches reference data from the order backend
type LookupGateway interface {
	Employees(ctx context.Context) ([]entity.Employee, error)
	// Customers searches registered customers by name or contact number
	Customers(ctx context.Context, search string) ([]entity.Customer, error)
	TablesAndSeats(ctx context.Context) ([]entity.Table, error)
}

// OrderGateway talks to the order backend for order lifecycle operations
type OrderGateway interface {
	// LatestOrderNo returns the next order number to assign
	LatestOrderNo(ctx context.Context) (string, error)
	// PendingOrders returns held orders awaiting settlement
	PendingOrders(ctx context.Context) ([]entity.HeldOrder, error)
	// TokenCounts returns the next kitchen token number per order type name
	TokenCounts(ctx context.Context) (map[string]entity.TokenCount, error)
	// Submit persists an order and returns the backend's message
	Submit(ctx context.Context, sub *entity.OrderSubmission) (string, error)
}
