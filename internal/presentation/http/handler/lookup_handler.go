package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/majidkambarath/restaurant-pos/internal/application/service"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/dto/response"
)

// LookupHandler serves the reference data around the cart: employees,
// customers, tables, held orders and token counters.
type LookupHandler struct {
	lookupService  *service.LookupService
	sessionService *service.SessionService
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(lookupService *service.LookupService, sessionService *service.SessionService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService, sessionService: sessionService}
}

// Employees returns the staff list for delivery boy assignment.
func (h *LookupHandler) Employees(c *gin.Context) {
	employees := h.lookupService.Employees(c.Request.Context())
	response.OK(c, "Employees retrieved", employees)
}

// Customers runs a debounced customer search.
func (h *LookupHandler) Customers(c *gin.Context) {
	terminalID := GetTerminalID(c)
	customers := h.lookupService.SearchCustomers(c.Request.Context(), terminalID, c.Query("search"))
	h.sessionService.RefreshCustomers(terminalID, customers)
	response.OK(c, "Customers retrieved", customers)
}

// Tables returns the dining tables with their seats and occupancy.
func (h *LookupHandler) Tables(c *gin.Context) {
	tables := h.lookupService.TablesAndSeats(c.Request.Context())
	response.OK(c, "Tables retrieved", tables)
}

// Pending returns the held orders available for resumption.
func (h *LookupHandler) Pending(c *gin.Context) {
	pending := h.lookupService.PendingOrders(c.Request.Context())
	response.OK(c, "Pending orders retrieved", pending)
}

// TokenCounts returns the next token number per order type.
func (h *LookupHandler) TokenCounts(c *gin.Context) {
	counts := h.lookupService.TokenCounts(c.Request.Context())
	response.OK(c, "Token counts retrieved", counts)
}
