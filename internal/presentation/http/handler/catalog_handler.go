package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/majidkambarath/restaurant-pos/internal/application/service"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/dto/response"
	"github.com/majidkambarath/restaurant-pos/pkg/pagination"
)

// CatalogHandler serves the menu: items, categories and debounced item
// search. Search results are pushed into the terminal session cache so a
// follow-up add-to-cart can resolve the item without another fetch.
type CatalogHandler struct {
	catalogService *service.CatalogService
	sessionService *service.SessionService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService *service.CatalogService, sessionService *service.SessionService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, sessionService: sessionService}
}

// List returns menu items, optionally filtered by menu group. The
// upstream returns the full list; paging happens locally.
func (h *CatalogHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	items := h.catalogService.Items(c.Request.Context(), c.Query("grpId"))
	h.sessionService.RefreshItems(GetTerminalID(c), items)
	response.SuccessWithPagination(c, http.StatusOK, "Items retrieved", pagination.Paginate(items, params))
}

// Categories returns the menu groups.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories := h.catalogService.Categories(c.Request.Context())
	response.OK(c, "Categories retrieved", categories)
}

// Search runs a debounced item search. Rapid keystrokes from the same
// terminal collapse into one upstream fetch for the final query.
func (h *CatalogHandler) Search(c *gin.Context) {
	terminalID := GetTerminalID(c)
	items := h.catalogService.Search(c.Request.Context(), terminalID, c.Query("q"))
	h.sessionService.RefreshItems(terminalID, items)
	response.OK(c, "Items retrieved", items)
}
