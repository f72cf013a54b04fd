package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/application/service"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/dto/request"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/dto/response"
)

// SessionHandler exposes the per-terminal order building session: the cart
// ledger, the order form and submission. Every response carries the full
// session view so the SPA can re-render without follow-up requests.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Open starts (or restarts) the terminal session and loads reference data.
func (h *SessionHandler) Open(c *gin.Context) {
	view, err := h.sessionService.Open(c.Request.Context(), GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Session opened", view)
}

// AddItem adds a catalog item to the cart, merging duplicate item IDs.
func (h *SessionHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	qty := decimal.NewFromFloat(req.Qty)
	view, err := h.sessionService.AddItem(c.Request.Context(), GetTerminalID(c), req.ItemID, qty)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", view)
}

// UpdateQty overwrites the quantity of a cart line.
func (h *SessionHandler) UpdateQty(c *gin.Context) {
	var req request.UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.sessionService.UpdateQty(GetTerminalID(c), c.Param("itemId"), string(req.Qty))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", view)
}

// RemoveLine deletes a cart line and renumbers the remaining ones.
func (h *SessionHandler) RemoveLine(c *gin.Context) {
	view, err := h.sessionService.RemoveLine(GetTerminalID(c), c.Param("itemId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", view)
}

// ClearCart empties the cart and resets the order form.
func (h *SessionHandler) ClearCart(c *gin.Context) {
	view, err := h.sessionService.ClearCart(GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart cleared", view)
}

// SetOrderType switches between Delivery, Dine-In and Takeaway.
func (h *SessionHandler) SetOrderType(c *gin.Context) {
	var req request.OrderTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.sessionService.SetOrderType(GetTerminalID(c), req.OrderType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order type updated", view)
}

// SelectCustomer fills the order form from a customer directory entry.
func (h *SessionHandler) SelectCustomer(c *gin.Context) {
	var req request.SelectCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.sessionService.SelectCustomer(GetTerminalID(c), req.CustCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer selected", view)
}

// SetCustomerInfo sets free-form customer details on the order form.
func (h *SessionHandler) SetCustomerInfo(c *gin.Context) {
	var req request.CustomerInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.sessionService.SetCustomerInfo(GetTerminalID(c), req.Name, req.Contact, req.Flat, req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer info updated", view)
}

// SetDeliveryBoy assigns a delivery boy by employee code.
func (h *SessionHandler) SetDeliveryBoy(c *gin.Context) {
	var req request.DeliveryBoyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.sessionService.SetDeliveryBoy(GetTerminalID(c), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Delivery boy assigned", view)
}

// SetRemarks sets the order remarks.
func (h *SessionHandler) SetRemarks(c *gin.Context) {
	var req request.RemarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.sessionService.SetRemarks(GetTerminalID(c), req.Remarks)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Remarks updated", view)
}

// ChooseTable selects a dining table and its seats for a Dine-In order.
func (h *SessionHandler) ChooseTable(c *gin.Context) {
	var req request.ChooseTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.sessionService.ChooseTable(GetTerminalID(c), req.TableID, req.Seats)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table selected", view)
}

// Resume reopens a held order into the cart.
func (h *SessionHandler) Resume(c *gin.Context) {
	var req request.ResumeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.sessionService.ResumeHeldOrder(GetTerminalID(c), req.OrderNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order resumed", view)
}

// Submit saves the order to the backend. A KOT submission keeps the cart
// open as the persisted baseline; otherwise the session resets for the
// next order.
func (h *SessionHandler) Submit(c *gin.Context) {
	var req request.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.sessionService.Submit(c.Request.Context(), GetTerminalID(c), req.KOT)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result.Message, result)
}

// Receipt returns the receipt of the last submitted order.
func (h *SessionHandler) Receipt(c *gin.Context) {
	receipt, err := h.sessionService.LastReceipt(GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved", receipt)
}
