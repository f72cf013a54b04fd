package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/majidkambarath/restaurant-pos/internal/application/service"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/dto/request"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/dto/response"
)

// SettingsHandler manages the terminal-local receipt settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the settings for the authenticated terminal,
// creating defaults on first access.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context(), GetTerminalID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved", settings)
}

// UpdateSettings updates the settings for the authenticated terminal.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		TerminalID:     GetTerminalID(c),
		RestaurantName: req.RestaurantName,
		TRN:            req.TRN,
		Phone:          req.Phone,
		Address:        req.Address,
		Currency:       req.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated", settings)
}
