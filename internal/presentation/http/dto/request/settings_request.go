package request

// UpdateSettingsRequest updates the terminal-local receipt settings.
type UpdateSettingsRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"omitempty,max=255"`
	TRN            string `json:"trn" binding:"omitempty,max=50"`
	Phone          string `json:"phone" binding:"omitempty,max=50"`
	Address        string `json:"address" binding:"omitempty,max=500"`
	Currency       string `json:"currency" binding:"omitempty,max=10"`
}
