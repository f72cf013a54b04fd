package service

import (
	"context"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
	"github.com/majidkambarath/restaurant-pos/internal/domain/repository"
)

// SettingsService handles terminal settings business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves a terminal's settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context, terminalID string) (*entity.TerminalSettings, error) {
	settings, err := s.settingsRepo.GetByTerminalID(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create default settings
	if settings == nil {
		settings = &entity.TerminalSettings{
			TerminalID:     terminalID,
			RestaurantName: "Restaurant",
			Currency:       "AED",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	TerminalID     string
	RestaurantName string
	TRN            string
	Phone          string
	Address        string
	Currency       string
}

// UpdateSettings updates a terminal's settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.TerminalSettings, error) {
	settings, err := s.settingsRepo.GetByTerminalID(ctx, input.TerminalID)
	if err != nil {
		return nil, err
	}

	create := settings == nil
	if create {
		settings = &entity.TerminalSettings{
			TerminalID: input.TerminalID,
		}
	}

	settings.RestaurantName = input.RestaurantName
	settings.TRN = input.TRN
	settings.Phone = input.Phone
	settings.Address = input.Address
	if input.Currency != "" {
		settings.Currency = input.Currency
	}

	if create {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
