package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
	"github.com/majidkambarath/restaurant-pos/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetByTerminalID retrieves settings by terminal ID
func (r *settingsRepository) GetByTerminalID(ctx context.Context, terminalID string) (*entity.TerminalSettings, error) {
	var settings entity.TerminalSettings
	err := r.db.WithContext(ctx).Where("terminal_id = ?", terminalID).First(&settings).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Create creates new terminal settings
func (r *settingsRepository) Create(ctx context.Context, settings *entity.TerminalSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

// Update updates existing terminal settings
func (r *settingsRepository) Update(ctx context.Context, settings *entity.TerminalSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
