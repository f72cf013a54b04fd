package repository

import (
	"context"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
)

// SettingsRepository defines the interface for terminal settings data access
type SettingsRepository interface {
	GetByTerminalID(ctx context.Context, terminalID string) (*entity.TerminalSettings, error)
	Create(ctx context.Context, settings *entity.TerminalSettings) error
	Update(ctx context.Context, settings *entity.TerminalSettings) error
}
