package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TerminalSettings holds the restaurant header and display preferences of
// one POS terminal. The original front-end kept these in browser
// localStorage; here they live in Postgres keyed by terminal ID so a
// terminal keeps its settings across restarts.
type TerminalSettings struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TerminalID string         `gorm:"size:100;not null;uniqueIndex" json:"terminal_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	RestaurantName string `gorm:"size:200;default:'Restaurant'" json:"restaurant_name"`
	TRN            string `gorm:"size:50" json:"trn"`
	Phone          string `gorm:"size:50" json:"phone"`
	Address        string `gorm:"size:500" json:"address"`
	Currency       string `gorm:"size:10;default:'AED'" json:"currency"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *TerminalSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TerminalSettings model
func (TerminalSettings) TableName() string {
	return "terminal_settings"
}
