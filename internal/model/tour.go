package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tour represents a tour record owned by a single user. The owner is set
// server-side at creation and is never taken from the request payload.
type Tour struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	Title        string          `json:"title" gorm:"size:255;not null"`
	Location     string          `json:"location" gorm:"size:255;not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	DurationDays int             `json:"duration_days" gorm:"not null;default:1"`
	Description  string          `json:"description" gorm:"type:text"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
