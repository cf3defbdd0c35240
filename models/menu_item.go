package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(200);not null" json:"name"`
	Description     *string         `gorm:"type:text" json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID      uint            `gorm:"not null;index" json:"category_id"`
	Category        *MenuCategory   `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	ImageURL        *string         `gorm:"column:image_url;type:varchar(500)" json:"image_url"`
	IsAvailable     bool            `gorm:"not null" json:"is_available"`
	PreparationTime *int            `json:"preparation_time"` // minutes
	DisplayOrder    int             `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
