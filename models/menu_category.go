package models

import "time"

type MenuCategory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  *string   `gorm:"type:varchar(255)" json:"description"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
