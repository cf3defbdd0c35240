package models

import "github.com/shopspring/decimal"

type OrderItemStatus string

const (
	OrderItemStatusPending   OrderItemStatus = "pending"
	OrderItemStatusAccepted  OrderItemStatus = "accepted"
	OrderItemStatusRejected  OrderItemStatus = "rejected"
	OrderItemStatusReady     OrderItemStatus = "ready"
	OrderItemStatusDelivered OrderItemStatus = "delivered"
)

// OrderItem is one line of an order. UnitPrice is a copy of the menu item's
// price at ordering time and is never refreshed from the menu.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"not null;index" json:"order_id"`
	MenuItemID uint            `gorm:"not null;index" json:"menu_item_id"`
	MenuItem   *MenuItem       `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity   int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Notes      *string         `gorm:"type:text" json:"notes"`
	Status     OrderItemStatus `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
}
