package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses is the allow-list accepted by the status endpoint, in
// lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusCompleted, OrderStatusCancelled},
}

// IsValid reports whether s is one of OrderStatuses.
func (s OrderStatus) IsValid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// NextStatuses returns the states an order may move to from s. Completed and
// cancelled orders have none.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return orderTransitions[s]
}

// CanTransition reports whether the lifecycle graph allows from -> to.
// Setting the current status again is allowed.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	TableNumber         int             `gorm:"not null" json:"table_number"`
	CustomerName        *string         `gorm:"type:varchar(100)" json:"customer_name"`
	WaiterName          *string         `gorm:"type:varchar(100)" json:"waiter_name"`
	Status              OrderStatus     `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	SpecialInstructions *string         `gorm:"type:text" json:"special_instructions"`
	CreatedAt           time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Items               []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
}
