package dto

import (
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-ordering/models"
)

// PageQuery is the skip/limit pair shared by the list endpoints. limit has no
// upper bound.
type PageQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=0"`
}

type MenuItemQuery struct {
	Skip       int   `form:"skip,default=0" binding:"min=0"`
	Limit      int   `form:"limit,default=100" binding:"min=0"`
	CategoryID *uint `form:"category_id"`
}

type CreateCategoryRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=255"`
	DisplayOrder *int    `json:"display_order"`
}

func (r CreateCategoryRequest) ToModel() models.MenuCategory {
	category := models.MenuCategory{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.DisplayOrder != nil {
		category.DisplayOrder = *r.DisplayOrder
	}
	return category
}

type CreateMenuItemRequest struct {
	Name            string           `json:"name" binding:"required,max=200"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price" binding:"required,gte=0"`
	CategoryID      uint             `json:"category_id" binding:"required,gt=0"`
	ImageURL        *string          `json:"image_url" binding:"omitempty,max=500"`
	IsAvailable     *bool            `json:"is_available"`
	PreparationTime *int             `json:"preparation_time" binding:"omitempty,gte=0"`
	DisplayOrder    *int             `json:"display_order"`
}

// ToModel applies the defaults (available, display order 0) and rounds the
// price to cents.
func (r CreateMenuItemRequest) ToModel() models.MenuItem {
	item := models.MenuItem{
		Name:            r.Name,
		Description:     r.Description,
		CategoryID:      r.CategoryID,
		ImageURL:        r.ImageURL,
		IsAvailable:     true,
		PreparationTime: r.PreparationTime,
	}
	if r.Price != nil {
		// Same rounding as a decimal(10,2) column, whatever the dialect.
		item.Price = r.Price.Round(2)
	}
	if r.IsAvailable != nil {
		item.IsAvailable = *r.IsAvailable
	}
	if r.DisplayOrder != nil {
		item.DisplayOrder = *r.DisplayOrder
	}
	return item
}

// CreateOrderItemRequest accepts any integer menu_item_id. Ids that match no
// menu item are dropped when the order is priced, not rejected here.
type CreateOrderItemRequest struct {
	MenuItemID *int64  `json:"menu_item_id" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Notes      *string `json:"notes"`
}

type CreateOrderRequest struct {
	TableNumber         *int                     `json:"table_number" binding:"required"`
	CustomerName        *string                  `json:"customer_name" binding:"omitempty,max=100"`
	WaiterName          *string                  `json:"waiter_name" binding:"omitempty,max=100"`
	SpecialInstructions *string                  `json:"special_instructions"`
	Items               []CreateOrderItemRequest `json:"items" binding:"required,dive"`
}

// AvailabilityRequest is read from ?is_available= or from a JSON body.
type AvailabilityRequest struct {
	IsAvailable *bool `form:"is_available" json:"is_available" binding:"required"`
}

// StatusRequest is read from ?status= or from a JSON body. Only a missing
// status is a binding error; any present value, empty included, is checked
// against models.OrderStatuses by the handler and answered with 400.
type StatusRequest struct {
	Status *string `form:"status" json:"status" binding:"required"`
}
