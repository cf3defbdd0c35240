package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-ordering/dto"
	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// Create prices every requested line against the current menu and stores the
// order header and its items in one transaction.
//
// A line whose menu item is missing or unavailable is skipped and reported in
// the returned slice. With rejectInvalid set, any such line aborts the order
// with a *LineRejectionError and nothing is stored. An order whose lines were
// all skipped is still created, with no items and a zero total.
func (r *OrderRepository) Create(ctx context.Context, req dto.CreateOrderRequest, rejectInvalid bool) (*models.Order, []RejectedLine, error) {
	var (
		order    models.Order
		rejected []RejectedLine
	)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		staged := make([]models.OrderItem, 0, len(req.Items))

		for i, line := range req.Items {
			id := *line.MenuItemID
			if id <= 0 {
				rejected = append(rejected, RejectedLine{Index: i, MenuItemID: id, Reason: ReasonMissing})
				continue
			}

			menuItem, err := getMenuItem(tx, uint(id))
			switch {
			case errors.Is(err, ErrNotFound):
				rejected = append(rejected, RejectedLine{Index: i, MenuItemID: id, Reason: ReasonMissing})
				continue
			case err != nil:
				return err
			case !menuItem.IsAvailable:
				rejected = append(rejected, RejectedLine{Index: i, MenuItemID: id, Reason: ReasonUnavailable})
				continue
			}

			subtotal := menuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)
			staged = append(staged, models.OrderItem{
				MenuItemID: menuItem.ID,
				Quantity:   line.Quantity,
				UnitPrice:  menuItem.Price,
				Subtotal:   subtotal,
				Notes:      line.Notes,
				Status:     models.OrderItemStatusPending,
			})
		}

		if rejectInvalid && len(rejected) > 0 {
			return &LineRejectionError{Lines: rejected}
		}

		order = models.Order{
			TableNumber:         *req.TableNumber,
			CustomerName:        req.CustomerName,
			WaiterName:          req.WaiterName,
			Status:              models.OrderStatusPending,
			TotalAmount:         total,
			SpecialInstructions: req.SpecialInstructions,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if len(staged) > 0 {
			for i := range staged {
				staged[i].OrderID = order.ID
			}
			if err := tx.Create(&staged).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Items", preloadItems).First(&order, order.ID).Error
	})
	if err != nil {
		return nil, rejected, err
	}
	return &order, rejected, nil
}

// List returns a page of orders with their items, newest first.
func (r *OrderRepository) List(ctx context.Context, offset, limit int) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.DB.WithContext(ctx).
		Preload("Items", preloadItems).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items", preloadItems).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// SetStatus writes status without checking the lifecycle graph; callers
// decide whether a transition is allowed.
func (r *OrderRepository) SetStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	order, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&models.Order{ID: order.ID}).Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}
