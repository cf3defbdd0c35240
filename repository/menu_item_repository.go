package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// List returns a page of menu items sorted by display order, restricted to
// one category when categoryID is set and non-zero.
func (r *MenuItemRepository) List(ctx context.Context, offset, limit int, categoryID *uint) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	query := r.DB.WithContext(ctx).Preload("Category")
	if categoryID != nil && *categoryID != 0 {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.
		Order("display_order ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) Get(ctx context.Context, id uint) (*models.MenuItem, error) {
	return getMenuItem(r.DB.WithContext(ctx).Preload("Category"), id)
}

func getMenuItem(db *gorm.DB, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create stores item after checking that its category exists.
func (r *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MenuCategory{}).Where("id = ?", item.CategoryID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("category %d: %w", item.CategoryID, ErrCategoryNotFound)
		}

		item.ID = 0
		item.Category = nil
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Preload("Category").First(item, item.ID).Error
	})
}

// SetAvailability changes only the is_available flag.
func (r *MenuItemRepository) SetAvailability(ctx context.Context, id uint, available bool) (*models.MenuItem, error) {
	db := r.DB.WithContext(ctx)
	item, err := getMenuItem(db, id)
	if err != nil {
		return nil, err
	}
	if err := db.Model(item).Update("is_available", available).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}
