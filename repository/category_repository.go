package repository

import (
	"context"
	"errors"

	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// List returns a page of categories sorted by display order.
func (r *CategoryRepository) List(ctx context.Context, offset, limit int) ([]models.MenuCategory, error) {
	categories := []models.MenuCategory{}
	err := r.DB.WithContext(ctx).
		Order("display_order ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Get(ctx context.Context, id uint) (*models.MenuCategory, error) {
	var category models.MenuCategory
	if err := r.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.MenuCategory) error {
	category.ID = 0
	return r.DB.WithContext(ctx).Create(category).Error
}
