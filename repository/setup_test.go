package repository_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB returns a fresh in-memory database private to the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string, displayOrder int) models.MenuCategory {
	t.Helper()
	category := models.MenuCategory{Name: name, DisplayOrder: displayOrder}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedMenuItem(t *testing.T, db *gorm.DB, categoryID uint, name, price string, available bool) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		CategoryID:  categoryID,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
