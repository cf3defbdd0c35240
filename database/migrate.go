package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/gorm"
)

// Models lists every persisted entity, parents before children.
func Models() []interface{} {
	return []interface{}{
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	}
}

// Migrate creates or updates the tables, foreign keys and indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, m := range Models() {
		if !db.Migrator().HasTable(m) {
			return fmt.Errorf("table for %T missing after migrate", m)
		}
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
