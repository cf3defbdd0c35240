package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for cfg.Driver.
func Dialector(cfg DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite", "sqlite3", "":
		return sqlite.Open(cfg.URL), nil
	case "mysql":
		return mysql.Open(cfg.URL), nil
	case "postgres", "postgresql":
		return postgres.Open(cfg.URL), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// InitDB opens the database, retrying until it accepts connections or
// cfg.MaxRetries attempts have failed.
func InitDB(cfg DBConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	attempts := cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var db *gorm.DB
	for i := 1; i <= attempts; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
		})
		if err == nil {
			break
		}
		utils.InfoLogger.Printf("Waiting for database... attempt %d/%d failed: %v", i, attempts, err)
		if i < attempts {
			time.Sleep(cfg.RetryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open %s database after %d attempts: %w", cfg.Driver, attempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	utils.InfoLogger.Printf("Connected to %s database", cfg.Driver)
	return db, nil
}
