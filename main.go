package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/router"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.Log.Format, cfg.Log.Level)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg.DB)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	r := router.SetupRouter(db, cfg)

	if cfg.Orders.RejectInvalidLines {
		utils.InfoLogger.Println("Orders with unavailable or unknown items will be rejected")
	}
	if cfg.Orders.StrictTransitions {
		utils.InfoLogger.Println("Order status changes follow the lifecycle graph")
	}

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
