package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/controllers"
	"github.com/yeremiapane/restaurant-ordering/dto"
	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	dto.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORS.AllowedOrigins))
	if cfg.Rate.RequestsPerSecond > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.Rate.RequestsPerSecond, cfg.Rate.Burst).RateLimit())
	}

	// Inisialisasi controller
	categoryCtrl := controllers.NewMenuCategoryController(repository.NewCategoryRepository(db))
	menuItemCtrl := controllers.NewMenuItemController(repository.NewMenuItemRepository(db))
	orderCtrl := controllers.NewOrderController(repository.NewOrderRepository(db), cfg.Orders)

	r.GET("/health", controllers.Health)

	api := r.Group("/api")
	{
		api.GET("/categories", categoryCtrl.GetAllCategories)
		api.GET("/categories/:id", categoryCtrl.GetCategoryByID)
		api.POST("/categories", categoryCtrl.CreateCategory)

		api.GET("/menu-items", menuItemCtrl.GetAllMenuItems)
		api.GET("/menu-items/:id", menuItemCtrl.GetMenuItemByID)
		api.POST("/menu-items", menuItemCtrl.CreateMenuItem)
		api.PATCH("/menu-items/:id/availability", menuItemCtrl.UpdateAvailability)

		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.GET("/orders/:id", orderCtrl.GetOrderByID)
		api.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}

	return r
}
