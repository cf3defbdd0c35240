package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/dto"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

type MenuItemController struct {
	Items *repository.MenuItemRepository
}

func NewMenuItemController(items *repository.MenuItemRepository) *MenuItemController {
	return &MenuItemController{Items: items}
}

// GetAllMenuItems -> GET /api/menu-items?skip=&limit=&category_id=
func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	var query dto.MenuItemQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	items, err := mc.Items.List(c.Request.Context(), query.Skip, query.Limit, query.CategoryID)
	if err != nil {
		respondStoreError(c, "list menu items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItemByID -> GET /api/menu-items/:id
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := mc.Items.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, "Menu item")
		return
	}
	if err != nil {
		respondStoreError(c, "get menu item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateMenuItem -> POST /api/menu-items
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	var body dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}

	item := body.ToModel()
	err := mc.Items.Create(c.Request.Context(), &item)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, "Validation failed", []utils.FieldError{{
			Field:   "category_id",
			Message: fmt.Sprintf("category %d does not exist", body.CategoryID),
		}})
		return
	}
	if err != nil {
		respondStoreError(c, "create menu item", err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateAvailability -> PATCH /api/menu-items/:id/availability?is_available=
func (mc *MenuItemController) UpdateAvailability(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body dto.AvailabilityRequest
	if err := bindQueryOrJSON(c, &body); err != nil {
		respondBindError(c, err)
		return
	}

	_, err := mc.Items.SetAvailability(c.Request.Context(), id, *body.IsAvailable)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, "Menu item")
		return
	}
	if err != nil {
		respondStoreError(c, "update menu item availability", err)
		return
	}

	utils.InfoLogger.Printf("Menu item %d availability set to %t", id, *body.IsAvailable)
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Item %d availability updated to %t", id, *body.IsAvailable), nil)
}
