package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/dto"
	"github.com/yeremiapane/restaurant-ordering/repository"
)

type MenuCategoryController struct {
	Categories *repository.CategoryRepository
}

func NewMenuCategoryController(categories *repository.CategoryRepository) *MenuCategoryController {
	return &MenuCategoryController{Categories: categories}
}

// GetAllCategories -> GET /api/categories?skip=&limit=
func (mcc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}

	categories, err := mcc.Categories.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondStoreError(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory -> POST /api/categories
func (mcc *MenuCategoryController) CreateCategory(c *gin.Context) {
	var body dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}

	category := body.ToModel()
	if err := mcc.Categories.Create(c.Request.Context(), &category); err != nil {
		respondStoreError(c, "create category", err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategoryByID -> GET /api/categories/:id
func (mcc *MenuCategoryController) GetCategoryByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	category, err := mcc.Categories.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, "Category")
		return
	}
	if err != nil {
		respondStoreError(c, "get category", err)
		return
	}

	c.JSON(http.StatusOK, category)
}
