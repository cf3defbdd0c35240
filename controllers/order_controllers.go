package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/dto"
	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

type OrderController struct {
	Orders *repository.OrderRepository
	Config config.OrderConfig
}

func NewOrderController(orders *repository.OrderRepository, cfg config.OrderConfig) *OrderController {
	return &OrderController{Orders: orders, Config: cfg}
}

// GetAllOrders -> GET /api/orders, newest first
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, err)
		return
	}

	orders, err := oc.Orders.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondStoreError(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder -> POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}

	order, rejected, err := oc.Orders.Create(c.Request.Context(), body, oc.Config.RejectInvalidLines)
	var lineErr *repository.LineRejectionError
	if errors.As(err, &lineErr) {
		errs := make([]utils.FieldError, 0, len(lineErr.Lines))
		for _, l := range lineErr.Lines {
			errs = append(errs, utils.FieldError{
				Field:   fmt.Sprintf("items[%d].menu_item_id", l.Index),
				Message: l.Reason,
			})
		}
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, "Order rejected", errs)
		return
	}
	if err != nil {
		respondStoreError(c, "create order", err)
		return
	}

	// Skipped lines are not reported to the client.
	for _, l := range rejected {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"request_id":   c.GetString("request_id"),
			"order_id":     order.ID,
			"line":         l.Index,
			"menu_item_id": l.MenuItemID,
		}).Warnf("Order line dropped: %s", l.Reason)
	}

	utils.InfoLogger.Printf("Order #%d created for table %d: %d item(s), total %s",
		order.ID, order.TableNumber, len(order.Items), order.TotalAmount.StringFixed(2))
	c.JSON(http.StatusCreated, order)
}

// GetOrderByID -> GET /api/orders/:id
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, "Order")
		return
	}
	if err != nil {
		respondStoreError(c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus -> PATCH /api/orders/:id/status?status=
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body dto.StatusRequest
	if err := bindQueryOrJSON(c, &body); err != nil {
		respondBindError(c, err)
		return
	}

	status := models.OrderStatus(*body.Status)
	if !status.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Invalid status. Must be one of: %s", quoteStatuses(models.OrderStatuses)))
		return
	}

	if oc.Config.StrictTransitions {
		current, err := oc.Orders.Get(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "Order")
			return
		}
		if err != nil {
			respondStoreError(c, "get order", err)
			return
		}
		if !models.CanTransition(current.Status, status) {
			next := current.Status.NextStatuses()
			allowed := "none (terminal state)"
			if len(next) > 0 {
				allowed = quoteStatuses(next)
			}
			utils.RespondError(c, http.StatusConflict, fmt.Errorf("cannot change order %d from %s to %s; allowed: %s",
				id, current.Status, status, allowed))
			return
		}
	}

	_, err := oc.Orders.SetStatus(c.Request.Context(), id, status)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, "Order")
		return
	}
	if err != nil {
		respondStoreError(c, "update order status", err)
		return
	}

	utils.InfoLogger.Printf("Order #%d status set to %s", id, status)
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Order %d status updated to %s", id, status), nil)
}

func quoteStatuses(statuses []models.OrderStatus) string {
	quoted := make([]string, len(statuses))
	for i, s := range statuses {
		quoted[i] = "'" + string(s) + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
