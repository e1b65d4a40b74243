package handlers

import (
	"errors"
	"net/http"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/services"
	"restaurant_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// CreateOrder handles placing a new order. Unit prices come from the stored
// menu, never from the request body.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(req)
	if err != nil {
		utils.LogError(err, "CreateOrder: Error from orderService.CreateOrder")
		if errors.Is(err, services.ErrMenuItemsNotFound) {
			utils.RespondValidationFailed(c, "One or more menu items do not exist.")
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create order."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusCreated, "Order created successfully", order)
}

// GetOrders handles fetching orders with optional status filter.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var filters models.OrderFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationFailed(c, "Invalid query parameters: "+err.Error())
		return
	}

	orders, total, err := h.orderService.GetOrders(filters)
	if err != nil {
		utils.LogError(err, "GetOrders: Error from orderService.GetOrders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders."))
		return
	}

	page, limit := filters.Page, filters.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	utils.RespondList(c, orders, len(orders), total, page, limit)
}

// GetOrderByID handles fetching a single order with its items.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid order ID format.")
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		utils.LogError(err, "GetOrderByID: Error from orderService.GetOrderByID")
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order."))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, order)
}

// UpdateOrderStatus handles setting the order status.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid order ID format.")
		return
	}

	var req services.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderStatus(id, req)
	if err != nil {
		utils.LogError(err, "UpdateOrderStatus: Error from orderService.UpdateOrderStatus")
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found."))
		} else if errors.Is(err, services.ErrInvalidOrderStatus) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update order status."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Order status updated successfully", order)
}

// UpdatePaymentStatus handles setting the payment flag on an order.
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid order ID format.")
		return
	}

	var req services.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	order, err := h.orderService.UpdatePaymentStatus(id, req)
	if err != nil {
		utils.LogError(err, "UpdatePaymentStatus: Error from orderService.UpdatePaymentStatus")
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found."))
		} else if errors.Is(err, services.ErrInvalidPaymentStatus) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update payment status."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Payment status updated successfully", order)
}

// CancelOrder handles the public cancellation endpoint. Orders that are
// already ready or delivered cannot be cancelled.
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid order ID format.")
		return
	}

	order, err := h.orderService.CancelOrder(id)
	if err != nil {
		utils.LogError(err, "CancelOrder: Error from orderService.CancelOrder")
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found."))
		} else if errors.Is(err, services.ErrOrderNotCancellable) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Order can no longer be cancelled."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to cancel order."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Order cancelled successfully", order)
}

// DeleteOrder handles permanently removing an order and its items.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid order ID format.")
		return
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		utils.LogError(err, "DeleteOrder: Error from orderService.DeleteOrder")
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete order."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Order deleted successfully", nil)
}
