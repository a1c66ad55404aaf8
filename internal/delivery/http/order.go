package http

import (
	"net/http"

	"ayz-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// GetOrder
// @Summary GetOrder
// @Description Returns one order with its lines, status history and payment method
// @ID get-order
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} models.OrderWithDetails
// @Failure 400,404,500 {object} errorResponse
// @Router /api/admin/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	details, err := h.orders.OrderDetails(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpdateOrderStatus
// @Summary UpdateOrderStatus
// @Description Applies one lifecycle transition (pending→confirmed→processing→shipped→delivered, cancel from any non-terminal state)
// @ID update-order-status
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param input body service.StatusUpdate true "target status with optional note and tracking fields"
// @Success 204
// @Failure 400,404,409,500 {object} errorResponse
// @Router /api/admin/orders/{id}/status [patch]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	var u service.StatusUpdate
	if err := c.BindJSON(&u); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	u.OrderID = id

	if err := h.orders.UpdateOrderStatus(u); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
