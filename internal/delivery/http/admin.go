package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type bulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		newErrorResponse(c, http.StatusBadRequest, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// DeletionAccess
// @Summary DeletionAccess
// @Description Explains whether the calling admin may delete orders and why
// @ID deletion-access
// @Accept json
// @Produce json
// @Param X-Admin-Role header string true "caller's role"
// @Success 200 {object} service.AccessDescriptor
// @Failure 500 {object} errorResponse
// @Router /api/admin/orders/deletion-access [get]
func (h *Handler) DeletionAccess(c *gin.Context) {
	desc, err := h.admin.DeletionAccess(adminCaller(c).Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, desc)
}

// DeleteOrder
// @Summary DeleteOrder
// @Description Removes an order and every dependent record; deleting a missing order reports deleted=false
// @ID delete-order
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param X-Admin-Email header string true "caller's email"
// @Param X-Admin-Role header string true "caller's role"
// @Success 200 {object} service.DeletionResult
// @Failure 400,403,500 {object} errorResponse
// @Router /api/admin/orders/{id} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	res, err := h.admin.DeleteOrder(adminCaller(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// BulkDeleteOrders
// @Summary BulkDeleteOrders
// @Description Deletes up to 50 orders, each in its own transaction
// @ID bulk-delete-orders
// @Accept json
// @Produce json
// @Param input body bulkDeleteRequest true "order ids"
// @Param X-Admin-Email header string true "caller's email"
// @Param X-Admin-Role header string true "caller's role"
// @Success 200 {object} service.BulkDeletionResult
// @Failure 400,403,500 {object} errorResponse
// @Router /api/admin/orders/bulk-delete [post]
func (h *Handler) BulkDeleteOrders(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.admin.BulkDeleteOrders(adminCaller(c), req.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
