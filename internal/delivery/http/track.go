package http

import (
	"net/http"
	"strings"

	"ayz-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// RequestTrackingCode
// @Summary RequestTrackingCode
// @Description Sends a one-time code to the contact on file for a guest order
// @ID request-tracking-code
// @Accept json
// @Produce json
// @Param input body service.TrackingCodeRequest true "order number plus the email or phone on file"
// @Success 200 {object} service.TrackingCodeChallenge
// @Failure 400,404,429,500 {object} errorResponse
// @Router /api/orders/track/request-code [post]
func (h *Handler) RequestTrackingCode(c *gin.Context) {
	var in service.TrackingCodeRequest
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	challenge, err := h.tracking.RequestTrackingCode(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// VerifyTrackingCode
// @Summary VerifyTrackingCode
// @Description Exchanges a correct one-time code for a short-lived order access token
// @ID verify-tracking-code
// @Accept json
// @Produce json
// @Param input body service.TrackingVerifyRequest true "challenge id and code"
// @Success 200 {object} service.TrackingAccess
// @Failure 400,409,500 {object} errorResponse
// @Router /api/orders/track/verify-code [post]
func (h *Handler) VerifyTrackingCode(c *gin.Context) {
	var in service.TrackingVerifyRequest
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	access, err := h.tracking.VerifyTrackingCode(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, access)
}

// GetVerifiedOrder
// @Summary GetVerifiedOrder
// @Description Returns the order a tracking session token grants access to
// @ID get-verified-order
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token from verify-code"
// @Success 200 {object} models.OrderWithDetails
// @Failure 400,404,500 {object} errorResponse
// @Router /api/orders/track/order [get]
func (h *Handler) GetVerifiedOrder(c *gin.Context) {
	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer"))
	if token == "" {
		token = strings.TrimSpace(c.Query("token"))
	}
	if token == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing access token")
		return
	}

	details, err := h.tracking.GetVerifiedOrder(token)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if details == nil {
		newErrorResponse(c, http.StatusNotFound, "not found")
		return
	}
	c.JSON(http.StatusOK, details)
}
