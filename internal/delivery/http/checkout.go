package http

import (
	"net/http"

	"ayz-shop/internal/models"
	"ayz-shop/internal/service"

	"github.com/gin-gonic/gin"
)

type setContactRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type chooseMethodRequest struct {
	MethodID uint `json:"method_id" binding:"required"`
}

// StartCheckout
// @Summary StartCheckout
// @Description Opens (or resumes) the caller's checkout session and returns the active cart
// @ID start-checkout
// @Accept json
// @Produce json
// @Param X-User-Id header string false "authenticated user id"
// @Param X-Guest-Token header string false "guest token"
// @Success 200 {object} models.Cart
// @Failure 401,500 {object} errorResponse
// @Router /api/checkout/start [post]
func (h *Handler) StartCheckout(c *gin.Context) {
	cart, err := h.checkout.StartCheckout(identity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// SetContact
// @Summary SetContact
// @Description Records the buyer's contact email/phone on the active cart
// @ID set-contact
// @Accept json
// @Produce json
// @Param input body setContactRequest true "contact fields; empty fields are left untouched"
// @Success 200 {object} models.Cart
// @Failure 400,401,500 {object} errorResponse
// @Router /api/checkout/contact [post]
func (h *Handler) SetContact(c *gin.Context) {
	var req setContactRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	cart, err := h.checkout.SetContact(identity(c), req.Email, req.Phone)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// SetAddress
// @Summary SetAddress
// @Description Records the shipping destination and re-derives all totals
// @ID set-address
// @Accept json
// @Produce json
// @Param input body models.Address true "shipping address"
// @Success 200 {object} models.Cart
// @Failure 400,401,500 {object} errorResponse
// @Router /api/checkout/address [post]
func (h *Handler) SetAddress(c *gin.Context) {
	var addr models.Address
	if err := c.BindJSON(&addr); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	cart, err := h.checkout.SetAddress(identity(c), addr)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// SetShippingMethod
// @Summary SetShippingMethod
// @Description Chooses a shipping method; rejected when the method cannot serve the destination
// @ID set-shipping-method
// @Accept json
// @Produce json
// @Param input body chooseMethodRequest true "shipping method id"
// @Success 200 {object} models.Cart
// @Failure 400,401,409,500 {object} errorResponse
// @Router /api/checkout/shipping-method [post]
func (h *Handler) SetShippingMethod(c *gin.Context) {
	var req chooseMethodRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	cart, err := h.checkout.SetShippingMethod(identity(c), req.MethodID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// SetPaymentMethod
// @Summary SetPaymentMethod
// @Description Chooses an active payment method for the checkout
// @ID set-payment-method
// @Accept json
// @Produce json
// @Param input body chooseMethodRequest true "payment method id"
// @Success 200 {object} models.Cart
// @Failure 400,401,409,500 {object} errorResponse
// @Router /api/checkout/payment-method [post]
func (h *Handler) SetPaymentMethod(c *gin.Context) {
	var req chooseMethodRequest
	if err := c.BindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	cart, err := h.checkout.SetPaymentMethod(identity(c), req.MethodID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// PlaceOrder
// @Summary PlaceOrder
// @Description Converts the active cart into an order; safe to retry with the same idempotency key
// @ID place-order
// @Accept json
// @Produce json
// @Param input body service.PlaceOrderInput true "final confirmation payload"
// @Success 201 {object} service.PlacedOrder
// @Failure 400,401,409,500 {object} errorResponse
// @Router /api/checkout/place-order [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	var in service.PlaceOrderInput
	if err := c.BindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	placed, err := h.checkout.PlaceOrder(c.Request.Context(), identity(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, placed)
}
