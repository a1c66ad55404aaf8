package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ayz-shop/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// PlaceOrderInput carries the final confirmation payload. Non-empty
// fields override what the checkout session already captured; the
// idempotency key is optional, caller-chosen and scoped to the caller's
// identity before storage.
type PlaceOrderInput struct {
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        *models.Address `json:"address"`
	IdempotencyKey string          `json:"idempotency_key"`
}

type PlacedOrder struct {
	OrderID     uint   `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// PlaceOrder converts the caller's active cart into an order. The cart
// patch, conversion, order, line snapshots, pending event and discount
// redemption commit in one transaction; funnel completion and analytics
// run after commit and never fail the placement.
func (s *Service) PlaceOrder(ctx context.Context, id Identity, in PlaceOrderInput) (PlacedOrder, error) {
	scopedKey := ""
	if in.IdempotencyKey != "" && !id.Anonymous() {
		scopedKey = scopedIdempotencyKey(id, in.IdempotencyKey)
		prior, err := s.OrderByIdempotencyKey(scopedKey)
		if err == nil {
			return PlacedOrder{OrderID: prior.ID, OrderNumber: prior.OrderNumber}, nil
		}
		if !gorm.IsRecordNotFoundError(err) {
			return PlacedOrder{}, err
		}
	}

	cart, err := s.locateCart(id)
	if err != nil {
		return PlacedOrder{}, err
	}
	if len(cart.Items) == 0 {
		return PlacedOrder{}, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	if in.Email != "" {
		cart.ContactEmail = strings.TrimSpace(in.Email)
	}
	if in.Phone != "" {
		cart.ContactPhone = strings.TrimSpace(in.Phone)
	}
	if in.Address != nil && !in.Address.Empty() {
		cart.ShipTo = *in.Address
	}

	if cart.ContactEmail == "" || cart.ContactPhone == "" {
		return PlacedOrder{}, fmt.Errorf("%w: contact email and phone are required", ErrValidation)
	}
	if cart.ShipTo.Empty() {
		return PlacedOrder{}, fmt.Errorf("%w: shipping address is required", ErrValidation)
	}
	if cart.PaymentMethodID == 0 {
		return PlacedOrder{}, fmt.Errorf("%w: payment method is required", ErrValidation)
	}
	if cart.ShippingMethodID == 0 {
		return PlacedOrder{}, fmt.Errorf("%w: shipping method is required", ErrValidation)
	}

	if err := s.recomputeTotals(&cart); err != nil {
		return PlacedOrder{}, err
	}
	// recomputeTotals clears a method the final address made ineligible.
	if cart.ShippingMethodID == 0 {
		return PlacedOrder{}, fmt.Errorf("%w: shipping method no longer available", ErrConflict)
	}

	// the payment method is re-read at commit time: it may have been
	// deactivated since the checkout step selected it
	pm, err := s.PaymentMethodByID(cart.PaymentMethodID)
	if gorm.IsRecordNotFoundError(err) || (err == nil && !pm.Active) {
		return PlacedOrder{}, fmt.Errorf("%w: payment method no longer available", ErrConflict)
	}
	if err != nil {
		return PlacedOrder{}, err
	}

	now := s.now()
	number, err := newOrderNumber(now)
	if err != nil {
		return PlacedOrder{}, err
	}

	ord := models.Order{
		OrderNumber:    number,
		IdempotencyKey: scopedKey,
		CartID:         cart.ID,
		UserID:         cart.UserID,
		GuestToken:     cart.GuestToken,

		Status:   models.OrderPending,
		Currency: cart.Currency,

		Subtotal:      cart.Subtotal,
		DiscountTotal: cart.DiscountTotal,
		ShippingTotal: cart.ShippingTotal,
		TaxTotal:      cart.TaxTotal,
		Total:         cart.Total,

		ShippingMethodID: cart.ShippingMethodID,
		PaymentMethodID:  cart.PaymentMethodID,

		ContactEmail: cart.ContactEmail,
		ContactPhone: cart.ContactPhone,
		ShipTo:       cart.ShipTo,

		Items:    s.snapshotItems(cart.Items),
		Events:   []models.OrderStatusEvent{{Status: models.OrderPending, Note: "order placed", Actor: "checkout"}},
		PlacedAt: now,
	}

	if err := s.v.Struct(ord); err != nil {
		return PlacedOrder{}, humanizeValidationErrors(err)
	}

	var redemption *models.DiscountRedemption
	if cart.Coupon.DiscountID != "" {
		redemption = &models.DiscountRedemption{
			DiscountID: cart.Coupon.DiscountID,
			Code:       cart.Coupon.Code,
			CartID:     cart.ID,
			Amount:     cart.Coupon.Amount,
		}
	}

	if err := s.Place(&cart, &ord, redemption); err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return PlacedOrder{}, fmt.Errorf("%w: cart already converted", ErrConflict)
		}
		return PlacedOrder{}, err
	}
	ordersPlaced.Inc()

	s.trackFunnel(cart, models.StepCompleted, true)
	s.emitOrderPlaced(ctx, ord, pm)

	return PlacedOrder{OrderID: ord.ID, OrderNumber: ord.OrderNumber}, nil
}

// scopedIdempotencyKey prefixes the caller-chosen key with the caller's
// identity so one buyer's key can never resolve another buyer's order.
func scopedIdempotencyKey(id Identity, key string) string {
	if id.UserID != "" {
		return "u:" + id.UserID + "/" + key
	}
	return "g:" + id.GuestToken + "/" + key
}

// snapshotItems freezes cart lines into order lines. Presentational
// fields are refreshed from the catalog when the product still exists;
// pricing always comes from the cart line.
func (s *Service) snapshotItems(items []models.CartItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		line := models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: it.UnitPrice * it.Quantity,
		}
		if p, err := s.ProductByID(it.ProductID); err == nil {
			line.Name = p.Name
			line.Image = p.Image
		}
		out = append(out, line)
	}
	return out
}

func (s *Service) emitOrderPlaced(ctx context.Context, ord models.Order, pm models.PaymentMethod) {
	if s.analytics == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"event":             "order_placed",
		"order_id":          ord.ID,
		"order_number":      ord.OrderNumber,
		"cart_id":           ord.CartID,
		"total":             ord.Total,
		"currency":          ord.Currency,
		"payment_method_id": pm.ID,
		"payment_method":    pm.Name,
		"placed_at":         ord.PlacedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		logrus.WithError(err).Warn("encoding order_placed event")
		return
	}
	if err := s.analytics.Publish(ctx, payload); err != nil {
		logrus.WithError(err).WithField("order_id", ord.ID).Warn("publishing order_placed event")
	}
}

func humanizeValidationErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("field %s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}
