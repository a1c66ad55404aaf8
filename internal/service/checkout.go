package service

import (
	"fmt"
	"strings"

	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

const defaultCurrency = "USD"

func cartSubtotal(items []models.CartItem) int {
	subtotal := 0
	for _, it := range items {
		subtotal += it.UnitPrice * it.Quantity
	}
	return subtotal
}

// locateCart finds the caller's single active cart. Not-found and
// ownership mismatch both surface as ErrUnauthorizedCart.
func (s *Service) locateCart(id Identity) (models.Cart, error) {
	if id.Anonymous() {
		return models.Cart{}, ErrUnauthorizedCart
	}
	var (
		cart models.Cart
		err  error
	)
	if id.UserID != "" {
		cart, err = s.ActiveCartByUser(id.UserID)
	} else {
		cart, err = s.ActiveCartByGuest(id.GuestToken)
	}
	if gorm.IsRecordNotFoundError(err) {
		return models.Cart{}, ErrUnauthorizedCart
	}
	if err != nil {
		return models.Cart{}, err
	}
	if !cart.OwnedBy(id.UserID, id.GuestToken) {
		return models.Cart{}, ErrUnauthorizedCart
	}
	return cart, nil
}

// recomputeTotals re-derives every monetary field from persisted inputs.
// Checkout steps never adjust cached numbers incrementally. A previously
// chosen shipping method that is no longer eligible is cleared and its
// cost zeroed.
func (s *Service) recomputeTotals(cart *models.Cart) error {
	subtotal := cartSubtotal(cart.Items)
	cart.Subtotal = subtotal
	cart.DiscountTotal = cart.Coupon.Amount

	shipping := 0
	if cart.ShippingMethodID != 0 && !cart.ShipTo.Empty() {
		method, err := s.ShippingMethod(cart.ShippingMethodID)
		switch {
		case gorm.IsRecordNotFoundError(err):
			cart.ShippingMethodID = 0
		case err != nil:
			return err
		default:
			quote, err := s.ResolveShipping(method, subtotal, cart.ShipTo)
			if err != nil {
				return err
			}
			if quote.Available {
				shipping = quote.Amount
			} else {
				cart.ShippingMethodID = 0
			}
		}
	}
	cart.ShippingTotal = shipping

	tax, err := s.ResolveTax(subtotal-cart.DiscountTotal, shipping, cart.ShipTo)
	if err != nil {
		return err
	}
	cart.TaxTotal = tax

	total := subtotal - cart.DiscountTotal + shipping + tax
	if total < 0 {
		total = 0
	}
	cart.Total = total
	return nil
}

// StartCheckout locates the caller's active cart, creating one lazily on
// the first checkout touch.
func (s *Service) StartCheckout(id Identity) (models.Cart, error) {
	cart, err := s.locateCart(id)
	if err == ErrUnauthorizedCart && !id.Anonymous() {
		cart = models.Cart{
			UserID:     id.UserID,
			GuestToken: id.GuestToken,
			Status:     models.CartActive,
			Currency:   defaultCurrency,
		}
		if cart.UserID != "" {
			cart.GuestToken = ""
		}
		if err := s.CreateCart(&cart); err != nil {
			return models.Cart{}, err
		}
	} else if err != nil {
		return models.Cart{}, err
	}

	s.trackFunnel(cart, models.StepInformation, false)
	return cart, nil
}

func (s *Service) SetContact(id Identity, email, phone string) (models.Cart, error) {
	cart, err := s.locateCart(id)
	if err != nil {
		return models.Cart{}, err
	}

	if email != "" {
		if err := s.v.Var(email, "email"); err != nil {
			return models.Cart{}, fmt.Errorf("%w: invalid contact email", ErrValidation)
		}
		cart.ContactEmail = strings.TrimSpace(email)
	}
	if phone != "" {
		cart.ContactPhone = strings.TrimSpace(phone)
	}

	if err := s.recomputeTotals(&cart); err != nil {
		return models.Cart{}, err
	}
	if err := s.SaveCart(&cart); err != nil {
		return models.Cart{}, err
	}
	s.trackFunnel(cart, models.StepShipping, false)
	return cart, nil
}

func (s *Service) SetAddress(id Identity, addr models.Address) (models.Cart, error) {
	cart, err := s.locateCart(id)
	if err != nil {
		return models.Cart{}, err
	}
	if addr.Empty() {
		return models.Cart{}, fmt.Errorf("%w: shipping address required", ErrValidation)
	}

	cart.ShipTo = addr
	if err := s.recomputeTotals(&cart); err != nil {
		return models.Cart{}, err
	}
	if err := s.SaveCart(&cart); err != nil {
		return models.Cart{}, err
	}
	s.trackFunnel(cart, models.StepPayment, false)
	return cart, nil
}

func (s *Service) SetShippingMethod(id Identity, methodID uint) (models.Cart, error) {
	cart, err := s.locateCart(id)
	if err != nil {
		return models.Cart{}, err
	}
	if cart.ShipTo.Empty() {
		return models.Cart{}, fmt.Errorf("%w: shipping address required before choosing a method", ErrValidation)
	}

	method, err := s.ShippingMethod(methodID)
	if gorm.IsRecordNotFoundError(err) {
		return models.Cart{}, fmt.Errorf("%w: shipping method unavailable", ErrConflict)
	}
	if err != nil {
		return models.Cart{}, err
	}
	quote, err := s.ResolveShipping(method, cartSubtotal(cart.Items), cart.ShipTo)
	if err != nil {
		return models.Cart{}, err
	}
	if !quote.Available {
		return models.Cart{}, fmt.Errorf("%w: shipping method unavailable", ErrConflict)
	}

	cart.ShippingMethodID = methodID
	if err := s.recomputeTotals(&cart); err != nil {
		return models.Cart{}, err
	}
	if err := s.SaveCart(&cart); err != nil {
		return models.Cart{}, err
	}
	s.trackFunnel(cart, models.StepPayment, false)
	return cart, nil
}

func (s *Service) SetPaymentMethod(id Identity, methodID uint) (models.Cart, error) {
	cart, err := s.locateCart(id)
	if err != nil {
		return models.Cart{}, err
	}

	pm, err := s.PaymentMethodByID(methodID)
	if gorm.IsRecordNotFoundError(err) {
		return models.Cart{}, fmt.Errorf("%w: payment method unavailable", ErrConflict)
	}
	if err != nil {
		return models.Cart{}, err
	}
	if !pm.Active {
		return models.Cart{}, fmt.Errorf("%w: payment method unavailable", ErrConflict)
	}

	cart.PaymentMethodID = methodID
	if err := s.recomputeTotals(&cart); err != nil {
		return models.Cart{}, err
	}
	if err := s.SaveCart(&cart); err != nil {
		return models.Cart{}, err
	}
	s.trackFunnel(cart, models.StepReview, false)
	return cart, nil
}

// trackFunnel is best-effort: a retention record must never fail a
// checkout step.
func (s *Service) trackFunnel(cart models.Cart, step models.FunnelStep, recovered bool) {
	if err := s.TrackFunnel(cart, step, recovered); err != nil {
		logrus.WithError(err).WithField("cart_id", cart.ID).Warn("funnel tracking failed")
	}
}
