package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ayz-shop/internal/models"
	svc "ayz-shop/internal/service"
)

func checkoutStub(cart *models.Cart) *storeStub {
	return &storeStub{
		activeCartByUser: func(string) (models.Cart, error) { return *cart, nil },
		saveCart:         func(c *models.Cart) error { *cart = *c; return nil },
		shippingMethod: func(id uint) (models.ShippingMethod, error) {
			return models.ShippingMethod{ID: id, ZoneID: 1, Active: true, FlatRate: intPtr(300)}, nil
		},
		shippingZone: func(id uint) (models.ShippingZone, error) {
			return models.ShippingZone{ID: id, Active: true, Countries: "PK"}, nil
		},
		paymentMethodByID: func(id uint) (models.PaymentMethod, error) {
			return models.PaymentMethod{ID: id, Name: "card", Active: true}, nil
		},
	}
}

func twoLineCart() models.Cart {
	return models.Cart{
		ID:     1,
		UserID: "u-1",
		Status: models.CartActive,
		Items: []models.CartItem{
			{ProductID: 10, UnitPrice: 2000, Quantity: 2},
			{ProductID: 11, UnitPrice: 500, Quantity: 1},
		},
	}
}

func TestStartCheckout_AnonymousDenied(t *testing.T) {
	s := newTestService(&storeStub{})

	_, err := s.StartCheckout(svc.Identity{})
	require.ErrorIs(t, err, svc.ErrUnauthorizedCart)
}

func TestStartCheckout_CreatesCartOnFirstTouch(t *testing.T) {
	var created *models.Cart
	st := &storeStub{
		createCart: func(c *models.Cart) error { c.ID = 7; created = c; return nil },
	}
	s := newTestService(st)

	cart, err := s.StartCheckout(svc.Identity{UserID: "u-1"})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, uint(7), cart.ID)
	require.Equal(t, "u-1", cart.UserID)
	require.Equal(t, models.CartActive, cart.Status)
	require.Equal(t, "USD", cart.Currency)
}

func TestSetAddress_TotalInvariantHolds(t *testing.T) {
	cart := twoLineCart()
	st := checkoutStub(&cart)
	st.activeTaxProfiles = func() ([]models.TaxProfile, error) {
		return []models.TaxProfile{{ID: 1, Active: true, Country: "PK", Rate: 5}}, nil
	}
	s := newTestService(st)

	got, err := s.SetAddress(svc.Identity{UserID: "u-1"}, models.Address{Country: "PK", City: "Lahore", Street: "Mall Rd"})
	require.NoError(t, err)

	require.Equal(t, 4500, got.Subtotal)
	require.Equal(t, got.Subtotal-got.DiscountTotal+got.ShippingTotal+got.TaxTotal, got.Total)
}

func TestSetShippingMethod_RequiresAddressFirst(t *testing.T) {
	cart := twoLineCart()
	s := newTestService(checkoutStub(&cart))

	_, err := s.SetShippingMethod(svc.Identity{UserID: "u-1"}, 1)
	require.ErrorIs(t, err, svc.ErrValidation)
}

func TestSetShippingMethod_ChargesResolvedAmount(t *testing.T) {
	cart := twoLineCart()
	cart.ShipTo = models.Address{Country: "PK", City: "Lahore", Street: "Mall Rd"}
	s := newTestService(checkoutStub(&cart))

	got, err := s.SetShippingMethod(svc.Identity{UserID: "u-1"}, 1)
	require.NoError(t, err)
	require.Equal(t, uint(1), got.ShippingMethodID)
	require.Equal(t, 300, got.ShippingTotal)
	require.Equal(t, got.Subtotal-got.DiscountTotal+got.ShippingTotal+got.TaxTotal, got.Total)
}

func TestSetShippingMethod_IneligibleDestinationRejected(t *testing.T) {
	cart := twoLineCart()
	cart.ShipTo = models.Address{Country: "US", City: "Austin", Street: "x"}
	s := newTestService(checkoutStub(&cart))

	_, err := s.SetShippingMethod(svc.Identity{UserID: "u-1"}, 1)
	require.ErrorIs(t, err, svc.ErrConflict)
}

func TestSetAddress_ClearsMethodTheNewDestinationCannotUse(t *testing.T) {
	cart := twoLineCart()
	cart.ShipTo = models.Address{Country: "PK", City: "Lahore", Street: "Mall Rd"}
	cart.ShippingMethodID = 1
	s := newTestService(checkoutStub(&cart))

	got, err := s.SetAddress(svc.Identity{UserID: "u-1"}, models.Address{Country: "US", City: "Austin", Street: "x"})
	require.NoError(t, err)
	require.Zero(t, got.ShippingMethodID)
	require.Zero(t, got.ShippingTotal)
}

func TestSetContact_RejectsMalformedEmail(t *testing.T) {
	cart := twoLineCart()
	s := newTestService(checkoutStub(&cart))

	_, err := s.SetContact(svc.Identity{UserID: "u-1"}, "not-an-email", "")
	require.ErrorIs(t, err, svc.ErrValidation)
}

func TestSetContact_KeepsKnownFieldsOnPartialInput(t *testing.T) {
	cart := twoLineCart()
	cart.ContactEmail = "buyer@example.com"
	s := newTestService(checkoutStub(&cart))

	got, err := s.SetContact(svc.Identity{UserID: "u-1"}, "", "+1 555 010 0100")
	require.NoError(t, err)
	require.Equal(t, "buyer@example.com", got.ContactEmail)
	require.Equal(t, "+1 555 010 0100", got.ContactPhone)
}

func TestSetPaymentMethod_InactiveRejected(t *testing.T) {
	cart := twoLineCart()
	st := checkoutStub(&cart)
	st.paymentMethodByID = func(id uint) (models.PaymentMethod, error) {
		return models.PaymentMethod{ID: id, Active: false}, nil
	}
	s := newTestService(st)

	_, err := s.SetPaymentMethod(svc.Identity{UserID: "u-1"}, 3)
	require.ErrorIs(t, err, svc.ErrConflict)
}

func TestCheckout_OtherUsersCartInvisible(t *testing.T) {
	cart := twoLineCart()
	st := checkoutStub(&cart)
	s := newTestService(st)

	_, err := s.SetContact(svc.Identity{GuestToken: "g-unknown"}, "a@b.co", "")
	require.ErrorIs(t, err, svc.ErrUnauthorizedCart)
}
