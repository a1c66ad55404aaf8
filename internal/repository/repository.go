package repository

import (
	"time"

	"ayz-shop/internal/models"
	"ayz-shop/internal/repository/cache"
	"ayz-shop/internal/repository/postgres"

	"github.com/jinzhu/gorm"
)

type Carts interface {
	ActiveCartByUser(userID string) (models.Cart, error)
	ActiveCartByGuest(token string) (models.Cart, error)
	CreateCart(c *models.Cart) error
	SaveCart(c *models.Cart) error
	CartWithItems(id uint) (models.Cart, error)
}

type Orders interface {
	// Place commits the whole placement graph atomically: cart patch and
	// conversion, order, line snapshots, pending event, optional
	// redemption.
	Place(cart *models.Cart, ord *models.Order, redemption *models.DiscountRedemption) error
	OrderByID(id uint) (models.Order, error)
	OrderByNumber(number string) (models.Order, error)
	OrderByIdempotencyKey(key string) (models.Order, error)
	OrderRelations(id uint) (models.Order, error)
	SaveOrderStatus(ord *models.Order, event models.OrderStatusEvent) error
	DeleteOrderGraph(id uint) (map[string]int, models.Order, error)
}

type Shipping interface {
	ShippingMethod(id uint) (models.ShippingMethod, error)
	ShippingZone(id uint) (models.ShippingZone, error)
	ActiveRates(methodID uint) ([]models.ShippingRate, error)
}

type Taxes interface {
	ActiveTaxProfiles() ([]models.TaxProfile, error)
}

type Tracking interface {
	CreateChallenge(c *models.TrackingChallenge) error
	ChallengeByID(id string) (models.TrackingChallenge, error)
	SaveChallenge(c *models.TrackingChallenge) error
	LastChallengeFor(destination string) (models.TrackingChallenge, error)
	CountChallengesByDestination(destination string, since time.Time) (int, error)
	CountChallengesByOrder(orderID uint, since time.Time) (int, error)
	CreateTrackingSession(s *models.TrackingSession) error
	TrackingSessionByToken(token string) (models.TrackingSession, error)
}

type Funnels interface {
	LiveFunnelsByCart(cartID uint) ([]models.AbandonedCheckout, error)
	CreateFunnel(a *models.AbandonedCheckout) error
	SaveFunnel(a *models.AbandonedCheckout) error
	DeleteFunnel(id uint) error
}

type Payments interface {
	PaymentMethodByID(id uint) (models.PaymentMethod, error)
}

type Products interface {
	ProductByID(id uint) (models.Product, error)
}

type Admins interface {
	ConfiguredAdminRoles() ([]string, error)
}

type Audits interface {
	WriteAudit(entry *models.AuditLog) error
}

type Repository struct {
	Carts
	Orders
	Shipping
	Taxes
	Tracking
	Funnels
	Payments
	Products
	Admins
	Audits
}

func NewRepository(db *gorm.DB) *Repository {
	kv := cache.NewKV(cache.WithTTL(5 * time.Minute))

	return &Repository{
		Carts:    postgres.NewCartRepo(db),
		Orders:   postgres.NewOrderRepo(db),
		Shipping: cache.NewShippingCache(kv, postgres.NewShippingRepo(db)),
		Taxes:    cache.NewTaxCache(kv, postgres.NewTaxRepo(db)),
		Tracking: postgres.NewTrackingRepo(db),
		Funnels:  postgres.NewFunnelRepo(db),
		Payments: postgres.NewPaymentRepo(db),
		Products: postgres.NewProductRepo(db),
		Admins:   postgres.NewAdminRepo(db),
		Audits:   postgres.NewAuditRepo(db),
	}
}
