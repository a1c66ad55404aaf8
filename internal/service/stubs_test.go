package service_test

import (
	"time"

	gorm "github.com/jinzhu/gorm"

	"ayz-shop/internal/models"
	"ayz-shop/internal/repository"
	svc "ayz-shop/internal/service"
)

// storeStub implements every store interface with overridable funcs.
// Getters left nil behave as not-found, list getters as empty, writers
// as success.
type storeStub struct {
	activeCartByUser  func(string) (models.Cart, error)
	activeCartByGuest func(string) (models.Cart, error)
	createCart        func(*models.Cart) error
	saveCart          func(*models.Cart) error
	cartWithItems     func(uint) (models.Cart, error)

	place            func(*models.Cart, *models.Order, *models.DiscountRedemption) error
	orderByID        func(uint) (models.Order, error)
	orderByNumber    func(string) (models.Order, error)
	orderByIdemKey   func(string) (models.Order, error)
	orderRelations   func(uint) (models.Order, error)
	saveOrderStatus  func(*models.Order, models.OrderStatusEvent) error
	deleteOrderGraph func(uint) (map[string]int, models.Order, error)

	shippingMethod func(uint) (models.ShippingMethod, error)
	shippingZone   func(uint) (models.ShippingZone, error)
	activeRates    func(uint) ([]models.ShippingRate, error)

	activeTaxProfiles func() ([]models.TaxProfile, error)

	createChallenge  func(*models.TrackingChallenge) error
	challengeByID    func(string) (models.TrackingChallenge, error)
	saveChallenge    func(*models.TrackingChallenge) error
	lastChallengeFor func(string) (models.TrackingChallenge, error)
	countByDest      func(string, time.Time) (int, error)
	countByOrder     func(uint, time.Time) (int, error)
	createSession    func(*models.TrackingSession) error
	sessionByToken   func(string) (models.TrackingSession, error)

	liveFunnels  func(uint) ([]models.AbandonedCheckout, error)
	createFunnel func(*models.AbandonedCheckout) error
	saveFunnel   func(*models.AbandonedCheckout) error
	deleteFunnel func(uint) error

	paymentMethodByID func(uint) (models.PaymentMethod, error)
	productByID       func(uint) (models.Product, error)
	configuredRoles   func() ([]string, error)
	writeAudit        func(*models.AuditLog) error
}

func (s *storeStub) ActiveCartByUser(userID string) (models.Cart, error) {
	if s.activeCartByUser == nil {
		return models.Cart{}, gorm.ErrRecordNotFound
	}
	return s.activeCartByUser(userID)
}

func (s *storeStub) ActiveCartByGuest(token string) (models.Cart, error) {
	if s.activeCartByGuest == nil {
		return models.Cart{}, gorm.ErrRecordNotFound
	}
	return s.activeCartByGuest(token)
}

func (s *storeStub) CreateCart(c *models.Cart) error {
	if s.createCart == nil {
		return nil
	}
	return s.createCart(c)
}

func (s *storeStub) SaveCart(c *models.Cart) error {
	if s.saveCart == nil {
		return nil
	}
	return s.saveCart(c)
}

func (s *storeStub) CartWithItems(id uint) (models.Cart, error) {
	if s.cartWithItems == nil {
		return models.Cart{}, gorm.ErrRecordNotFound
	}
	return s.cartWithItems(id)
}

func (s *storeStub) Place(cart *models.Cart, ord *models.Order, redemption *models.DiscountRedemption) error {
	if s.place == nil {
		return nil
	}
	return s.place(cart, ord, redemption)
}

func (s *storeStub) OrderByID(id uint) (models.Order, error) {
	if s.orderByID == nil {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return s.orderByID(id)
}

func (s *storeStub) OrderByNumber(number string) (models.Order, error) {
	if s.orderByNumber == nil {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return s.orderByNumber(number)
}

func (s *storeStub) OrderByIdempotencyKey(key string) (models.Order, error) {
	if s.orderByIdemKey == nil {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return s.orderByIdemKey(key)
}

func (s *storeStub) OrderRelations(id uint) (models.Order, error) {
	if s.orderRelations == nil {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return s.orderRelations(id)
}

func (s *storeStub) SaveOrderStatus(ord *models.Order, event models.OrderStatusEvent) error {
	if s.saveOrderStatus == nil {
		return nil
	}
	return s.saveOrderStatus(ord, event)
}

func (s *storeStub) DeleteOrderGraph(id uint) (map[string]int, models.Order, error) {
	if s.deleteOrderGraph == nil {
		return nil, models.Order{}, gorm.ErrRecordNotFound
	}
	return s.deleteOrderGraph(id)
}

func (s *storeStub) ShippingMethod(id uint) (models.ShippingMethod, error) {
	if s.shippingMethod == nil {
		return models.ShippingMethod{}, gorm.ErrRecordNotFound
	}
	return s.shippingMethod(id)
}

func (s *storeStub) ShippingZone(id uint) (models.ShippingZone, error) {
	if s.shippingZone == nil {
		return models.ShippingZone{}, gorm.ErrRecordNotFound
	}
	return s.shippingZone(id)
}

func (s *storeStub) ActiveRates(methodID uint) ([]models.ShippingRate, error) {
	if s.activeRates == nil {
		return nil, nil
	}
	return s.activeRates(methodID)
}

func (s *storeStub) ActiveTaxProfiles() ([]models.TaxProfile, error) {
	if s.activeTaxProfiles == nil {
		return nil, nil
	}
	return s.activeTaxProfiles()
}

func (s *storeStub) CreateChallenge(c *models.TrackingChallenge) error {
	if s.createChallenge == nil {
		return nil
	}
	return s.createChallenge(c)
}

func (s *storeStub) ChallengeByID(id string) (models.TrackingChallenge, error) {
	if s.challengeByID == nil {
		return models.TrackingChallenge{}, gorm.ErrRecordNotFound
	}
	return s.challengeByID(id)
}

func (s *storeStub) SaveChallenge(c *models.TrackingChallenge) error {
	if s.saveChallenge == nil {
		return nil
	}
	return s.saveChallenge(c)
}

func (s *storeStub) LastChallengeFor(destination string) (models.TrackingChallenge, error) {
	if s.lastChallengeFor == nil {
		return models.TrackingChallenge{}, gorm.ErrRecordNotFound
	}
	return s.lastChallengeFor(destination)
}

func (s *storeStub) CountChallengesByDestination(destination string, since time.Time) (int, error) {
	if s.countByDest == nil {
		return 0, nil
	}
	return s.countByDest(destination, since)
}

func (s *storeStub) CountChallengesByOrder(orderID uint, since time.Time) (int, error) {
	if s.countByOrder == nil {
		return 0, nil
	}
	return s.countByOrder(orderID, since)
}

func (s *storeStub) CreateTrackingSession(sess *models.TrackingSession) error {
	if s.createSession == nil {
		return nil
	}
	return s.createSession(sess)
}

func (s *storeStub) TrackingSessionByToken(token string) (models.TrackingSession, error) {
	if s.sessionByToken == nil {
		return models.TrackingSession{}, gorm.ErrRecordNotFound
	}
	return s.sessionByToken(token)
}

func (s *storeStub) LiveFunnelsByCart(cartID uint) ([]models.AbandonedCheckout, error) {
	if s.liveFunnels == nil {
		return nil, nil
	}
	return s.liveFunnels(cartID)
}

func (s *storeStub) CreateFunnel(a *models.AbandonedCheckout) error {
	if s.createFunnel == nil {
		return nil
	}
	return s.createFunnel(a)
}

func (s *storeStub) SaveFunnel(a *models.AbandonedCheckout) error {
	if s.saveFunnel == nil {
		return nil
	}
	return s.saveFunnel(a)
}

func (s *storeStub) DeleteFunnel(id uint) error {
	if s.deleteFunnel == nil {
		return nil
	}
	return s.deleteFunnel(id)
}

func (s *storeStub) PaymentMethodByID(id uint) (models.PaymentMethod, error) {
	if s.paymentMethodByID == nil {
		return models.PaymentMethod{}, gorm.ErrRecordNotFound
	}
	return s.paymentMethodByID(id)
}

func (s *storeStub) ProductByID(id uint) (models.Product, error) {
	if s.productByID == nil {
		return models.Product{}, gorm.ErrRecordNotFound
	}
	return s.productByID(id)
}

func (s *storeStub) ConfiguredAdminRoles() ([]string, error) {
	if s.configuredRoles == nil {
		return nil, nil
	}
	return s.configuredRoles()
}

func (s *storeStub) WriteAudit(entry *models.AuditLog) error {
	if s.writeAudit == nil {
		return nil
	}
	return s.writeAudit(entry)
}

var (
	_ repository.Carts    = (*storeStub)(nil)
	_ repository.Orders   = (*storeStub)(nil)
	_ repository.Shipping = (*storeStub)(nil)
	_ repository.Taxes    = (*storeStub)(nil)
	_ repository.Tracking = (*storeStub)(nil)
	_ repository.Funnels  = (*storeStub)(nil)
	_ repository.Payments = (*storeStub)(nil)
	_ repository.Products = (*storeStub)(nil)
	_ repository.Admins   = (*storeStub)(nil)
	_ repository.Audits   = (*storeStub)(nil)
)

func newTestService(st *storeStub, opts ...svc.Option) *svc.Service {
	repo := &repository.Repository{
		Carts:    st,
		Orders:   st,
		Shipping: st,
		Taxes:    st,
		Tracking: st,
		Funnels:  st,
		Payments: st,
		Products: st,
		Admins:   st,
		Audits:   st,
	}
	return svc.NewService(repo, opts...)
}

func intPtr(v int) *int { return &v }
