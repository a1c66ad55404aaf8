package service

import (
	"context"
	"time"

	"ayz-shop/internal/models"
	"ayz-shop/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Identity is the caller as reported by the authentication collaborator:
// an authenticated user id, an opaque guest token, or neither.
type Identity struct {
	UserID     string
	GuestToken string
}

func (id Identity) Anonymous() bool {
	return id.UserID == "" && id.GuestToken == ""
}

// EventPublisher sends analytics payloads to collaborators. Satisfied by
// the kafka publisher.
type EventPublisher interface {
	Publish(ctx context.Context, payload []byte) error
}

type Checkout interface {
	StartCheckout(id Identity) (models.Cart, error)
	SetContact(id Identity, email, phone string) (models.Cart, error)
	SetAddress(id Identity, addr models.Address) (models.Cart, error)
	SetShippingMethod(id Identity, methodID uint) (models.Cart, error)
	SetPaymentMethod(id Identity, methodID uint) (models.Cart, error)
	PlaceOrder(ctx context.Context, id Identity, in PlaceOrderInput) (PlacedOrder, error)
}

type Orders interface {
	OrderDetails(id uint) (models.OrderWithDetails, error)
	UpdateOrderStatus(u StatusUpdate) error
	HandleStatusMessage(ctx context.Context, payload []byte) error
}

type Tracking interface {
	RequestTrackingCode(in TrackingCodeRequest) (TrackingCodeChallenge, error)
	VerifyTrackingCode(in TrackingVerifyRequest) (TrackingAccess, error)
	GetVerifiedOrder(token string) (*models.OrderWithDetails, error)
}

type Admin interface {
	DeletionAccess(callerRole string) (AccessDescriptor, error)
	DeleteOrder(caller AdminCaller, orderID uint) (DeletionResult, error)
	BulkDeleteOrders(caller AdminCaller, ids []uint) (BulkDeletionResult, error)
}

type Service struct {
	*repository.Repository

	v         *validator.Validate
	analytics EventPublisher
	now       func() time.Time

	// revealCodes controls whether the raw OTP is returned to the caller
	// instead of being handed to a delivery collaborator. Off in
	// production.
	revealCodes bool
}

type Option func(*Service)

func WithAnalytics(pub EventPublisher) Option {
	return func(s *Service) { s.analytics = pub }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithRevealCodes(reveal bool) Option {
	return func(s *Service) { s.revealCodes = reveal }
}

func NewService(repo *repository.Repository, opts ...Option) *Service {
	s := &Service{
		Repository: repo,
		v:          validator.New(),
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
