package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
)

// statusTransitions is the full forward lifecycle. Anything absent here
// is an illegal transition; terminal states have no exits.
var statusTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:    {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed:  {models.OrderProcessing, models.OrderCancelled},
	models.OrderProcessing: {models.OrderShipped, models.OrderCancelled},
	models.OrderShipped:    {models.OrderDelivered, models.OrderCancelled},
}

func transitionAllowed(from, to models.OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StatusUpdate is a fulfillment-side state change, arriving over HTTP or
// from the status topic.
type StatusUpdate struct {
	OrderID        uint               `json:"order_id" validate:"required"`
	Status         models.OrderStatus `json:"status" validate:"required,oneof=confirmed processing shipped delivered cancelled"`
	Note           string             `json:"note"`
	Actor          string             `json:"actor"`
	TrackingNumber string             `json:"tracking_number"`
	Carrier        string             `json:"carrier"`
}

// OrderDetails returns the full read projection for one order.
func (s *Service) OrderDetails(id uint) (models.OrderWithDetails, error) {
	ord, err := s.OrderRelations(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.OrderWithDetails{}, ErrNotFound
	}
	if err != nil {
		return models.OrderWithDetails{}, err
	}

	details := models.OrderWithDetails{Order: ord}
	if ord.PaymentMethodID != 0 {
		if pm, err := s.PaymentMethodByID(ord.PaymentMethodID); err == nil {
			details.PaymentMethod = &pm
		}
	}
	return details, nil
}

// UpdateOrderStatus applies one lifecycle transition and appends its
// audit event atomically.
func (s *Service) UpdateOrderStatus(u StatusUpdate) error {
	if err := s.v.Struct(u); err != nil {
		return humanizeValidationErrors(err)
	}

	ord, err := s.OrderByID(u.OrderID)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if ord.Status == u.Status {
		// already there; the retry is harmless
		return nil
	}
	if !transitionAllowed(ord.Status, u.Status) {
		return fmt.Errorf("%w: cannot move order from %s to %s", ErrConflict, ord.Status, u.Status)
	}

	ord.Status = u.Status
	if u.TrackingNumber != "" {
		ord.TrackingNumber = u.TrackingNumber
	}
	if u.Carrier != "" {
		ord.Carrier = u.Carrier
	}
	event := models.OrderStatusEvent{
		OrderID: ord.ID,
		Status:  u.Status,
		Note:    u.Note,
		Actor:   u.Actor,
	}
	return s.SaveOrderStatus(&ord, event)
}

// HandleStatusMessage decodes one status-topic message and applies it.
// Decode and validation failures are terminal; the consumer routes them
// to the dead letter queue instead of retrying.
func (s *Service) HandleStatusMessage(ctx context.Context, payload []byte) error {
	_ = ctx

	var u StatusUpdate
	if err := json.Unmarshal(payload, &u); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return s.UpdateOrderStatus(u)
}
