package postgres

import (
	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Place commits the placement graph in one transaction: the cart patch
// (final totals + converted status), the order, its line snapshots and
// pending event, and the optional discount redemption. A failure anywhere
// rolls everything back, so the cart never ends up converted without an
// order and no partial order is ever visible.
func (r *OrderRepo) Place(cart *models.Cart, ord *models.Order, redemption *models.DiscountRedemption) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		convert := tx.Model(&models.Cart{}).
			Where("id = ? AND status = ?", cart.ID, models.CartActive).
			Updates(map[string]interface{}{
				"status":         models.CartConverted,
				"subtotal":       cart.Subtotal,
				"discount_total": cart.DiscountTotal,
				"shipping_total": cart.ShippingTotal,
				"tax_total":      cart.TaxTotal,
				"total":          cart.Total,
				"contact_email":  cart.ContactEmail,
				"contact_phone":  cart.ContactPhone,
				"ship_name":      cart.ShipTo.Name,
				"ship_phone":     cart.ShipTo.Phone,
				"ship_country":   cart.ShipTo.Country,
				"ship_state":     cart.ShipTo.State,
				"ship_city":      cart.ShipTo.City,
				"ship_street":    cart.ShipTo.Street,
				"ship_zip":       cart.ShipTo.Zip,
			})
		if convert.Error != nil {
			return errors.Wrap(convert.Error, "convert cart")
		}
		// zero rows means the cart was already converted by a racing
		// placement
		if convert.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		items := ord.Items
		events := ord.Events
		ord.Items, ord.Events = nil, nil
		if err := tx.Create(ord).Error; err != nil {
			return errors.Wrap(err, "create order")
		}
		for i := range items {
			items[i].OrderID = ord.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return errors.Wrap(err, "create order item")
			}
		}
		for i := range events {
			events[i].OrderID = ord.ID
			if err := tx.Create(&events[i]).Error; err != nil {
				return errors.Wrap(err, "create status event")
			}
		}
		ord.Items, ord.Events = items, events

		if redemption != nil {
			redemption.OrderID = ord.ID
			if err := tx.Create(redemption).Error; err != nil {
				return errors.Wrap(err, "create discount redemption")
			}
		}
		return nil
	})
}

func (r *OrderRepo) OrderByID(id uint) (models.Order, error) {
	var o models.Order
	q := r.db.Where("id = ?", id).First(&o)
	return o, q.Error
}

func (r *OrderRepo) OrderByNumber(number string) (models.Order, error) {
	var o models.Order
	q := r.db.Where("order_number = ?", number).First(&o)
	return o, q.Error
}

func (r *OrderRepo) OrderByIdempotencyKey(key string) (models.Order, error) {
	var o models.Order
	q := r.db.Where("idempotency_key = ?", key).First(&o)
	return o, q.Error
}

func (r *OrderRepo) OrderRelations(id uint) (models.Order, error) {
	var o models.Order
	q := r.db.Preload("Items").
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		Where("id = ?", id).
		First(&o)
	return o, q.Error
}

// SaveOrderStatus persists a status/tracking change together with its audit
// event as one unit.
func (r *OrderRepo) SaveOrderStatus(ord *models.Order, event models.OrderStatusEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("id = ?", ord.ID).
			Updates(map[string]interface{}{
				"status":          ord.Status,
				"tracking_number": ord.TrackingNumber,
				"carrier":         ord.Carrier,
			}).Error; err != nil {
			return errors.Wrap(err, "update order status")
		}
		event.OrderID = ord.ID
		if err := tx.Create(&event).Error; err != nil {
			return errors.Wrap(err, "append status event")
		}
		return nil
	})
}

// orderDependents enumerates every table holding rows keyed directly by
// order id. New dependents get a row here, not a hand-written delete block.
var orderDependents = []struct {
	table string
	model func() interface{}
	fk    string
}{
	{"order_items", func() interface{} { return &models.OrderItem{} }, "order_id"},
	{"order_status_events", func() interface{} { return &models.OrderStatusEvent{} }, "order_id"},
	{"tracking_challenges", func() interface{} { return &models.TrackingChallenge{} }, "order_id"},
	{"tracking_sessions", func() interface{} { return &models.TrackingSession{} }, "order_id"},
	{"discount_redemptions", func() interface{} { return &models.DiscountRedemption{} }, "order_id"},
	{"gift_card_transactions", func() interface{} { return &models.GiftCardTransaction{} }, "order_id"},
	{"payment_events", func() interface{} { return &models.PaymentEvent{} }, "order_id"},
	{"payment_intents", func() interface{} { return &models.PaymentIntent{} }, "order_id"},
	{"refunds", func() interface{} { return &models.Refund{} }, "order_id"},
	{"stock_reservations", func() interface{} { return &models.StockReservation{} }, "order_id"},
	{"shipment_events", func() interface{} { return &models.ShipmentEvent{} }, "order_id"},
	{"shipments", func() interface{} { return &models.Shipment{} }, "order_id"},
}

// DeleteOrderGraph removes the order and every dependent record in one
// transaction and reports per-table deleted-row counts plus the order
// snapshot taken before deletion. A missing order returns
// gorm.ErrRecordNotFound untouched.
func (r *OrderRepo) DeleteOrderGraph(id uint) (map[string]int, models.Order, error) {
	snapshot, err := r.OrderRelations(id)
	if err != nil {
		return nil, models.Order{}, err
	}

	counts := make(map[string]int)
	err = r.db.Transaction(func(tx *gorm.DB) error {
		for _, dep := range orderDependents {
			q := tx.Where(dep.fk+" = ?", id).Delete(dep.model())
			if q.Error != nil {
				return errors.Wrapf(q.Error, "delete %s", dep.table)
			}
			counts[dep.table] += int(q.RowsAffected)
		}

		// Returns and support tickets carry nested children keyed by
		// their own ids; those go first.
		var returnIDs []uint
		if err := tx.Model(&models.Return{}).Where("order_id = ?", id).Pluck("id", &returnIDs).Error; err != nil {
			return errors.Wrap(err, "list returns")
		}
		if len(returnIDs) > 0 {
			q := tx.Where("return_id IN (?)", returnIDs).Delete(&models.ReturnItem{})
			if q.Error != nil {
				return errors.Wrap(q.Error, "delete return items")
			}
			counts["return_items"] += int(q.RowsAffected)

			q = tx.Where("return_id IN (?)", returnIDs).Delete(&models.ReturnEvent{})
			if q.Error != nil {
				return errors.Wrap(q.Error, "delete return events")
			}
			counts["return_events"] += int(q.RowsAffected)
		}
		q := tx.Where("order_id = ?", id).Delete(&models.Return{})
		if q.Error != nil {
			return errors.Wrap(q.Error, "delete returns")
		}
		counts["returns"] += int(q.RowsAffected)

		var ticketIDs []uint
		if err := tx.Model(&models.SupportTicket{}).Where("order_id = ?", id).Pluck("id", &ticketIDs).Error; err != nil {
			return errors.Wrap(err, "list support tickets")
		}
		if len(ticketIDs) > 0 {
			q = tx.Where("ticket_id IN (?)", ticketIDs).Delete(&models.SupportEvent{})
			if q.Error != nil {
				return errors.Wrap(q.Error, "delete support events")
			}
			counts["support_events"] += int(q.RowsAffected)
		}
		q = tx.Where("order_id = ?", id).Delete(&models.SupportTicket{})
		if q.Error != nil {
			return errors.Wrap(q.Error, "delete support tickets")
		}
		counts["support_tickets"] += int(q.RowsAffected)

		q = tx.Where("id = ?", id).Delete(&models.Order{})
		if q.Error != nil {
			return errors.Wrap(q.Error, "delete order")
		}
		counts["orders"] += int(q.RowsAffected)
		return nil
	})
	if err != nil {
		return nil, models.Order{}, err
	}
	return counts, snapshot, nil
}
