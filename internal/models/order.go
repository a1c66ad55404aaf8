package models

import (
	"time"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Order is the immutable-after-creation purchase aggregate. At least one of
// UserID/GuestToken is set; OrderNumber is assigned once and never changes.
type Order struct {
	ID             uint   `json:"id"           gorm:"primary_key"`
	OrderNumber    string `json:"order_number" gorm:"unique_index" validate:"required"`
	IdempotencyKey string `json:"-"            gorm:"index"`
	CartID         uint   `json:"cart_id"      gorm:"index"`
	UserID         string `json:"user_id"      gorm:"index"`
	GuestToken     string `json:"guest_token"  gorm:"index"`

	Status   OrderStatus `json:"status" gorm:"index" validate:"required"`
	Currency string      `json:"currency"`

	Subtotal      int `json:"subtotal"`
	DiscountTotal int `json:"discount_total"`
	ShippingTotal int `json:"shipping_total"`
	TaxTotal      int `json:"tax_total"`
	Total         int `json:"total"`

	ShippingMethodID uint `json:"shipping_method_id"`
	PaymentMethodID  uint `json:"payment_method_id"`

	ContactEmail string  `json:"contact_email" validate:"required,email"`
	ContactPhone string  `json:"contact_phone" validate:"required"`
	ShipTo       Address `json:"ship_to" gorm:"embedded;embedded_prefix:ship_"`

	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`

	Items  []OrderItem        `json:"items"  gorm:"foreignkey:OrderID" validate:"required,min=1,dive"`
	Events []OrderStatusEvent `json:"events" gorm:"foreignkey:OrderID"`

	PlacedAt  time.Time `json:"placed_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem snapshots a cart line at commit time, decoupled from the live
// product record.
type OrderItem struct {
	ID        uint   `json:"id"         gorm:"primary_key"`
	OrderID   uint   `json:"order_id"   gorm:"index"`
	ProductID uint   `json:"product_id" validate:"required"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice int    `json:"unit_price" validate:"gte=0"`
	Quantity  int    `json:"quantity"   validate:"gt=0"`
	LineTotal int    `json:"line_total"`
}

// OrderStatusEvent is one append-only audit row per status/tracking change.
type OrderStatusEvent struct {
	ID        uint        `json:"id"       gorm:"primary_key"`
	OrderID   uint        `json:"order_id" gorm:"index"`
	Status    OrderStatus `json:"status"`
	Note      string      `json:"note"`
	Actor     string      `json:"actor"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderWithDetails is the read projection exposed to handlers: the order
// with its lines, events sorted ascending and the resolved payment method.
type OrderWithDetails struct {
	Order         Order          `json:"order"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`
}
