package models

import (
	"time"
)

type CartStatus string

const (
	CartActive    CartStatus = "active"
	CartConverted CartStatus = "converted"
)

// Address is the shipping destination captured during checkout. Embedded
// into carts and orders with a column prefix.
type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Country string `json:"country" validate:"omitempty,min=2"`
	State   string `json:"state"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Zip     string `json:"zip"`
}

func (a Address) Empty() bool {
	return a.Country == "" && a.City == "" && a.Street == ""
}

// CouponSnapshot freezes the applied discount at the moment the code was
// accepted, so later discount edits do not change cart math.
type CouponSnapshot struct {
	DiscountID string `json:"discount_id"`
	Code       string `json:"code"`
	Amount     int    `json:"amount"`
}

// Cart is the mutable pre-order aggregate. Exactly one of UserID/GuestToken
// identifies the owner. A cart converts at most once and is never deleted.
type Cart struct {
	ID         uint       `json:"id"          gorm:"primary_key"`
	UserID     string     `json:"user_id"     gorm:"index"`
	GuestToken string     `json:"guest_token" gorm:"index"`
	Status     CartStatus `json:"status"      gorm:"index"`
	Currency   string     `json:"currency"`

	Subtotal      int `json:"subtotal"`
	DiscountTotal int `json:"discount_total"`
	ShippingTotal int `json:"shipping_total"`
	TaxTotal      int `json:"tax_total"`
	Total         int `json:"total"`

	AppliedCode string         `json:"applied_code"`
	Coupon      CouponSnapshot `json:"coupon" gorm:"embedded;embedded_prefix:coupon_"`

	ShippingMethodID uint `json:"shipping_method_id"`
	PaymentMethodID  uint `json:"payment_method_id"`

	ContactEmail string  `json:"contact_email"`
	ContactPhone string  `json:"contact_phone"`
	ShipTo       Address `json:"ship_to" gorm:"embedded;embedded_prefix:ship_"`

	Items []CartItem `json:"items" gorm:"foreignkey:CartID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Cart) OwnedBy(userID, guestToken string) bool {
	if c.UserID != "" {
		return c.UserID == userID
	}
	return c.GuestToken != "" && c.GuestToken == guestToken
}

type CartItem struct {
	ID        uint   `json:"id"         gorm:"primary_key"`
	CartID    uint   `json:"cart_id"    gorm:"index"`
	ProductID uint   `json:"product_id" validate:"required"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice int    `json:"unit_price" validate:"gte=0"`
	Quantity  int    `json:"quantity"   validate:"gt=0"`
	LineTotal int    `json:"line_total"`
}
