package models

import (
	"time"
)

type FunnelStep string

const (
	StepInformation FunnelStep = "information"
	StepShipping    FunnelStep = "shipping"
	StepPayment     FunnelStep = "payment"
	StepReview      FunnelStep = "review"
	StepCompleted   FunnelStep = "completed"
)

// AbandonedCheckout records the funnel position of a cart. At most one live
// (non soft-deleted) row exists per cart.
type AbandonedCheckout struct {
	ID         uint       `json:"id" gorm:"primary_key"`
	CartID     uint       `json:"cart_id" gorm:"index"`
	UserID     string     `json:"user_id"`
	GuestToken string     `json:"guest_token"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Step       FunnelStep `json:"step"`
	Recovered  bool       `json:"recovered"`

	RecoveredAt *time.Time `json:"recovered_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-" sql:"index"`
}

func (a AbandonedCheckout) Anonymous() bool {
	return a.UserID == "" && a.Email == "" && a.Phone == ""
}

// DiscountRedemption links a discount/code to the order and cart that
// consumed it, for redemption-limit enforcement elsewhere.
type DiscountRedemption struct {
	ID         uint      `json:"id" gorm:"primary_key"`
	DiscountID string    `json:"discount_id" gorm:"index"`
	Code       string    `json:"code"`
	OrderID    uint      `json:"order_id" gorm:"index"`
	CartID     uint      `json:"cart_id"`
	Amount     int       `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}
