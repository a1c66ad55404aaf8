package models

import (
	"time"
)

// Records below are owned by other subsystems but reference orders by
// foreign key, so the cascade delete must know their shape.

type GiftCardTransaction struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	OrderID   uint      `json:"order_id" gorm:"index"`
	CardCode  string    `json:"card_code"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentIntent struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	OrderID   uint      `json:"order_id" gorm:"index"`
	Provider  string    `json:"provider"`
	Reference string    `json:"reference"`
	Amount    int       `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentEvent struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	OrderID   uint      `json:"order_id" gorm:"index"`
	Kind      string    `json:"kind"`
	Payload   string    `json:"payload" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

type Refund struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	OrderID   uint      `json:"order_id" gorm:"index"`
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type StockReservation struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	OrderID   uint      `json:"order_id" gorm:"index"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type Shipment struct {
	ID             uint      `json:"id" gorm:"primary_key"`
	OrderID        uint      `json:"order_id" gorm:"index"`
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"tracking_number"`
	CreatedAt      time.Time `json:"created_at"`
}

type ShipmentEvent struct {
	ID         uint      `json:"id" gorm:"primary_key"`
	OrderID    uint      `json:"order_id" gorm:"index"`
	ShipmentID uint      `json:"shipment_id" gorm:"index"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type Return struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	OrderID   uint      `json:"order_id" gorm:"index"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ReturnItem struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	ReturnID  uint      `json:"return_id" gorm:"index"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type ReturnEvent struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	ReturnID  uint      `json:"return_id" gorm:"index"`
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type SupportTicket struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	OrderID   uint      `json:"order_id" gorm:"index"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SupportEvent struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	TicketID  uint      `json:"ticket_id" gorm:"index"`
	Body      string    `json:"body" gorm:"type:text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
