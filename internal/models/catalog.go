package models

import (
	"time"
)

// Product is read here only to capture presentational fields at order
// placement; pricing always comes from the cart line snapshot.
type Product struct {
	ID     uint   `json:"id" gorm:"primary_key"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Price  int    `json:"price"`
	Active bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentMethod struct {
	ID       uint   `json:"id" gorm:"primary_key"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Active   bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
