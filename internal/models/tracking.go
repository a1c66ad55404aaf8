package models

import (
	"time"
)

type TrackingChannel string

const (
	ChannelEmail TrackingChannel = "email"
	ChannelPhone TrackingChannel = "phone"
)

// TrackingChallenge is an ephemeral one-time-code challenge bound to an
// order and a contact destination.
type TrackingChallenge struct {
	ID          string          `json:"id" gorm:"primary_key;type:varchar(36)"`
	OrderID     uint            `json:"order_id" gorm:"index"`
	OrderNumber string          `json:"order_number"`
	Channel     TrackingChannel `json:"channel"`
	Destination string          `json:"-" gorm:"index"`
	Masked      string          `json:"masked"`
	Code        string          `json:"-"`
	Attempts    int             `json:"attempts"`
	Consumed    bool            `json:"consumed"`
	ExpiresAt   time.Time       `json:"expires_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (c TrackingChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// TrackingSession is an opaque bearer token granting read access to one
// order for a limited time.
type TrackingSession struct {
	ID          uint      `json:"id" gorm:"primary_key"`
	Token       string    `json:"token" gorm:"unique_index"`
	OrderID     uint      `json:"order_id" gorm:"index"`
	OrderNumber string    `json:"order_number"`
	GuestToken  string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s TrackingSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
