package models

import (
	"strings"
	"time"
)

// TaxProfile describes one tax component for a geography. Multiple profiles
// may match a destination; additive profiles are summed, inclusive ones are
// presumed embedded in listed prices and contribute nothing at checkout.
type TaxProfile struct {
	ID        uint    `json:"id" gorm:"primary_key"`
	Name      string  `json:"name"`
	Active    bool    `json:"active" gorm:"index"`
	Country   string  `json:"country"`
	State     string  `json:"state"`
	City      string  `json:"city"`
	Rate      float64 `json:"rate"` // percent
	Inclusive bool    `json:"inclusive"`
	Priority  int     `json:"priority"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Matches requires the country; state and city (substring) apply only when
// the profile declares them. Case-insensitive.
func (p TaxProfile) Matches(addr Address) bool {
	country := strings.ToLower(strings.TrimSpace(addr.Country))
	if country == "" || strings.ToLower(strings.TrimSpace(p.Country)) != country {
		return false
	}
	if p.State != "" && !strings.EqualFold(strings.TrimSpace(p.State), strings.TrimSpace(addr.State)) {
		return false
	}
	if p.City != "" && !strings.Contains(strings.ToLower(addr.City), strings.ToLower(p.City)) {
		return false
	}
	return true
}
