package models

import (
	"strings"
	"time"
)

// ShippingZone matches destination addresses by geography. Countries are
// required; states and city substring patterns only constrain the match when
// declared. All comparisons are case-insensitive.
type ShippingZone struct {
	ID           uint   `json:"id"   gorm:"primary_key"`
	Name         string `json:"name"`
	Active       bool   `json:"active" gorm:"index"`
	Countries    string `json:"countries"` // comma-separated ISO codes
	States       string `json:"states"`
	CityPatterns string `json:"city_patterns"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether the zone covers addr. Country must equal one of
// the zone's countries; states and city patterns apply only when declared.
func (z ShippingZone) Matches(addr Address) bool {
	country := strings.ToLower(strings.TrimSpace(addr.Country))
	if country == "" {
		return false
	}
	ok := false
	for _, c := range splitCSV(z.Countries) {
		if strings.ToLower(c) == country {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}
	if states := splitCSV(z.States); len(states) > 0 {
		state := strings.ToLower(strings.TrimSpace(addr.State))
		ok = false
		for _, s := range states {
			if strings.ToLower(s) == state {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if patterns := splitCSV(z.CityPatterns); len(patterns) > 0 {
		city := strings.ToLower(strings.TrimSpace(addr.City))
		ok = false
		for _, p := range patterns {
			if strings.Contains(city, strings.ToLower(p)) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// ShippingMethod optionally belongs to a zone; zoneless methods are globally
// available. FlatRate and FreeOver are optional.
type ShippingMethod struct {
	ID       uint   `json:"id"   gorm:"primary_key"`
	ZoneID   uint   `json:"zone_id" gorm:"index"`
	Name     string `json:"name"`
	Active   bool   `json:"active" gorm:"index"`
	FlatRate *int   `json:"flat_rate"`
	FreeOver *int   `json:"free_over"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShippingRate is a tier keyed by a subtotal window; open-ended bounds are
// nil and treated as unbounded.
type ShippingRate struct {
	ID          uint `json:"id"        gorm:"primary_key"`
	MethodID    uint `json:"method_id" gorm:"index"`
	Active      bool `json:"active"`
	MinSubtotal *int `json:"min_subtotal"`
	MaxSubtotal *int `json:"max_subtotal"`
	Amount      int  `json:"amount"`
}

func (r ShippingRate) Covers(subtotal int) bool {
	if r.MinSubtotal != nil && subtotal < *r.MinSubtotal {
		return false
	}
	if r.MaxSubtotal != nil && subtotal > *r.MaxSubtotal {
		return false
	}
	return true
}
