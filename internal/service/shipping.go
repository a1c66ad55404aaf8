package service

import (
	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
)

// ShippingQuote is the outcome of resolving one method against a subtotal
// and destination.
type ShippingQuote struct {
	Available bool `json:"available"`
	Amount    int  `json:"amount"`
}

// ResolveShipping decides whether a method can serve the destination and
// at what cost. Order of checks: method active, zone match, tier window,
// free-over threshold. A method with no matching tier, no flat rate and no
// free-shipping eligibility is unavailable rather than free.
func (s *Service) ResolveShipping(method models.ShippingMethod, subtotal int, addr models.Address) (ShippingQuote, error) {
	if !method.Active {
		return ShippingQuote{}, nil
	}

	if method.ZoneID != 0 {
		zone, err := s.ShippingZone(method.ZoneID)
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return ShippingQuote{}, nil
			}
			return ShippingQuote{}, err
		}
		if !zone.Active || !zone.Matches(addr) {
			return ShippingQuote{}, nil
		}
	}

	rates, err := s.ActiveRates(method.ID)
	if err != nil {
		return ShippingQuote{}, err
	}
	var tier *models.ShippingRate
	for i := range rates {
		if rates[i].Covers(subtotal) {
			tier = &rates[i]
			break
		}
	}

	free := method.FreeOver != nil && subtotal >= *method.FreeOver
	if tier == nil && method.FlatRate == nil && !free {
		return ShippingQuote{}, nil
	}

	amount := 0
	switch {
	case tier != nil:
		amount = tier.Amount
	case method.FlatRate != nil:
		amount = *method.FlatRate
	}
	if free {
		amount = 0
	}
	if amount < 0 {
		amount = 0
	}
	return ShippingQuote{Available: true, Amount: amount}, nil
}
