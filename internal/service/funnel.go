package service

import (
	"ayz-shop/internal/models"
)

// TrackFunnel upserts the cart's live funnel row. Once the shopper is
// identified, lingering anonymous rows for the same cart are retired so
// recovery campaigns never email a ghost.
func (s *Service) TrackFunnel(cart models.Cart, step models.FunnelStep, recovered bool) error {
	rows, err := s.LiveFunnelsByCart(cart.ID)
	if err != nil {
		return err
	}

	identified := cart.UserID != "" || cart.ContactEmail != "" || cart.ContactPhone != ""

	var current *models.AbandonedCheckout
	for i := range rows {
		row := &rows[i]
		if identified && row.Anonymous() {
			if err := s.DeleteFunnel(row.ID); err != nil {
				return err
			}
			continue
		}
		if current == nil {
			// rows arrive newest first
			current = row
		}
	}

	if current == nil {
		fresh := models.AbandonedCheckout{
			CartID:     cart.ID,
			UserID:     cart.UserID,
			GuestToken: cart.GuestToken,
			Email:      cart.ContactEmail,
			Phone:      cart.ContactPhone,
			Step:       step,
		}
		s.stampRecovered(&fresh, recovered)
		return s.CreateFunnel(&fresh)
	}

	current.Step = step
	if cart.UserID != "" {
		current.UserID = cart.UserID
	}
	if cart.GuestToken != "" {
		current.GuestToken = cart.GuestToken
	}
	if cart.ContactEmail != "" {
		current.Email = cart.ContactEmail
	}
	if cart.ContactPhone != "" {
		current.Phone = cart.ContactPhone
	}
	s.stampRecovered(current, recovered)
	return s.SaveFunnel(current)
}

func (s *Service) stampRecovered(a *models.AbandonedCheckout, recovered bool) {
	if !recovered || a.Recovered {
		return
	}
	a.Recovered = true
	t := s.now()
	a.RecoveredAt = &t
}
