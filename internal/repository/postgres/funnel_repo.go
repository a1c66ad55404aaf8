package postgres

import (
	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
)

type FunnelRepo struct {
	db *gorm.DB
}

func NewFunnelRepo(db *gorm.DB) *FunnelRepo {
	return &FunnelRepo{db: db}
}

// LiveFunnelsByCart returns non soft-deleted rows, most recently updated first.
func (r *FunnelRepo) LiveFunnelsByCart(cartID uint) ([]models.AbandonedCheckout, error) {
	var rows []models.AbandonedCheckout
	q := r.db.Where("cart_id = ?", cartID).
		Order("updated_at DESC").
		Find(&rows)
	return rows, q.Error
}

func (r *FunnelRepo) CreateFunnel(a *models.AbandonedCheckout) error {
	return r.db.Create(a).Error
}

func (r *FunnelRepo) SaveFunnel(a *models.AbandonedCheckout) error {
	updates := map[string]interface{}{
		"step":      a.Step,
		"recovered": a.Recovered,
	}
	// Absent contact fields must never clobber previously known values.
	if a.UserID != "" {
		updates["user_id"] = a.UserID
	}
	if a.GuestToken != "" {
		updates["guest_token"] = a.GuestToken
	}
	if a.Email != "" {
		updates["email"] = a.Email
	}
	if a.Phone != "" {
		updates["phone"] = a.Phone
	}
	if a.RecoveredAt != nil {
		updates["recovered_at"] = a.RecoveredAt
	}
	return r.db.Model(&models.AbandonedCheckout{}).
		Where("id = ?", a.ID).
		Updates(updates).Error
}

func (r *FunnelRepo) DeleteFunnel(id uint) error {
	return r.db.Where("id = ?", id).Delete(&models.AbandonedCheckout{}).Error
}
