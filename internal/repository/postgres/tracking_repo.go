package postgres

import (
	"time"

	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
)

type TrackingRepo struct {
	db *gorm.DB
}

func NewTrackingRepo(db *gorm.DB) *TrackingRepo {
	return &TrackingRepo{db: db}
}

func (r *TrackingRepo) CreateChallenge(c *models.TrackingChallenge) error {
	return r.db.Create(c).Error
}

func (r *TrackingRepo) ChallengeByID(id string) (models.TrackingChallenge, error) {
	var c models.TrackingChallenge
	q := r.db.Where("id = ?", id).First(&c)
	return c, q.Error
}

func (r *TrackingRepo) SaveChallenge(c *models.TrackingChallenge) error {
	return r.db.Model(&models.TrackingChallenge{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"attempts":   c.Attempts,
			"consumed":   c.Consumed,
			"expires_at": c.ExpiresAt,
		}).Error
}

func (r *TrackingRepo) LastChallengeFor(destination string) (models.TrackingChallenge, error) {
	var c models.TrackingChallenge
	q := r.db.Where("destination = ?", destination).
		Order("created_at DESC").
		First(&c)
	return c, q.Error
}

func (r *TrackingRepo) CountChallengesByDestination(destination string, since time.Time) (int, error) {
	var n int
	q := r.db.Model(&models.TrackingChallenge{}).
		Where("destination = ? AND created_at > ?", destination, since).
		Count(&n)
	return n, q.Error
}

func (r *TrackingRepo) CountChallengesByOrder(orderID uint, since time.Time) (int, error) {
	var n int
	q := r.db.Model(&models.TrackingChallenge{}).
		Where("order_id = ? AND created_at > ?", orderID, since).
		Count(&n)
	return n, q.Error
}

func (r *TrackingRepo) CreateTrackingSession(s *models.TrackingSession) error {
	return r.db.Create(s).Error
}

func (r *TrackingRepo) TrackingSessionByToken(token string) (models.TrackingSession, error) {
	var s models.TrackingSession
	q := r.db.Where("token = ?", token).First(&s)
	return s, q.Error
}
