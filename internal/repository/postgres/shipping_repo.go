package postgres

import (
	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
)

type ShippingRepo struct {
	db *gorm.DB
}

func NewShippingRepo(db *gorm.DB) *ShippingRepo {
	return &ShippingRepo{db: db}
}

func (r *ShippingRepo) ShippingMethod(id uint) (models.ShippingMethod, error) {
	var m models.ShippingMethod
	q := r.db.Where("id = ?", id).First(&m)
	return m, q.Error
}

func (r *ShippingRepo) ShippingZone(id uint) (models.ShippingZone, error) {
	var z models.ShippingZone
	q := r.db.Where("id = ?", id).First(&z)
	return z, q.Error
}

func (r *ShippingRepo) ActiveRates(methodID uint) ([]models.ShippingRate, error) {
	var rates []models.ShippingRate
	q := r.db.Where("method_id = ? AND active = ?", methodID, true).
		Order("min_subtotal ASC, id ASC").
		Find(&rates)
	return rates, q.Error
}

type TaxRepo struct {
	db *gorm.DB
}

func NewTaxRepo(db *gorm.DB) *TaxRepo {
	return &TaxRepo{db: db}
}

func (r *TaxRepo) ActiveTaxProfiles() ([]models.TaxProfile, error) {
	var profiles []models.TaxProfile
	q := r.db.Where("active = ?", true).Order("priority ASC, id ASC").Find(&profiles)
	return profiles, q.Error
}
