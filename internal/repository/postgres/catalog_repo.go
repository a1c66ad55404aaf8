package postgres

import (
	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
)

type PaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) PaymentMethodByID(id uint) (models.PaymentMethod, error) {
	var m models.PaymentMethod
	q := r.db.Where("id = ?", id).First(&m)
	return m, q.Error
}

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) ProductByID(id uint) (models.Product, error) {
	var p models.Product
	q := r.db.Where("id = ?", id).First(&p)
	return p, q.Error
}
