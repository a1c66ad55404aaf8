package postgres

import (
	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
)

type CartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) ActiveCartByUser(userID string) (models.Cart, error) {
	var c models.Cart
	q := r.db.Preload("Items").
		Where("user_id = ? AND status = ?", userID, models.CartActive).
		Order("updated_at DESC").
		First(&c)
	return c, q.Error
}

func (r *CartRepo) ActiveCartByGuest(token string) (models.Cart, error) {
	var c models.Cart
	q := r.db.Preload("Items").
		Where("guest_token = ? AND status = ?", token, models.CartActive).
		Order("updated_at DESC").
		First(&c)
	return c, q.Error
}

func (r *CartRepo) CreateCart(c *models.Cart) error {
	return r.db.Create(c).Error
}

// SaveCart persists the cart header. Items are owned by the catalog/cart
// collaborator and are never written here.
func (r *CartRepo) SaveCart(c *models.Cart) error {
	return r.db.Model(&models.Cart{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"status":             c.Status,
			"subtotal":           c.Subtotal,
			"discount_total":     c.DiscountTotal,
			"shipping_total":     c.ShippingTotal,
			"tax_total":          c.TaxTotal,
			"total":              c.Total,
			"applied_code":       c.AppliedCode,
			"shipping_method_id": c.ShippingMethodID,
			"payment_method_id":  c.PaymentMethodID,
			"contact_email":      c.ContactEmail,
			"contact_phone":      c.ContactPhone,
			"ship_name":          c.ShipTo.Name,
			"ship_phone":         c.ShipTo.Phone,
			"ship_country":       c.ShipTo.Country,
			"ship_state":         c.ShipTo.State,
			"ship_city":          c.ShipTo.City,
			"ship_street":        c.ShipTo.Street,
			"ship_zip":           c.ShipTo.Zip,
		}).Error
}

func (r *CartRepo) CartWithItems(id uint) (models.Cart, error) {
	var c models.Cart
	q := r.db.Preload("Items").Where("id = ?", id).First(&c)
	return c, q.Error
}
