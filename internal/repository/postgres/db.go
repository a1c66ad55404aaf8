package postgres

import (
	"fmt"

	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/pkg/errors"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	DbName   string
	SslMode  string
}

func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.DbName, cfg.Password, cfg.SslMode)

	db, err := gorm.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "postgres open")
	}
	if err := db.DB().Ping(); err != nil {
		return nil, errors.Wrap(err, "postgres ping")
	}
	return db, nil
}

// Migrate creates every table the checkout/order core touches, including
// the dependent record kinds owned by collaborator subsystems.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusEvent{},
		&models.ShippingZone{},
		&models.ShippingMethod{},
		&models.ShippingRate{},
		&models.TaxProfile{},
		&models.TrackingChallenge{},
		&models.TrackingSession{},
		&models.AbandonedCheckout{},
		&models.DiscountRedemption{},
		&models.Product{},
		&models.PaymentMethod{},
		&models.AdminUser{},
		&models.AuditLog{},
		&models.GiftCardTransaction{},
		&models.PaymentIntent{},
		&models.PaymentEvent{},
		&models.Refund{},
		&models.StockReservation{},
		&models.Shipment{},
		&models.ShipmentEvent{},
		&models.Return{},
		&models.ReturnItem{},
		&models.ReturnEvent{},
		&models.SupportTicket{},
		&models.SupportEvent{},
	).Error; err != nil {
		return err
	}

	// idempotency keys are unique when set; keyless orders store an empty
	// string, so the index has to exclude those rows
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uix_orders_idempotency_key
		 ON orders (idempotency_key) WHERE idempotency_key <> ''`,
	).Error; err != nil {
		return errors.Wrap(err, "idempotency key index")
	}
	return nil
}
