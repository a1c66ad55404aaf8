package postgres

import (
	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
)

type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// ConfiguredAdminRoles returns the distinct set of roles held by any
// administrator account.
func (r *AdminRepo) ConfiguredAdminRoles() ([]string, error) {
	var roles []string
	q := r.db.Model(&models.AdminUser{}).
		Pluck("DISTINCT role", &roles)
	return roles, q.Error
}

type AuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) WriteAudit(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}
