package models

import (
	"time"
)

type AdminUser struct {
	ID    uint   `json:"id" gorm:"primary_key"`
	Email string `json:"email" gorm:"unique_index"`
	Role  string `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditLog records destructive admin actions. Before holds the JSON
// before-image of the affected record, Meta free-form context such as
// cascade row counts.
type AuditLog struct {
	ID         uint      `json:"id" gorm:"primary_key"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	ObjectType string    `json:"object_type"`
	ObjectID   string    `json:"object_id"`
	Before     string    `json:"before" gorm:"type:text"`
	Meta       string    `json:"meta"   gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
