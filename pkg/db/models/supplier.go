package models

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is an external subcontractor referenced from the operations desk.
type Supplier struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	TaxNumber    string    `gorm:"column:tax_number;not null;uniqueIndex"`
	ContactName  string    `gorm:"column:contact_name"`
	ContactPhone string    `gorm:"column:contact_phone"`
	ContactEmail string    `gorm:"column:contact_email"`
	Address      string    `gorm:"column:address"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
