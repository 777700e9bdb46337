package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a truck. Insurance and inspection are the expiry-dated documents.
type Vehicle struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Plate            string     `gorm:"column:plate;not null;uniqueIndex"`
	VIN              string     `gorm:"column:vin"`
	Brand            string     `gorm:"column:brand"`
	Model            string     `gorm:"column:model"`
	Year             int        `gorm:"column:year"`
	CapacityKg       float64    `gorm:"column:capacity_kg;not null;default:0"`
	IsActive         bool       `gorm:"column:is_active;not null;default:true"`
	InsuranceExpiry  *time.Time `gorm:"column:insurance_expiry"`
	InspectionExpiry *time.Time `gorm:"column:inspection_expiry"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
