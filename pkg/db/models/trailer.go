package models

import (
	"time"

	"github.com/google/uuid"
)

// Trailer is towed equipment attached to orders alongside a vehicle.
type Trailer struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Plate      string    `gorm:"column:plate;not null;uniqueIndex"`
	Type       string    `gorm:"column:type"`
	CapacityKg float64   `gorm:"column:capacity_kg;not null;default:0"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
