package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/pkg/enums"
)

// OrderCargoItem is one piece of cargo on an order.
type OrderCargoItem struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	Type        enums.CargoType `gorm:"column:type;type:text;not null"`
	WeightKg    float64         `gorm:"column:weight_kg;not null"`
	LengthCm    float64         `gorm:"column:length_cm;not null"`
	WidthCm     float64         `gorm:"column:width_cm;not null"`
	HeightCm    float64         `gorm:"column:height_cm;not null"`
	Description *string         `gorm:"column:description"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
