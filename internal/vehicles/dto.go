package vehicles

import (
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/internal/expiry"
	"github.com/rotalog/rotalog-backend/pkg/db/models"
)

// CreateVehicleInput carries the fields accepted when registering a vehicle.
type CreateVehicleInput struct {
	Plate            string     `json:"plate" validate:"required,min=5"`
	VIN              string     `json:"vin,omitempty"`
	Brand            string     `json:"brand,omitempty"`
	Model            string     `json:"model,omitempty"`
	Year             int        `json:"year,omitempty" validate:"omitempty,min=1950,max=2100"`
	CapacityKg       float64    `json:"capacity_kg,omitempty" validate:"omitempty,gt=0"`
	InsuranceExpiry  *time.Time `json:"insurance_expiry,omitempty"`
	InspectionExpiry *time.Time `json:"inspection_expiry,omitempty"`
}

// UpdateVehicleInput carries the optional fields of a vehicle update.
type UpdateVehicleInput struct {
	VIN              *string    `json:"vin,omitempty"`
	Brand            *string    `json:"brand,omitempty"`
	Model            *string    `json:"model,omitempty"`
	Year             *int       `json:"year,omitempty" validate:"omitempty,min=1950,max=2100"`
	CapacityKg       *float64   `json:"capacity_kg,omitempty" validate:"omitempty,gt=0"`
	IsActive         *bool      `json:"is_active,omitempty"`
	InsuranceExpiry  *time.Time `json:"insurance_expiry,omitempty"`
	InspectionExpiry *time.Time `json:"inspection_expiry,omitempty"`
}

// DocumentStatus pairs a document date with its expiry classification.
type DocumentStatus struct {
	Date   *time.Time    `json:"date,omitempty"`
	Status expiry.Status `json:"status"`
}

// VehicleDTO is the API-facing projection of a vehicle.
type VehicleDTO struct {
	ID         uuid.UUID      `json:"id"`
	Plate      string         `json:"plate"`
	VIN        string         `json:"vin,omitempty"`
	Brand      string         `json:"brand,omitempty"`
	Model      string         `json:"model,omitempty"`
	Year       int            `json:"year,omitempty"`
	CapacityKg float64        `json:"capacity_kg"`
	IsActive   bool           `json:"is_active"`
	Insurance  DocumentStatus `json:"insurance"`
	Inspection DocumentStatus `json:"inspection"`
	CreatedAt  time.Time      `json:"created_at"`
}

// VehicleList wraps a page of vehicles plus the next cursor.
type VehicleList struct {
	Vehicles   []VehicleDTO `json:"vehicles"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// Filters narrows the vehicle list query.
type Filters struct {
	ActiveOnly bool
	Query      string
}

// FromModel maps a persisted vehicle onto the API projection.
func FromModel(vehicle *models.Vehicle, now time.Time) *VehicleDTO {
	if vehicle == nil {
		return nil
	}
	return &VehicleDTO{
		ID:         vehicle.ID,
		Plate:      vehicle.Plate,
		VIN:        vehicle.VIN,
		Brand:      vehicle.Brand,
		Model:      vehicle.Model,
		Year:       vehicle.Year,
		CapacityKg: vehicle.CapacityKg,
		IsActive:   vehicle.IsActive,
		Insurance: DocumentStatus{
			Date:   vehicle.InsuranceExpiry,
			Status: expiry.Classify(vehicle.InsuranceExpiry, now),
		},
		Inspection: DocumentStatus{
			Date:   vehicle.InspectionExpiry,
			Status: expiry.Classify(vehicle.InspectionExpiry, now),
		},
		CreatedAt: vehicle.CreatedAt,
	}
}
