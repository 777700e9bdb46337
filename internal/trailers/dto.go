package trailers

import (
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
)

// CreateTrailerInput carries the fields accepted when registering a trailer.
type CreateTrailerInput struct {
	Plate      string  `json:"plate" validate:"required,min=5"`
	Type       string  `json:"type,omitempty"`
	CapacityKg float64 `json:"capacity_kg,omitempty" validate:"omitempty,gt=0"`
}

// UpdateTrailerInput carries the optional fields of a trailer update.
type UpdateTrailerInput struct {
	Type       *string  `json:"type,omitempty"`
	CapacityKg *float64 `json:"capacity_kg,omitempty" validate:"omitempty,gt=0"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

// TrailerDTO is the API-facing projection of a trailer.
type TrailerDTO struct {
	ID         uuid.UUID `json:"id"`
	Plate      string    `json:"plate"`
	Type       string    `json:"type,omitempty"`
	CapacityKg float64   `json:"capacity_kg"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// TrailerList wraps a page of trailers plus the next cursor.
type TrailerList struct {
	Trailers   []TrailerDTO `json:"trailers"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// Filters narrows the trailer list query.
type Filters struct {
	ActiveOnly bool
	Query      string
}

// FromModel maps a persisted trailer onto the API projection.
func FromModel(trailer *models.Trailer) *TrailerDTO {
	if trailer == nil {
		return nil
	}
	return &TrailerDTO{
		ID:         trailer.ID,
		Plate:      trailer.Plate,
		Type:       trailer.Type,
		CapacityKg: trailer.CapacityKg,
		IsActive:   trailer.IsActive,
		CreatedAt:  trailer.CreatedAt,
	}
}
