package drivers

import (
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/internal/expiry"
	"github.com/rotalog/rotalog-backend/pkg/db/models"
)

// CreateDriverInput carries the fields accepted when registering a driver.
type CreateDriverInput struct {
	FirstName             string     `json:"first_name" validate:"required,min=2"`
	LastName              string     `json:"last_name" validate:"required,min=2"`
	LicenseNo             string     `json:"license_no" validate:"required,min=5"`
	Phone                 string     `json:"phone,omitempty"`
	PassportExpiry        *time.Time `json:"passport_expiry,omitempty"`
	VisaExpiry            *time.Time `json:"visa_expiry,omitempty"`
	ResidencePermitExpiry *time.Time `json:"residence_permit_expiry,omitempty"`
}

// UpdateDriverInput carries the optional fields of a driver update.
type UpdateDriverInput struct {
	FirstName             *string    `json:"first_name,omitempty" validate:"omitempty,min=2"`
	LastName              *string    `json:"last_name,omitempty" validate:"omitempty,min=2"`
	Phone                 *string    `json:"phone,omitempty"`
	IsActive              *bool      `json:"is_active,omitempty"`
	PassportExpiry        *time.Time `json:"passport_expiry,omitempty"`
	VisaExpiry            *time.Time `json:"visa_expiry,omitempty"`
	ResidencePermitExpiry *time.Time `json:"residence_permit_expiry,omitempty"`
}

// DocumentStatus pairs a document date with its expiry classification.
type DocumentStatus struct {
	Date   *time.Time    `json:"date,omitempty"`
	Status expiry.Status `json:"status"`
}

// DriverDTO is the API-facing projection of a driver.
type DriverDTO struct {
	ID              uuid.UUID      `json:"id"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	LicenseNo       string         `json:"license_no"`
	Phone           string         `json:"phone,omitempty"`
	IsActive        bool           `json:"is_active"`
	Passport        DocumentStatus `json:"passport"`
	Visa            DocumentStatus `json:"visa"`
	ResidencePermit DocumentStatus `json:"residence_permit"`
	CreatedAt       time.Time      `json:"created_at"`
}

// DriverList wraps a page of drivers plus the next cursor.
type DriverList struct {
	Drivers    []DriverDTO `json:"drivers"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

// Filters narrows the driver list query.
type Filters struct {
	ActiveOnly bool
	Query      string
}

// FromModel maps a persisted driver onto the API projection, classifying the
// travel documents against now.
func FromModel(driver *models.Driver, now time.Time) *DriverDTO {
	if driver == nil {
		return nil
	}
	return &DriverDTO{
		ID:        driver.ID,
		FirstName: driver.FirstName,
		LastName:  driver.LastName,
		LicenseNo: driver.LicenseNo,
		Phone:     driver.Phone,
		IsActive:  driver.IsActive,
		Passport: DocumentStatus{
			Date:   driver.PassportExpiry,
			Status: expiry.Classify(driver.PassportExpiry, now),
		},
		Visa: DocumentStatus{
			Date:   driver.VisaExpiry,
			Status: expiry.Classify(driver.VisaExpiry, now),
		},
		ResidencePermit: DocumentStatus{
			Date:   driver.ResidencePermitExpiry,
			Status: expiry.Classify(driver.ResidencePermitExpiry, now),
		},
		CreatedAt: driver.CreatedAt,
	}
}
