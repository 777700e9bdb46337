package suppliers

import (
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
)

// CreateSupplierInput carries the fields accepted when registering a supplier.
type CreateSupplierInput struct {
	Name         string `json:"name" validate:"required,min=2"`
	TaxNumber    string `json:"tax_number" validate:"required,min=10,max=11"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
	Address      string `json:"address,omitempty"`
}

// UpdateSupplierInput carries the optional fields of a supplier update.
type UpdateSupplierInput struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	Address      *string `json:"address,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// SupplierDTO is the API-facing projection of a supplier.
type SupplierDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	TaxNumber    string    `json:"tax_number"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Address      string    `json:"address,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// SupplierList wraps a page of suppliers plus the next cursor.
type SupplierList struct {
	Suppliers  []SupplierDTO `json:"suppliers"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// Filters narrows the supplier list query.
type Filters struct {
	ActiveOnly bool
	Query      string
}

// FromModel maps a persisted supplier onto the API projection.
func FromModel(supplier *models.Supplier) *SupplierDTO {
	if supplier == nil {
		return nil
	}
	return &SupplierDTO{
		ID:           supplier.ID,
		Name:         supplier.Name,
		TaxNumber:    supplier.TaxNumber,
		ContactName:  supplier.ContactName,
		ContactPhone: supplier.ContactPhone,
		ContactEmail: supplier.ContactEmail,
		Address:      supplier.Address,
		IsActive:     supplier.IsActive,
		CreatedAt:    supplier.CreatedAt,
	}
}
