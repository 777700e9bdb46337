package customers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
)

// CreateCustomerInput carries the fields accepted when registering a customer.
type CreateCustomerInput struct {
	Name         string           `json:"name" validate:"required,min=2"`
	TaxNumber    string           `json:"tax_number" validate:"required,min=10,max=11"`
	ContactName  string           `json:"contact_name,omitempty"`
	ContactPhone string           `json:"contact_phone,omitempty"`
	Address      string           `json:"address,omitempty"`
	CreditLimit  *decimal.Decimal `json:"credit_limit,omitempty"`
}

// UpdateCustomerInput carries the optional fields of a customer update.
type UpdateCustomerInput struct {
	Name         *string           `json:"name,omitempty" validate:"omitempty,min=2"`
	ContactName  *string           `json:"contact_name,omitempty"`
	ContactPhone *string           `json:"contact_phone,omitempty"`
	Address      *string           `json:"address,omitempty"`
	RiskStatus   *enums.RiskStatus `json:"risk_status,omitempty"`
	Blacklisted  *bool             `json:"blacklisted,omitempty"`
	HasLawsuit   *bool             `json:"has_lawsuit,omitempty"`
	CreditLimit  *decimal.Decimal  `json:"credit_limit,omitempty"`
}

// CustomerDTO is the API-facing projection of a customer.
type CustomerDTO struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	TaxNumber    string            `json:"tax_number"`
	ContactName  string            `json:"contact_name,omitempty"`
	ContactPhone string            `json:"contact_phone,omitempty"`
	Address      string            `json:"address,omitempty"`
	RiskStatus   *enums.RiskStatus `json:"risk_status,omitempty"`
	Blacklisted  bool              `json:"blacklisted"`
	HasLawsuit   bool              `json:"has_lawsuit"`
	CreditLimit  decimal.Decimal   `json:"credit_limit"`
	CreatedAt    time.Time         `json:"created_at"`
}

// CustomerList wraps a page of customers plus the next cursor.
type CustomerList struct {
	Customers  []CustomerDTO `json:"customers"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// Filters narrows the customer list query.
type Filters struct {
	RiskStatus      *enums.RiskStatus
	BlacklistedOnly bool
	Query           string
}

// FromModel maps a persisted customer onto the API projection.
func FromModel(customer *models.Customer) *CustomerDTO {
	if customer == nil {
		return nil
	}
	return &CustomerDTO{
		ID:           customer.ID,
		Name:         customer.Name,
		TaxNumber:    customer.TaxNumber,
		ContactName:  customer.ContactName,
		ContactPhone: customer.ContactPhone,
		Address:      customer.Address,
		RiskStatus:   customer.RiskStatus,
		Blacklisted:  customer.Blacklisted,
		HasLawsuit:   customer.HasLawsuit,
		CreditLimit:  customer.CreditLimit,
		CreatedAt:    customer.CreatedAt,
	}
}
