package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rotalog/rotalog-backend/pkg/enums"
)

// Customer is the ordering party. RiskStatus stays nil until the sales desk
// classifies the account; orders cannot be opened before that happens.
type Customer struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string            `gorm:"column:name;not null"`
	TaxNumber    string            `gorm:"column:tax_number;not null;uniqueIndex"`
	ContactName  string            `gorm:"column:contact_name"`
	ContactPhone string            `gorm:"column:contact_phone"`
	Address      string            `gorm:"column:address"`
	RiskStatus   *enums.RiskStatus `gorm:"column:risk_status;type:text"`
	Blacklisted  bool              `gorm:"column:blacklisted;not null;default:false"`
	HasLawsuit   bool              `gorm:"column:has_lawsuit;not null;default:false"`
	CreditLimit  decimal.Decimal   `gorm:"column:credit_limit;type:numeric(14,2);not null;default:0"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
