package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver holds the personnel record plus the expiry-dated travel documents
// the compliance job watches.
type Driver struct {
	ID                    uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FirstName             string     `gorm:"column:first_name;not null"`
	LastName              string     `gorm:"column:last_name;not null"`
	LicenseNo             string     `gorm:"column:license_no;not null;uniqueIndex"`
	Phone                 string     `gorm:"column:phone"`
	IsActive              bool       `gorm:"column:is_active;not null;default:true"`
	PassportExpiry        *time.Time `gorm:"column:passport_expiry"`
	VisaExpiry            *time.Time `gorm:"column:visa_expiry"`
	ResidencePermitExpiry *time.Time `gorm:"column:residence_permit_expiry"`
	CreatedAt             time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
