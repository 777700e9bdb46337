package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/pkg/enums"
)

// AssignmentHistory is the append-only log of people and fleet resources
// attached to an order.
type AssignmentHistory struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID          uuid.UUID            `gorm:"column:order_id;type:uuid;not null;index"`
	Kind             enums.AssignmentKind `gorm:"column:kind;type:text;not null"`
	SubjectID        uuid.UUID            `gorm:"column:subject_id;type:uuid;not null"`
	AssignedByUserID uuid.UUID            `gorm:"column:assigned_by_user_id;type:uuid;not null"`
	AssignedAt       time.Time            `gorm:"column:assigned_at;autoCreateTime"`
}
