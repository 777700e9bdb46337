package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rotalog/rotalog-backend/pkg/enums"
	"github.com/rotalog/rotalog-backend/pkg/types"
)

// Order is the central shipment entity: an offer while unapproved, an order
// once a sales user approves it.
type Order struct {
	ID                uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber       int64               `gorm:"column:order_number;not null;uniqueIndex;default:nextval('orders_number_seq')"`
	CustomerID        uuid.UUID           `gorm:"column:customer_id;type:uuid;not null"`
	SalesPersonID     uuid.UUID           `gorm:"column:sales_person_id;type:uuid;not null"`
	OperationPersonID *uuid.UUID          `gorm:"column:operation_person_id;type:uuid"`
	FleetPersonID     *uuid.UUID          `gorm:"column:fleet_person_id;type:uuid"`
	CustomsPersonID   *uuid.UUID          `gorm:"column:customs_person_id;type:uuid"`
	From              types.RouteStop     `gorm:"embedded;embeddedPrefix:from_"`
	To                types.RouteStop     `gorm:"embedded;embeddedPrefix:to_"`
	Transferable      bool                `gorm:"column:transferable;not null;default:false"`
	QuotedPrice       *decimal.Decimal    `gorm:"column:quoted_price;type:numeric(14,2)"`
	Currency          enums.Currency      `gorm:"column:currency;type:text;not null;default:'TRY'"`
	LoadingDate       *time.Time          `gorm:"column:loading_date"`
	DeadlineDate      *time.Time          `gorm:"column:deadline_date"`
	EstimatedArrival  *time.Time          `gorm:"column:estimated_arrival"`
	AssignedVehicleID *uuid.UUID          `gorm:"column:assigned_vehicle_id;type:uuid"`
	AssignedTrailerID *uuid.UUID          `gorm:"column:assigned_trailer_id;type:uuid"`
	AssignedDriverID  *uuid.UUID          `gorm:"column:assigned_driver_id;type:uuid"`
	TripStatus        enums.TripStatus    `gorm:"column:trip_status;type:text;not null;default:'TEKLIF_ASAMASI'"`
	CargoItems        []OrderCargoItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Assignments       []AssignmentHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// TotalWeightKg sums the per-item weights; the aggregate is never stored.
func (o *Order) TotalWeightKg() float64 {
	var total float64
	for _, item := range o.CargoItems {
		total += item.WeightKg
	}
	return total
}
