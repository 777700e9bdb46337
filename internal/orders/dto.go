package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	"github.com/rotalog/rotalog-backend/pkg/types"
)

// RouteStopInput is one end of the route as submitted by clients.
type RouteStopInput struct {
	Country      string `json:"country"`
	City         string `json:"city"`
	District     string `json:"district,omitempty"`
	PostalCode   string `json:"postal_code"`
	Address      string `json:"address,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// CargoItemInput is one piece of cargo as submitted by clients.
type CargoItemInput struct {
	Type        enums.CargoType `json:"type"`
	WeightKg    float64         `json:"weight_kg"`
	LengthCm    float64         `json:"length_cm"`
	WidthCm     float64         `json:"width_cm"`
	HeightCm    float64         `json:"height_cm"`
	Description *string         `json:"description,omitempty"`
}

// CreateOrderInput carries the offer draft submitted by the sales desk.
type CreateOrderInput struct {
	CustomerID   uuid.UUID        `json:"customer_id"`
	From         RouteStopInput   `json:"from"`
	To           RouteStopInput   `json:"to"`
	CargoItems   []CargoItemInput `json:"cargo_items"`
	Transferable bool             `json:"transferable"`
	QuotedPrice  *decimal.Decimal `json:"quoted_price,omitempty"`
	Currency     *enums.Currency  `json:"currency,omitempty"`
	LoadingDate  *time.Time       `json:"loading_date,omitempty"`
	DeadlineDate *time.Time       `json:"deadline_date,omitempty"`
}

// UpdateOrderInput carries the optional fields of an offer update.
type UpdateOrderInput struct {
	From             *RouteStopInput  `json:"from,omitempty"`
	To               *RouteStopInput  `json:"to,omitempty"`
	CargoItems       []CargoItemInput `json:"cargo_items,omitempty"`
	Transferable     *bool            `json:"transferable,omitempty"`
	QuotedPrice      *decimal.Decimal `json:"quoted_price,omitempty"`
	Currency         *enums.Currency  `json:"currency,omitempty"`
	LoadingDate      *time.Time       `json:"loading_date,omitempty"`
	DeadlineDate     *time.Time       `json:"deadline_date,omitempty"`
	EstimatedArrival *time.Time       `json:"estimated_arrival,omitempty"`
}

// TransitionInput names the target status of a lifecycle transition.
type TransitionInput struct {
	Status enums.TripStatus `json:"status" validate:"required"`
}

// AssignFleetResourcesInput names the fleet resources to attach to an order.
// Every field is optional; each present field is attempted independently.
type AssignFleetResourcesInput struct {
	VehicleID *uuid.UUID `json:"vehicle_id,omitempty"`
	TrailerID *uuid.UUID `json:"trailer_id,omitempty"`
	DriverID  *uuid.UUID `json:"driver_id,omitempty"`
}

// AssignmentOutcome reports the result of one assignment step.
type AssignmentOutcome struct {
	Kind     enums.AssignmentKind `json:"kind"`
	Assigned bool                 `json:"assigned"`
	Error    string               `json:"error,omitempty"`
}

// CargoItemDTO is the API-facing projection of a cargo item.
type CargoItemDTO struct {
	ID          uuid.UUID       `json:"id"`
	Type        enums.CargoType `json:"type"`
	WeightKg    float64         `json:"weight_kg"`
	LengthCm    float64         `json:"length_cm"`
	WidthCm     float64         `json:"width_cm"`
	HeightCm    float64         `json:"height_cm"`
	Description *string         `json:"description,omitempty"`
}

// AssignmentDTO is one row of the order's assignment log.
type AssignmentDTO struct {
	Kind             enums.AssignmentKind `json:"kind"`
	SubjectID        uuid.UUID            `json:"subject_id"`
	AssignedByUserID uuid.UUID            `json:"assigned_by_user_id"`
	AssignedAt       time.Time            `json:"assigned_at"`
}

// OrderDTO is the API-facing projection of an order.
type OrderDTO struct {
	ID                uuid.UUID        `json:"id"`
	OrderNumber       int64            `json:"order_number"`
	CustomerID        uuid.UUID        `json:"customer_id"`
	SalesPersonID     uuid.UUID        `json:"sales_person_id"`
	OperationPersonID *uuid.UUID       `json:"operation_person_id,omitempty"`
	FleetPersonID     *uuid.UUID       `json:"fleet_person_id,omitempty"`
	CustomsPersonID   *uuid.UUID       `json:"customs_person_id,omitempty"`
	From              types.RouteStop  `json:"from"`
	To                types.RouteStop  `json:"to"`
	CargoItems        []CargoItemDTO   `json:"cargo_items"`
	TotalWeightKg     float64          `json:"total_weight_kg"`
	Transferable      bool             `json:"transferable"`
	QuotedPrice       *decimal.Decimal `json:"quoted_price,omitempty"`
	Currency          enums.Currency   `json:"currency"`
	LoadingDate       *time.Time       `json:"loading_date,omitempty"`
	DeadlineDate      *time.Time       `json:"deadline_date,omitempty"`
	EstimatedArrival  *time.Time       `json:"estimated_arrival,omitempty"`
	AssignedVehicleID *uuid.UUID       `json:"assigned_vehicle_id,omitempty"`
	AssignedTrailerID *uuid.UUID       `json:"assigned_trailer_id,omitempty"`
	AssignedDriverID  *uuid.UUID       `json:"assigned_driver_id,omitempty"`
	TripStatus        enums.TripStatus `json:"trip_status"`
	Assignments       []AssignmentDTO  `json:"assignments,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// OrderList wraps a page of orders plus the next cursor.
type OrderList struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// Filters narrows the order list query.
type Filters struct {
	Status        *enums.TripStatus
	CustomerID    *uuid.UUID
	SalesPersonID *uuid.UUID
	Transferable  *bool
	DateFrom      *time.Time
	DateTo        *time.Time
	Query         string
}

// FromModel maps a persisted order onto the API projection.
func FromModel(order *models.Order) *OrderDTO {
	if order == nil {
		return nil
	}

	items := make([]CargoItemDTO, 0, len(order.CargoItems))
	for _, item := range order.CargoItems {
		items = append(items, CargoItemDTO{
			ID:          item.ID,
			Type:        item.Type,
			WeightKg:    item.WeightKg,
			LengthCm:    item.LengthCm,
			WidthCm:     item.WidthCm,
			HeightCm:    item.HeightCm,
			Description: item.Description,
		})
	}

	assignments := make([]AssignmentDTO, 0, len(order.Assignments))
	for _, row := range order.Assignments {
		assignments = append(assignments, AssignmentDTO{
			Kind:             row.Kind,
			SubjectID:        row.SubjectID,
			AssignedByUserID: row.AssignedByUserID,
			AssignedAt:       row.AssignedAt,
		})
	}

	return &OrderDTO{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		CustomerID:        order.CustomerID,
		SalesPersonID:     order.SalesPersonID,
		OperationPersonID: order.OperationPersonID,
		FleetPersonID:     order.FleetPersonID,
		CustomsPersonID:   order.CustomsPersonID,
		From:              order.From,
		To:                order.To,
		CargoItems:        items,
		TotalWeightKg:     order.TotalWeightKg(),
		Transferable:      order.Transferable,
		QuotedPrice:       order.QuotedPrice,
		Currency:          order.Currency,
		LoadingDate:       order.LoadingDate,
		DeadlineDate:      order.DeadlineDate,
		EstimatedArrival:  order.EstimatedArrival,
		AssignedVehicleID: order.AssignedVehicleID,
		AssignedTrailerID: order.AssignedTrailerID,
		AssignedDriverID:  order.AssignedDriverID,
		TripStatus:        order.TripStatus,
		Assignments:       assignments,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}
