package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

// PersonSlot names one of the per-role person columns on an order.
type PersonSlot string

const (
	SlotOperationPerson PersonSlot = "operation_person_id"
	SlotFleetPerson     PersonSlot = "fleet_person_id"
	SlotCustomsPerson   PersonSlot = "customs_person_id"
)

// Repository defines persistence operations for orders and their logs.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByOrderNumber(ctx context.Context, number int64) (*models.Order, error)
	List(ctx context.Context, params pagination.Params, filters Filters) ([]models.Order, error)
	ListStaleOffers(ctx context.Context, cutoff time.Time) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	ReplaceCargoItems(ctx context.Context, orderID uuid.UUID, items []models.OrderCargoItem) error
	UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to enums.TripStatus) (bool, error)
	ClaimPersonSlot(ctx context.Context, orderID uuid.UUID, slot PersonSlot, userID uuid.UUID) (bool, error)
	UpdateAssignedResource(ctx context.Context, orderID uuid.UUID, column string, subjectID uuid.UUID) error
	AppendAssignment(ctx context.Context, row *models.AssignmentHistory) error
	ListAssignments(ctx context.Context, orderID uuid.UUID) ([]models.AssignmentHistory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
