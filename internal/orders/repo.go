package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("CargoItems").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assigned_at ASC")
		}).
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) FindByOrderNumber(ctx context.Context, number int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("CargoItems").
		Where("order_number = ?", number).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) List(ctx context.Context, params pagination.Params, filters Filters) ([]models.Order, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{}).Preload("CargoItems")

	if filters.Status != nil {
		query = query.Where("trip_status = ?", *filters.Status)
	}
	if filters.CustomerID != nil {
		query = query.Where("customer_id = ?", *filters.CustomerID)
	}
	if filters.SalesPersonID != nil {
		query = query.Where("sales_person_id = ?", *filters.SalesPersonID)
	}
	if filters.Transferable != nil {
		query = query.Where("transferable = ?", *filters.Transferable)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	if q := strings.TrimSpace(filters.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"CAST(order_number AS TEXT) LIKE ? OR LOWER(from_city) LIKE ? OR LOWER(to_city) LIKE ?",
			"%"+q+"%", like, like,
		)
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Order
	err = query.
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListStaleOffers(ctx context.Context, cutoff time.Time) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("trip_status = ?", enums.TripStatusOffer).
		Where("deadline_date IS NOT NULL AND deadline_date < ?", cutoff).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit("CargoItems", "Assignments").Save(order).Error
}

func (r *repository) ReplaceCargoItems(ctx context.Context, orderID uuid.UUID, items []models.OrderCargoItem) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderCargoItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// UpdateStatus moves the order from one status to another with a conditional
// write, so concurrent transitions cannot both win.
func (r *repository) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to enums.TripStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND trip_status = ?", orderID, from).
		Update("trip_status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ClaimPersonSlot fills a person column only when it is still empty. The
// conditional update is what makes simultaneous claims safe: exactly one
// claimant sees RowsAffected == 1.
func (r *repository) ClaimPersonSlot(ctx context.Context, orderID uuid.UUID, slot PersonSlot, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Where(string(slot)+" IS NULL").
		Update(string(slot), userID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) UpdateAssignedResource(ctx context.Context, orderID uuid.UUID, column string, subjectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update(column, subjectID).Error
}

func (r *repository) AppendAssignment(ctx context.Context, row *models.AssignmentHistory) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) ListAssignments(ctx context.Context, orderID uuid.UUID) ([]models.AssignmentHistory, error) {
	var rows []models.AssignmentHistory
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("assigned_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("CargoItems", "Assignments").Delete(&models.Order{ID: id}).Error
}
